package fixture

import (
	"path"

	"github.com/samber/lo"
)

// Node is one directory or file the builder creates, relative to the root.
type Node struct {
	Path    string
	IsDir   bool
	Content string
}

// Nodes lists what the scenario creates, parents before children.
func (s Scenario) Nodes() []Node {
	var out []Node
	dir := s.Name
	if dir != "" {
		out = append(out, Node{Path: dir, IsDir: true})
	}
	folder := func(name string) {
		p := path.Join(dir, name)
		out = append(out,
			Node{Path: p, IsDir: true},
			Node{Path: path.Join(p, s.LeafName()), Content: Placeholder(name)},
		)
	}
	file := func(name string) {
		out = append(out, Node{Path: path.Join(dir, name), Content: Placeholder(name)})
	}

	switch s.Kind {
	case KindFolders:
		lo.ForEach(s.FolderNames(), func(n string, _ int) { folder(n) })
	case KindFiles:
		lo.ForEach(s.FileNames(), func(n string, _ int) { file(n) })
	case KindMixed:
		lo.ForEach(s.FolderNames(), func(n string, _ int) { folder(n) })
		lo.ForEach(s.FileNames(), func(n string, _ int) { file(n) })
	case KindNested:
		p := dir
		for _, lvl := range s.LevelNames() {
			p = path.Join(p, lvl)
			out = append(out, Node{Path: p, IsDir: true})
		}
		content := lo.Ternary(s.Content == "", Placeholder(s.LeafName()), s.Content)
		out = append(out, Node{Path: path.Join(p, s.LeafName()), Content: content})
	case KindStatic:
		for _, f := range s.Static {
			out = append(out, Node{Path: path.Join(dir, f.Name), Content: f.Content})
		}
	}
	return out
}

// Layout is the full expected tree of a manifest in creation order.
func Layout(scenarios []Scenario) []Node {
	return lo.FlatMap(scenarios, func(s Scenario, _ int) []Node { return s.Nodes() })
}

// Totals counts what a tree holds below its root.
type Totals struct {
	Dirs  int   `yaml:"dirs"`
	Files int   `yaml:"files"`
	Bytes int64 `yaml:"bytes"`
}

// Expect returns the totals a build of scenarios will produce.
func Expect(scenarios []Scenario) Totals {
	var t Totals
	for _, n := range Layout(scenarios) {
		if n.IsDir {
			t.Dirs++
			continue
		}
		t.Files++
		t.Bytes += int64(len(n.Content))
	}
	return t
}
