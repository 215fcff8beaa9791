package fixture

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/samber/lo"
)

// Kind selects how a scenario subtree is generated.
type Kind string

const (
	KindFolders Kind = "folders"
	KindFiles   Kind = "files"
	KindMixed   Kind = "mixed"
	KindNested  Kind = "nested"
	KindStatic  Kind = "static"
)

const (
	DefaultFolderPattern = "folder%02d"
	DefaultFilePattern   = "file%02d.txt"
	DefaultLevelPattern  = "level%d"
	DefaultLeaf          = "dummy.txt"
)

// ErrInvalidScenario is returned by Validate for a malformed manifest.
var ErrInvalidScenario = errors.New("invalid scenario")

// StaticFile is a literal file written verbatim.
type StaticFile struct {
	Name    string `mapstructure:"name" yaml:"name"`
	Content string `mapstructure:"content" yaml:"content"`
}

// Scenario describes one named subtree under the fixture root.
// An empty Name places the scenario's entries directly in the root.
type Scenario struct {
	Name string `mapstructure:"name" yaml:"name"`
	Kind Kind   `mapstructure:"kind" yaml:"kind"`

	Folders       int    `mapstructure:"folders" yaml:"folders,omitempty"`
	Files         int    `mapstructure:"files" yaml:"files,omitempty"`
	FolderPattern string `mapstructure:"folder_pattern" yaml:"folder_pattern,omitempty"`
	FilePattern   string `mapstructure:"file_pattern" yaml:"file_pattern,omitempty"`

	// Leaf is the placeholder inside generated folders, or the terminal file of a nested chain.
	Leaf string `mapstructure:"leaf" yaml:"leaf,omitempty"`

	Depth        int    `mapstructure:"depth" yaml:"depth,omitempty"`
	LevelPattern string `mapstructure:"level_pattern" yaml:"level_pattern,omitempty"`
	Content      string `mapstructure:"content" yaml:"content,omitempty"`

	Static []StaticFile `mapstructure:"static" yaml:"static,omitempty"`
}

// Entries returns the number of direct children the scenario creates in its directory.
func (s Scenario) Entries() int {
	switch s.Kind {
	case KindFolders:
		return s.Folders
	case KindFiles:
		return s.Files
	case KindMixed:
		return s.Folders + s.Files
	case KindNested:
		return 1
	case KindStatic:
		return len(s.Static)
	}
	return 0
}

// FolderNames returns generated folder names in creation order.
func (s Scenario) FolderNames() []string {
	p := lo.Ternary(s.FolderPattern == "", DefaultFolderPattern, s.FolderPattern)
	return lo.Times(s.Folders, func(i int) string { return fmt.Sprintf(p, i+1) })
}

// FileNames returns generated file names in creation order.
func (s Scenario) FileNames() []string {
	p := lo.Ternary(s.FilePattern == "", DefaultFilePattern, s.FilePattern)
	return lo.Times(s.Files, func(i int) string { return fmt.Sprintf(p, i+1) })
}

// LevelNames returns the directory chain of a nested scenario, outermost first.
func (s Scenario) LevelNames() []string {
	p := lo.Ternary(s.LevelPattern == "", DefaultLevelPattern, s.LevelPattern)
	return lo.Times(s.Depth, func(i int) string { return fmt.Sprintf(p, i+1) })
}

// LeafName returns the placeholder file name.
func (s Scenario) LeafName() string {
	return lo.Ternary(s.Leaf == "", DefaultLeaf, s.Leaf)
}

// Placeholder is the deterministic content written for a generated entry.
func Placeholder(name string) string {
	return "Content of " + name
}

// Validate checks the manifest before anything touches the filesystem.
func Validate(scenarios []Scenario) error {
	names := lo.FilterMap(scenarios, func(s Scenario, _ int) (string, bool) { return s.Name, s.Name != "" })
	if dups := lo.FindDuplicates(names); len(dups) > 0 {
		return fmt.Errorf("%w: duplicate scenario names %v", ErrInvalidScenario, dups)
	}
	for i, s := range scenarios {
		if err := s.validate(); err != nil {
			return fmt.Errorf("%w: scenario #%d (%q): %v", ErrInvalidScenario, i+1, s.Name, err)
		}
	}
	paths := lo.Map(Layout(scenarios), func(n Node, _ int) string { return n.Path })
	if dups := lo.FindDuplicates(paths); len(dups) > 0 {
		return fmt.Errorf("%w: scenarios collide on %v", ErrInvalidScenario, dups)
	}
	return nil
}

func (s Scenario) validate() error {
	if s.Name != "" {
		if err := checkSegment(s.Name); err != nil {
			return err
		}
	} else if s.Kind != KindStatic {
		return fmt.Errorf("only static scenarios may omit the name")
	}
	if s.Folders < 0 || s.Files < 0 || s.Depth < 0 {
		return fmt.Errorf("counts must not be negative")
	}

	var generated []string
	switch s.Kind {
	case KindFolders:
		if s.Folders == 0 {
			return fmt.Errorf("folders scenario needs folders > 0")
		}
		generated = s.FolderNames()
	case KindFiles:
		if s.Files == 0 {
			return fmt.Errorf("files scenario needs files > 0")
		}
		generated = s.FileNames()
	case KindMixed:
		if s.Folders == 0 && s.Files == 0 {
			return fmt.Errorf("mixed scenario needs folders or files")
		}
		generated = append(s.FolderNames(), s.FileNames()...)
	case KindNested:
		if s.Depth == 0 {
			return fmt.Errorf("nested scenario needs depth > 0")
		}
		generated = s.LevelNames()
	case KindStatic:
		if len(s.Static) == 0 {
			return fmt.Errorf("static scenario has no files")
		}
		generated = lo.Map(s.Static, func(f StaticFile, _ int) string { return f.Name })
	default:
		return fmt.Errorf("unknown kind %q", s.Kind)
	}

	if s.Kind == KindFolders || s.Kind == KindMixed || s.Kind == KindNested {
		if err := checkSegment(s.LeafName()); err != nil {
			return fmt.Errorf("leaf: %v", err)
		}
	}
	for _, n := range generated {
		if err := checkSegment(n); err != nil {
			return err
		}
	}
	if dups := lo.FindDuplicates(generated); len(dups) > 0 {
		return fmt.Errorf("pattern yields duplicate names %v", dups)
	}
	return nil
}

// checkSegment rejects names that would escape their parent or are not a single path element.
func checkSegment(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("bad name %q", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("name %q must be a single path element", name)
	case strings.Contains(name, "%!"):
		return fmt.Errorf("name %q comes from a malformed pattern", name)
	case path.Clean(name) != name:
		return fmt.Errorf("name %q is not clean", name)
	}
	return nil
}
