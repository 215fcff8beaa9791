package fixture

import (
	"fmt"
	"path"

	billy "github.com/go-git/go-billy/v5"

	fsutil "github.com/vbp1/fixturegen/internal/util/fs"
)

// Mismatch is one difference between a tree on disk and its manifest.
type Mismatch struct {
	Path    string
	Problem string
}

func (m Mismatch) String() string { return m.Path + ": " + m.Problem }

// Verify compares the tree below root with the manifest. An empty result means they match exactly.
func Verify(fsys billy.Filesystem, root string, scenarios []Scenario) ([]Mismatch, error) {
	if err := Validate(scenarios); err != nil {
		return nil, err
	}
	ok, err := fsutil.Exists(fsys, root)
	if err != nil {
		return nil, &FilesystemError{Op: "stat", Path: display(fsys, root), Err: err}
	}
	if !ok {
		return nil, fmt.Errorf("fixture root %s does not exist", display(fsys, root))
	}
	entries, err := fsutil.Tree(fsys, root)
	if err != nil {
		return nil, &FilesystemError{Op: "walk", Path: display(fsys, root), Err: err}
	}
	found := make(map[string]fsutil.Entry, len(entries))
	for _, e := range entries {
		found[e.Path] = e
	}

	var out []Mismatch
	for _, n := range Layout(scenarios) {
		e, ok := found[n.Path]
		delete(found, n.Path)
		switch {
		case !ok:
			out = append(out, Mismatch{Path: n.Path, Problem: "missing"})
		case n.IsDir && !e.IsDir:
			out = append(out, Mismatch{Path: n.Path, Problem: "expected directory, found file"})
		case !n.IsDir && e.IsDir:
			out = append(out, Mismatch{Path: n.Path, Problem: "expected file, found directory"})
		case !n.IsDir:
			p := path.Join(root, n.Path)
			got, err := fsutil.ReadText(fsys, p)
			if err != nil {
				return nil, &FilesystemError{Op: "read", Path: display(fsys, p), Err: err}
			}
			if got != n.Content {
				out = append(out, Mismatch{Path: n.Path, Problem: fmt.Sprintf("content differs (%d bytes, want %d)", len(got), len(n.Content))})
			}
		}
	}
	// Leftovers in lexical order; children of an unexpected dir are reported too.
	for _, e := range entries {
		if _, ok := found[e.Path]; ok {
			out = append(out, Mismatch{Path: e.Path, Problem: "unexpected"})
		}
	}
	return out, nil
}
