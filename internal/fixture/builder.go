// Package fixture regenerates the on-disk test project consumed by the
// plugin's integration tests.
package fixture

import (
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"time"

	billy "github.com/go-git/go-billy/v5"

	fsutil "github.com/vbp1/fixturegen/internal/util/fs"
)

// Builder recreates a fixture root from a manifest.
type Builder struct {
	fs        billy.Filesystem
	root      string
	scenarios []Scenario

	// OnNode, if set, is called after each directory or file is created.
	OnNode func(Node)
}

// NewBuilder returns a builder writing below root inside fsys.
func NewBuilder(fsys billy.Filesystem, root string, scenarios []Scenario) *Builder {
	return &Builder{fs: fsys, root: root, scenarios: scenarios}
}

// Build wipes the root, recreates every scenario in order and reports what is on disk afterwards.
// A failure part way leaves the partial tree behind; the next Build starts from scratch anyway.
func (b *Builder) Build() (Report, error) {
	start := time.Now()
	if err := Validate(b.scenarios); err != nil {
		return Report{}, err
	}

	exists, err := fsutil.Exists(b.fs, b.root)
	if err != nil {
		return Report{}, b.fail("stat", b.root, err)
	}
	if exists {
		slog.Info("removing existing fixture root", "root", b.display(b.root))
		if err := fsutil.RemoveTree(b.fs, b.root); err != nil {
			return Report{}, b.fail("remove", b.root, err)
		}
	}
	if err := fsutil.MkdirP(b.fs, b.root); err != nil {
		return Report{}, b.fail("mkdir", b.root, err)
	}
	slog.Info("creating fixture project", "root", b.display(b.root), "scenarios", len(b.scenarios))

	for _, s := range b.scenarios {
		if err := b.create(s); err != nil {
			return Report{}, err
		}
		slog.Info("scenario created", "scenario", s.Name, "kind", s.Kind, "entries", s.Entries())
	}

	entries, err := fsutil.Tree(b.fs, b.root)
	if err != nil {
		return Report{}, b.fail("walk", b.root, err)
	}
	rep := newReport(b.display(b.root), entries, b.scenarios)
	rep.Elapsed = time.Since(start)
	slog.Info("fixture project created", "dirs", rep.Totals.Dirs, "files", rep.Totals.Files, "elapsed", rep.Elapsed)
	return rep, nil
}

func (b *Builder) create(s Scenario) error {
	for _, n := range s.Nodes() {
		p := path.Join(b.root, n.Path)
		if n.IsDir {
			if err := fsutil.MkdirP(b.fs, p); err != nil {
				return b.fail("mkdir", p, err)
			}
		} else {
			if err := fsutil.WriteText(b.fs, p, n.Content); err != nil {
				return b.fail("write", p, err)
			}
		}
		slog.Debug("created", "path", n.Path, "dir", n.IsDir)
		if b.OnNode != nil {
			b.OnNode(n)
		}
	}
	return nil
}

func (b *Builder) fail(op, p string, err error) error {
	return &FilesystemError{Op: op, Path: b.display(p), Err: err}
}

func (b *Builder) display(p string) string { return display(b.fs, p) }

// display maps a path inside fsys to the one a user sees.
func display(fsys billy.Filesystem, p string) string {
	return filepath.Join(fsys.Root(), filepath.FromSlash(p))
}

// String is used in log lines.
func (b *Builder) String() string {
	return fmt.Sprintf("Builder(%s, %d scenarios)", b.display(b.root), len(b.scenarios))
}
