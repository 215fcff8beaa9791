package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)

// MkdirP creates path recursively (like `mkdir -p`).
// No error if the directory already exists.
func MkdirP(fsys billy.Filesystem, path string) error {
	if path == "" {
		return fmt.Errorf("path is empty")
	}
	return fsys.MkdirAll(path, DirPerm)
}

// RemoveTree removes path and everything below it. A missing path is not an error.
func RemoveTree(fsys billy.Basic, path string) error {
	if path == "" {
		return fmt.Errorf("path is empty")
	}
	return util.RemoveAll(fsys, path)
}

// Exists reports whether path is present.
func Exists(fsys billy.Basic, path string) (bool, error) {
	_, err := fsys.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// WriteText writes content to path, truncating an existing file.
func WriteText(fsys billy.Basic, path, content string) error {
	return util.WriteFile(fsys, path, []byte(content), FilePerm)
}

// ReadText returns the whole content of path.
func ReadText(fsys billy.Basic, path string) (string, error) {
	b, err := util.ReadFile(fsys, path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Entry is one node found by Tree.
type Entry struct {
	Path  string // slash separated, relative to the walked root
	IsDir bool
	Size  int64
}

// Tree walks root in lexical order and returns every entry below it; root itself is skipped.
func Tree(fsys billy.Filesystem, root string) ([]Entry, error) {
	var out []Entry
	err := util.Walk(fsys, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		out = append(out, Entry{Path: filepath.ToSlash(rel), IsDir: info.IsDir(), Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// OpenRoot resolves root against the working directory and returns an OS filesystem
// chrooted at its parent together with the root's name inside it.
func OpenRoot(root string) (billy.Filesystem, string, error) {
	if root == "" {
		return nil, "", fmt.Errorf("root is empty")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, "", err
	}
	parent, name := filepath.Split(abs)
	if name == "" {
		return nil, "", fmt.Errorf("refusing to use filesystem root %q", abs)
	}
	return osfs.New(parent), name, nil
}
