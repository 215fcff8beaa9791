package disk

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestFreeBytes(t *testing.T) {
	space, err := FreeBytes("./")
	if errors.Is(err, ErrUnsupported) {
		t.Skip(err)
	}
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if space.Free == 0 || space.Total == 0 {
		t.Fatalf("free or total cannot be zero: %+v", space)
	}
}

func TestEnsureSpace(t *testing.T) {
	tmpDir := t.TempDir()
	// not created yet: the temp dir is checked instead
	target := filepath.Join(tmpDir, "a", "b", "project")
	if err := EnsureSpace(map[string]uint64{target: 1}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestEnsureSpaceTooMuch(t *testing.T) {
	if _, err := FreeBytes("./"); errors.Is(err, ErrUnsupported) {
		t.Skip(err)
	}
	err := EnsureSpace(map[string]uint64{t.TempDir(): ^uint64(0)})
	if err == nil || !strings.Contains(err.Error(), "insufficient space") {
		t.Fatalf("want insufficient space error, got %v", err)
	}
}

func TestNearestExisting(t *testing.T) {
	tmpDir := t.TempDir()
	got, err := NearestExisting(filepath.Join(tmpDir, "x", "y"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tmpDir {
		t.Fatalf("want %s, got %s", tmpDir, got)
	}
}
