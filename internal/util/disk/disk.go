package disk

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrUnsupported is returned by FreeBytes on platforms without statfs.
var ErrUnsupported = errors.New("free space check not supported on this platform")

// Space holds information about free and total bytes.
type Space struct {
	Free  uint64
	Total uint64
}

// EnsureSpace checks that each path in need has at least required bytes free.
// Keys: paths (they may not exist yet, the nearest existing ancestor is checked); value: required bytes.
// Platforms without statfs pass the check.
func EnsureSpace(need map[string]uint64) error {
	for p, req := range need {
		dir, err := NearestExisting(p)
		if err != nil {
			return err
		}
		sp, err := FreeBytes(dir)
		if errors.Is(err, ErrUnsupported) {
			return nil
		}
		if err != nil {
			return err
		}
		if sp.Free < req {
			return fmt.Errorf("insufficient space on %s: free %.2f MB, need %.2f MB", dir, bytesToMB(sp.Free), bytesToMB(req))
		}
	}
	return nil
}

// NearestExisting walks up from path until it finds something that exists.
func NearestExisting(path string) (string, error) {
	p, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(p)
		if parent == p {
			return "", fmt.Errorf("no existing ancestor for %s", path)
		}
		p = parent
	}
}

func bytesToMB(b uint64) float64 {
	return float64(b) / (1024 * 1024)
}
