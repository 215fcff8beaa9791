package lock

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked means another fixturegen process holds the lock for the same root.
var ErrLocked = errors.New("fixture root is locked by another process")

// FileLock guards one fixture root against concurrent builds.
type FileLock struct {
	fl   *flock.Flock
	path string
	root string
}

// New returns the lock for root at <tmp>/fixturegen_<hash>.lock.
func New(root string) (*FileLock, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256([]byte(abs))
	name := filepath.Join(os.TempDir(), fmt.Sprintf("fixturegen_%s.lock", hex.EncodeToString(sum[:8])))
	return &FileLock{fl: flock.New(name), path: name, root: abs}, nil
}

// Path is the lock file location.
func (l *FileLock) Path() string { return l.path }

// TryLock attempts non-blocking lock.
func (l *FileLock) TryLock() (bool, error) {
	return l.fl.TryLock()
}

// Acquire is TryLock that reports contention as ErrLocked.
func (l *FileLock) Acquire() error {
	ok, err := l.TryLock()
	if err != nil {
		return fmt.Errorf("lock %s: %w", l.path, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s (lock file %s)", ErrLocked, l.root, l.path)
	}
	return nil
}

// Unlock releases the lock. The lock file stays: removing it would let a
// waiter hold a lock on an unlinked inode while a newcomer locks a fresh file.
func (l *FileLock) Unlock() error {
	return l.fl.Unlock()
}
