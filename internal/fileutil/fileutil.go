package fileutil

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// lockRetryDelay is how often a blocked WithLock retries.
const lockRetryDelay = 50 * time.Millisecond

// WriteFileAtomic writes data to path through a temporary file in the same
// directory, syncs it, and renames it into place. Readers see either the old
// file or the complete new one. The temporary file is removed on any failure.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	syncDir(dir)
	return nil
}

// syncDir flushes the directory entry after a rename. Not every platform
// supports it, so failures are ignored.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	_ = d.Close()
}

// DefaultLockDir holds lock files when no lock directory is configured.
func DefaultLockDir() string {
	return filepath.Join(os.TempDir(), "lyricpro-locks")
}

// LockPath returns the advisory lock file in dir guarding target. The name is
// derived from target's absolute path, so every process resolving the same
// target agrees on it and nothing is created beside the target itself.
func LockPath(dir, target string) string {
	abs, err := filepath.Abs(target)
	if err != nil {
		abs = filepath.Clean(target)
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(dir, hex.EncodeToString(sum[:16])+".lock")
}

// WithLock runs fn while holding an exclusive advisory lock for target,
// waiting until the lock is free or ctx ends. An empty dir means
// DefaultLockDir.
func WithLock(ctx context.Context, dir, target string, fn func() error) error {
	if dir == "" {
		dir = DefaultLockDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create lock directory: %w", err)
	}
	lock := flock.New(LockPath(dir, target))
	ok, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("acquire lock: lock is held by another process")
	}
	defer func() {
		_ = lock.Unlock()
	}()
	return fn()
}
