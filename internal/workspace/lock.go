package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

// FileLock is a PID lock file that keeps two processes from rewriting the
// same saved workspace at once.
type FileLock struct {
	path string
}

// NewFileLock creates a lock backed by the file at path.
func NewFileLock(path string) *FileLock {
	return &FileLock{path: path}
}

// Path returns the lock file location.
func (l *FileLock) Path() string {
	return l.path
}

// Acquire takes the lock. It fails with ErrLocked if a live process holds
// it. Locks left by dead processes, or holding garbage, are removed and
// acquisition is retried once.
func (l *FileLock) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create lock directory: %w", err)
	}

	err := l.create()
	if err == nil {
		return nil
	}
	if !os.IsExist(err) {
		return fmt.Errorf("failed to create lock file: %w", err)
	}

	pid, ok, err := l.holder()
	if err != nil {
		return err
	}
	if ok && processExists(pid) {
		return fmt.Errorf("%w: %s is held by PID %d", ErrLocked, filepath.Base(l.path), pid)
	}

	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove stale lock file: %w", err)
	}

	if err := l.create(); err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: lock acquired by another process during retry", ErrLocked)
		}
		return fmt.Errorf("failed to create lock file on retry: %w", err)
	}
	return nil
}

// create writes our PID into a new lock file. It fails with an
// os.IsExist error if the file is already there.
func (l *FileLock) create() error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	_, writeErr := fmt.Fprintf(f, "%d", os.Getpid())
	f.Close()
	if writeErr != nil {
		os.Remove(l.path)
		return fmt.Errorf("failed to write lock file: %w", writeErr)
	}
	return nil
}

// holder reads the PID stored in the lock file. ok is false when the file
// does not hold a number.
func (l *FileLock) holder() (pid int, ok bool, err error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to read existing lock file: %w", err)
	}
	pid, parseErr := strconv.Atoi(strings.TrimSpace(string(data)))
	if parseErr != nil {
		return 0, false, nil
	}
	return pid, true, nil
}

// Release removes the lock file. Releasing an absent lock is not an error.
func (l *FileLock) Release() error {
	err := os.Remove(l.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}
	return nil
}

// IsLocked reports whether a live process holds the lock. Stale or invalid
// lock files are removed.
func (l *FileLock) IsLocked() (bool, error) {
	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		return false, nil
	}

	pid, ok, err := l.holder()
	if err != nil {
		return false, err
	}
	if ok && processExists(pid) {
		return true, nil
	}

	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to remove stale lock file: %w", err)
	}
	return false, nil
}

// processExists sends signal 0 to pid, which checks for the process
// without signalling it.
func processExists(pid int) bool {
	if pid == os.Getpid() {
		return true
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
