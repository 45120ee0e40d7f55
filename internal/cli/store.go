package cli

import (
	"fmt"

	"github.com/pablasso/tasktree/internal/workspace"
)

// loadWorkspace reads fileName from the saves directory.
func loadWorkspace(fileName string) (*workspace.Workspace, error) {
	w, err := store.Load(fileName)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded workspace", "file", fileName, "lists", w.Len())
	return w, nil
}

// withLock runs fn while holding the lock for fileName.
func withLock(fileName string, fn func() error) error {
	lock, err := store.Lock(fileName)
	if err != nil {
		return err
	}
	if err := lock.Acquire(); err != nil {
		return err
	}
	logger.Debug("acquired lock", "path", lock.Path())
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("failed to release lock", "path", lock.Path(), "err", err)
		}
	}()
	return fn()
}

// saveWorkspace writes w to fileName. Callers hold the lock.
func saveWorkspace(fileName string, w *workspace.Workspace) error {
	if err := store.Save(fileName, w); err != nil {
		return fmt.Errorf("failed to save %s: %w", fileName, err)
	}
	logger.Debug("saved workspace", "file", fileName)
	return nil
}

// mutate loads fileName, applies fn and saves the result, all under the
// file lock. Nothing is written if fn fails.
func mutate(fileName string, fn func(w *workspace.Workspace) error) error {
	return withLock(fileName, func() error {
		w, err := loadWorkspace(fileName)
		if err != nil {
			return err
		}
		if err := fn(w); err != nil {
			return err
		}
		return saveWorkspace(fileName, w)
	})
}

// findList resolves a task list by name with a CLI-friendly error.
func findList(w *workspace.Workspace, name string) (*workspace.TaskList, error) {
	list, err := w.FindTaskListByName(name)
	if err != nil {
		return nil, fmt.Errorf("%w (workspace %q)", err, w.Name())
	}
	return list, nil
}
