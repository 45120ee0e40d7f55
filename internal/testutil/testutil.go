// Package testutil provides testing utilities for the tasktree project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pablasso/tasktree/internal/config"
	"github.com/pablasso/tasktree/internal/workspace"
)

// SetupTestDir creates a temp directory, resolves symlinks (for macOS),
// changes to it, and registers cleanup to restore the original working directory.
// Returns the resolved temp directory path.
func SetupTestDir(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	// Resolve symlinks for macOS (/var -> /private/var)
	if resolved, err := filepath.EvalSymlinks(tmpDir); err != nil {
		t.Logf("warning: could not resolve symlinks for temp dir: %v", err)
	} else {
		tmpDir = resolved
	}

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to change to temp dir: %v", err)
	}

	t.Cleanup(func() {
		os.Chdir(originalWd)
	})

	return tmpDir
}

// IsolateConfig points the user config dir at an empty temp directory and
// clears the saves dir override, so tests never read the developer's
// settings.
func IsolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvSavesDir, "")
}

// LoadWorkspace reads fileName from dir, failing the test on error.
func LoadWorkspace(t *testing.T, dir, fileName string) *workspace.Workspace {
	t.Helper()
	w, err := workspace.LoadFromFile(dir, fileName)
	if err != nil {
		t.Fatalf("failed to load %s: %v", fileName, err)
	}
	return w
}

// Descriptions returns the task descriptions of the named list in order.
func Descriptions(t *testing.T, w *workspace.Workspace, listName string) []string {
	t.Helper()
	list, err := w.FindTaskListByName(listName)
	if err != nil {
		t.Fatalf("task list %q missing: %v", listName, err)
	}
	tasks := list.Tasks()
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.Description()
	}
	return out
}
