package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	lockSuffix = ".lock"
	tmpMarker  = ".tmp."
)

// Store persists workspaces as JSON files in a single directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created on the
// first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory the store writes to.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the location of fileName inside the store.
func (s *Store) Path(fileName string) (string, error) {
	if err := validateFileName(fileName); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, fileName), nil
}

// Save writes the workspace as the entire content of fileName, replacing
// any previous content. The write goes to a temp file that is renamed over
// the target.
func (s *Store) Save(fileName string, w *Workspace) error {
	path, err := s.Path(fileName)
	if err != nil {
		return err
	}

	data, err := w.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal workspace: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create saves directory: %w", err)
	}

	tmpPath := fmt.Sprintf("%s%s%d", path, tmpMarker, os.Getpid())
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// Load reads and decodes fileName. A missing file fails with ErrNotFound;
// invalid content fails with ErrFormat.
func (s *Store) Load(fileName string) (*Workspace, error) {
	path, err := s.Path(fileName)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: no saved workspace %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	w, err := ParseWorkspace(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return w, nil
}

// Exists reports whether fileName has been saved.
func (s *Store) Exists(fileName string) (bool, error) {
	path, err := s.Path(fileName)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return true, nil
}

// Remove deletes a saved file.
func (s *Store) Remove(fileName string) error {
	path, err := s.Path(fileName)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: no saved workspace %s", ErrNotFound, path)
		}
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

// List returns the names of saved files in lexical order. Lock and temp
// files are skipped. A missing directory yields an empty list.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read saves directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, lockSuffix) || strings.Contains(name, tmpMarker) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// Lock returns the lock guarding fileName.
func (s *Store) Lock(fileName string) (*FileLock, error) {
	path, err := s.Path(fileName)
	if err != nil {
		return nil, err
	}
	return NewFileLock(path + lockSuffix), nil
}

// SaveToFile writes w to fileName inside dir.
func (w *Workspace) SaveToFile(dir, fileName string) error {
	return NewStore(dir).Save(fileName, w)
}

// LoadFromFile reads the workspace saved as fileName inside dir.
func LoadFromFile(dir, fileName string) (*Workspace, error) {
	return NewStore(dir).Load(fileName)
}

func validateFileName(fileName string) error {
	switch {
	case fileName == "":
		return fmt.Errorf("%w: file name cannot be empty", ErrValidation)
	case fileName == "." || fileName == "..":
		return fmt.Errorf("%w: invalid file name %q", ErrValidation, fileName)
	case strings.ContainsAny(fileName, `/\`):
		return fmt.Errorf("%w: file name %q must not contain a path separator", ErrValidation, fileName)
	}
	return nil
}
