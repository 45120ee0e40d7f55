package workspace

import (
	"errors"
	"fmt"
)

// Error kinds returned by the model and the store. Callers match them with
// errors.Is; the concrete errors carry the offending key or field.
var (
	// ErrValidation is returned for an empty name or description, or an
	// enumeration value outside its declared set.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateKey is returned when a key is already used in a collection.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound is returned for a missing task, task list or saved file.
	ErrNotFound = errors.New("not found")

	// ErrFormat is returned when a JSON document is malformed or incomplete.
	ErrFormat = errors.New("invalid format")

	// ErrLocked is returned when another live process holds a file lock.
	ErrLocked = errors.New("locked")

	// ErrConflict is returned when a saved file changed after it was read.
	ErrConflict = errors.New("conflict")
)

// FormatError describes a decoding failure at a location in a document.
type FormatError struct {
	Path string // dotted path to the error location, empty for the root
	Err  error
}

func (e *FormatError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", ErrFormat, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrFormat, e.Err)
}

// Unwrap returns the underlying error.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is makes every FormatError match ErrFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}
