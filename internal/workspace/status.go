package workspace

import (
	"fmt"
	"slices"
)

// Status is the progress state of a task.
type Status string

// Status values in rank order.
const (
	StatusToBeDone   Status = "TO_BE_DONE"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// DefaultStatus is the status of a task created without one.
const DefaultStatus = StatusToBeDone

var statuses = []Status{StatusToBeDone, StatusInProgress, StatusDone}

// Statuses returns all statuses in rank order.
func Statuses() []Status {
	return slices.Clone(statuses)
}

// Rank returns the position of s in declaration order, or -1 if s is not a
// known status.
func (s Status) Rank() int {
	return slices.Index(statuses, s)
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s.Rank() >= 0
}

// Label returns the sentence-cased name, e.g. "In progress".
func (s Status) Label() string {
	return sentenceCase(string(s))
}

// ParseStatus converts a name such as "in-progress" or "IN_PROGRESS" to a
// Status.
func ParseStatus(str string) (Status, error) {
	s := Status(normalizeName(str))
	if !s.Valid() {
		return "", fmt.Errorf("%w: unknown status %q, must be one of: %s", ErrValidation, str, joinNames(statuses))
	}
	return s, nil
}
