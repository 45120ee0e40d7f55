package workspace

import (
	"cmp"
	"fmt"
	"strings"
)

// SortMode selects the key a TaskList is ordered by.
type SortMode string

// Sort modes.
const (
	SortByStatus             SortMode = "status"
	SortByPriority           SortMode = "priority"
	SortByStatusThenPriority SortMode = "status-then-priority"
)

var sortModes = []SortMode{SortByStatus, SortByPriority, SortByStatusThenPriority}

// SortModes returns every supported sort mode.
func SortModes() []SortMode {
	return append([]SortMode(nil), sortModes...)
}

// ParseSortMode accepts "status", "priority" or "status-then-priority"
// (underscores are accepted in place of dashes).
func ParseSortMode(s string) (SortMode, error) {
	mode := SortMode(strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", "-")))
	for _, m := range sortModes {
		if m == mode {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: unknown sort mode %q, must be one of: %s", ErrValidation, s, joinNames(sortModes))
}

func compareStatus(a, b *Task) int {
	return cmp.Compare(a.status.Rank(), b.status.Rank())
}

func comparePriority(a, b *Task) int {
	return cmp.Compare(a.priority.Rank(), b.priority.Rank())
}

func compareStatusThenPriority(a, b *Task) int {
	return cmp.Or(compareStatus(a, b), comparePriority(a, b))
}

func (m SortMode) compareFunc() (func(a, b *Task) int, error) {
	switch m {
	case SortByStatus:
		return compareStatus, nil
	case SortByPriority:
		return comparePriority, nil
	case SortByStatusThenPriority:
		return compareStatusThenPriority, nil
	default:
		return nil, fmt.Errorf("%w: unknown sort mode %q", ErrValidation, m)
	}
}
