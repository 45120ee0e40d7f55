package workspace

import (
	"fmt"
	"slices"
	"strings"
)

// Priority is the urgency of a task. Values are the symbolic names used in
// saved files.
type Priority string

// Priority values in rank order.
const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// DefaultPriority is the priority of a task created without one.
const DefaultPriority = PriorityMedium

var priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Priorities returns all priorities in rank order.
func Priorities() []Priority {
	return slices.Clone(priorities)
}

// Rank returns the position of p in declaration order, or -1 if p is not a
// known priority. HIGH ranks lowest so it sorts first.
func (p Priority) Rank() int {
	return slices.Index(priorities, p)
}

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	return p.Rank() >= 0
}

// Label returns the capitalized name, e.g. "High".
func (p Priority) Label() string {
	return sentenceCase(string(p))
}

// ParsePriority converts a name such as "high" or "HIGH" to a Priority.
func ParsePriority(s string) (Priority, error) {
	p := Priority(normalizeName(s))
	if !p.Valid() {
		return "", fmt.Errorf("%w: unknown priority %q, must be one of: %s", ErrValidation, s, joinNames(priorities))
	}
	return p, nil
}

// normalizeName upper-cases s and maps "-" and spaces to "_".
func normalizeName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	return strings.ToUpper(s)
}

// sentenceCase replaces underscores with spaces and capitalizes the first
// letter only: "IN_PROGRESS" becomes "In progress".
func sentenceCase(name string) string {
	if name == "" {
		return ""
	}
	lower := strings.ToLower(strings.ReplaceAll(name, "_", " "))
	return strings.ToUpper(lower[:1]) + lower[1:]
}

func joinNames[T ~string](values []T) string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}
