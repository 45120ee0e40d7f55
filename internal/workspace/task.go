package workspace

import (
	"fmt"
	"unicode/utf8"
)

// Task is a single unit of work. Its description identifies it within the
// owning TaskList.
type Task struct {
	description string
	priority    Priority
	status      Status
}

// NewTask creates a task. Pass DefaultPriority and DefaultStatus for the
// defaults.
func NewTask(description string, priority Priority, status Status) (*Task, error) {
	t := &Task{}
	if err := t.SetDescription(description); err != nil {
		return nil, err
	}
	if err := t.SetPriority(priority); err != nil {
		return nil, err
	}
	if err := t.SetStatus(status); err != nil {
		return nil, err
	}
	return t, nil
}

// Description returns the task description.
func (t *Task) Description() string {
	return t.description
}

// Priority returns the task priority.
func (t *Task) Priority() Priority {
	return t.priority
}

// Status returns the task status.
func (t *Task) Status() Status {
	return t.status
}

// SetDescription changes the description. It does not re-key the task in a
// TaskList that already holds it; use TaskList.RenameTask for that.
func (t *Task) SetDescription(description string) error {
	if err := checkText("description", description); err != nil {
		return err
	}
	t.description = description
	return nil
}

// SetPriority changes the priority.
func (t *Task) SetPriority(priority Priority) error {
	if !priority.Valid() {
		return fmt.Errorf("%w: priority must be one of %s, got %q", ErrValidation, joinNames(priorities), priority)
	}
	t.priority = priority
	return nil
}

// SetStatus changes the status.
func (t *Task) SetStatus(status Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: status must be one of %s, got %q", ErrValidation, joinNames(statuses), status)
	}
	t.status = status
	return nil
}

// IsDone reports whether the task status is DONE.
func (t *Task) IsDone() bool {
	return t.status == StatusDone
}

// Equal reports whether both tasks have the same description, priority and
// status.
func (t *Task) Equal(other *Task) bool {
	if t == nil || other == nil {
		return t == other
	}
	return *t == *other
}

// String renders the task as "Do laundry - In progress - High".
func (t *Task) String() string {
	return fmt.Sprintf("%s - %s - %s", t.description, t.status.Label(), t.priority.Label())
}

type taskDocument struct {
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
}

// MarshalJSON encodes the task as
// {"description":...,"priority":"HIGH","status":"DONE"}.
func (t *Task) MarshalJSON() ([]byte, error) {
	return encodeJSON(taskDocument{
		Description: t.description,
		Priority:    t.priority,
		Status:      t.status,
	})
}

// UnmarshalJSON decodes a task document, replacing t.
func (t *Task) UnmarshalJSON(data []byte) error {
	parsed, err := ParseTask(data)
	if err != nil {
		return err
	}
	*t = *parsed
	return nil
}

// ParseTask decodes a task document. Missing keys and unknown enumeration
// names fail with ErrFormat.
func ParseTask(data []byte) (*Task, error) {
	var doc taskDocument
	if err := decodeDocument(data, taskSchema, &doc); err != nil {
		return nil, err
	}

	return NewTask(doc.Description, doc.Priority, doc.Status)
}

// checkText rejects empty strings and strings that are not valid UTF-8,
// which encoding/json would rewrite on save.
func checkText(field, s string) error {
	if s == "" {
		return fmt.Errorf("%w: %s cannot be empty", ErrValidation, field)
	}
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: %s %q is not valid UTF-8", ErrValidation, field, s)
	}
	return nil
}
