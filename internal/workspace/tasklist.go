package workspace

import (
	"fmt"
	"slices"
	"strings"
)

// TaskList is a named, ordered collection of tasks keyed by description.
type TaskList struct {
	name  string
	order []*Task
	index map[string]*Task
}

// NewTaskList creates an empty task list.
func NewTaskList(name string) (*TaskList, error) {
	l := &TaskList{index: make(map[string]*Task)}
	if err := l.SetName(name); err != nil {
		return nil, err
	}
	return l, nil
}

// Name returns the list name.
func (l *TaskList) Name() string {
	return l.name
}

// SetName changes the list name. A Workspace that holds the list keeps it
// under the old key; use Workspace.RenameTaskList to re-key it.
func (l *TaskList) SetName(name string) error {
	if err := checkText("name", name); err != nil {
		return err
	}
	l.name = name
	return nil
}

// AddTask appends task. A task whose description is already used fails
// with ErrDuplicateKey.
func (l *TaskList) AddTask(task *Task) error {
	if task == nil {
		return fmt.Errorf("%w: task is nil", ErrValidation)
	}
	if _, ok := l.index[task.description]; ok {
		return fmt.Errorf("%w: there is already a task with description %q", ErrDuplicateKey, task.description)
	}
	l.index[task.description] = task
	l.order = append(l.order, task)
	return nil
}

// RemoveTask removes the task with the given description.
func (l *TaskList) RemoveTask(description string) error {
	task, ok := l.index[description]
	if !ok {
		return fmt.Errorf("%w: no task with description %q", ErrNotFound, description)
	}
	delete(l.index, description)
	l.order = slices.DeleteFunc(l.order, func(t *Task) bool { return t == task })
	return nil
}

// FindTaskByDescription returns the task with the given description.
func (l *TaskList) FindTaskByDescription(description string) (*Task, error) {
	task, ok := l.index[description]
	if !ok {
		return nil, fmt.Errorf("%w: no task with description %q", ErrNotFound, description)
	}
	return task, nil
}

// RenameTask changes a task's description and its key, keeping its
// position in the list.
func (l *TaskList) RenameTask(oldDescription, newDescription string) error {
	task, err := l.FindTaskByDescription(oldDescription)
	if err != nil {
		return err
	}
	if oldDescription == newDescription {
		return nil
	}
	if _, ok := l.index[newDescription]; ok {
		return fmt.Errorf("%w: there is already a task with description %q", ErrDuplicateKey, newDescription)
	}
	if err := task.SetDescription(newDescription); err != nil {
		return err
	}
	delete(l.index, oldDescription)
	l.index[newDescription] = task
	return nil
}

// Tasks returns the tasks in their current order. The slice is a copy; the
// tasks are not.
func (l *TaskList) Tasks() []*Task {
	return slices.Clone(l.order)
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.order)
}

// DoneCount returns the number of tasks whose status is DONE.
func (l *TaskList) DoneCount() int {
	done := 0
	for _, t := range l.order {
		if t.IsDone() {
			done++
		}
	}
	return done
}

// Progress returns "<done>/<total>".
func (l *TaskList) Progress() string {
	return fmt.Sprintf("%d/%d", l.DoneCount(), l.Len())
}

// SortTasksByStatus orders tasks by status rank.
func (l *TaskList) SortTasksByStatus() {
	slices.SortStableFunc(l.order, compareStatus)
}

// SortTasksByPriority orders tasks by priority rank.
func (l *TaskList) SortTasksByPriority() {
	slices.SortStableFunc(l.order, comparePriority)
}

// SortTasksByStatusThenPriority orders tasks by status rank, breaking ties
// by priority rank.
func (l *TaskList) SortTasksByStatusThenPriority() {
	slices.SortStableFunc(l.order, compareStatusThenPriority)
}

// SortTasks orders tasks by mode. Ties keep their previous relative order.
func (l *TaskList) SortTasks(mode SortMode) error {
	compare, err := mode.compareFunc()
	if err != nil {
		return err
	}
	slices.SortStableFunc(l.order, compare)
	return nil
}

// String renders the header line followed by one tree line per task:
//
//	Kitchen 1/2
//		 ├ Do Dishes - To be done - Low
//		 └ Paint Walls - Done - Medium
func (l *TaskList) String() string {
	lines := make([]string, len(l.order))
	for i, t := range l.order {
		prefix := "├"
		if i == len(l.order)-1 {
			prefix = "└"
		}
		lines[i] = fmt.Sprintf("\t %s %s", prefix, t)
	}
	return fmt.Sprintf("%s %s\n", l.name, l.Progress()) + strings.Join(lines, "\n")
}

type taskListDocument struct {
	Name  string   `json:"name"`
	Tasks []string `json:"tasks"`
}

// MarshalJSON encodes the list with each task embedded as a JSON string:
// {"name":"Kitchen","tasks":["{\"description\":...}"]}.
func (l *TaskList) MarshalJSON() ([]byte, error) {
	doc := taskListDocument{Name: l.name, Tasks: make([]string, 0, len(l.order))}
	for _, t := range l.order {
		data, err := t.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("failed to marshal task %q: %w", t.description, err)
		}
		doc.Tasks = append(doc.Tasks, string(data))
	}
	return encodeJSON(doc)
}

// UnmarshalJSON decodes a task list document, replacing l.
func (l *TaskList) UnmarshalJSON(data []byte) error {
	parsed, err := ParseTaskList(data)
	if err != nil {
		return err
	}
	*l = *parsed
	return nil
}

// ParseTaskList decodes a task list document and its embedded task
// documents. Tasks are added in order through AddTask, so a repeated
// description fails with ErrDuplicateKey.
func ParseTaskList(data []byte) (*TaskList, error) {
	var doc taskListDocument
	if err := decodeDocument(data, taskListSchema, &doc); err != nil {
		return nil, err
	}

	l, err := NewTaskList(doc.Name)
	if err != nil {
		return nil, err
	}

	for i, raw := range doc.Tasks {
		task, err := ParseTask([]byte(raw))
		if err != nil {
			return nil, nestError(fmt.Sprintf("tasks[%d]", i), err)
		}
		if err := l.AddTask(task); err != nil {
			return nil, err
		}
	}
	return l, nil
}
