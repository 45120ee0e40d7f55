// Package workspace models workspaces of named task lists, their JSON
// documents, and their persistence as files.
package workspace

import (
	"fmt"
	"slices"
	"strings"
)

// Workspace is a named, ordered collection of task lists keyed by name.
type Workspace struct {
	name  string
	order []*TaskList
	index map[string]*TaskList
}

// NewWorkspace creates an empty workspace.
func NewWorkspace(name string) (*Workspace, error) {
	w := &Workspace{index: make(map[string]*TaskList)}
	if err := w.SetName(name); err != nil {
		return nil, err
	}
	return w, nil
}

// Name returns the workspace name.
func (w *Workspace) Name() string {
	return w.name
}

// SetName changes the workspace name.
func (w *Workspace) SetName(name string) error {
	if err := checkText("name", name); err != nil {
		return err
	}
	w.name = name
	return nil
}

// AddTaskList adds list under its name. Unlike TaskList.AddTask, a name
// that is already used is not an error: the new list replaces the old one
// and takes over its position.
func (w *Workspace) AddTaskList(list *TaskList) error {
	if list == nil {
		return fmt.Errorf("%w: task list is nil", ErrValidation)
	}
	if old, ok := w.index[list.name]; ok {
		w.order[slices.Index(w.order, old)] = list
	} else {
		w.order = append(w.order, list)
	}
	w.index[list.name] = list
	return nil
}

// RemoveTaskList removes the list with the given name.
func (w *Workspace) RemoveTaskList(name string) error {
	list, ok := w.index[name]
	if !ok {
		return fmt.Errorf("%w: no task list named %q", ErrNotFound, name)
	}
	delete(w.index, name)
	w.order = slices.DeleteFunc(w.order, func(l *TaskList) bool { return l == list })
	return nil
}

// FindTaskListByName returns the list with the given name.
func (w *Workspace) FindTaskListByName(name string) (*TaskList, error) {
	list, ok := w.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: no task list named %q", ErrNotFound, name)
	}
	return list, nil
}

// RenameTaskList changes a list's name and its key, keeping its position.
func (w *Workspace) RenameTaskList(oldName, newName string) error {
	list, err := w.FindTaskListByName(oldName)
	if err != nil {
		return err
	}
	if oldName == newName {
		return nil
	}
	if _, ok := w.index[newName]; ok {
		return fmt.Errorf("%w: there is already a task list named %q", ErrDuplicateKey, newName)
	}
	if err := list.SetName(newName); err != nil {
		return err
	}
	delete(w.index, oldName)
	w.index[newName] = list
	return nil
}

// TaskLists returns the lists in their current order.
func (w *Workspace) TaskLists() []*TaskList {
	return slices.Clone(w.order)
}

// Len returns the number of task lists.
func (w *Workspace) Len() int {
	return len(w.order)
}

// SortTasksByStatus sorts every list by status.
func (w *Workspace) SortTasksByStatus() {
	for _, l := range w.order {
		l.SortTasksByStatus()
	}
}

// SortTasksByPriority sorts every list by priority.
func (w *Workspace) SortTasksByPriority() {
	for _, l := range w.order {
		l.SortTasksByPriority()
	}
}

// SortTasksByStatusThenPriority sorts every list by status, then priority.
func (w *Workspace) SortTasksByStatusThenPriority() {
	for _, l := range w.order {
		l.SortTasksByStatusThenPriority()
	}
}

// SortTasks sorts every list by mode.
func (w *Workspace) SortTasks(mode SortMode) error {
	if _, err := mode.compareFunc(); err != nil {
		return err
	}
	for _, l := range w.order {
		if err := l.SortTasks(mode); err != nil {
			return err
		}
	}
	return nil
}

// String renders the workspace name followed by each list's tree, each
// introduced by " └ ".
func (w *Workspace) String() string {
	lists := make([]string, len(w.order))
	for i, l := range w.order {
		lists[i] = " └ " + l.String()
	}
	return w.name + "\n" + strings.Join(lists, "\n")
}

type workspaceDocument struct {
	Name     string   `json:"name"`
	TaskList []string `json:"task_list"`
}

// MarshalJSON encodes the workspace with each task list embedded as a JSON
// string.
func (w *Workspace) MarshalJSON() ([]byte, error) {
	doc := workspaceDocument{Name: w.name, TaskList: make([]string, 0, len(w.order))}
	for _, l := range w.order {
		data, err := l.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("failed to marshal task list %q: %w", l.name, err)
		}
		doc.TaskList = append(doc.TaskList, string(data))
	}
	return encodeJSON(doc)
}

// UnmarshalJSON decodes a workspace document, replacing w.
func (w *Workspace) UnmarshalJSON(data []byte) error {
	parsed, err := ParseWorkspace(data)
	if err != nil {
		return err
	}
	*w = *parsed
	return nil
}

// ParseWorkspace decodes a workspace document and the task list documents
// embedded in it.
func ParseWorkspace(data []byte) (*Workspace, error) {
	var doc workspaceDocument
	if err := decodeDocument(data, workspaceSchema, &doc); err != nil {
		return nil, err
	}

	w, err := NewWorkspace(doc.Name)
	if err != nil {
		return nil, err
	}

	for i, raw := range doc.TaskList {
		list, err := ParseTaskList([]byte(raw))
		if err != nil {
			return nil, nestError(fmt.Sprintf("task_list[%d]", i), err)
		}
		if err := w.AddTaskList(list); err != nil {
			return nil, err
		}
	}
	return w, nil
}
