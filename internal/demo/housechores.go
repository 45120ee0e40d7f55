// Package demo builds the sample workspace shown by `tasktree demo`.
package demo

import (
	"fmt"
	"io"

	"github.com/pablasso/tasktree/internal/workspace"
)

// WorkspaceName is the name of the demo workspace.
const WorkspaceName = "House Chores"

type seedTask struct {
	list        string
	description string
	priority    workspace.Priority
	status      workspace.Status
}

var seedLists = []string{"Bathroom", "Kitchen"}

var seedTasks = []seedTask{
	{"Bathroom", "Do Laundry", workspace.DefaultPriority, workspace.DefaultStatus},
	{"Kitchen", "Paint Walls", workspace.PriorityMedium, workspace.StatusDone},
	{"Kitchen", "Do Dishes", workspace.PriorityLow, workspace.StatusToBeDone},
	{"Kitchen", "Empty Dishwasher", workspace.PriorityHigh, workspace.StatusToBeDone},
	{"Kitchen", "Cook Dinner", workspace.PriorityHigh, workspace.StatusInProgress},
}

// HouseChores returns the demo workspace in insertion order, unsorted.
func HouseChores() (*workspace.Workspace, error) {
	w, err := workspace.NewWorkspace(WorkspaceName)
	if err != nil {
		return nil, err
	}

	for _, name := range seedLists {
		list, err := workspace.NewTaskList(name)
		if err != nil {
			return nil, err
		}
		if err := w.AddTaskList(list); err != nil {
			return nil, err
		}
	}

	for _, seed := range seedTasks {
		task, err := workspace.NewTask(seed.description, seed.priority, seed.status)
		if err != nil {
			return nil, err
		}
		list, err := w.FindTaskListByName(seed.list)
		if err != nil {
			return nil, err
		}
		if err := list.AddTask(task); err != nil {
			return nil, fmt.Errorf("seeding %s: %w", seed.list, err)
		}
	}

	return w, nil
}

// Run builds the demo workspace, sorts it by status then priority and
// prints the tree to out.
func Run(out io.Writer) (*workspace.Workspace, error) {
	w, err := HouseChores()
	if err != nil {
		return nil, err
	}
	w.SortTasksByStatusThenPriority()

	if _, err := fmt.Fprintln(out, w); err != nil {
		return nil, err
	}
	return w, nil
}
