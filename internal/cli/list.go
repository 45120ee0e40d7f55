package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablasso/tasktree/internal/workspace"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Manage the task lists of a workspace",
}

var listAddCmd = &cobra.Command{
	Use:   "add <file> <name>",
	Short: "Add an empty task list",
	Args:  cobra.ExactArgs(2),
	RunE:  runListAdd,
}

var listRmCmd = &cobra.Command{
	Use:     "rm <file> <name>",
	Aliases: []string{"remove"},
	Short:   "Remove a task list and its tasks",
	Args:    cobra.ExactArgs(2),
	RunE:    runListRm,
}

var listRenameCmd = &cobra.Command{
	Use:   "rename <file> <old-name> <new-name>",
	Short: "Rename a task list",
	Args:  cobra.ExactArgs(3),
	RunE:  runListRename,
}

func init() {
	listCmd.AddCommand(listAddCmd)
	listCmd.AddCommand(listRmCmd)
	listCmd.AddCommand(listRenameCmd)
}

func runListAdd(cmd *cobra.Command, args []string) error {
	fileName, name := args[0], args[1]

	list, err := workspace.NewTaskList(name)
	if err != nil {
		return err
	}

	err = mutate(fileName, func(w *workspace.Workspace) error {
		// AddTaskList replaces an existing list of the same name; refuse
		// instead of dropping its tasks.
		if _, err := w.FindTaskListByName(name); err == nil {
			return fmt.Errorf("%w: task list %q already exists", workspace.ErrDuplicateKey, name)
		} else if !errors.Is(err, workspace.ErrNotFound) {
			return err
		}
		return w.AddTaskList(list)
	})
	if err != nil {
		return err
	}

	printf(cmd, "Added task list %q\n", name)
	return nil
}

func runListRm(cmd *cobra.Command, args []string) error {
	fileName, name := args[0], args[1]

	if err := mutate(fileName, func(w *workspace.Workspace) error {
		return w.RemoveTaskList(name)
	}); err != nil {
		return err
	}

	printf(cmd, "Removed task list %q\n", name)
	return nil
}

func runListRename(cmd *cobra.Command, args []string) error {
	fileName, oldName, newName := args[0], args[1], args[2]

	if err := mutate(fileName, func(w *workspace.Workspace) error {
		return w.RenameTaskList(oldName, newName)
	}); err != nil {
		return err
	}

	printf(cmd, "Renamed task list %q to %q\n", oldName, newName)
	return nil
}
