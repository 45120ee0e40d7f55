package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/pablasso/tasktree/internal/workspace"
)

var (
	addPriority string
	addStatus   string

	setPriority string
	setStatus   string
	setRename   string
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage the tasks of a task list",
	Long: `Add, change and remove tasks.

Priorities: HIGH, MEDIUM, LOW (default MEDIUM)
Statuses:   TO_BE_DONE, IN_PROGRESS, DONE (default TO_BE_DONE)

Values are case-insensitive and accept "-" or a space for "_".`,
}

var taskAddCmd = &cobra.Command{
	Use:   "add <file> <list> <description>",
	Short: "Add a task to a list",
	Args:  cobra.ExactArgs(3),
	RunE:  runTaskAdd,
}

var taskRmCmd = &cobra.Command{
	Use:     "rm <file> <list> <description>",
	Aliases: []string{"remove"},
	Short:   "Remove a task",
	Args:    cobra.ExactArgs(3),
	RunE:    runTaskRm,
}

var taskSetCmd = &cobra.Command{
	Use:   "set <file> <list> <description>",
	Short: "Change the priority, status or description of a task",
	Args:  cobra.ExactArgs(3),
	RunE:  runTaskSet,
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <file> <list> <description>",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(3),
	RunE:  runTaskDone,
}

func init() {
	taskAddCmd.Flags().StringVarP(&addPriority, "priority", "p", string(workspace.DefaultPriority), "Task priority")
	taskAddCmd.Flags().StringVarP(&addStatus, "status", "s", string(workspace.DefaultStatus), "Task status")

	taskSetCmd.Flags().StringVarP(&setPriority, "priority", "p", "", "New priority")
	taskSetCmd.Flags().StringVarP(&setStatus, "status", "s", "", "New status")
	taskSetCmd.Flags().StringVar(&setRename, "rename", "", "New description")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskRmCmd)
	taskCmd.AddCommand(taskSetCmd)
	taskCmd.AddCommand(taskDoneCmd)
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	fileName, listName, description := args[0], args[1], args[2]

	priority, err := workspace.ParsePriority(addPriority)
	if err != nil {
		return err
	}
	status, err := workspace.ParseStatus(addStatus)
	if err != nil {
		return err
	}
	task, err := workspace.NewTask(description, priority, status)
	if err != nil {
		return err
	}

	if err := mutate(fileName, func(w *workspace.Workspace) error {
		list, err := findList(w, listName)
		if err != nil {
			return err
		}
		return list.AddTask(task)
	}); err != nil {
		return err
	}

	printf(cmd, "Added %s to %s\n", task, listName)
	return nil
}

func runTaskRm(cmd *cobra.Command, args []string) error {
	fileName, listName, description := args[0], args[1], args[2]

	if err := mutate(fileName, func(w *workspace.Workspace) error {
		list, err := findList(w, listName)
		if err != nil {
			return err
		}
		return list.RemoveTask(description)
	}); err != nil {
		return err
	}

	printf(cmd, "Removed %q from %s\n", description, listName)
	return nil
}

func runTaskSet(cmd *cobra.Command, args []string) error {
	fileName, listName, description := args[0], args[1], args[2]
	flags := cmd.Flags()

	if !flags.Changed("priority") && !flags.Changed("status") && !flags.Changed("rename") {
		return errors.New("nothing to change: pass --priority, --status or --rename")
	}

	var task *workspace.Task
	err := mutate(fileName, func(w *workspace.Workspace) error {
		list, err := findList(w, listName)
		if err != nil {
			return err
		}
		task, err = list.FindTaskByDescription(description)
		if err != nil {
			return err
		}

		// Validate everything before touching the task so a bad flag
		// leaves it unchanged.
		priority, status := task.Priority(), task.Status()
		if flags.Changed("priority") {
			if priority, err = workspace.ParsePriority(setPriority); err != nil {
				return err
			}
		}
		if flags.Changed("status") {
			if status, err = workspace.ParseStatus(setStatus); err != nil {
				return err
			}
		}

		if flags.Changed("rename") {
			if err := list.RenameTask(description, setRename); err != nil {
				return err
			}
		}
		if err := task.SetPriority(priority); err != nil {
			return err
		}
		return task.SetStatus(status)
	})
	if err != nil {
		return err
	}

	printf(cmd, "Updated %s\n", task)
	return nil
}

func runTaskDone(cmd *cobra.Command, args []string) error {
	fileName, listName, description := args[0], args[1], args[2]

	var progress string
	if err := mutate(fileName, func(w *workspace.Workspace) error {
		list, err := findList(w, listName)
		if err != nil {
			return err
		}
		task, err := list.FindTaskByDescription(description)
		if err != nil {
			return err
		}
		if err := task.SetStatus(workspace.StatusDone); err != nil {
			return err
		}
		progress = list.Progress()
		return nil
	}); err != nil {
		return err
	}

	printf(cmd, "Done: %s (%s %s)\n", description, listName, progress)
	return nil
}
