package cli

import (
	"github.com/spf13/cobra"

	"github.com/pablasso/tasktree/internal/workspace"
)

var sortBy string

var sortCmd = &cobra.Command{
	Use:   "sort <file>",
	Short: "Sort every task list and save the new order",
	Long: `Sort the tasks of every list in the workspace and write the result back.
Without --by the default_sort setting is used (status-then-priority
unless configured).`,
	Args: cobra.ExactArgs(1),
	RunE: runSort,
}

func init() {
	sortCmd.Flags().StringVar(&sortBy, "by", "", "Sort mode: status, priority, status-then-priority")
}

func runSort(cmd *cobra.Command, args []string) error {
	fileName := args[0]

	mode := cfg.SortMode()
	if sortBy != "" {
		parsed, err := workspace.ParseSortMode(sortBy)
		if err != nil {
			return err
		}
		mode = parsed
	}

	var sorted *workspace.Workspace
	if err := mutate(fileName, func(w *workspace.Workspace) error {
		sorted = w
		return w.SortTasks(mode)
	}); err != nil {
		return err
	}

	logger.Debug("sorted workspace", "file", fileName, "mode", mode)
	printf(cmd, "%s\n", sorted)
	return nil
}
