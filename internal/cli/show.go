package cli

import (
	"github.com/spf13/cobra"

	"github.com/pablasso/tasktree/internal/workspace"
)

var showSort string

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a saved workspace",
	Long: `Print the workspace tree. With --sort the tasks are sorted before
printing; the file is not modified.

Sort modes: status, priority, status-then-priority`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&showSort, "sort", "", "Sort before printing: status, priority, status-then-priority")
}

func runShow(cmd *cobra.Command, args []string) error {
	w, err := loadWorkspace(args[0])
	if err != nil {
		return err
	}

	if showSort != "" {
		mode, err := workspace.ParseSortMode(showSort)
		if err != nil {
			return err
		}
		if err := w.SortTasks(mode); err != nil {
			return err
		}
	}

	printf(cmd, "%s\n", w)
	return nil
}
