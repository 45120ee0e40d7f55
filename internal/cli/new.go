package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablasso/tasktree/internal/workspace"
)

var newFile string

var newCmd = &cobra.Command{
	Use:   "new <workspace-name>",
	Short: "Create an empty workspace",
	Long: `Create and save an empty workspace. The file name defaults to the
kebab-cased workspace name: "House Chores" is saved as house-chores.json.`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVarP(&newFile, "file", "f", "", "File name inside the saves directory")
}

func runNew(cmd *cobra.Command, args []string) error {
	w, err := workspace.NewWorkspace(args[0])
	if err != nil {
		return err
	}

	fileName := newFile
	if fileName == "" {
		fileName = workspace.DefaultFileName(w.Name())
	}

	return withLock(fileName, func() error {
		exists, err := store.Exists(fileName)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: %s already exists", workspace.ErrDuplicateKey, fileName)
		}
		if err := saveWorkspace(fileName, w); err != nil {
			return err
		}
		printf(cmd, "Created workspace %q in %s\n", w.Name(), fileName)
		return nil
	})
}
