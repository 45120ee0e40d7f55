package cli

import (
	"github.com/spf13/cobra"

	"github.com/pablasso/tasktree/internal/demo"
)

var demoSaveFile string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print the House Chores sample workspace",
	Long: `Build the House Chores sample workspace (lists Bathroom and Kitchen with
five tasks), sort it by status then priority and print the tree.

Use --save to also write it to the saves directory.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoSaveFile, "save", "", "Also save the workspace to this file")
}

func runDemo(cmd *cobra.Command, args []string) error {
	w, err := demo.Run(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if demoSaveFile == "" {
		return nil
	}
	return withLock(demoSaveFile, func() error {
		if err := saveWorkspace(demoSaveFile, w); err != nil {
			return err
		}
		printf(cmd, "Saved to %s\n", demoSaveFile)
		return nil
	})
}
