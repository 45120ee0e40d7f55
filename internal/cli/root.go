// Package cli implements the tasktree command tree.
package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pablasso/tasktree/internal/config"
	"github.com/pablasso/tasktree/internal/logging"
	"github.com/pablasso/tasktree/internal/version"
	"github.com/pablasso/tasktree/internal/workspace"
)

var (
	configPath string
	savesDir   string
	debug      bool
)

// Set by the root command before any subcommand runs.
var (
	cfg    *config.Config
	logger *log.Logger
	store  *workspace.Store
)

var rootCmd = &cobra.Command{
	Use:   "tasktree",
	Short: "Workspaces of prioritised task lists",
	Long: `tasktree keeps workspaces of named task lists. Each task has a priority
and a status; lists can be sorted by either, or by status then priority.
Workspaces are saved as JSON files in a saves directory.

Run without a command to print the House Chores demo.`,
	Args:              cobra.NoArgs,
	RunE:              runDemo,
	Version:           version.Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: tasktree.toml, then the user config dir)")
	rootCmd.PersistentFlags().StringVar(&savesDir, "saves-dir", "", "Directory holding saved workspaces (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.SetVersionTemplate(fmt.Sprintf("tasktree {{.Version}} (%s, built %s)\n", version.CommitSHA, version.BuildDate))

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(filesCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(viewCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if savesDir != "" {
		loaded.SavesDir = savesDir
	}
	cfg = loaded

	logger = logging.ForLevel(cmd.ErrOrStderr(), cfg.Level(), debug)
	if cfg.Source != "" {
		logger.Debug("loaded config", "file", cfg.Source)
	}

	store = workspace.NewStore(cfg.SavesDir)
	logger.Debug("using saves directory", "dir", store.Dir())
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
