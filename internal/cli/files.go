package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List saved workspaces",
	Long:  `List the workspace files in the saves directory with their list count and overall progress.`,
	Args:  cobra.NoArgs,
	RunE:  runFiles,
}

func runFiles(cmd *cobra.Command, args []string) error {
	names, err := store.List()
	if err != nil {
		return fmt.Errorf("failed to list saved workspaces: %w", err)
	}

	if len(names) == 0 {
		printf(cmd, "No saved workspaces in %s.\n", store.Dir())
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FILE\tWORKSPACE\tLISTS\tPROGRESS\tUPDATED")

	now := time.Now()
	for _, name := range names {
		updated := "-"
		if info, err := os.Stat(filepath.Join(store.Dir(), name)); err == nil {
			updated = formatAge(info.ModTime(), now)
		}

		ws, err := store.Load(name)
		if err != nil {
			logger.Warn("skipping unreadable file", "file", name, "err", err)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", name, "(invalid)", "-", "-", updated)
			continue
		}

		done, total := 0, 0
		for _, list := range ws.TaskLists() {
			done += list.DoneCount()
			total += list.Len()
		}

		fmt.Fprintf(w, "%s\t%s\t%d\t%d/%d\t%s\n",
			name,
			ws.Name(),
			ws.Len(),
			done, total,
			updated,
		)
	}

	return w.Flush()
}

// formatAge renders how long before now t was, in the largest whole unit:
// "just now", "5m ago", "3h ago", "2d ago".
func formatAge(t, now time.Time) string {
	switch d := now.Sub(t); {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d/time.Hour))
	default:
		return fmt.Sprintf("%dd ago", int(d/(24*time.Hour)))
	}
}
