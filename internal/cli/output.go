package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// printf writes to the command's stdout. cobra's own Printf falls back to
// stderr.
func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
