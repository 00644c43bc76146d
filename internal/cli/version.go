package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/userdir/pkg/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the userdir version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			commit := version.GetCommit()
			if commit == "" {
				commit = "unknown"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "userdir %s (commit %s)\n", ver, commit)
		},
	}
}
