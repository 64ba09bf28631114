package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chains-cli/internal/config"
)

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of chains",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "chains version %s\n", config.Version)
			if config.Commit != "unknown" {
				fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", config.Commit)
			}
			if config.Date != "unknown" {
				fmt.Fprintf(cmd.OutOrStdout(), "built: %s\n", config.Date)
			}
		},
	}
}
