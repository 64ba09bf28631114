package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chains-cli/internal/usecase"
)

// NewUpdateCmd creates the update command
func NewUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Pull the chains config repository",
		Long: `Update the config directory, a git checkout holding config.json and the
per-chain override files, by pulling from its remote.

The remote and branch default to origin/main and can be changed with
CHAINS_GIT_REMOTE and CHAINS_GIT_BRANCH.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			_, err = app.SyncRegistry.Run(cmd.Context(), usecase.SyncRegistryParams{
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			})
			return err
		},
	}
}
