package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chains-cli/internal/cli/render"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show chains config",
		Long: `Show the config directory, the Alchemy API key from config.json or
CHAINS_ALCHEMY_API_KEY, the registry extension and the chain override files.

The files of the config directory are edited by hand or pulled with
"chains update"; this command never writes them.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd)
		},
	}
}

// showConfig displays the current configuration
func showConfig(cmd *cobra.Command) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, err := app.ShowConfig.Run(cmd.Context())
	if err != nil {
		return err
	}

	return render.NewConfigRenderer(cmd.OutOrStdout()).RenderConfig(result)
}
