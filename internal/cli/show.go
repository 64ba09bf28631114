package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chains-cli/internal/cli/render"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <chain>",
		Short: "Show the effective configuration of a chain",
		Long: `Show the configuration of a chain after the per-chain override file has
been applied.

Formats:
  text      human readable, the Etherscan key is masked
  json      machine readable
  yaml      machine readable
  foundry   [rpc_endpoints] and [etherscan] sections for foundry.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFormat, ok := render.ParseOutputFormat(format)
			if !ok {
				return fmt.Errorf("unknown format %q (expected text, json, yaml or foundry)", format)
			}

			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			chain, err := chainArg(cmd, app, args)
			if err != nil {
				return err
			}

			result, err := app.ShowChain.Run(cmd.Context(), chain)
			if err != nil {
				return err
			}

			return render.NewChainRenderer(cmd.OutOrStdout(), outputFormat).Render(result)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(render.FormatText), "Output format (text, json, yaml, foundry)")

	return cmd
}
