package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chains-cli/internal/cli/render"
)

// NewRPCCmd creates the rpc command
func NewRPCCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rpc <chain>",
		Short: "Print the RPC URL of a chain",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			chain, err := chainArg(cmd, app, args)
			if err != nil {
				return err
			}

			result, err := app.ShowRPC.Run(cmd.Context(), chain)
			if err != nil {
				return err
			}

			return render.NewLineRenderer(cmd.OutOrStdout()).RenderValue(result)
		},
	}
}

// NewEtherscanCmd creates the etherscan command
func NewEtherscanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "etherscan <chain>",
		Short: "Print the Etherscan API key of a chain",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			chain, err := chainArg(cmd, app, args)
			if err != nil {
				return err
			}

			result, err := app.ShowEtherscanKey.Run(cmd.Context(), chain)
			if err != nil {
				return err
			}

			return render.NewLineRenderer(cmd.OutOrStdout()).RenderValue(result)
		},
	}
}

// NewExplorerCmd creates the explorer command
func NewExplorerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explorer <chain>",
		Short: "Open the block explorer of a chain",
		Long: `Open the block explorer of a chain in the browser. The Etherscan URL is
preferred over the default block explorer.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			chain, err := chainArg(cmd, app, args)
			if err != nil {
				return err
			}

			_, err = app.OpenExplorer.Run(cmd.Context(), chain)
			return err
		},
	}
}
