package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chains-cli/internal/cli/render"
	"github.com/trebuchet-org/chains-cli/internal/usecase"
)

// NewForgeCmd creates the forge command
func NewForgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forge <chain>",
		Short: "Print forge arguments for a chain",
		Long: `Print the forge arguments for a chain on a single line.

Without flags only --rpc-url is printed. --deploy adds the verifier and
Etherscan key when configured; --verify prints --chain with either the
Etherscan key or a blockscout verifier. --verify wins over --deploy.

Examples:
  forge script Deploy.s.sol $(chains forge base --deploy) --broadcast
  forge verify-contract $(chains forge 8453 --verify) <address> <contract>`,
		Args: cobra.MaximumNArgs(1),
		RunE: runForge,
	}

	addForgeFlags(cmd)

	return cmd
}

func addForgeFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("verify", false, "Print arguments for contract verification")
	cmd.Flags().Bool("deploy", false, "Print arguments for deployment")
}

func runForge(cmd *cobra.Command, args []string) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	chain, err := chainArg(cmd, app, args)
	if err != nil {
		return err
	}

	verify, _ := cmd.Flags().GetBool("verify")
	deploy, _ := cmd.Flags().GetBool("deploy")

	result, err := app.ForgeArgs.Run(cmd.Context(), usecase.ForgeArgsParams{
		Chain:  chain,
		Verify: verify,
		Deploy: deploy,
	})
	if err != nil {
		return err
	}

	return render.NewLineRenderer(cmd.OutOrStdout()).RenderForgeArgs(result)
}
