package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chains-cli/internal/cli/render"
	"github.com/trebuchet-org/chains-cli/internal/usecase"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var params usecase.ListChainsParams

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List known chains",
		Long: `List the chains of the bundled registry and the registry extension,
with the RPC URL and explorer each resolves to before per-chain overrides.

Examples:
  chains list
  chains list --testnets
  chains list --search arb`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListChains.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderer := render.NewChainsRenderer(out, out == os.Stdout && !color.NoColor)
			return renderer.RenderChainsList(result)
		},
	}

	cmd.Flags().BoolVar(&params.Testnets, "testnets", false, "Only list testnets")
	cmd.Flags().BoolVar(&params.Mainnets, "mainnets", false, "Only list mainnets")
	cmd.Flags().StringVarP(&params.Search, "search", "q", "", "Fuzzy filter on chain key and name")
	cmd.MarkFlagsMutuallyExclusive("testnets", "mainnets")

	return cmd
}
