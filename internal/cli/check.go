package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chains-cli/internal/cli/render"
	"github.com/trebuchet-org/chains-cli/internal/domain"
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <chain>",
		Short: "Check that the RPC URL of a chain answers for that chain",
		Long: `Query the resolved RPC URL for its chain ID and latest block. Fails when
the endpoint is unreachable or serves a different chain ID.

The query is bounded by CHAINS_TIMEOUT (default 30s).`,
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

			// Only the RPC round trip is bounded
			ctx := cmd.Context()
			if app.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, app.Config.Timeout)
				defer cancel()
			}

			result, err := app.CheckChain.Run(ctx, chain)
			if err != nil {
				return err
			}

			if err := render.NewCheckRenderer(cmd.OutOrStdout()).RenderCheck(result); err != nil {
				return err
			}

			if result.Mismatch() {
				return fmt.Errorf("%w: expected %d, got %d", domain.ErrChainIDMismatch, result.Chain.Config.ID, result.Probe.ChainID)
			}
			return nil
		},
	}
}
