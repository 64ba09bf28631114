package usecase

import (
	"context"

	"github.com/trebuchet-org/chains-cli/internal/domain"
)

// ShowEtherscanKey is a use case for printing the explorer API key of a chain.
// An unset key prints as "undefined".
type ShowEtherscanKey struct {
	resolver *ResolveChain
}

// NewShowEtherscanKey creates a new ShowEtherscanKey use case
func NewShowEtherscanKey(resolver *ResolveChain) *ShowEtherscanKey {
	return &ShowEtherscanKey{resolver: resolver}
}

// Run executes the use case
func (uc *ShowEtherscanKey) Run(ctx context.Context, chain string) (*ChainValueResult, error) {
	resolved, err := uc.resolver.Run(ctx, ResolveChainParams{Chain: chain})
	if err != nil {
		return nil, err
	}

	return &ChainValueResult{
		Chain: resolved,
		Value: domain.Display(resolved.Config.EtherscanAPIKey),
	}, nil
}
