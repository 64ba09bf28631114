package usecase

import (
	"context"

	"github.com/trebuchet-org/chains-cli/internal/domain"
)

// ChainValueResult is a single printable value of a resolved chain
type ChainValueResult struct {
	Chain *ResolvedChain
	Value string
}

// ShowRPC is a use case for printing the RPC URL of a chain
type ShowRPC struct {
	resolver *ResolveChain
}

// NewShowRPC creates a new ShowRPC use case
func NewShowRPC(resolver *ResolveChain) *ShowRPC {
	return &ShowRPC{resolver: resolver}
}

// Run executes the use case
func (uc *ShowRPC) Run(ctx context.Context, chain string) (*ChainValueResult, error) {
	resolved, err := uc.resolver.Run(ctx, ResolveChainParams{Chain: chain})
	if err != nil {
		return nil, err
	}

	return &ChainValueResult{
		Chain: resolved,
		Value: domain.Display(resolved.Config.RPCURL),
	}, nil
}
