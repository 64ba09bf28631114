package usecase

import (
	"context"
)

// ShowChain is a use case for showing the effective configuration of a chain
type ShowChain struct {
	resolver *ResolveChain
}

// NewShowChain creates a new ShowChain use case
func NewShowChain(resolver *ResolveChain) *ShowChain {
	return &ShowChain{resolver: resolver}
}

// Run executes the use case
func (uc *ShowChain) Run(ctx context.Context, chain string) (*ResolvedChain, error) {
	return uc.resolver.Run(ctx, ResolveChainParams{Chain: chain})
}
