package usecase

import (
	"context"
	"fmt"
)

// OpenExplorerResult contains the URL that was opened
type OpenExplorerResult struct {
	Chain  *ResolvedChain
	Target string
}

// OpenExplorer is a use case for opening the block explorer of a chain
type OpenExplorer struct {
	resolver *ResolveChain
	opener   URLOpener
}

// NewOpenExplorer creates a new OpenExplorer use case
func NewOpenExplorer(resolver *ResolveChain, opener URLOpener) *OpenExplorer {
	return &OpenExplorer{
		resolver: resolver,
		opener:   opener,
	}
}

// Run executes the use case. A chain without any explorer still launches the
// opener, with an empty target.
func (uc *OpenExplorer) Run(ctx context.Context, chain string) (*OpenExplorerResult, error) {
	resolved, err := uc.resolver.Run(ctx, ResolveChainParams{Chain: chain})
	if err != nil {
		return nil, err
	}

	target := resolved.Config.ExplorerTarget()
	if err := uc.opener.Open(ctx, target); err != nil {
		return nil, fmt.Errorf("failed to open explorer: %w", err)
	}

	return &OpenExplorerResult{
		Chain:  resolved,
		Target: target,
	}, nil
}
