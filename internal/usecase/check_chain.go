package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/chains-cli/internal/domain"
)

// CheckChainResult contains what the RPC endpoint of a chain reported
type CheckChainResult struct {
	Chain  *ResolvedChain
	RPCURL string
	Probe  *RPCProbe
}

// Mismatch reports whether the endpoint serves a different chain than configured
func (r *CheckChainResult) Mismatch() bool {
	return r.Probe != nil && r.Probe.ChainID != r.Chain.Config.ID
}

// CheckChain is a use case for verifying that a chain's RPC URL answers for the right chain
type CheckChain struct {
	resolver *ResolveChain
	checker  RPCChecker
	progress ProgressSink
}

// NewCheckChain creates a new CheckChain use case
func NewCheckChain(resolver *ResolveChain, checker RPCChecker, progress ProgressSink) *CheckChain {
	return &CheckChain{
		resolver: resolver,
		checker:  checker,
		progress: progress,
	}
}

// Run executes the use case. A chain ID mismatch is reported through the
// result, not as an error.
func (uc *CheckChain) Run(ctx context.Context, chain string) (*CheckChainResult, error) {
	resolved, err := uc.resolver.Run(ctx, ResolveChainParams{Chain: chain})
	if err != nil {
		return nil, err
	}

	if resolved.Config.RPCURL == nil || *resolved.Config.RPCURL == "" {
		return nil, fmt.Errorf("%w for chain %s", domain.ErrNoRPCURL, resolved.Key)
	}
	rpcURL := *resolved.Config.RPCURL

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "check",
		Message: fmt.Sprintf("Querying %s...", resolved.Key),
		Spinner: true,
	})
	probe, err := uc.checker.Probe(ctx, rpcURL)
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "check"})
	if err != nil {
		return nil, fmt.Errorf("failed to query RPC for chain %s: %w", resolved.Key, err)
	}

	return &CheckChainResult{
		Chain:  resolved,
		RPCURL: rpcURL,
		Probe:  probe,
	}, nil
}
