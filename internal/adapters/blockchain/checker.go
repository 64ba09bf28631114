package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/chains-cli/internal/usecase"
)

// CheckerAdapter implements the RPCChecker interface using ethclient
type CheckerAdapter struct {
	log *slog.Logger
}

// NewCheckerAdapter creates a new RPC checker adapter
func NewCheckerAdapter(log *slog.Logger) *CheckerAdapter {
	return &CheckerAdapter{
		log: log.With("component", "RPCChecker"),
	}
}

// Probe dials the endpoint and asks for its chain ID and head block
func (c *CheckerAdapter) Probe(ctx context.Context, rpcURL string) (*usecase.RPCProbe, error) {
	start := time.Now()

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	latency := time.Since(start)

	blockNumber, err := client.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get block number: %w", err)
	}

	c.log.Debug("probed rpc", "chainId", chainID, "block", blockNumber, "latency", latency)
	return &usecase.RPCProbe{
		ChainID:     chainID.Uint64(),
		BlockNumber: blockNumber,
		Latency:     latency,
	}, nil
}

// Ensure the adapter implements the interface
var _ usecase.RPCChecker = (*CheckerAdapter)(nil)
