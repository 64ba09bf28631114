package app

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/chains-cli/internal/domain"
	"github.com/trebuchet-org/chains-cli/internal/domain/config"
	"github.com/trebuchet-org/chains-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Shared dependencies
	Chains   *domain.ChainTable
	Selector usecase.ChainSelector

	// Use cases
	ForgeArgs        *usecase.ForgeArgs
	ShowRPC          *usecase.ShowRPC
	ShowEtherscanKey *usecase.ShowEtherscanKey
	OpenExplorer     *usecase.OpenExplorer
	SyncRegistry     *usecase.SyncRegistry
	ListChains       *usecase.ListChains
	ShowChain        *usecase.ShowChain
	CheckChain       *usecase.CheckChain
	ShowConfig       *usecase.ShowConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	chains *domain.ChainTable,
	selector usecase.ChainSelector,
	forgeArgs *usecase.ForgeArgs,
	showRPC *usecase.ShowRPC,
	showEtherscanKey *usecase.ShowEtherscanKey,
	openExplorer *usecase.OpenExplorer,
	syncRegistry *usecase.SyncRegistry,
	listChains *usecase.ListChains,
	showChain *usecase.ShowChain,
	checkChain *usecase.CheckChain,
	showConfig *usecase.ShowConfig,
) (*App, error) {
	return &App{
		Config:           cfg,
		Chains:           chains,
		Selector:         selector,
		ForgeArgs:        forgeArgs,
		ShowRPC:          showRPC,
		ShowEtherscanKey: showEtherscanKey,
		OpenExplorer:     openExplorer,
		SyncRegistry:     syncRegistry,
		ListChains:       listChains,
		ShowChain:        showChain,
		CheckChain:       checkChain,
		ShowConfig:       showConfig,
	}, nil
}

// ProvideChainTable builds the chain table once per process
func ProvideChainTable(build *usecase.BuildChainTable) (*domain.ChainTable, error) {
	table, err := build.Run(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to build chain table: %w", err)
	}
	return table, nil
}
