//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/chains-cli/internal/adapters"
	"github.com/trebuchet-org/chains-cli/internal/config"
	"github.com/trebuchet-org/chains-cli/internal/logging"
	"github.com/trebuchet-org/chains-cli/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Chain table
		usecase.NewBuildChainTable,
		ProvideChainTable,

		// Use cases
		usecase.NewResolveChain,
		usecase.NewForgeArgs,
		usecase.NewShowRPC,
		usecase.NewShowEtherscanKey,
		usecase.NewOpenExplorer,
		usecase.NewSyncRegistry,
		usecase.NewListChains,
		usecase.NewShowChain,
		usecase.NewCheckChain,
		usecase.NewShowConfig,

		// App
		NewApp,
	)
	return nil, nil
}
