package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/chains-cli/internal/adapters/blockchain"
	"github.com/trebuchet-org/chains-cli/internal/adapters/fs"
	"github.com/trebuchet-org/chains-cli/internal/adapters/interactive"
	"github.com/trebuchet-org/chains-cli/internal/adapters/registry"
	"github.com/trebuchet-org/chains-cli/internal/adapters/system"
	"github.com/trebuchet-org/chains-cli/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewConfigFileLoaderAdapter,
	wire.Bind(new(usecase.ConfigFileLoader), new(*fs.ConfigFileLoaderAdapter)),
)

// RegistrySet provides the chain registry source
var RegistrySet = wire.NewSet(
	registry.NewSourceAdapter,
	wire.Bind(new(usecase.RegistrySource), new(*registry.SourceAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.ChainSelector), new(*interactive.SelectorAdapter)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewCheckerAdapter,
	wire.Bind(new(usecase.RPCChecker), new(*blockchain.CheckerAdapter)),
)

// SystemSet provides implementations backed by external programs
var SystemSet = wire.NewSet(
	system.NewOpenerAdapter,
	wire.Bind(new(usecase.URLOpener), new(*system.OpenerAdapter)),

	system.NewGitSyncerAdapter,
	wire.Bind(new(usecase.RepoSyncer), new(*system.GitSyncerAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	RegistrySet,
	InteractiveSet,
	BlockchainSet,
	SystemSet,
)
