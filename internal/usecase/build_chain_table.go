package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/chains-cli/internal/domain"
	"github.com/trebuchet-org/chains-cli/internal/domain/config"
)

// BuildChainTable is a use case for building the chain lookup table
type BuildChainTable struct {
	source RegistrySource
	loader ConfigFileLoader
	cfg    *config.RuntimeConfig
	log    *slog.Logger
}

// NewBuildChainTable creates a new BuildChainTable use case
func NewBuildChainTable(
	source RegistrySource,
	loader ConfigFileLoader,
	cfg *config.RuntimeConfig,
	log *slog.Logger,
) *BuildChainTable {
	return &BuildChainTable{
		source: source,
		loader: loader,
		cfg:    cfg,
		log:    log.With("component", "BuildChainTable"),
	}
}

// Run loads the registry and the global config and normalizes them into a table
func (uc *BuildChainTable) Run(ctx context.Context) (*domain.ChainTable, error) {
	raw, err := uc.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load chain registry: %w", err)
	}

	global := config.GlobalConfig(uc.loader.Load(ctx, config.GlobalConfigFile))
	if uc.cfg.AlchemyAPIKey != "" {
		global = global.With(config.GlobalKeyAlchemyAPIKey, uc.cfg.AlchemyAPIKey)
	}

	table := NormalizeRegistry(raw, global)
	uc.log.Debug("built chain table", "chains", table.Len(), "alchemy", global.AlchemyAPIKey() != "")

	return table, nil
}

// NormalizeRegistry converts raw registry entries into kebab-keyed chain
// configurations. Source names are visited in sorted order so duplicate chain
// IDs always resolve to the same key.
func NormalizeRegistry(raw map[string]domain.RawChain, global config.GlobalConfig) *domain.ChainTable {
	names := lo.Keys(raw)
	sort.Strings(names)

	alchemyKey := global.AlchemyAPIKey()
	entries := make([]domain.ChainEntry, 0, len(names))
	for _, name := range names {
		chain := raw[name]
		entry := domain.ChainEntry{
			Key:        domain.Kebabize(name),
			SourceName: name,
			Name:       chain.Name,
			Testnet:    chain.Testnet,
			Config:     normalizeChain(chain, alchemyKey),
		}
		if alchemyKey != "" && strings.Contains(lo.FromPtr(entry.Config.RPCURL), alchemyKey) {
			entry.RPCCredential = alchemyKey
		}
		entries = append(entries, entry)
	}

	return domain.NewChainTable(entries)
}

func normalizeChain(chain domain.RawChain, alchemyKey string) domain.ChainConfig {
	cfg := domain.ChainConfig{ID: chain.ID}

	if rpcURL, ok := selectRPCURL(chain, alchemyKey); ok {
		cfg.RPCURL = domain.StringPtr(rpcURL)
	}
	if explorer, ok := chain.ExplorerURL(domain.ExplorerDefault); ok {
		cfg.BlockExplorer = domain.StringPtr(explorer)
	}
	if etherscan, ok := chain.ExplorerURL(domain.ExplorerEtherscan); ok {
		cfg.EtherscanURL = domain.StringPtr(etherscan)
	}

	return cfg
}

// selectRPCURL picks the RPC endpoint for a chain. With an Alchemy key the
// alchemy template is preferred; the key either fills the $alchemyApiKey
// placeholder or is appended as the last path segment.
func selectRPCURL(chain domain.RawChain, alchemyKey string) (string, bool) {
	if alchemyKey != "" {
		if template, ok := chain.FirstHTTP(domain.RPCAlchemy); ok {
			if strings.Contains(template, domain.AlchemyKeyToken) {
				return strings.ReplaceAll(template, domain.AlchemyKeyToken, alchemyKey), true
			}
			return template + "/" + alchemyKey, true
		}
	}

	rpcURL, ok := chain.FirstHTTP(domain.RPCDefault)
	if !ok {
		return "", false
	}
	if alchemyKey != "" && strings.Contains(rpcURL, domain.AlchemyKeyToken) {
		rpcURL = strings.ReplaceAll(rpcURL, domain.AlchemyKeyToken, alchemyKey)
	}
	return rpcURL, true
}
