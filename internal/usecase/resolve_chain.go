package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/chains-cli/internal/domain"
	"github.com/trebuchet-org/chains-cli/internal/domain/config"
)

const maxSuggestions = 3

// ResolveChainParams contains parameters for resolving a chain
type ResolveChainParams struct {
	// Chain is a registry key ("arbitrum-nova") or a decimal chain ID ("42170")
	Chain string
}

// ResolvedChain is the effective configuration of one chain
type ResolvedChain struct {
	Key          string
	Config       domain.ChainConfig
	Entry        *domain.ChainEntry // nil for chains that only exist as an override file
	OverridePath string             // empty when no override file exists
}

// ResolveChain is a use case for merging registry defaults with the per-chain override file
type ResolveChain struct {
	table  *domain.ChainTable
	loader ConfigFileLoader
	log    *slog.Logger
}

// NewResolveChain creates a new ResolveChain use case
func NewResolveChain(table *domain.ChainTable, loader ConfigFileLoader, log *slog.Logger) *ResolveChain {
	return &ResolveChain{
		table:  table,
		loader: loader,
		log:    log.With("component", "ResolveChain"),
	}
}

// Run executes the use case
func (uc *ResolveChain) Run(ctx context.Context, params ResolveChainParams) (*ResolvedChain, error) {
	chain := strings.TrimSpace(params.Chain)
	if chain == "" {
		return nil, domain.ErrChainNotSpecified
	}

	key := uc.resolveKey(chain)
	overrideName := config.OverrideFileName(key)

	entry, known := uc.table.Entry(key)
	hasOverride := uc.loader.Exists(overrideName)
	if !known && !hasOverride {
		return nil, domain.UnknownChainError{
			Chain:       chain,
			Suggestions: uc.suggest(chain),
		}
	}

	result := &ResolvedChain{Key: key}
	if known {
		result.Entry = &entry
	}

	override := uc.loader.Load(ctx, overrideName)
	merged, err := domain.MergeOverride(entry.Config, override, known)
	if err != nil {
		uc.log.Warn("ignoring invalid override values", "path", uc.loader.Path(overrideName), "error", err)
	}
	result.Config = merged

	if hasOverride {
		result.OverridePath = uc.loader.Path(overrideName)
	}

	uc.log.Debug("resolved chain", "input", chain, "key", key, "known", known, "override", hasOverride)
	return result, nil
}

// resolveKey maps the user input to a table key. Chain IDs win, then exact
// keys and override files, then the kebab form of the input.
func (uc *ResolveChain) resolveKey(chain string) string {
	if key, ok := uc.table.KeyForID(chain); ok {
		return key
	}
	if uc.table.Has(chain) || uc.loader.Exists(config.OverrideFileName(chain)) {
		return chain
	}
	if kebab := domain.Kebabize(chain); kebab != chain && uc.table.Has(kebab) {
		return kebab
	}
	return chain
}

func (uc *ResolveChain) suggest(chain string) []string {
	matches := fuzzy.Find(strings.ToLower(chain), uc.table.Keys())

	var suggestions []string
	for _, m := range matches {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, m.Str)
	}
	return suggestions
}
