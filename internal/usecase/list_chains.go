package usecase

import (
	"context"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/chains-cli/internal/domain"
	"github.com/trebuchet-org/chains-cli/internal/domain/config"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ListChainsParams contains parameters for listing chains
type ListChainsParams struct {
	Testnets bool   // only testnets
	Mainnets bool   // only mainnets
	Search   string // fuzzy filter on key and name
}

// ListChainsResult contains the result of listing chains
type ListChainsResult struct {
	Chains []ChainSummary
	Total  int // size of the table before filtering
}

// ChainSummary is one row of the chain list
type ChainSummary struct {
	Key         string
	DisplayName string
	ChainID     uint64
	Testnet     bool
	RPCURL      string
	Explorer    string
}

// ListChains is a use case for listing the chains of the registry
type ListChains struct {
	table *domain.ChainTable
}

// NewListChains creates a new ListChains use case
func NewListChains(table *domain.ChainTable) *ListChains {
	return &ListChains{table: table}
}

// Run executes the use case
func (uc *ListChains) Run(ctx context.Context, params ListChainsParams) (*ListChainsResult, error) {
	entries := uc.table.Entries()

	entries = lo.Filter(entries, func(e domain.ChainEntry, _ int) bool {
		switch {
		case params.Testnets && !e.Testnet:
			return false
		case params.Mainnets && e.Testnet:
			return false
		}
		return true
	})

	if search := strings.TrimSpace(params.Search); search != "" {
		entries = searchEntries(entries, search)
	}

	return &ListChainsResult{
		Chains: lo.Map(entries, func(e domain.ChainEntry, _ int) ChainSummary {
			return ChainSummary{
				Key:         e.Key,
				DisplayName: DisplayName(e),
				ChainID:     e.Config.ID,
				Testnet:     e.Testnet,
				RPCURL:      MaskRPCURL(lo.FromPtr(e.Config.RPCURL), e.RPCCredential),
				Explorer:    e.Config.ExplorerTarget(),
			}
		}),
		Total: uc.table.Len(),
	}, nil
}

// DisplayName returns the registry's human name, or a title-cased key when the
// registry has none.
func DisplayName(e domain.ChainEntry) string {
	if e.Name != "" {
		return e.Name
	}
	return cases.Title(language.English).String(strings.ReplaceAll(e.Key, "-", " "))
}

// MaskRPCURL hides all but the last four characters of the credential
// embedded in rpcURL
func MaskRPCURL(rpcURL, credential string) string {
	if credential == "" {
		return rpcURL
	}
	return strings.ReplaceAll(rpcURL, credential, config.MaskSecret(credential))
}

// searchEntries keeps entries whose key or name fuzzy-matches the query, best match first
func searchEntries(entries []domain.ChainEntry, query string) []domain.ChainEntry {
	haystack := lo.Map(entries, func(e domain.ChainEntry, _ int) string {
		return strings.ToLower(e.Key + " " + e.Name)
	})

	matches := fuzzy.Find(strings.ToLower(query), haystack)
	return lo.Map(matches, func(m fuzzy.Match, _ int) domain.ChainEntry {
		return entries[m.Index]
	})
}
