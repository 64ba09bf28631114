package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/chains-cli/internal/domain"
	"github.com/trebuchet-org/chains-cli/internal/domain/config"
	"github.com/trebuchet-org/chains-cli/internal/usecase"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) (*SelectorAdapter, error) {
	return &SelectorAdapter{config: cfg}, nil
}

// SelectChain selects a chain from a list
func (s *SelectorAdapter) SelectChain(ctx context.Context, entries []domain.ChainEntry, prompt string) (*domain.ChainEntry, error) {
	// In non-interactive mode, we can't select
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no chains provided for selection")
	}

	if len(entries) == 1 {
		return &entries[0], nil
	}

	options := formatChainOptions(entries)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Type to search, arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              12,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(searchKeys(entries)),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return &entries[index], nil
}

// formatChainOptions creates display strings for chain selection
func formatChainOptions(entries []domain.ChainEntry) []string {
	options := make([]string, len(entries))
	for i, entry := range entries {
		key := color.New(color.FgWhite, color.Bold).Sprint(entry.Key)
		id := color.New(color.FgBlue).Sprintf("%d", entry.Config.ID)

		option := fmt.Sprintf("%s (%s)", key, id)
		if entry.Name != "" {
			option += " " + entry.Name
		}
		if entry.Testnet {
			option += " " + color.New(color.FgYellow).Sprint("[testnet]")
		}
		options[i] = option
	}
	return options
}

// searchKeys returns the uncolored text each option is searched by
func searchKeys(entries []domain.ChainEntry) []string {
	keys := make([]string, len(entries))
	for i, entry := range entries {
		keys[i] = fmt.Sprintf("%s %d %s", entry.Key, entry.Config.ID, entry.Name)
	}
	return keys
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		// Empty search shows all items
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

// Ensure the adapter implements the interface
var _ usecase.ChainSelector = (*SelectorAdapter)(nil)
