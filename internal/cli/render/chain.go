package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/trebuchet-org/chains-cli/internal/domain"
	"github.com/trebuchet-org/chains-cli/internal/domain/config"
	"github.com/trebuchet-org/chains-cli/internal/usecase"
	"gopkg.in/yaml.v3"
)

// ChainRenderer renders the effective configuration of one chain
type ChainRenderer struct {
	out    io.Writer
	format OutputFormat
}

// NewChainRenderer creates a new chain renderer
func NewChainRenderer(out io.Writer, format OutputFormat) *ChainRenderer {
	return &ChainRenderer{
		out:    out,
		format: format,
	}
}

// chainDocument is the json/yaml shape of a resolved chain
type chainDocument struct {
	Key                string `json:"key" yaml:"key"`
	Name               string `json:"name,omitempty" yaml:"name,omitempty"`
	Testnet            bool   `json:"testnet" yaml:"testnet"`
	Override           string `json:"override,omitempty" yaml:"override,omitempty"`
	domain.ChainConfig `yaml:",inline"`
}

// foundrySnippet is the part of foundry.toml that configures a chain
type foundrySnippet struct {
	RPCEndpoints map[string]string           `toml:"rpc_endpoints"`
	Etherscan    map[string]foundryEtherscan `toml:"etherscan,omitempty"`
}

type foundryEtherscan struct {
	Key   string `toml:"key"`
	Chain uint64 `toml:"chain"`
	URL   string `toml:"url,omitempty"`
}

// Render renders the chain in the configured format
func (r *ChainRenderer) Render(result *usecase.ResolvedChain) error {
	switch r.format {
	case FormatJSON:
		return r.renderJSON(result)
	case FormatYAML:
		return r.renderYAML(result)
	case FormatFoundry:
		return r.renderFoundry(result)
	default:
		return r.renderText(result)
	}
}

func newChainDocument(result *usecase.ResolvedChain) chainDocument {
	doc := chainDocument{
		Key:         result.Key,
		Override:    result.OverridePath,
		ChainConfig: result.Config,
	}
	if result.Entry != nil {
		doc.Name = result.Entry.Name
		doc.Testnet = result.Entry.Testnet
	}
	return doc
}

func (r *ChainRenderer) renderJSON(result *usecase.ResolvedChain) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(newChainDocument(result))
}

func (r *ChainRenderer) renderYAML(result *usecase.ResolvedChain) error {
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(newChainDocument(result)); err != nil {
		return err
	}
	return enc.Close()
}

func (r *ChainRenderer) renderFoundry(result *usecase.ResolvedChain) error {
	cfg := result.Config
	snippet := foundrySnippet{
		RPCEndpoints: map[string]string{
			result.Key: domain.Display(cfg.RPCURL),
		},
	}
	if cfg.HasEtherscanAPIKey() {
		etherscan := foundryEtherscan{
			Key:   *cfg.EtherscanAPIKey,
			Chain: cfg.ID,
		}
		if cfg.HasVerifierURL() {
			etherscan.URL = *cfg.VerifierURL
		}
		snippet.Etherscan = map[string]foundryEtherscan{result.Key: etherscan}
	}

	return toml.NewEncoder(r.out).Encode(snippet)
}

func (r *ChainRenderer) renderText(result *usecase.ResolvedChain) error {
	cfg := result.Config

	header := keyStyle.Sprint(result.Key)
	if result.Entry != nil && result.Entry.Name != "" {
		header += " " + labelStyle.Sprintf("(%s)", result.Entry.Name)
	}
	if result.Entry != nil && result.Entry.Testnet {
		header += " " + testnetStyle.Sprint("[testnet]")
	}
	fmt.Fprintln(r.out, header)

	row := func(label, value string) {
		fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprintf("%-16s", label+":"), value)
	}
	row("Chain ID", fmt.Sprintf("%d", cfg.ID))
	rpcURL := textValue(cfg.RPCURL)
	if result.Entry != nil {
		rpcURL = usecase.MaskRPCURL(rpcURL, result.Entry.RPCCredential)
	}
	row("RPC URL", rpcURL)
	row("Block explorer", textValue(cfg.BlockExplorer))
	row("Etherscan URL", textValue(cfg.EtherscanURL))
	if cfg.EtherscanAPIKey != nil {
		row("Etherscan key", valueOrUnset(config.MaskSecret(*cfg.EtherscanAPIKey)))
	} else {
		row("Etherscan key", valueOrUnset(""))
	}
	row("Verifier URL", textValue(cfg.VerifierURL))

	if result.OverridePath != "" {
		row("Override", result.OverridePath)
	}

	if len(cfg.Extra) > 0 {
		keys := make([]string, 0, len(cfg.Extra))
		for k := range cfg.Extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprintln(r.out, "  "+labelStyle.Sprint("Extra:"))
		for _, k := range keys {
			fmt.Fprintf(r.out, "    %s = %v\n", k, cfg.Extra[k])
		}
	}

	return nil
}

func textValue(v *string) string {
	if v == nil {
		return valueOrUnset("")
	}
	return valueOrUnset(*v)
}

var _ Renderer[*usecase.ResolvedChain] = (*ChainRenderer)(nil)
