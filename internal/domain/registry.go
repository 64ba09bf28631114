package domain

// RawChain is one entry of the upstream chain registry, in the viem chain shape
type RawChain struct {
	ID             uint64                   `json:"id"`
	Name           string                   `json:"name"`
	Network        string                   `json:"network,omitempty"`
	NativeCurrency NativeCurrency           `json:"nativeCurrency"`
	RPCURLs        map[string]RPCURLs       `json:"rpcUrls"`
	BlockExplorers map[string]BlockExplorer `json:"blockExplorers,omitempty"`
	Testnet        bool                     `json:"testnet,omitempty"`
}

// NativeCurrency describes the gas token of a chain
type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// RPCURLs is a named set of RPC endpoint templates
type RPCURLs struct {
	HTTP      []string `json:"http"`
	WebSocket []string `json:"webSocket,omitempty"`
}

// BlockExplorer is a named block explorer
type BlockExplorer struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	APIURL string `json:"apiUrl,omitempty"`
}

// Well-known keys of RawChain.RPCURLs and RawChain.BlockExplorers
const (
	RPCDefault        = "default"
	RPCAlchemy        = "alchemy"
	ExplorerDefault   = "default"
	ExplorerEtherscan = "etherscan"

	// AlchemyKeyToken is replaced by the Alchemy API key inside RPC templates
	AlchemyKeyToken = "$alchemyApiKey"
)

// FirstHTTP returns the first HTTP URL of the named RPC set
func (c RawChain) FirstHTTP(name string) (string, bool) {
	urls, ok := c.RPCURLs[name]
	if !ok || len(urls.HTTP) == 0 {
		return "", false
	}
	return urls.HTTP[0], true
}

// ExplorerURL returns the URL of the named explorer
func (c RawChain) ExplorerURL(name string) (string, bool) {
	explorer, ok := c.BlockExplorers[name]
	if !ok || explorer.URL == "" {
		return "", false
	}
	return explorer.URL, true
}
