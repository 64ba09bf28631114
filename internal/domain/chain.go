package domain

// UnsetValue is how an unconfigured field is rendered into command output.
const UnsetValue = "undefined"

// ChainConfig is the effective configuration of one network
type ChainConfig struct {
	ID              uint64  `json:"id" yaml:"id" mapstructure:"id"`
	RPCURL          *string `json:"rpcUrl,omitempty" yaml:"rpcUrl,omitempty" mapstructure:"rpcUrl"`
	BlockExplorer   *string `json:"blockExplorer,omitempty" yaml:"blockExplorer,omitempty" mapstructure:"blockExplorer"`
	EtherscanURL    *string `json:"etherscanUrl,omitempty" yaml:"etherscanUrl,omitempty" mapstructure:"etherscanUrl"`
	EtherscanAPIKey *string `json:"etherscanApiKey,omitempty" yaml:"etherscanApiKey,omitempty" mapstructure:"etherscanApiKey"`
	VerifierURL     *string `json:"verifierUrl,omitempty" yaml:"verifierUrl,omitempty" mapstructure:"verifierUrl"`

	// Extra holds override keys that have no meaning to this tool.
	Extra map[string]any `json:"extra,omitempty" yaml:"extra,omitempty" mapstructure:",remain"`
}

// Clone returns a deep copy so callers can never mutate registry entries.
func (c ChainConfig) Clone() ChainConfig {
	out := ChainConfig{
		ID:              c.ID,
		RPCURL:          cloneString(c.RPCURL),
		BlockExplorer:   cloneString(c.BlockExplorer),
		EtherscanURL:    cloneString(c.EtherscanURL),
		EtherscanAPIKey: cloneString(c.EtherscanAPIKey),
		VerifierURL:     cloneString(c.VerifierURL),
	}
	if len(c.Extra) > 0 {
		out.Extra = make(map[string]any, len(c.Extra))
		for k, v := range c.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

// HasEtherscanAPIKey reports whether a non-empty API key is configured
func (c ChainConfig) HasEtherscanAPIKey() bool {
	return c.EtherscanAPIKey != nil && *c.EtherscanAPIKey != ""
}

// HasVerifierURL reports whether a non-empty verifier URL is configured
func (c ChainConfig) HasVerifierURL() bool {
	return c.VerifierURL != nil && *c.VerifierURL != ""
}

// ExplorerTarget returns the URL to open for this chain: the Etherscan-compatible
// explorer when set, else the default explorer, else "".
func (c ChainConfig) ExplorerTarget() string {
	if c.EtherscanURL != nil && *c.EtherscanURL != "" {
		return *c.EtherscanURL
	}
	if c.BlockExplorer != nil && *c.BlockExplorer != "" {
		return *c.BlockExplorer
	}
	return ""
}

// Display renders an optional value the way it is interpolated into commands.
func Display(v *string) string {
	if v == nil {
		return UnsetValue
	}
	return *v
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	s := *v
	return &s
}
