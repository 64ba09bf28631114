package config

// File names inside the config directory
const (
	GlobalConfigFile = "config.json"
	OverrideFileExt  = ".json"
	EnvFile          = ".env"
)

// GlobalConfigKey represents a key of config.json with defined semantics
type GlobalConfigKey string

const (
	GlobalKeyAlchemyAPIKey GlobalConfigKey = "alchemyApiKey"
)

// GlobalConfig is the user-wide config.json. Only alchemyApiKey has meaning;
// everything else is carried along untouched.
type GlobalConfig map[string]any

// AlchemyAPIKey returns the configured Alchemy credential, or "" when the key
// is missing or not a string.
func (g GlobalConfig) AlchemyAPIKey() string {
	return g.Get(GlobalKeyAlchemyAPIKey)
}

// Get returns the string value of key, or "" when it is missing or not a string
func (g GlobalConfig) Get(key GlobalConfigKey) string {
	v, _ := g[string(key)].(string)
	return v
}

// With returns a copy of g with key set to value
func (g GlobalConfig) With(key GlobalConfigKey, value string) GlobalConfig {
	out := g.clone()
	out[string(key)] = value
	return out
}

func (g GlobalConfig) clone() GlobalConfig {
	out := make(GlobalConfig, len(g)+1)
	for k, v := range g {
		out[k] = v
	}
	return out
}

// OverrideFileName returns the per-chain override file name for a chain key
func OverrideFileName(chainKey string) string {
	return chainKey + OverrideFileExt
}

// MaskSecret hides all but the last four characters of a credential
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return "****"
	}
	return "****" + secret[len(secret)-4:]
}
