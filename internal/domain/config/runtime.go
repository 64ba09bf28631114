package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// ConfigDir holds config.json, the per-chain override files and the
	// optional registry extension. Usually ~/.chains.
	ConfigDir string

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration

	// AlchemyAPIKey overrides the alchemyApiKey of config.json when set
	AlchemyAPIKey string

	// RegistryFile is the registry extension file name inside ConfigDir
	RegistryFile string

	// Update settings
	GitRemote string
	GitBranch string

	// Opener is the command used to open URLs
	Opener string
}
