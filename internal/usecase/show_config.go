package usecase

import (
	"context"

	"github.com/trebuchet-org/chains-cli/internal/domain/config"
)

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	ConfigDir        string
	GlobalConfigPath string
	Exists           bool
	AlchemyAPIKey    string // masked
	AlchemyFromEnv   bool
	OverrideFiles    []string
	RegistryFile     string // empty when no registry extension exists
}

// ShowConfig is a use case for showing configuration
type ShowConfig struct {
	loader ConfigFileLoader
	cfg    *config.RuntimeConfig
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(loader ConfigFileLoader, cfg *config.RuntimeConfig) *ShowConfig {
	return &ShowConfig{
		loader: loader,
		cfg:    cfg,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	global := config.GlobalConfig(uc.loader.Load(ctx, config.GlobalConfigFile))

	result := &ShowConfigResult{
		ConfigDir:        uc.loader.Dir(),
		GlobalConfigPath: uc.loader.Path(config.GlobalConfigFile),
		Exists:           uc.loader.Exists(config.GlobalConfigFile),
		AlchemyAPIKey:    config.MaskSecret(global.AlchemyAPIKey()),
	}
	if uc.cfg.AlchemyAPIKey != "" {
		result.AlchemyAPIKey = config.MaskSecret(uc.cfg.AlchemyAPIKey)
		result.AlchemyFromEnv = true
	}

	if uc.loader.Exists(uc.cfg.RegistryFile) {
		result.RegistryFile = uc.loader.Path(uc.cfg.RegistryFile)
	}

	files, err := uc.loader.List(ctx)
	if err != nil {
		return nil, err
	}
	result.OverrideFiles = files

	return result, nil
}
