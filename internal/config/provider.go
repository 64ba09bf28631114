package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/chains-cli/internal/domain/config"
)

// EnvPrefix is the prefix of every environment variable read through viper
const EnvPrefix = "CHAINS"

// Defaults
const (
	DefaultConfigDir    = "~/.chains"
	DefaultTimeout      = 30 * time.Second
	DefaultRegistryFile = "registry.json"
	DefaultGitRemote    = "origin"
	DefaultGitBranch    = "main"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	configDir, err := ExpandHome(v.GetString("config_dir"))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config directory: %w", err)
	}

	cfg := &config.RuntimeConfig{
		ConfigDir:      configDir,
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Timeout:        v.GetDuration("timeout"),
		AlchemyAPIKey:  strings.TrimSpace(v.GetString("alchemy_api_key")),
		RegistryFile:   v.GetString("registry_file"),
		GitRemote:      v.GetString("git_remote"),
		GitBranch:      v.GetString("git_branch"),
		Opener:         v.GetString("opener"),
	}

	if cfg.RegistryFile != "" && filepath.Base(cfg.RegistryFile) != cfg.RegistryFile {
		return nil, fmt.Errorf("registry file must be a file name inside %s, got %q", configDir, cfg.RegistryFile)
	}

	return cfg, nil
}

// SetupViper creates and configures a viper instance. Flags of cmd are bound
// by their names with dashes turned into underscores.
func SetupViper(cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("config_dir", DefaultConfigDir)
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("alchemy_api_key", "")
	v.SetDefault("registry_file", DefaultRegistryFile)
	v.SetDefault("git_remote", DefaultGitRemote)
	v.SetDefault("git_branch", DefaultGitBranch)
	v.SetDefault("opener", "")

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil {
				panic(err)
			}
		})
	}

	// The .env of the config directory can set any CHAINS_* variable, so it
	// is read before the runtime config is resolved.
	if dir, err := ExpandHome(v.GetString("config_dir")); err == nil {
		LoadEnvFile(filepath.Join(dir, config.EnvFile))
	}

	return v
}

// LoadEnvFile loads a dotenv file without overriding variables that are
// already set. A missing file is not an error.
func LoadEnvFile(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		// Log warning but don't fail
		fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", path, err)
	}
}

// ExpandHome replaces a leading ~ with the user's home directory and makes the
// path absolute
func ExpandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}
