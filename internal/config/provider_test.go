package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears key for the duration of the test
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func clearChainsEnv(t *testing.T) {
	for _, key := range []string{
		"CHAINS_CONFIG_DIR", "CHAINS_DEBUG", "CHAINS_NON_INTERACTIVE", "CHAINS_TIMEOUT",
		"CHAINS_ALCHEMY_API_KEY", "CHAINS_REGISTRY_FILE", "CHAINS_GIT_REMOTE",
		"CHAINS_GIT_BRANCH", "CHAINS_OPENER",
	} {
		unsetEnv(t, key)
	}
}

func TestProvider(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearChainsEnv(t)
		home := t.TempDir()
		t.Setenv("HOME", home)

		cfg, err := Provider(SetupViper(nil))
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(home, ".chains"), cfg.ConfigDir)
		assert.False(t, cfg.Debug)
		assert.False(t, cfg.NonInteractive)
		assert.Equal(t, DefaultTimeout, cfg.Timeout)
		assert.Equal(t, "registry.json", cfg.RegistryFile)
		assert.Equal(t, "origin", cfg.GitRemote)
		assert.Equal(t, "main", cfg.GitBranch)
		assert.Empty(t, cfg.AlchemyAPIKey)
		assert.Empty(t, cfg.Opener)
	})

	t.Run("environment variables", func(t *testing.T) {
		clearChainsEnv(t)
		dir := t.TempDir()
		t.Setenv("CHAINS_CONFIG_DIR", dir)
		t.Setenv("CHAINS_ALCHEMY_API_KEY", " key ")
		t.Setenv("CHAINS_TIMEOUT", "5s")
		t.Setenv("CHAINS_NON_INTERACTIVE", "true")
		t.Setenv("CHAINS_GIT_BRANCH", "dev")

		cfg, err := Provider(SetupViper(nil))
		require.NoError(t, err)

		assert.Equal(t, dir, cfg.ConfigDir)
		assert.Equal(t, "key", cfg.AlchemyAPIKey)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.True(t, cfg.NonInteractive)
		assert.Equal(t, "dev", cfg.GitBranch)
	})

	t.Run("flags win over environment", func(t *testing.T) {
		clearChainsEnv(t)
		t.Setenv("CHAINS_CONFIG_DIR", t.TempDir())
		flagDir := t.TempDir()

		cmd := &cobra.Command{Use: "test"}
		cmd.Flags().String("config-dir", "", "")
		cmd.Flags().Bool("debug", false, "")
		require.NoError(t, cmd.Flags().Set("config-dir", flagDir))
		require.NoError(t, cmd.Flags().Set("debug", "true"))

		cfg, err := Provider(SetupViper(cmd))
		require.NoError(t, err)

		assert.Equal(t, flagDir, cfg.ConfigDir)
		assert.True(t, cfg.Debug)
	})

	t.Run("env file in config directory", func(t *testing.T) {
		clearChainsEnv(t)
		dir := t.TempDir()
		t.Setenv("CHAINS_CONFIG_DIR", dir)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CHAINS_ALCHEMY_API_KEY=fromdotenv\n"), 0600))

		cfg, err := Provider(SetupViper(nil))
		require.NoError(t, err)
		assert.Equal(t, "fromdotenv", cfg.AlchemyAPIKey)
	})

	t.Run("env file does not override the environment", func(t *testing.T) {
		clearChainsEnv(t)
		dir := t.TempDir()
		t.Setenv("CHAINS_CONFIG_DIR", dir)
		t.Setenv("CHAINS_ALCHEMY_API_KEY", "fromenv")
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CHAINS_ALCHEMY_API_KEY=fromdotenv\n"), 0600))

		cfg, err := Provider(SetupViper(nil))
		require.NoError(t, err)
		assert.Equal(t, "fromenv", cfg.AlchemyAPIKey)
	})

	t.Run("registry file must stay in the config directory", func(t *testing.T) {
		v := viper.New()
		v.Set("config_dir", t.TempDir())
		v.Set("registry_file", "../registry.json")

		_, err := Provider(v)
		assert.Error(t, err)
	})
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		input    string
		expected string
	}{
		{"~", home},
		{"~/.chains", filepath.Join(home, ".chains")},
		{"/etc/chains", "/etc/chains"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ExpandHome(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("relative paths become absolute", func(t *testing.T) {
		got, err := ExpandHome("chains")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})
}
