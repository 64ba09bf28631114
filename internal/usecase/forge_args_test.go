package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/chains-cli/internal/domain"
	"github.com/trebuchet-org/chains-cli/internal/usecase"
)

func TestBuildForgeArgs(t *testing.T) {
	tests := []struct {
		name     string
		cfg      domain.ChainConfig
		mode     usecase.ForgeMode
		expected []string
	}{
		{
			name:     "default prints rpc url",
			cfg:      domain.ChainConfig{ID: 8453, RPCURL: domain.StringPtr("https://mainnet.base.org")},
			mode:     usecase.ForgeModeDefault,
			expected: []string{"--rpc-url https://mainnet.base.org"},
		},
		{
			name:     "default without rpc url",
			cfg:      domain.ChainConfig{ID: 1},
			mode:     usecase.ForgeModeDefault,
			expected: []string{"--rpc-url undefined"},
		},
		{
			name:     "verify with etherscan key",
			cfg:      domain.ChainConfig{ID: 10, EtherscanAPIKey: domain.StringPtr("K")},
			mode:     usecase.ForgeModeVerify,
			expected: []string{"--chain 10", "--etherscan-api-key K"},
		},
		{
			name:     "verify falls back to blockscout",
			cfg:      domain.ChainConfig{ID: 7777777, VerifierURL: domain.StringPtr("https://v")},
			mode:     usecase.ForgeModeVerify,
			expected: []string{"--chain 7777777", "--verifier-url https://v --verifier blockscout"},
		},
		{
			name:     "verify with neither key nor verifier",
			cfg:      domain.ChainConfig{ID: 5},
			mode:     usecase.ForgeModeVerify,
			expected: []string{"--chain 5", "--verifier-url undefined --verifier blockscout"},
		},
		{
			name:     "verify treats empty key as unset",
			cfg:      domain.ChainConfig{ID: 5, EtherscanAPIKey: domain.StringPtr(""), VerifierURL: domain.StringPtr("https://v")},
			mode:     usecase.ForgeModeVerify,
			expected: []string{"--chain 5", "--verifier-url https://v --verifier blockscout"},
		},
		{
			name:     "deploy with verifier",
			cfg:      domain.ChainConfig{RPCURL: domain.StringPtr("https://u"), VerifierURL: domain.StringPtr("https://v")},
			mode:     usecase.ForgeModeDeploy,
			expected: []string{"--rpc-url https://u", "--verifier-url https://v --verifier blockscout"},
		},
		{
			name: "deploy with verifier and key",
			cfg: domain.ChainConfig{
				RPCURL:          domain.StringPtr("https://u"),
				VerifierURL:     domain.StringPtr("https://v"),
				EtherscanAPIKey: domain.StringPtr("K"),
			},
			mode:     usecase.ForgeModeDeploy,
			expected: []string{"--rpc-url https://u", "--verifier-url https://v --verifier blockscout", "--etherscan-api-key K"},
		},
		{
			name:     "deploy without extras",
			cfg:      domain.ChainConfig{RPCURL: domain.StringPtr("https://u")},
			mode:     usecase.ForgeModeDeploy,
			expected: []string{"--rpc-url https://u"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, usecase.BuildForgeArgs(tt.cfg, tt.mode))
		})
	}
}

func TestForgeModeFromFlags(t *testing.T) {
	assert.Equal(t, usecase.ForgeModeDefault, usecase.ForgeModeFromFlags(false, false))
	assert.Equal(t, usecase.ForgeModeDeploy, usecase.ForgeModeFromFlags(false, true))
	assert.Equal(t, usecase.ForgeModeVerify, usecase.ForgeModeFromFlags(true, false))
	assert.Equal(t, usecase.ForgeModeVerify, usecase.ForgeModeFromFlags(true, true))
}

func TestForgeArgs(t *testing.T) {
	ctx := context.Background()
	loader := newMemLoader(t.TempDir()).with("optimism.json", map[string]any{"etherscanApiKey": "K"})
	uc := usecase.NewForgeArgs(newResolver(loader))

	t.Run("verify", func(t *testing.T) {
		result, err := uc.Run(ctx, usecase.ForgeArgsParams{Chain: "optimism", Verify: true, Deploy: true})
		require.NoError(t, err)
		assert.Equal(t, usecase.ForgeModeVerify, result.Mode)
		assert.Equal(t, "--chain 10 --etherscan-api-key K", result.Line())
	})

	t.Run("default by id", func(t *testing.T) {
		result, err := uc.Run(ctx, usecase.ForgeArgsParams{Chain: "8453"})
		require.NoError(t, err)
		assert.Equal(t, "--rpc-url https://mainnet.base.org", result.Line())
	})

	t.Run("unknown chain", func(t *testing.T) {
		_, err := uc.Run(ctx, usecase.ForgeArgsParams{Chain: "nope"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
