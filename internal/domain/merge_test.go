package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig() ChainConfig {
	return ChainConfig{
		ID:            10,
		RPCURL:        StringPtr("https://mainnet.optimism.io"),
		BlockExplorer: StringPtr("https://optimistic.etherscan.io"),
		EtherscanURL:  StringPtr("https://optimistic.etherscan.io"),
	}
}

func TestMergeOverride(t *testing.T) {
	t.Run("no override keeps base", func(t *testing.T) {
		merged, err := MergeOverride(baseConfig(), map[string]any{}, true)
		require.NoError(t, err)
		assert.Equal(t, baseConfig(), merged)
	})

	t.Run("override fields win", func(t *testing.T) {
		merged, err := MergeOverride(baseConfig(), map[string]any{
			"rpcUrl":          "https://my-node",
			"etherscanApiKey": "KEY",
		}, true)
		require.NoError(t, err)

		assert.Equal(t, "https://my-node", *merged.RPCURL)
		assert.Equal(t, "KEY", *merged.EtherscanAPIKey)
		assert.Equal(t, "https://optimistic.etherscan.io", *merged.BlockExplorer)
		assert.Nil(t, merged.VerifierURL)
	})

	t.Run("empty string replaces value", func(t *testing.T) {
		merged, err := MergeOverride(baseConfig(), map[string]any{"rpcUrl": ""}, true)
		require.NoError(t, err)
		require.NotNil(t, merged.RPCURL)
		assert.Equal(t, "", *merged.RPCURL)
	})

	t.Run("null clears value", func(t *testing.T) {
		merged, err := MergeOverride(baseConfig(), map[string]any{"etherscanUrl": nil}, true)
		require.NoError(t, err)
		assert.Nil(t, merged.EtherscanURL)
		assert.Equal(t, "https://optimistic.etherscan.io", merged.ExplorerTarget())
	})

	t.Run("unknown keys are kept as extra", func(t *testing.T) {
		merged, err := MergeOverride(baseConfig(), map[string]any{"gasPrice": float64(3), "rpcUrl": "https://x"}, true)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"gasPrice": float64(3)}, merged.Extra)
	})

	t.Run("id is kept for registry chains", func(t *testing.T) {
		merged, err := MergeOverride(baseConfig(), map[string]any{"id": float64(999)}, true)
		require.NoError(t, err)
		assert.Equal(t, uint64(10), merged.ID)
	})

	t.Run("id is taken from override only chains", func(t *testing.T) {
		merged, err := MergeOverride(ChainConfig{}, map[string]any{"id": float64(999), "rpcUrl": "https://x"}, false)
		require.NoError(t, err)
		assert.Equal(t, uint64(999), merged.ID)
	})

	t.Run("wrong type is skipped and reported", func(t *testing.T) {
		merged, err := MergeOverride(baseConfig(), map[string]any{"rpcUrl": map[string]any{"nested": true}}, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"rpcUrl"`)
		assert.Equal(t, baseConfig(), merged)
	})

	t.Run("valid keys survive a bad sibling", func(t *testing.T) {
		merged, err := MergeOverride(baseConfig(), map[string]any{
			"etherscanApiKey": "XYZ",
			"rpcUrl":          []any{"https://a"},
			"verifierUrl":     "https://verify",
		}, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"rpcUrl"`)
		assert.NotContains(t, err.Error(), "etherscanApiKey")

		require.NotNil(t, merged.EtherscanAPIKey)
		assert.Equal(t, "XYZ", *merged.EtherscanAPIKey)
		assert.Equal(t, "https://verify", *merged.VerifierURL)
		assert.Equal(t, "https://mainnet.optimism.io", *merged.RPCURL)
	})

	t.Run("non numeric id is ignored for registry chains", func(t *testing.T) {
		merged, err := MergeOverride(baseConfig(), map[string]any{"id": "x", "etherscanApiKey": "K"}, true)
		require.NoError(t, err)
		assert.Equal(t, uint64(10), merged.ID)
		assert.Equal(t, "K", *merged.EtherscanAPIKey)
	})

	t.Run("every bad key is reported", func(t *testing.T) {
		merged, err := MergeOverride(ChainConfig{}, map[string]any{
			"id":           "x",
			"etherscanUrl": []any{},
			"rpcUrl":       "http://devnet:8545",
		}, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"id"`)
		assert.Contains(t, err.Error(), `"etherscanUrl"`)
		assert.Equal(t, uint64(0), merged.ID)
		assert.Equal(t, "http://devnet:8545", *merged.RPCURL)
	})

	t.Run("base is not mutated", func(t *testing.T) {
		base := baseConfig()
		_, err := MergeOverride(base, map[string]any{"rpcUrl": "https://other"}, true)
		require.NoError(t, err)
		assert.Equal(t, "https://mainnet.optimism.io", *base.RPCURL)
	})
}
