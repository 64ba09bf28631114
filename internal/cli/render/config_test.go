package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/chains-cli/internal/domain"
	"github.com/trebuchet-org/chains-cli/internal/usecase"
)

func TestConfigRenderer(t *testing.T) {
	t.Run("show", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewConfigRenderer(&buf).RenderConfig(&usecase.ShowConfigResult{
			ConfigDir:        "/cfg",
			GlobalConfigPath: "/cfg/config.json",
			Exists:           true,
			AlchemyAPIKey:    "****abcd",
			AlchemyFromEnv:   true,
			OverrideFiles:    []string{"base.json"},
		})
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "/cfg/config.json")
		assert.Contains(t, out, "****abcd (from environment)")
		assert.Contains(t, out, "Chain overrides (1)")
		assert.Contains(t, out, "base.json")
	})

	t.Run("show without config", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewConfigRenderer(&buf).RenderConfig(&usecase.ShowConfigResult{ConfigDir: "/cfg", GlobalConfigPath: "/cfg/config.json"})
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "No /cfg/config.json file found")
		assert.Contains(t, buf.String(), "(not set)")
		assert.Contains(t, buf.String(), "No chain overrides")
	})
}

func TestCheckRenderer(t *testing.T) {
	chain := &usecase.ResolvedChain{Key: "base", Config: domain.ChainConfig{ID: 8453}}

	t.Run("match", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewCheckRenderer(&buf).RenderCheck(&usecase.CheckChainResult{
			Chain: chain,
			Probe: &usecase.RPCProbe{ChainID: 8453, BlockNumber: 123, Latency: 42 * time.Millisecond},
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "base: chain ID 8453")
		assert.Contains(t, buf.String(), "123")
		assert.Contains(t, buf.String(), "42ms")
	})

	t.Run("mismatch", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewCheckRenderer(&buf).RenderCheck(&usecase.CheckChainResult{
			Chain: chain,
			Probe: &usecase.RPCProbe{ChainID: 1},
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "RPC serves chain ID 1, expected 8453")
	})
}
