package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/chains-cli/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// RenderConfig renders the configuration display
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	fmt.Fprintf(r.out, "📁 Config directory: %s\n", result.ConfigDir)

	if result.Exists {
		fmt.Fprintf(r.out, "📋 Global config:    %s\n", result.GlobalConfigPath)
	} else {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("No %s file found", result.GlobalConfigPath)))
	}

	switch {
	case result.AlchemyAPIKey == "":
		fmt.Fprintf(r.out, "Alchemy API key:     %s\n", "(not set)")
	case result.AlchemyFromEnv:
		fmt.Fprintf(r.out, "Alchemy API key:     %s (from environment)\n", result.AlchemyAPIKey)
	default:
		fmt.Fprintf(r.out, "Alchemy API key:     %s\n", result.AlchemyAPIKey)
	}

	if result.RegistryFile != "" {
		fmt.Fprintf(r.out, "📦 Registry extension: %s\n", result.RegistryFile)
	}

	if len(result.OverrideFiles) == 0 {
		fmt.Fprintln(r.out, "\nNo chain overrides")
		return nil
	}

	fmt.Fprintf(r.out, "\nChain overrides (%d):\n", len(result.OverrideFiles))
	for _, name := range result.OverrideFiles {
		fmt.Fprintf(r.out, "  • %s\n", name)
	}

	return nil
}
