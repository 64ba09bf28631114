package render

type Renderer[T any] interface {
	Render(result T) error
}

// OutputFormat selects how a chain is rendered
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
	FormatFoundry OutputFormat = "foundry"
)

// ParseOutputFormat validates a --format value
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch f := OutputFormat(s); f {
	case FormatText, FormatJSON, FormatYAML, FormatFoundry:
		return f, true
	case "":
		return FormatText, true
	default:
		return "", false
	}
}
