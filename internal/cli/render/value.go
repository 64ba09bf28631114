package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/chains-cli/internal/usecase"
)

// LineRenderer prints synthesized command fragments as single plain lines, so
// they can be spliced into shell commands
type LineRenderer struct {
	out io.Writer
}

// NewLineRenderer creates a new line renderer
func NewLineRenderer(out io.Writer) *LineRenderer {
	return &LineRenderer{out: out}
}

// RenderForgeArgs prints the forge arguments joined by spaces
func (r *LineRenderer) RenderForgeArgs(result *usecase.ForgeArgsResult) error {
	_, err := fmt.Fprintln(r.out, result.Line())
	return err
}

// RenderValue prints a single chain value
func (r *LineRenderer) RenderValue(result *usecase.ChainValueResult) error {
	_, err := fmt.Fprintln(r.out, result.Value)
	return err
}
