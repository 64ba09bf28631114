package render

import (
	"fmt"
	"io"
	"time"

	"github.com/trebuchet-org/chains-cli/internal/usecase"
)

// CheckRenderer renders RPC check results
type CheckRenderer struct {
	out io.Writer
}

// NewCheckRenderer creates a new check renderer
func NewCheckRenderer(out io.Writer) *CheckRenderer {
	return &CheckRenderer{out: out}
}

// RenderCheck renders what the RPC endpoint reported
func (r *CheckRenderer) RenderCheck(result *usecase.CheckChainResult) error {
	probe := result.Probe
	latency := probe.Latency.Round(time.Millisecond)

	if result.Mismatch() {
		fmt.Fprintln(r.out, FormatError(fmt.Sprintf(
			"%s: RPC serves chain ID %d, expected %d",
			result.Chain.Key, probe.ChainID, result.Chain.Config.ID,
		)))
	} else {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s: chain ID %d", result.Chain.Key, probe.ChainID)))
	}

	fmt.Fprintf(r.out, "  %s %d\n", labelStyle.Sprintf("%-10s", "Block:"), probe.BlockNumber)
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprintf("%-10s", "Latency:"), latency)

	return nil
}
