package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/chains-cli/internal/usecase"
)

// ChainsRenderer renders the chain list
type ChainsRenderer struct {
	out   io.Writer
	color bool
}

// NewChainsRenderer creates a new chains renderer
func NewChainsRenderer(out io.Writer, color bool) *ChainsRenderer {
	return &ChainsRenderer{
		out:   out,
		color: color,
	}
}

// RenderChainsList renders the chains as a borderless table
func (r *ChainsRenderer) RenderChainsList(result *usecase.ListChainsResult) error {
	if len(result.Chains) == 0 {
		fmt.Fprintln(r.out, "No chains found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingRight: "   ",
	}
	t.Style().Format.Header = text.FormatUpper

	t.AppendHeader(table.Row{"Chain", "ID", "Name", "Network", "RPC URL", "Explorer"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 5, WidthMax: 60},
	})

	for _, chain := range result.Chains {
		t.AppendRow(table.Row{
			r.paint(keyStyle.Sprint, chain.Key),
			strconv.FormatUint(chain.ChainID, 10),
			chain.DisplayName,
			r.network(chain.Testnet),
			r.unset(chain.RPCURL),
			r.unset(chain.Explorer),
		})
	}
	t.Render()

	fmt.Fprintln(r.out)
	if len(result.Chains) == result.Total {
		fmt.Fprintf(r.out, "%d chains\n", result.Total)
	} else {
		fmt.Fprintf(r.out, "%d of %d chains\n", len(result.Chains), result.Total)
	}

	return nil
}

func (r *ChainsRenderer) network(testnet bool) string {
	if testnet {
		return r.paint(testnetStyle.Sprint, "testnet")
	}
	return r.paint(mainnetStyle.Sprint, "mainnet")
}

func (r *ChainsRenderer) unset(v string) string {
	if v != "" {
		return v
	}
	if !r.color {
		return "undefined"
	}
	return valueOrUnset(v)
}

func (r *ChainsRenderer) paint(sprint func(a ...interface{}) string, s string) string {
	if !r.color {
		return s
	}
	return sprint(s)
}
