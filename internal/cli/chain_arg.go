package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chains-cli/internal/app"
	"github.com/trebuchet-org/chains-cli/internal/domain"
	"golang.org/x/term"
)

// chainArg returns the chain argument. Without one, the user picks a chain
// when stdin is a terminal and prompts are allowed.
func chainArg(cmd *cobra.Command, app *app.App, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if app.Config.NonInteractive || !canPrompt(cmd) {
		return "", domain.ErrChainNotSpecified
	}

	entry, err := app.Selector.SelectChain(cmd.Context(), app.Chains.Entries(), "Select a chain")
	if err != nil {
		return "", err
	}
	return entry.Key, nil
}

// canPrompt reports whether the command reads from a terminal
func canPrompt(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
