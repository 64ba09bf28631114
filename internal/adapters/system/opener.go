package system

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"

	"github.com/trebuchet-org/chains-cli/internal/domain/config"
	"github.com/trebuchet-org/chains-cli/internal/usecase"
)

// OpenerAdapter opens URLs with the platform's default handler
type OpenerAdapter struct {
	command []string
	log     *slog.Logger
}

// NewOpenerAdapter creates a new URL opener. A configured opener command
// replaces the platform default; it may carry its own arguments.
func NewOpenerAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *OpenerAdapter {
	command := strings.Fields(cfg.Opener)
	if len(command) == 0 {
		command = DefaultOpener(runtime.GOOS)
	}
	return &OpenerAdapter{
		command: command,
		log:     log.With("component", "URLOpener"),
	}
}

// DefaultOpener returns the URL handler command for an operating system
func DefaultOpener(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	default:
		return []string{"xdg-open"}
	}
}

// Command returns the command line used for target
func (o *OpenerAdapter) Command(target string) []string {
	return append(append([]string{}, o.command...), target)
}

// Open hands target to the opener and waits for it to exit. An empty target is
// passed through unchanged.
func (o *OpenerAdapter) Open(ctx context.Context, target string) error {
	args := o.Command(target)
	o.log.Debug("opening url", "command", args)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to open %q with %s: %w: %s", target, args[0], err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Ensure OpenerAdapter implements URLOpener
var _ usecase.URLOpener = (*OpenerAdapter)(nil)
