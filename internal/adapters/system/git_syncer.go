package system

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"github.com/trebuchet-org/chains-cli/internal/domain/config"
	"github.com/trebuchet-org/chains-cli/internal/usecase"
	"golang.org/x/term"
)

// GitSyncerAdapter pulls the config directory with git
type GitSyncerAdapter struct {
	dir      string
	remote   string
	branch   string
	allowPTY bool
	log      *slog.Logger
}

// NewGitSyncerAdapter creates a new git syncer
func NewGitSyncerAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *GitSyncerAdapter {
	return &GitSyncerAdapter{
		dir:      cfg.ConfigDir,
		remote:   cfg.GitRemote,
		branch:   cfg.GitBranch,
		allowPTY: !cfg.NonInteractive,
		log:      log.With("component", "GitSyncer"),
	}
}

func (g *GitSyncerAdapter) args() []string {
	return []string{"pull", g.remote, g.branch}
}

// Command returns the command line that Pull runs
func (g *GitSyncerAdapter) Command() string {
	return "git " + strings.Join(g.args(), " ")
}

// Pull runs git pull inside the config directory, streaming its output.
// When stdout is a terminal git runs under a PTY and keeps its progress output.
func (g *GitSyncerAdapter) Pull(ctx context.Context, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, "git", g.args()...)
	cmd.Dir = g.dir

	usePTY := g.allowPTY && isTerminal(stdout)
	g.log.Debug("running git", "dir", g.dir, "args", g.args(), "pty", usePTY)

	if usePTY {
		ptyFile, err := pty.Start(cmd)
		if err == nil {
			defer func() {
				_ = ptyFile.Close()
			}()
			// Reading the PTY fails with EIO once git exits
			_, _ = io.Copy(stdout, ptyFile)
			if err := cmd.Wait(); err != nil {
				return fmt.Errorf("git pull failed: %w", err)
			}
			return nil
		}
		g.log.Debug("pty unavailable, falling back to pipes", "error", err)
		cmd = exec.CommandContext(ctx, "git", g.args()...)
		cmd.Dir = g.dir
	}

	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git pull failed: %w", err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Ensure GitSyncerAdapter implements RepoSyncer
var _ usecase.RepoSyncer = (*GitSyncerAdapter)(nil)
