package registry

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/trebuchet-org/chains-cli/internal/domain"
	"github.com/trebuchet-org/chains-cli/internal/domain/config"
	"github.com/trebuchet-org/chains-cli/internal/usecase"
)

//go:embed chains.json
var bundledChains []byte

// Bundled returns a fresh copy of the registry compiled into the binary
func Bundled() (map[string]domain.RawChain, error) {
	var chains map[string]domain.RawChain
	if err := json.Unmarshal(bundledChains, &chains); err != nil {
		return nil, fmt.Errorf("failed to parse bundled registry: %w", err)
	}
	return chains, nil
}

// SourceAdapter serves the bundled registry extended by the user's registry file
type SourceAdapter struct {
	extensionPath string
	log           *slog.Logger

	once   sync.Once
	chains map[string]domain.RawChain
	err    error
}

// NewSourceAdapter creates a new registry source
func NewSourceAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *SourceAdapter {
	var extensionPath string
	if cfg.RegistryFile != "" {
		extensionPath = filepath.Join(cfg.ConfigDir, cfg.RegistryFile)
	}
	return &SourceAdapter{
		extensionPath: extensionPath,
		log:           log.With("component", "RegistrySource"),
	}
}

// Load returns the registry keyed by source name. Entries of the extension
// file replace bundled entries with the same source name.
func (s *SourceAdapter) Load(ctx context.Context) (map[string]domain.RawChain, error) {
	s.once.Do(func() {
		s.chains, s.err = s.load()
	})
	if s.err != nil {
		return nil, s.err
	}

	out := make(map[string]domain.RawChain, len(s.chains))
	for name, chain := range s.chains {
		out[name] = chain
	}
	return out, nil
}

func (s *SourceAdapter) load() (map[string]domain.RawChain, error) {
	chains, err := Bundled()
	if err != nil {
		return nil, err
	}

	extension := s.loadExtension()
	for name, chain := range extension {
		if _, ok := chains[name]; ok {
			s.log.Debug("registry extension replaces bundled chain", "name", name)
		}
		chains[name] = chain
	}

	s.log.Debug("loaded chain registry", "bundled", len(chains)-len(extension), "extension", len(extension))
	return chains, nil
}

// loadExtension reads the user's registry file. Problems are logged, never fatal.
func (s *SourceAdapter) loadExtension() map[string]domain.RawChain {
	if s.extensionPath == "" {
		return nil
	}

	data, err := os.ReadFile(s.extensionPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("failed to read registry extension", "path", s.extensionPath, "error", err)
		}
		return nil
	}

	var chains map[string]domain.RawChain
	if err := json.Unmarshal(data, &chains); err != nil {
		s.log.Warn("ignoring malformed registry extension", "path", s.extensionPath, "error", err)
		return nil
	}

	for name, chain := range chains {
		if chain.ID == 0 {
			s.log.Warn("ignoring registry extension entry without id", "name", name)
			delete(chains, name)
		}
	}
	return chains
}

// Ensure SourceAdapter implements RegistrySource
var _ usecase.RegistrySource = (*SourceAdapter)(nil)
