package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/trebuchet-org/chains-cli/internal/domain/config"
	"github.com/trebuchet-org/chains-cli/internal/usecase"
)

// ConfigFileLoaderAdapter reads JSON files from the chains config directory
type ConfigFileLoaderAdapter struct {
	dir          string
	registryFile string
	log          *slog.Logger
}

// NewConfigFileLoaderAdapter creates a new ConfigFileLoaderAdapter
func NewConfigFileLoaderAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *ConfigFileLoaderAdapter {
	return &ConfigFileLoaderAdapter{
		dir:          cfg.ConfigDir,
		registryFile: cfg.RegistryFile,
		log:          log.With("component", "ConfigFileLoader"),
	}
}

// Dir returns the config directory
func (l *ConfigFileLoaderAdapter) Dir() string {
	return l.dir
}

// Path returns the path of a file inside the config directory
func (l *ConfigFileLoaderAdapter) Path(name string) string {
	return filepath.Join(l.dir, name)
}

// Exists checks if a regular file with the given name exists
func (l *ConfigFileLoaderAdapter) Exists(name string) bool {
	if !validName(name) {
		return false
	}
	info, err := os.Stat(l.Path(name))
	return err == nil && info.Mode().IsRegular()
}

// Load reads and parses a JSON object. A missing, unreadable or malformed file
// yields an empty map.
func (l *ConfigFileLoaderAdapter) Load(ctx context.Context, name string) map[string]any {
	if !validName(name) {
		l.log.Warn("refusing to load file outside config directory", "name", name)
		return map[string]any{}
	}

	path := l.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			l.log.Warn("failed to read config file", "path", path, "error", err)
		}
		return map[string]any{}
	}

	values, err := parseObject(data)
	if err != nil {
		l.log.Warn("ignoring malformed config file", "path", path, "error", err)
		return map[string]any{}
	}

	l.log.Debug("loaded config file", "path", path, "keys", len(values))
	return values
}

// List returns the names of the override files in the config directory.
// config.json and the registry extension are not overrides and are skipped.
func (l *ConfigFileLoaderAdapter) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, config.OverrideFileExt) {
			continue
		}
		if name == config.GlobalConfigFile || name == l.registryFile {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// parseObject decodes a JSON object
func parseObject(data []byte) (map[string]any, error) {
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	if values == nil {
		return nil, fmt.Errorf("expected a JSON object")
	}
	return values, nil
}

// validName rejects names that would escape the config directory
func validName(name string) bool {
	return name != "" && name != "." && name != ".." && filepath.Base(name) == name && !strings.ContainsAny(name, `/\`)
}

// Ensure ConfigFileLoaderAdapter implements ConfigFileLoader
var _ usecase.ConfigFileLoader = (*ConfigFileLoaderAdapter)(nil)
