package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
)

// SyncRegistryParams contains parameters for updating the config repository
type SyncRegistryParams struct {
	Stdout io.Writer
	Stderr io.Writer
}

// SyncRegistryResult contains the result of updating the config repository
type SyncRegistryResult struct {
	Dir     string
	Command string
}

// SyncRegistry pulls the config directory, which is a git checkout holding
// the override files and the registry extension.
type SyncRegistry struct {
	loader   ConfigFileLoader
	syncer   RepoSyncer
	progress ProgressSink
}

// NewSyncRegistry creates a new sync registry use case
func NewSyncRegistry(loader ConfigFileLoader, syncer RepoSyncer, progress ProgressSink) *SyncRegistry {
	return &SyncRegistry{
		loader:   loader,
		syncer:   syncer,
		progress: progress,
	}
}

// Run executes the use case
func (uc *SyncRegistry) Run(ctx context.Context, params SyncRegistryParams) (*SyncRegistryResult, error) {
	dir := uc.loader.Dir()
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("config directory %s does not exist", dir)
	}

	command := uc.syncer.Command()
	uc.progress.Info("Updating repo...")
	uc.progress.Info(fmt.Sprintf("running: %s", command))

	if err := uc.syncer.Pull(ctx, params.Stdout, params.Stderr); err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", dir, err)
	}

	return &SyncRegistryResult{
		Dir:     dir,
		Command: command,
	}, nil
}
