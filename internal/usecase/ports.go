package usecase

import (
	"context"
	"io"
	"time"

	"github.com/trebuchet-org/chains-cli/internal/domain"
)

// RegistrySource provides the raw upstream chain registry, keyed by source name
type RegistrySource interface {
	Load(ctx context.Context) (map[string]domain.RawChain, error)
}

// ConfigFileLoader reads optional JSON files from the config directory.
// Load never fails: a missing or malformed file yields an empty map.
type ConfigFileLoader interface {
	Load(ctx context.Context, name string) map[string]any
	Exists(name string) bool
	Path(name string) string
	Dir() string
	List(ctx context.Context) ([]string, error)
}

// URLOpener opens a URL with the operating system's handler
type URLOpener interface {
	Open(ctx context.Context, target string) error
}

// RepoSyncer pulls the config directory from its remote
type RepoSyncer interface {
	Pull(ctx context.Context, stdout, stderr io.Writer) error
	Command() string
}

// RPCProbe is what an RPC endpoint reported about itself
type RPCProbe struct {
	ChainID     uint64
	BlockNumber uint64
	Latency     time.Duration
}

// RPCChecker queries an RPC endpoint
type RPCChecker interface {
	Probe(ctx context.Context, rpcURL string) (*RPCProbe, error)
}

// ChainSelector handles interactive selection of chains
type ChainSelector interface {
	SelectChain(ctx context.Context, entries []domain.ChainEntry, prompt string) (*domain.ChainEntry, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
