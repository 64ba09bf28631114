package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/chains-cli/internal/domain"
	"github.com/trebuchet-org/chains-cli/internal/domain/config"
	"github.com/trebuchet-org/chains-cli/internal/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeRegistrySource serves a fixed registry
type fakeRegistrySource struct {
	chains map[string]domain.RawChain
	err    error
}

func (f *fakeRegistrySource) Load(ctx context.Context) (map[string]domain.RawChain, error) {
	return f.chains, f.err
}

// memLoader is an in-memory ConfigFileLoader
type memLoader struct {
	dir   string
	files map[string]map[string]any
}

func newMemLoader(dir string) *memLoader {
	return &memLoader{dir: dir, files: map[string]map[string]any{}}
}

func (l *memLoader) with(name string, values map[string]any) *memLoader {
	l.files[name] = values
	return l
}

func (l *memLoader) Load(ctx context.Context, name string) map[string]any {
	values, ok := l.files[name]
	if !ok {
		return map[string]any{}
	}
	out := make(map[string]any, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}

func (l *memLoader) Exists(name string) bool {
	_, ok := l.files[name]
	return ok
}

func (l *memLoader) Path(name string) string {
	return filepath.Join(l.dir, name)
}

func (l *memLoader) Dir() string {
	return l.dir
}

func (l *memLoader) List(ctx context.Context) ([]string, error) {
	var names []string
	for name := range l.files {
		if name == config.GlobalConfigFile || name == "registry.json" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// MockURLOpener is a mock implementation of URLOpener
type MockURLOpener struct {
	mock.Mock
}

func (m *MockURLOpener) Open(ctx context.Context, target string) error {
	args := m.Called(ctx, target)
	return args.Error(0)
}

// MockRepoSyncer is a mock implementation of RepoSyncer
type MockRepoSyncer struct {
	mock.Mock
}

func (m *MockRepoSyncer) Pull(ctx context.Context, stdout, stderr io.Writer) error {
	args := m.Called(ctx, stdout, stderr)
	return args.Error(0)
}

func (m *MockRepoSyncer) Command() string {
	return m.Called().String(0)
}

// MockRPCChecker is a mock implementation of RPCChecker
type MockRPCChecker struct {
	mock.Mock
}

func (m *MockRPCChecker) Probe(ctx context.Context, rpcURL string) (*usecase.RPCProbe, error) {
	args := m.Called(ctx, rpcURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.RPCProbe), args.Error(1)
}

// MockProgressSink records progress output
type MockProgressSink struct {
	events []usecase.ProgressEvent
	infos  []string
	errors []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string) {
	m.infos = append(m.infos, message)
}

func (m *MockProgressSink) Error(message string) {
	m.errors = append(m.errors, message)
}

func testRegistry() map[string]domain.RawChain {
	return map[string]domain.RawChain{
		"mainnet": {
			ID:      1,
			Name:    "Ethereum",
			RPCURLs: map[string]domain.RPCURLs{"default": {HTTP: []string{"https://cloudflare-eth.com"}}, "alchemy": {HTTP: []string{"https://eth-mainnet.g.alchemy.com/v2"}}},
			BlockExplorers: map[string]domain.BlockExplorer{
				"default":   {Name: "Etherscan", URL: "https://etherscan.io"},
				"etherscan": {Name: "Etherscan", URL: "https://etherscan.io"},
			},
		},
		"arbitrumNova": {
			ID:      42170,
			Name:    "Arbitrum Nova",
			RPCURLs: map[string]domain.RPCURLs{"default": {HTTP: []string{"https://nova.arbitrum.io/rpc"}}},
			BlockExplorers: map[string]domain.BlockExplorer{
				"default":   {Name: "Arbiscan", URL: "https://nova.arbiscan.io"},
				"etherscan": {Name: "Arbiscan", URL: "https://nova.arbiscan.io"},
			},
		},
		"optimism": {
			ID:      10,
			Name:    "OP Mainnet",
			RPCURLs: map[string]domain.RPCURLs{"default": {HTTP: []string{"https://mainnet.optimism.io"}}},
			BlockExplorers: map[string]domain.BlockExplorer{
				"default":   {Name: "Optimism Explorer", URL: "https://explorer.optimism.io"},
				"etherscan": {Name: "Etherscan", URL: "https://optimistic.etherscan.io"},
			},
		},
		"base": {
			ID:      8453,
			Name:    "Base",
			RPCURLs: map[string]domain.RPCURLs{"default": {HTTP: []string{"https://mainnet.base.org"}}},
		},
		"sepolia": {
			ID:      11155111,
			Name:    "Sepolia",
			Testnet: true,
			RPCURLs: map[string]domain.RPCURLs{"default": {HTTP: []string{"https://rpc.sepolia.org"}}},
		},
		"zora": {
			ID:      7777777,
			Name:    "Zora",
			RPCURLs: map[string]domain.RPCURLs{"default": {HTTP: []string{"https://rpc.zora.energy"}}},
			BlockExplorers: map[string]domain.BlockExplorer{
				"default": {Name: "Explorer", URL: "https://explorer.zora.energy"},
			},
		},
		"bscTestnet": {
			ID:      97,
			Name:    "Binance Smart Chain Testnet",
			Testnet: true,
			RPCURLs: map[string]domain.RPCURLs{"default": {HTTP: []string{"https://data-seed-prebsc-1-s1.bnbchain.org:8545"}}},
		},
		"foundry": {
			ID:      31337,
			Name:    "Foundry",
			RPCURLs: map[string]domain.RPCURLs{"default": {HTTP: []string{"http://127.0.0.1:8545"}}},
		},
		"hardhat": {
			ID:      31337,
			Name:    "Hardhat",
			RPCURLs: map[string]domain.RPCURLs{"default": {HTTP: []string{"http://127.0.0.1:8545"}}},
		},
	}
}

func testTable() *domain.ChainTable {
	return usecase.NormalizeRegistry(testRegistry(), nil)
}

func newResolver(loader usecase.ConfigFileLoader) *usecase.ResolveChain {
	return usecase.NewResolveChain(testTable(), loader, testLogger())
}
