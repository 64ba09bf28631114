package domain

import (
	"sort"
	"strconv"
)

// ChainEntry is one normalized registry entry
type ChainEntry struct {
	Key        string // kebab-case lookup key
	SourceName string // name in the upstream registry
	Name       string // human readable name
	Testnet    bool
	Config     ChainConfig

	// RPCCredential is the API key embedded in Config.RPCURL, if any
	RPCCredential string
}

// ChainTable is the read-only lookup table built from the registry.
// It is safe for concurrent use because nothing mutates it after construction.
type ChainTable struct {
	entries map[string]ChainEntry
	byID    map[uint64]string
	keys    []string
}

// NewChainTable builds a table from entries. Entries are applied in order, so
// a later entry wins both a key collision and a chain ID collision.
func NewChainTable(entries []ChainEntry) *ChainTable {
	t := &ChainTable{
		entries: make(map[string]ChainEntry, len(entries)),
		byID:    make(map[uint64]string, len(entries)),
	}
	for _, e := range entries {
		e.Config = e.Config.Clone()
		t.entries[e.Key] = e
		t.byID[e.Config.ID] = e.Key
	}

	t.keys = make([]string, 0, len(t.entries))
	for k := range t.entries {
		t.keys = append(t.keys, k)
	}
	sort.Strings(t.keys)

	return t
}

// Lookup returns a copy of the configuration registered under key
func (t *ChainTable) Lookup(key string) (ChainConfig, bool) {
	e, ok := t.entries[key]
	if !ok {
		return ChainConfig{}, false
	}
	return e.Config.Clone(), true
}

// Entry returns the full entry registered under key
func (t *ChainTable) Entry(key string) (ChainEntry, bool) {
	e, ok := t.entries[key]
	if !ok {
		return ChainEntry{}, false
	}
	e.Config = e.Config.Clone()
	return e, true
}

// KeyForID maps a decimal chain ID string to the key of the chain that owns it.
func (t *ChainTable) KeyForID(id string) (string, bool) {
	chainID, err := strconv.ParseUint(id, 10, 64)
	if err != nil || strconv.FormatUint(chainID, 10) != id {
		return "", false
	}
	key, ok := t.byID[chainID]
	return key, ok
}

// Has reports whether key is a registry key
func (t *ChainTable) Has(key string) bool {
	_, ok := t.entries[key]
	return ok
}

// Keys returns all keys in sorted order
func (t *ChainTable) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Entries returns all entries sorted by key
func (t *ChainTable) Entries() []ChainEntry {
	out := make([]ChainEntry, 0, len(t.keys))
	for _, k := range t.keys {
		e := t.entries[k]
		e.Config = e.Config.Clone()
		out = append(out, e)
	}
	return out
}

// Len returns the number of chains in the table
func (t *ChainTable) Len() int {
	return len(t.entries)
}
