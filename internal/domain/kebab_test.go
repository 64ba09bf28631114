package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKebabize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single word", "mainnet", "mainnet"},
		{"camel case", "arbitrumNova", "arbitrum-nova"},
		{"pascal case", "ArbitrumOne", "arbitrum-one"},
		{"trailing acronym", "opBNB", "op-bnb"},
		{"only capitals", "BSC", "bsc"},
		{"acronym before word", "BSCTestnet", "bsc-testnet"},
		{"several words", "zkSyncSepoliaTestnet", "zk-sync-sepolia-testnet"},
		{"short words", "polygonZkEvm", "polygon-zk-evm"},
		{"digits stay attached", "base2Sepolia", "base2-sepolia"},
		{"already kebab", "arbitrum-nova", "arbitrum-nova"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Kebabize(tt.input))
		})
	}
}

func TestKebabizeIsIdempotent(t *testing.T) {
	for _, name := range []string{"arbitrumNova", "opBNB", "BSCTestnet", "celoAlfajores", "zora"} {
		once := Kebabize(name)
		assert.Equal(t, once, Kebabize(once), name)
	}
}
