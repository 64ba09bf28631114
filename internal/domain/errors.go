package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrChainNotSpecified is returned when a command needs a chain and none was given
	ErrChainNotSpecified = errors.New("chain not specified")

	// ErrChainIDMismatch is returned when an RPC endpoint serves a different chain
	ErrChainIDMismatch = errors.New("chain ID mismatch")

	// ErrNoRPCURL is returned when a chain has no RPC URL to talk to
	ErrNoRPCURL = errors.New("no RPC URL configured")
)

// UnknownChainError is returned when a chain is neither in the registry nor
// backed by an override file.
type UnknownChainError struct {
	Chain       string
	Suggestions []string
}

func (e UnknownChainError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown chain '%s'", e.Chain)
	}
	return fmt.Sprintf("unknown chain '%s' - did you mean: %s?", e.Chain, strings.Join(e.Suggestions, ", "))
}

// Is makes errors.Is(err, ErrNotFound) match unknown chains.
func (e UnknownChainError) Is(target error) bool {
	return target == ErrNotFound
}
