package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/trebuchet-org/chains-cli/internal/domain"
)

// ForgeMode selects which forge arguments are produced
type ForgeMode string

const (
	ForgeModeDefault ForgeMode = "default"
	ForgeModeDeploy  ForgeMode = "deploy"
	ForgeModeVerify  ForgeMode = "verify"
)

// ForgeModeFromFlags maps the --verify/--deploy flags to a mode. Verify wins
// when both are set.
func ForgeModeFromFlags(verify, deploy bool) ForgeMode {
	switch {
	case verify:
		return ForgeModeVerify
	case deploy:
		return ForgeModeDeploy
	default:
		return ForgeModeDefault
	}
}

// BuildForgeArgs synthesizes the forge argument groups for a chain
func BuildForgeArgs(cfg domain.ChainConfig, mode ForgeMode) []string {
	switch mode {
	case ForgeModeVerify:
		args := []string{fmt.Sprintf("--chain %d", cfg.ID)}
		if cfg.HasEtherscanAPIKey() {
			args = append(args, etherscanAPIKeyArg(cfg))
		} else {
			args = append(args, blockscoutVerifierArg(cfg))
		}
		return args

	case ForgeModeDeploy:
		args := []string{rpcURLArg(cfg)}
		if cfg.HasVerifierURL() {
			args = append(args, blockscoutVerifierArg(cfg))
		}
		if cfg.HasEtherscanAPIKey() {
			args = append(args, etherscanAPIKeyArg(cfg))
		}
		return args

	default:
		return []string{rpcURLArg(cfg)}
	}
}

func rpcURLArg(cfg domain.ChainConfig) string {
	return "--rpc-url " + domain.Display(cfg.RPCURL)
}

func etherscanAPIKeyArg(cfg domain.ChainConfig) string {
	return "--etherscan-api-key " + domain.Display(cfg.EtherscanAPIKey)
}

func blockscoutVerifierArg(cfg domain.ChainConfig) string {
	return "--verifier-url " + domain.Display(cfg.VerifierURL) + " --verifier blockscout"
}

// ForgeArgsParams contains parameters for building forge arguments
type ForgeArgsParams struct {
	Chain  string
	Verify bool
	Deploy bool
}

// ForgeArgsResult contains the synthesized arguments
type ForgeArgsResult struct {
	Chain *ResolvedChain
	Mode  ForgeMode
	Args  []string
}

// Line returns the arguments as a single command-line fragment
func (r *ForgeArgsResult) Line() string {
	return strings.Join(r.Args, " ")
}

// ForgeArgs is a use case for printing forge arguments for a chain
type ForgeArgs struct {
	resolver *ResolveChain
}

// NewForgeArgs creates a new ForgeArgs use case
func NewForgeArgs(resolver *ResolveChain) *ForgeArgs {
	return &ForgeArgs{resolver: resolver}
}

// Run executes the use case
func (uc *ForgeArgs) Run(ctx context.Context, params ForgeArgsParams) (*ForgeArgsResult, error) {
	chain, err := uc.resolver.Run(ctx, ResolveChainParams{Chain: params.Chain})
	if err != nil {
		return nil, err
	}

	mode := ForgeModeFromFlags(params.Verify, params.Deploy)
	return &ForgeArgsResult{
		Chain: chain,
		Mode:  mode,
		Args:  BuildForgeArgs(chain.Config, mode),
	}, nil
}
