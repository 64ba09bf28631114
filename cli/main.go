package main

import (
	"fmt"
	"os"

	"github.com/trebuchet-org/chains-cli/internal/cli"
	"github.com/trebuchet-org/chains-cli/internal/cli/render"
	"github.com/trebuchet-org/chains-cli/internal/config"
)

// Set via -ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, render.FormatError(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
