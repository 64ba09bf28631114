package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/chains-cli/internal/adapters/progress"
	"github.com/trebuchet-org/chains-cli/internal/app"
	"github.com/trebuchet-org/chains-cli/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chains <chain>",
		Short: "Resolve EVM chain configuration for forge and friends",
		Long: `chains resolves a chain name or ID to its RPC URL, block explorer and
verification settings, merging the bundled chain registry with your
overrides in ~/.chains.

Run without a subcommand, "chains <chain>" behaves like "chains forge <chain>".`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			// Set up viper
			v := config.SetupViper(cmd)

			sink := progress.NewSpinnerSink(cmd.OutOrStdout(), cmd.ErrOrStderr())

			// Initialize app with DI
			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			cmd.SetContext(context.WithValue(cmd.Context(), appKey, appInstance))

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			if len(args) == 0 && (app.Config.NonInteractive || !canPrompt(cmd)) {
				return cmd.Help()
			}
			return runForge(cmd, args)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().String("config-dir", "", "Config directory (default ~/.chains)")
	addForgeFlags(rootCmd)

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	// Main commands
	for _, cmd := range []*cobra.Command{
		NewForgeCmd(),
		NewRPCCmd(),
		NewEtherscanCmd(),
		NewExplorerCmd(),
		NewShowCmd(),
		NewListCmd(),
		NewCheckCmd(),
	} {
		cmd.GroupID = "main"
		rootCmd.AddCommand(cmd)
	}

	// Management commands
	for _, cmd := range []*cobra.Command{
		NewUpdateCmd(),
		NewConfigCmd(),
	} {
		cmd.GroupID = "management"
		rootCmd.AddCommand(cmd)
	}

	// Version command
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
