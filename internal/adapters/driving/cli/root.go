// Package cli provides the hovertip command line interface.
// Commands are registered on a package level root command in init
// functions, one file per command.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hovertip/internal/adapters/driven/config/file"
	"github.com/custodia-labs/hovertip/internal/core/ports/driven"
	"github.com/custodia-labs/hovertip/internal/logger"
)

// version is reported by the version command. Overridden at build time
// with -ldflags "-X .../cli.version=...".
var version = "0.02"

var (
	verbose   bool
	configDir string

	// configStore holds the settings loaded before every command runs.
	configStore driven.ConfigStore
)

var rootCmd = &cobra.Command{
	Use:   "hovertip",
	Short: "Hover tooltips for page elements",
	Long: `hovertip attaches hover tooltips to the elements of a page.

A tooltip appears next to the pointer when it enters its element,
optionally follows the pointer, can be pinned by clicking and can
dismiss itself after a delay. Pages are declared in TOML or YAML files
and can be explored interactively (tui), scripted (simulate) or driven
by an assistant over the Model Context Protocol (mcp serve).`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log tooltip transitions to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "settings directory (default ~/.hovertip)")
}

// loadSettings opens the settings file and configures logging.
// The verbose flag wins over the verbose setting when set.
func loadSettings(cmd *cobra.Command, _ []string) error {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	configStore = store

	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetVerbose(verbose || store.GetBool(file.KeyVerbose))
	logger.Debug("settings loaded from %s", store.Path())

	return nil
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
