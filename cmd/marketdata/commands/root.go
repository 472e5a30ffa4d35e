package commands

import (
	"github.com/spf13/cobra"

	"github.com/quantfold/marketdata/pkg/config"
	"github.com/quantfold/marketdata/pkg/logger"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "marketdata",
	Short: "Market data workspace and quality tooling",
	Long: `Market data collection workspace tooling.

Manages the on-disk data workspace, computes collection windows and
runs data quality sweeps. Fetching and persistence are handled by the
collection pipeline, not by this CLI.

Examples:
  go run ./cmd/marketdata setup
  go run ./cmd/marketdata window
  go run ./cmd/marketdata sweep --once
  go run ./cmd/marketdata status`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// bootstrap loads config and builds the logger every command starts from.
// A missing POLYGON_API_KEY fails here, before any work happens.
func bootstrap() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	if verbose {
		cfg.LogLevel = "debug"
		cfg.LogFormat = "console"
	}

	return cfg, logger.New(cfg), nil
}
