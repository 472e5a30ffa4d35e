package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantfold/marketdata/internal/models"
	"github.com/quantfold/marketdata/internal/workspace"
	"github.com/quantfold/marketdata/pkg/config"
)

// setupCmd represents the setup command
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the data workspace directory tree",
	Long: `Creates the fixed workspace tree under DATA_DIR and the per-ticker
directories for the default universe. Safe to run repeatedly; existing
directories are left untouched.

Example:
  go run ./cmd/marketdata setup
  go run ./cmd/marketdata setup --tickers SPY,AAPL`,
	RunE: runSetup,
}

var setupTickers []string

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().StringSliceVar(&setupTickers, "tickers", nil, "tickers to prepare (default: built-in universe)")
}

func runSetup(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	tickers := setupTickers
	if len(tickers) == 0 {
		tickers = config.DefaultTickers
	}
	for _, ticker := range tickers {
		if !config.ValidTicker(ticker) {
			return fmt.Errorf("invalid ticker: %q", ticker)
		}
	}

	layout := workspace.New(cfg.DataDir)
	if err := layout.Ensure(); err != nil {
		return fmt.Errorf("ensure workspace: %w", err)
	}

	timeframes := []models.DataType{models.DataTypeDaily, models.DataTypeMinute, models.DataTypeOptions}
	for _, ticker := range tickers {
		for _, timeframe := range timeframes {
			if _, err := layout.TickerDataDir(ticker, timeframe); err != nil {
				return fmt.Errorf("prepare %s/%s: %w", ticker, timeframe, err)
			}
		}
		if _, err := layout.TickerMetadataDir(ticker); err != nil {
			return fmt.Errorf("prepare %s metadata: %w", ticker, err)
		}
	}

	log.WithFields(map[string]interface{}{
		"root":    cfg.DataDir,
		"tickers": len(tickers),
	}).Info("Workspace ready")

	fmt.Printf("Workspace ready at %s (%d tickers)\n", cfg.DataDir, len(tickers))
	return nil
}
