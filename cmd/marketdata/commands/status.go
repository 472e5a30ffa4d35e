package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantfold/marketdata/internal/workspace"
	"github.com/quantfold/marketdata/pkg/config"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and workspace state",
	Long: `Prints the loaded configuration (credentials redacted) and whether
the workspace directory tree exists.

Example:
  go run ./cmd/marketdata status`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, _, err := bootstrap()
	if err != nil {
		return err
	}

	fmt.Println("=== marketdata status ===")
	fmt.Printf("Environment:        %s\n", cfg.Env)
	fmt.Printf("Data dir:           %s\n", cfg.DataDir)
	fmt.Printf("Polygon API key:    set (%d chars)\n", len(cfg.PolygonAPIKey))
	fmt.Printf("Rate limit:         %d req/min\n", cfg.Collector.RateLimitPerMinute)
	fmt.Printf("Timeout:            %ds\n", cfg.Collector.TimeoutSeconds)
	fmt.Printf("Max retries:        %d\n", cfg.Collector.MaxRetries)
	fmt.Printf("Quality threshold:  %.2f\n", cfg.Quality.ScoreThreshold)
	fmt.Printf("Max missing days:   %.0f%%\n", cfg.Quality.MaxMissingDaysPercent*100)
	fmt.Println()

	layout := workspace.New(cfg.DataDir)
	for _, dir := range []string{layout.RawDir(), layout.QADir(), layout.MetadataDir()} {
		state := "missing (run `marketdata setup`)"
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			state = "ok"
		}
		fmt.Printf("%-20s %s\n", dir, state)
	}

	fmt.Printf("\nDefault universe: %v\n", config.DefaultTickers)
	return nil
}
