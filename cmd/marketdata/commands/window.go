package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantfold/marketdata/internal/quality"
	"github.com/quantfold/marketdata/pkg/config"
)

// windowCmd represents the window command
var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Print the historical collection window",
	Long: `Prints the inclusive date window the collection pipeline should fetch:
twenty years back from today, with a cushion for leap years. Business-day
filtering happens downstream during QA.

Example:
  go run ./cmd/marketdata window`,
	RunE: runWindow,
}

func init() {
	rootCmd.AddCommand(windowCmd)
}

func runWindow(cmd *cobra.Command, args []string) error {
	// Config is loaded for its fail-fast credential check only.
	if _, _, err := bootstrap(); err != nil {
		return err
	}

	start, end := quality.FetchWindow(time.Now())

	fmt.Printf("Collection window: %s to %s\n", start.Format("2006-01-02"), end.Format("2006-01-02"))
	fmt.Printf("Universe: %v\n", config.DefaultTickers)
	return nil
}
