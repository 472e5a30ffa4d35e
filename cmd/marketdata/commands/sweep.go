package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/quantfold/marketdata/internal/quality"
	"github.com/quantfold/marketdata/internal/scheduler"
	"github.com/quantfold/marketdata/internal/scheduler/jobs"
)

// sweepCmd represents the sweep command
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run the data quality sweep",
	Long: `Runs the quality sweep that recomputes the score of every registered
quality report and flags the ones below the configured threshold.

By default the sweep runs on its cron schedule (weekday evenings) until
interrupted; --once executes a single sweep and exits.

Example:
  go run ./cmd/marketdata sweep --once
  go run ./cmd/marketdata sweep`,
	RunE: runSweep,
}

var sweepOnce bool

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().BoolVar(&sweepOnce, "once", false, "run a single sweep and exit")
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	// Reports are registered by the ingestion pipeline as it finishes
	// each ticker; the sweep operates on whatever is registered.
	registry := quality.NewRegistry()
	job := jobs.NewQualitySweepJob(registry, cfg.Quality.ScoreThreshold, log)

	sched := scheduler.New(log)
	if err := sched.AddJob(job); err != nil {
		return err
	}

	if sweepOnce {
		result, err := sched.RunNow(job.Name())
		if err != nil {
			return err
		}
		if !result.Success {
			return fmt.Errorf("sweep failed: %s", result.Error)
		}
		fmt.Printf("Sweep completed in %s (%d reports)\n", result.Duration, registry.Len())
		return nil
	}

	sched.Start()
	defer sched.Stop()

	fmt.Printf("Quality sweep scheduled (%s). Press Ctrl+C to stop.\n", job.Schedule())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	return nil
}
