// Package jobs contains the scheduled jobs of the market data system.
package jobs

import (
	"context"

	"github.com/quantfold/marketdata/internal/models"
	"github.com/quantfold/marketdata/internal/quality"
	"github.com/quantfold/marketdata/pkg/logger"
)

// QualitySweepJob recomputes the score of every registered quality
// report in one batch. Report mutators leave the stored score alone, so
// the sweep is where findings accumulated since the last run actually
// move the score.
type QualitySweepJob struct {
	registry  *quality.Registry
	threshold float64
	logger    *logger.Logger
}

// NewQualitySweepJob creates a quality sweep over the given registry.
// Reports scoring below threshold are logged as degraded.
func NewQualitySweepJob(registry *quality.Registry, threshold float64, log *logger.Logger) *QualitySweepJob {
	return &QualitySweepJob{
		registry:  registry,
		threshold: threshold,
		logger:    log,
	}
}

// Name returns the job name
func (j *QualitySweepJob) Name() string {
	return "quality_sweep"
}

// Schedule returns the cron schedule (weekdays, 17:00, after the close)
func (j *QualitySweepJob) Schedule() string {
	return "0 0 17 * * 1-5"
}

// Run recomputes every registered report and logs the degraded ones.
func (j *QualitySweepJob) Run(ctx context.Context) error {
	swept := 0
	degraded := 0

	j.registry.Each(func(report *models.QualityReport) {
		report.RecomputeScore()
		swept++

		if !report.MeetsThreshold(j.threshold) {
			degraded++
			j.logger.WithFields(map[string]interface{}{
				"ticker":        report.Ticker,
				"data_type":     string(report.DataType),
				"score":         report.QualityScore,
				"missing_dates": len(report.MissingDates),
				"anomalies":     len(report.Anomalies),
			}).Warn("Data quality below threshold")
		}
	})

	j.logger.WithFields(map[string]interface{}{
		"swept":    swept,
		"degraded": degraded,
	}).Info("Quality sweep completed")

	return nil
}
