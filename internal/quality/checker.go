// Package quality builds data quality reports from observed price bars.
// It works entirely in memory: callers hand it the bars they ingested
// and receive a scored models.QualityReport back.
package quality

import (
	"fmt"
	"sort"
	"time"

	"github.com/quantfold/marketdata/internal/models"
	"github.com/quantfold/marketdata/pkg/config"
	"github.com/quantfold/marketdata/pkg/logger"
)

// Checker screens observed bars against expected coverage and per-asset
// class sanity limits.
type Checker struct {
	quality config.QualityConfig
	log     *logger.Logger
}

// NewChecker creates a Checker with the given quality settings.
func NewChecker(quality config.QualityConfig, log *logger.Logger) *Checker {
	return &Checker{
		quality: quality,
		log:     log,
	}
}

// CheckDaily builds a quality report for a ticker's daily bars over the
// inclusive date range. Business days with no bar become missing dates;
// bars breaching the ticker's asset class limits become anomalies. The
// returned report's score is already recomputed.
func (c *Checker) CheckDaily(ticker string, start, end time.Time, bars []*models.DailyPrice) (*models.QualityReport, error) {
	report, err := models.NewQualityReport(ticker, models.DataTypeDaily, start, end, len(bars), nil, nil, 1.0)
	if err != nil {
		return nil, err
	}

	sorted := append([]*models.DailyPrice(nil), bars...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	observed := make(map[string]bool, len(sorted))
	for _, bar := range sorted {
		observed[dayKey(bar.Date)] = true
	}

	expected := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		expected++
		if !observed[dayKey(d)] {
			if err := report.AddMissingDate(d); err != nil {
				return nil, err
			}
		}
	}

	c.screenAnomalies(report, ticker, sorted)

	report.RecomputeScore()

	if expected > 0 {
		missingFraction := float64(len(report.MissingDates)) / float64(expected)
		if missingFraction > c.quality.MaxMissingDaysPercent {
			c.log.WithFields(map[string]interface{}{
				"ticker":           ticker,
				"missing_fraction": missingFraction,
			}).Warn("Missing business days exceed configured ceiling")
		}
	}

	return report, nil
}

// screenAnomalies appends an anomaly per sanity violation: closes outside
// the asset class price band, day-over-day moves beyond the class limit,
// and zero-volume sessions.
func (c *Checker) screenAnomalies(report *models.QualityReport, ticker string, sorted []*models.DailyPrice) {
	class := config.AssetClassFor(ticker)
	limits := config.LimitsFor(ticker)

	var prevClose float64
	for i, bar := range sorted {
		day := bar.Date.Format("2006-01-02")

		if bar.Close < limits.MinPrice || bar.Close > limits.MaxPrice {
			_ = report.AddAnomaly(fmt.Sprintf(
				"%s: close %.2f outside %s price band [%.2f, %.2f]",
				day, bar.Close, class, limits.MinPrice, limits.MaxPrice))
		}

		if i > 0 && prevClose > 0 {
			change := (bar.Close - prevClose) / prevClose * 100
			if change < 0 {
				change = -change
			}
			if change > limits.MaxDailyChangePercent {
				_ = report.AddAnomaly(fmt.Sprintf(
					"%s: daily change %.1f%% exceeds %.1f%% limit",
					day, change, limits.MaxDailyChangePercent))
			}
		}
		prevClose = bar.Close

		// Cash indices trade no volume of their own.
		if bar.Volume == 0 && class != config.AssetClassIndex {
			_ = report.AddAnomaly(fmt.Sprintf("%s: zero volume", day))
		}
	}
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
