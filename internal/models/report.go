package models

import (
	"fmt"
	"time"
)

// DataType identifies which dataset a quality report covers.
type DataType string

const (
	DataTypeDaily   DataType = "daily"
	DataTypeMinute  DataType = "minute"
	DataTypeOptions DataType = "options"
)

// Valid reports whether the data type is a member of the enumeration.
func (d DataType) Valid() bool {
	switch d {
	case DataTypeDaily, DataTypeMinute, DataTypeOptions:
		return true
	}
	return false
}

// Score penalties and the default acceptance threshold.
const (
	missingDatePenalty      = 0.1
	anomalyPenalty          = 0.05
	DefaultQualityThreshold = 0.8
)

// QualityReport is a data quality assessment for one ticker, data type
// and date range. Mutators record findings but never touch QualityScore;
// the stored score only changes when RecomputeScore is called, so it can
// be stale relative to MissingDates/Anomalies between batches. That is
// deliberate: a sweep recomputes a whole set of reports at once.
type QualityReport struct {
	Ticker       string
	DataType     DataType
	Start        time.Time
	End          time.Time
	TotalRecords int
	MissingDates []time.Time
	Anomalies    []string
	QualityScore float64
}

// NewQualityReport validates and constructs a quality report. The slices
// are copied; the report owns its own state.
func NewQualityReport(ticker string, dataType DataType, start, end time.Time, totalRecords int, missingDates []time.Time, anomalies []string, qualityScore float64) (*QualityReport, error) {
	if err := validateTicker(ticker); err != nil {
		return nil, err
	}
	if !dataType.Valid() {
		return nil, &ValidationError{"data_type", fmt.Sprintf("data type must be one of [daily minute options], got %q", string(dataType))}
	}
	if start.IsZero() || end.IsZero() {
		return nil, &ValidationError{"date_range", "date range must contain two dates"}
	}
	if start.After(end) {
		return nil, &ValidationError{"date_range", "start date cannot be after end date"}
	}
	if totalRecords < 0 {
		return nil, &ValidationError{"total_records", "total records must be a non-negative integer"}
	}
	for _, d := range missingDates {
		if d.IsZero() {
			return nil, &ValidationError{"missing_dates", "all missing dates must be calendar dates"}
		}
	}
	if qualityScore < 0.0 || qualityScore > 1.0 {
		return nil, &ValidationError{"quality_score", "quality score must be between 0.0 and 1.0"}
	}

	r := &QualityReport{
		Ticker:       ticker,
		DataType:     dataType,
		Start:        start,
		End:          end,
		TotalRecords: totalRecords,
		MissingDates: append([]time.Time(nil), missingDates...),
		Anomalies:    append([]string(nil), anomalies...),
		QualityScore: qualityScore,
	}
	return r, nil
}

// AddAnomaly appends a free-text anomaly description. Duplicates are
// allowed; an empty description is rejected.
func (r *QualityReport) AddAnomaly(anomaly string) error {
	if anomaly == "" {
		return &ValidationError{"anomaly", "anomaly description cannot be empty"}
	}
	r.Anomalies = append(r.Anomalies, anomaly)
	return nil
}

// AddMissingDate records a missing calendar date. Adding the same day
// twice keeps a single entry.
func (r *QualityReport) AddMissingDate(missing time.Time) error {
	if missing.IsZero() {
		return &ValidationError{"missing_date", "missing date must be a calendar date"}
	}
	for _, d := range r.MissingDates {
		if sameDay(d, missing) {
			return nil
		}
	}
	r.MissingDates = append(r.MissingDates, missing)
	return nil
}

// RecomputeScore recalculates the quality score from the current counts
// of missing dates and anomalies, stores it, and returns it.
func (r *QualityReport) RecomputeScore() float64 {
	score := 1.0
	score -= float64(len(r.MissingDates)) * missingDatePenalty
	score -= float64(len(r.Anomalies)) * anomalyPenalty
	if score < 0.0 {
		score = 0.0
	}

	r.QualityScore = score
	return score
}

// MeetsThreshold reports whether the stored quality score is at or above
// the threshold. It does not recompute: callers that mutated the report
// since the last RecomputeScore see the previous score.
func (r *QualityReport) MeetsThreshold(threshold float64) bool {
	return r.QualityScore >= threshold
}

// Summary renders a human-readable overview of the report. The layout is
// for log output and terminals, not for parsing.
func (r *QualityReport) Summary() string {
	return fmt.Sprintf(
		"Data Quality Report for %s (%s)\n"+
			"Date Range: %s to %s\n"+
			"Total Records: %d\n"+
			"Missing Dates: %d\n"+
			"Anomalies: %d\n"+
			"Quality Score: %.2f",
		r.Ticker, r.DataType,
		r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"),
		r.TotalRecords,
		len(r.MissingDates),
		len(r.Anomalies),
		r.QualityScore,
	)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
