package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestReport(t *testing.T) *QualityReport {
	t.Helper()

	r, err := NewQualityReport("AAPL", DataTypeDaily,
		day(2024, 1, 1), day(2024, 1, 31),
		20, nil, nil, 1.0)
	require.NoError(t, err)
	return r
}

func TestNewQualityReport_Valid(t *testing.T) {
	missing := []time.Time{day(2024, 1, 15)}
	anomalies := []string{"price gap"}

	r, err := NewQualityReport("SPY", DataTypeMinute,
		day(2024, 1, 1), day(2024, 1, 31),
		7800, missing, anomalies, 0.85)
	require.NoError(t, err)

	assert.Equal(t, "SPY", r.Ticker)
	assert.Equal(t, DataTypeMinute, r.DataType)
	assert.Equal(t, day(2024, 1, 1), r.Start)
	assert.Equal(t, day(2024, 1, 31), r.End)
	assert.Equal(t, 7800, r.TotalRecords)
	assert.Equal(t, missing, r.MissingDates)
	assert.Equal(t, anomalies, r.Anomalies)
	assert.Equal(t, 0.85, r.QualityScore)
}

func TestNewQualityReport_CopiesSlices(t *testing.T) {
	missing := []time.Time{day(2024, 1, 15)}

	r, err := NewQualityReport("SPY", DataTypeDaily,
		day(2024, 1, 1), day(2024, 1, 31), 20, missing, nil, 1.0)
	require.NoError(t, err)

	missing[0] = day(2030, 12, 31)
	assert.Equal(t, day(2024, 1, 15), r.MissingDates[0])
}

func TestNewQualityReport_Invalid(t *testing.T) {
	start := day(2024, 1, 1)
	end := day(2024, 1, 31)

	tests := []struct {
		name     string
		ticker   string
		dataType DataType
		start    time.Time
		end      time.Time
		records  int
		missing  []time.Time
		score    float64
		wantErr  string
	}{
		{
			name:   "empty ticker",
			ticker: "", dataType: DataTypeDaily, start: start, end: end, records: 0, score: 1.0,
			wantErr: "non-empty",
		},
		{
			name:   "unknown data type",
			ticker: "AAPL", dataType: DataType("weekly"), start: start, end: end, records: 0, score: 1.0,
			wantErr: "data type must be one of",
		},
		{
			name:   "zero start date",
			ticker: "AAPL", dataType: DataTypeDaily, start: time.Time{}, end: end, records: 0, score: 1.0,
			wantErr: "date range must contain two dates",
		},
		{
			name:   "reversed range",
			ticker: "AAPL", dataType: DataTypeDaily, start: end, end: start, records: 0, score: 1.0,
			wantErr: "start date cannot be after end date",
		},
		{
			name:   "negative records",
			ticker: "AAPL", dataType: DataTypeDaily, start: start, end: end, records: -1, score: 1.0,
			wantErr: "total records must be a non-negative integer",
		},
		{
			name:   "zero value in missing dates",
			ticker: "AAPL", dataType: DataTypeDaily, start: start, end: end, records: 0,
			missing: []time.Time{{}}, score: 1.0,
			wantErr: "all missing dates must be calendar dates",
		},
		{
			name:   "score above one",
			ticker: "AAPL", dataType: DataTypeDaily, start: start, end: end, records: 0, score: 1.1,
			wantErr: "quality score must be between 0.0 and 1.0",
		},
		{
			name:   "negative score",
			ticker: "AAPL", dataType: DataTypeDaily, start: start, end: end, records: 0, score: -0.1,
			wantErr: "quality score must be between 0.0 and 1.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewQualityReport(tt.ticker, tt.dataType, tt.start, tt.end, tt.records, tt.missing, nil, tt.score)
			require.Error(t, err)
			assert.Nil(t, r)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestQualityReport_SameDayRangeIsValid(t *testing.T) {
	d := day(2024, 1, 15)
	_, err := NewQualityReport("AAPL", DataTypeDaily, d, d, 1, nil, nil, 1.0)
	assert.NoError(t, err)
}

func TestAddMissingDate_Idempotent(t *testing.T) {
	r := newTestReport(t)

	require.NoError(t, r.AddMissingDate(day(2024, 1, 15)))
	require.NoError(t, r.AddMissingDate(day(2024, 1, 15)))
	assert.Len(t, r.MissingDates, 1)

	// Same calendar day at a different clock time still counts as present.
	require.NoError(t, r.AddMissingDate(time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)))
	assert.Len(t, r.MissingDates, 1)

	require.NoError(t, r.AddMissingDate(day(2024, 1, 16)))
	assert.Len(t, r.MissingDates, 2)
}

func TestAddMissingDate_RejectsZeroValue(t *testing.T) {
	r := newTestReport(t)

	err := r.AddMissingDate(time.Time{})
	require.Error(t, err)
	assert.Empty(t, r.MissingDates)
}

func TestAddAnomaly_AllowsDuplicates(t *testing.T) {
	r := newTestReport(t)

	require.NoError(t, r.AddAnomaly("volume spike"))
	require.NoError(t, r.AddAnomaly("volume spike"))
	assert.Equal(t, []string{"volume spike", "volume spike"}, r.Anomalies)
}

func TestAddAnomaly_RejectsEmpty(t *testing.T) {
	r := newTestReport(t)

	err := r.AddAnomaly("")
	require.Error(t, err)
	assert.Empty(t, r.Anomalies)
}

func TestRecomputeScore(t *testing.T) {
	tests := []struct {
		name      string
		missing   int
		anomalies int
		want      float64
	}{
		{name: "clean data", missing: 0, anomalies: 0, want: 1.0},
		{name: "one of each", missing: 1, anomalies: 1, want: 0.85},
		{name: "anomalies only", missing: 0, anomalies: 4, want: 0.8},
		{name: "clamped at zero", missing: 11, anomalies: 0, want: 0.0},
		{name: "heavily degraded", missing: 8, anomalies: 10, want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestReport(t)
			for i := 0; i < tt.missing; i++ {
				require.NoError(t, r.AddMissingDate(day(2024, 1, 1+i)))
			}
			for i := 0; i < tt.anomalies; i++ {
				require.NoError(t, r.AddAnomaly("anomaly"))
			}

			got := r.RecomputeScore()
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.InDelta(t, tt.want, r.QualityScore, 1e-9, "score must be stored")
		})
	}
}

func TestMeetsThreshold_UsesStoredScore(t *testing.T) {
	r := newTestReport(t)
	assert.True(t, r.MeetsThreshold(DefaultQualityThreshold))

	// Degrade the data without recomputing: the stored score still wins.
	for i := 0; i < 5; i++ {
		require.NoError(t, r.AddMissingDate(day(2024, 1, 1+i)))
	}
	assert.True(t, r.MeetsThreshold(DefaultQualityThreshold), "threshold check must not recompute")

	r.RecomputeScore()
	assert.False(t, r.MeetsThreshold(DefaultQualityThreshold))
	assert.True(t, r.MeetsThreshold(0.5))
}

func TestQualityReport_EndToEndFlow(t *testing.T) {
	r, err := NewQualityReport("AAPL", DataTypeDaily,
		day(2024, 1, 1), day(2024, 1, 31),
		20, nil, nil, 1.0)
	require.NoError(t, err)

	require.NoError(t, r.AddMissingDate(day(2024, 1, 15)))
	require.NoError(t, r.AddAnomaly("gap"))

	got := r.RecomputeScore()
	assert.InDelta(t, 0.85, got, 1e-9)
	assert.InDelta(t, 0.85, r.QualityScore, 1e-9)
}

func TestSummary(t *testing.T) {
	r, err := NewQualityReport("AAPL", DataTypeDaily,
		day(2024, 1, 1), day(2024, 1, 31),
		20, []time.Time{day(2024, 1, 15)}, []string{"gap"}, 1.0)
	require.NoError(t, err)
	r.RecomputeScore()

	s := r.Summary()
	assert.Contains(t, s, "Data Quality Report for AAPL (daily)")
	assert.Contains(t, s, "Date Range: 2024-01-01 to 2024-01-31")
	assert.Contains(t, s, "Total Records: 20")
	assert.Contains(t, s, "Missing Dates: 1")
	assert.Contains(t, s, "Anomalies: 1")
	assert.Contains(t, s, "Quality Score: 0.85")
}

func TestDataType_Valid(t *testing.T) {
	assert.True(t, DataTypeDaily.Valid())
	assert.True(t, DataTypeMinute.Valid())
	assert.True(t, DataTypeOptions.Valid())
	assert.False(t, DataType("weekly").Valid())
	assert.False(t, DataType("").Valid())
}
