package quality

import (
	"sync"

	"github.com/quantfold/marketdata/internal/models"
)

// Registry holds the live quality reports, one per ticker and data type.
// It serializes all access, so a report owned by the registry is only
// ever mutated under its lock; callers must not retain and mutate a
// report concurrently with a sweep.
type Registry struct {
	mu      sync.RWMutex
	reports map[string]*models.QualityReport
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		reports: make(map[string]*models.QualityReport),
	}
}

// Put stores a report, replacing any previous report for the same ticker
// and data type.
func (r *Registry) Put(report *models.QualityReport) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports[registryKey(report.Ticker, report.DataType)] = report
}

// Get returns the report for a ticker and data type, if present.
func (r *Registry) Get(ticker string, dataType models.DataType) (*models.QualityReport, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	report, ok := r.reports[registryKey(ticker, dataType)]
	return report, ok
}

// Len returns the number of stored reports.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.reports)
}

// Each calls fn for every stored report while holding the registry lock.
func (r *Registry) Each(fn func(report *models.QualityReport)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, report := range r.reports {
		fn(report)
	}
}

func registryKey(ticker string, dataType models.DataType) string {
	return ticker + "/" + string(dataType)
}
