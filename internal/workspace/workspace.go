// Package workspace manages the on-disk data directory tree. Directory
// creation is an explicit setup step invoked once at process start, not
// an import-time side effect; every operation is idempotent.
package workspace

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/quantfold/marketdata/internal/models"
)

// Layout describes the fixed directory tree rooted at the data dir:
//
//	<root>/raw            downloaded vendor payloads
//	<root>/raw/indices
//	<root>/qa             quality-assured datasets
//	<root>/qa/indices
//	<root>/daily          per-ticker daily bars
//	<root>/minute         per-ticker minute bars
//	<root>/options        per-ticker options chains
//	<root>/metadata       per-ticker metadata
//	<root>/logs
//	<root>/cache
type Layout struct {
	Root string
}

// New returns a Layout rooted at the given directory. Nothing is created
// until Ensure or a per-ticker helper is called.
func New(root string) *Layout {
	return &Layout{Root: root}
}

// Ensure creates the fixed directory tree. Safe to call repeatedly;
// existing directories are left untouched.
func (l *Layout) Ensure() error {
	dirs := []string{
		l.RawDir(),
		filepath.Join(l.RawDir(), "indices"),
		l.QADir(),
		filepath.Join(l.QADir(), "indices"),
		l.timeframeDir(models.DataTypeDaily),
		l.timeframeDir(models.DataTypeMinute),
		l.timeframeDir(models.DataTypeOptions),
		l.MetadataDir(),
		filepath.Join(l.Root, "logs"),
		filepath.Join(l.Root, "cache"),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// RawDir returns the directory for raw vendor payloads.
func (l *Layout) RawDir() string {
	return filepath.Join(l.Root, "raw")
}

// QADir returns the directory for quality-assured datasets.
func (l *Layout) QADir() string {
	return filepath.Join(l.Root, "qa")
}

// MetadataDir returns the root of per-ticker metadata.
func (l *Layout) MetadataDir() string {
	return filepath.Join(l.Root, "metadata")
}

// TickerDataDir creates (if needed) and returns the data directory for a
// ticker at the given timeframe. Tickers are stored upper-cased.
func (l *Layout) TickerDataDir(ticker string, timeframe models.DataType) (string, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return "", &models.ValidationError{Field: "ticker", Message: "ticker cannot be empty or whitespace"}
	}
	if !timeframe.Valid() {
		return "", &models.ValidationError{Field: "timeframe", Message: "unsupported timeframe: " + string(timeframe)}
	}

	dir := filepath.Join(l.timeframeDir(timeframe), ticker)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// TickerMetadataDir creates (if needed) and returns the metadata
// directory for a ticker.
func (l *Layout) TickerMetadataDir(ticker string) (string, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return "", &models.ValidationError{Field: "ticker", Message: "ticker cannot be empty or whitespace"}
	}

	dir := filepath.Join(l.MetadataDir(), ticker)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

func (l *Layout) timeframeDir(timeframe models.DataType) string {
	return filepath.Join(l.Root, string(timeframe))
}
