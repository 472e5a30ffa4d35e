package logger

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/quantfold/marketdata/pkg/config"
)

func testConfig(level, format string) *config.Config {
	return &config.Config{
		Env:       "development",
		LogLevel:  level,
		LogFormat: format,
	}
}

func TestNew(t *testing.T) {
	log := New(testConfig("debug", "json"))
	if log == nil {
		t.Fatal("New() returned nil")
	}

	// Should not panic
	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")
	log.Infof("formatted %s", "message")
}

func TestNewConsoleFormat(t *testing.T) {
	log := New(testConfig("info", "console"))
	if log == nil {
		t.Fatal("New() returned nil")
	}
	log.Info("console message")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"unknown", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.input); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestWithFields(t *testing.T) {
	log := New(testConfig("debug", "json"))

	child := log.WithField("ticker", "AAPL")
	if child == nil {
		t.Fatal("WithField returned nil")
	}
	child.Info("with field")

	multi := log.WithFields(map[string]interface{}{
		"ticker":    "SPY",
		"timeframe": "daily",
	})
	multi.Info("with fields")

	withErr := log.WithError(nil)
	withErr.Info("with nil error")
}
