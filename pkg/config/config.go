// Package config is the single source of configuration for the market
// data system. All environment variables are read here and nowhere else.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Env string // development, staging, production

	// Upstream data vendor. The key is required even though collection
	// runs elsewhere: a workspace without credentials is misconfigured
	// and should fail at startup, not at first fetch.
	PolygonAPIKey string

	// Root of the on-disk data workspace.
	DataDir string

	Collector CollectorConfig
	Quality   QualityConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// CollectorConfig carries the collection settings handed to the (external)
// fetch pipeline. Nothing in this repository enforces them.
type CollectorConfig struct {
	RateLimitPerMinute int
	TimeoutSeconds     int
	MaxRetries         int
}

// QualityConfig holds data quality acceptance settings.
type QualityConfig struct {
	ScoreThreshold        float64 // minimum acceptable quality score
	MaxMissingDaysPercent float64 // advisory ceiling on missing business days
}

// Load reads configuration from environment variables, consulting .env
// files the same way the deployment scripts do.
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Env: getEnv("ENV", "development"),

		PolygonAPIKey: getEnv("POLYGON_API_KEY", ""),
		DataDir:       getEnv("DATA_DIR", "./data"),

		Collector: CollectorConfig{
			RateLimitPerMinute: getEnvAsInt("API_RATE_LIMIT", 5),
			TimeoutSeconds:     getEnvAsInt("API_TIMEOUT", 30),
			MaxRetries:         getEnvAsInt("MAX_RETRIES", 3),
		},

		Quality: QualityConfig{
			ScoreThreshold:        getEnvAsFloat("QUALITY_SCORE_THRESHOLD", 0.8),
			MaxMissingDaysPercent: getEnvAsFloat("MAX_MISSING_DAYS_PERCENT", 0.05),
		},

		LogLevel:  getEnv("LOG_LEVEL", "debug"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.PolygonAPIKey == "" {
		return fmt.Errorf("POLYGON_API_KEY is required (put it in .env)")
	}

	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Quality.ScoreThreshold < 0.0 || c.Quality.ScoreThreshold > 1.0 {
		return fmt.Errorf("QUALITY_SCORE_THRESHOLD must be between 0.0 and 1.0")
	}
	if c.Quality.MaxMissingDaysPercent < 0.0 || c.Quality.MaxMissingDaysPercent > 1.0 {
		return fmt.Errorf("MAX_MISSING_DAYS_PERCENT must be between 0.0 and 1.0")
	}

	return nil
}

// DefaultTickers is the universe collected when no explicit list is given.
var DefaultTickers = []string{
	"SPY", "SPX", "QQQ", "NDX", "IWM", "RUT",
	"AAPL", "MSFT", "GOOGL", "AMZN",
}

// AssetClass groups tickers that share sanity limits.
type AssetClass string

const (
	AssetClassStock AssetClass = "stock"
	AssetClassETF   AssetClass = "etf"
	AssetClassIndex AssetClass = "index"
)

// AssetClassLimits are per-class sanity bounds used by quality screening.
type AssetClassLimits struct {
	MinPrice              float64
	MaxPrice              float64
	MaxDailyChangePercent float64
}

var assetClassLimits = map[AssetClass]AssetClassLimits{
	AssetClassStock: {MinPrice: 0.01, MaxPrice: 10_000, MaxDailyChangePercent: 50},
	AssetClassETF:   {MinPrice: 1, MaxPrice: 2_000, MaxDailyChangePercent: 25},
	AssetClassIndex: {MinPrice: 10, MaxPrice: 100_000, MaxDailyChangePercent: 20},
}

var tickerAssetClass = map[string]AssetClass{
	"SPX": AssetClassIndex,
	"NDX": AssetClassIndex,
	"RUT": AssetClassIndex,
	"VIX": AssetClassIndex,

	"SPY": AssetClassETF,
	"QQQ": AssetClassETF,
	"IWM": AssetClassETF,
	"DIA": AssetClassETF,
}

// AssetClassFor returns the asset class for a ticker. Unknown tickers are
// treated as common stock.
func AssetClassFor(ticker string) AssetClass {
	if class, ok := tickerAssetClass[strings.ToUpper(ticker)]; ok {
		return class
	}
	return AssetClassStock
}

// LimitsFor returns the sanity limits for a ticker's asset class.
func LimitsFor(ticker string) AssetClassLimits {
	return assetClassLimits[AssetClassFor(ticker)]
}

// ValidTicker reports whether a symbol looks like a collectable ticker:
// one to five alphanumeric characters, case-insensitive.
func ValidTicker(ticker string) bool {
	if len(ticker) < 1 || len(ticker) > 5 {
		return false
	}
	for _, r := range ticker {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}
