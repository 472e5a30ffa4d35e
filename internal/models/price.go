// Package models defines the validated value objects of the market data
// system: daily and minute OHLCV price bars and the per-ticker data
// quality report. Bars are validated eagerly at construction and are
// immutable afterwards; an invalid input never produces a partial object.
package models

import (
	"strings"
	"time"
)

// ValidationError reports a rejected field and the rule it violated.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Regular market session, wall clock, inclusive on both ends.
// No timezone conversion and no holiday calendar.
const (
	marketOpenClock  = 9*time.Hour + 30*time.Minute
	marketCloseClock = 16 * time.Hour
)

// DailyPrice is one daily OHLCV bar for a ticker symbol.
type DailyPrice struct {
	Ticker string
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
	VWAP   float64
}

// NewDailyPrice validates and constructs a daily bar. The first failed
// rule wins: ticker, date, OHLC consistency, volume, VWAP.
func NewDailyPrice(ticker string, date time.Time, open, high, low, close float64, volume int64, vwap float64) (*DailyPrice, error) {
	if err := validateTicker(ticker); err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, &ValidationError{"date", "date is required"}
	}
	if err := validateOHLC(open, high, low, close); err != nil {
		return nil, err
	}
	if err := validateVolume(volume); err != nil {
		return nil, err
	}
	if err := validateVWAP(vwap, low, high); err != nil {
		return nil, err
	}

	return &DailyPrice{
		Ticker: ticker,
		Date:   date,
		Open:   open,
		High:   high,
		Low:    low,
		Close:  close,
		Volume: volume,
		VWAP:   vwap,
	}, nil
}

// MinutePrice is one minute-level OHLCV bar for a ticker symbol.
type MinutePrice struct {
	Ticker    string
	Timestamp time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    int64
	VWAP      float64
}

// NewMinutePrice validates and constructs a minute bar. Beyond the daily
// rules, the timestamp's clock time must fall inside the regular market
// session (09:30-16:00, inclusive).
func NewMinutePrice(ticker string, timestamp time.Time, open, high, low, close float64, volume int64, vwap float64) (*MinutePrice, error) {
	if err := validateTicker(ticker); err != nil {
		return nil, err
	}
	if err := validateMarketHours(timestamp); err != nil {
		return nil, err
	}
	if err := validateOHLC(open, high, low, close); err != nil {
		return nil, err
	}
	if err := validateVolume(volume); err != nil {
		return nil, err
	}
	if err := validateVWAP(vwap, low, high); err != nil {
		return nil, err
	}

	return &MinutePrice{
		Ticker:    ticker,
		Timestamp: timestamp,
		Open:      open,
		High:      high,
		Low:       low,
		Close:     close,
		Volume:    volume,
		VWAP:      vwap,
	}, nil
}

func validateTicker(ticker string) error {
	if ticker == "" {
		return &ValidationError{"ticker", "ticker must be a non-empty string"}
	}
	if strings.TrimSpace(ticker) == "" {
		return &ValidationError{"ticker", "ticker cannot be empty or whitespace"}
	}
	return nil
}

func validateMarketHours(timestamp time.Time) error {
	if timestamp.IsZero() {
		return &ValidationError{"timestamp", "timestamp is required"}
	}

	clock := time.Duration(timestamp.Hour())*time.Hour +
		time.Duration(timestamp.Minute())*time.Minute +
		time.Duration(timestamp.Second())*time.Second +
		time.Duration(timestamp.Nanosecond())
	if clock < marketOpenClock || clock > marketCloseClock {
		return &ValidationError{"timestamp", "timestamp " + timestamp.Format("2006-01-02 15:04:05") + " is outside market hours (09:30-16:00)"}
	}
	return nil
}

func validateOHLC(open, high, low, close float64) error {
	if open < 0 || high < 0 || low < 0 || close < 0 {
		return &ValidationError{"ohlc", "all OHLC prices must be non-negative numbers"}
	}
	if high < low {
		return &ValidationError{"high", "high price cannot be less than low price"}
	}
	if open < low || open > high {
		return &ValidationError{"open", "open price must be between low and high"}
	}
	if close < low || close > high {
		return &ValidationError{"close", "close price must be between low and high"}
	}
	return nil
}

func validateVolume(volume int64) error {
	if volume < 0 {
		return &ValidationError{"volume", "volume must be a non-negative integer"}
	}
	return nil
}

func validateVWAP(vwap, low, high float64) error {
	if vwap < 0 {
		return &ValidationError{"vwap", "VWAP must be a non-negative number"}
	}
	if vwap < low || vwap > high {
		return &ValidationError{"vwap", "VWAP must be between low and high prices"}
	}
	return nil
}
