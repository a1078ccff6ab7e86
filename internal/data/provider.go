package data

import (
	"errors"
	"os"
	"time"
)

// ErrNoData indicates the provider returned too little history to
// derive the previous trading day's close.
var ErrNoData = errors.New("insufficient market data")

// Provider supplies market data to the screener pipeline.
type Provider interface {
	Secondary() Provider
	GetDailyBars(symbol string, fromDate, toDate time.Time) ([]Bar, error)
	PreviousClose(symbol string, asOf time.Time) (float64, error)
}

// Bar simplified OHLC
type Bar struct {
	Date  time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64
	Vol   float64
}

// GetProvider selects the live Massive provider when POLYGON_API_KEY is
// set and falls back to the deterministic synthetic one otherwise.
func GetProvider() Provider {
	if apiKey := os.Getenv("POLYGON_API_KEY"); apiKey != "" {
		return NewMassiveDataProvider(apiKey)
	}
	return NewSyntheticProvider()
}

// previousCloseFromBars extracts what the screener treats as the
// previous trading day's close: the close of the second-to-last bar in
// the trailing window ending at asOf.
func previousCloseFromBars(bars []Bar) (float64, error) {
	if len(bars) < 2 {
		return 0, ErrNoData
	}
	return bars[len(bars)-2].Close, nil
}
