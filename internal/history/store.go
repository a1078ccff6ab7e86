// Package history persists the rolling window of daily closing prices
// the screener records on each run.
package history

import "time"

// WindowSize is how many closes are retained per symbol: one trading
// year.
const WindowSize = 252

// ClosePrice is one recorded close.
type ClosePrice struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// Store records and recalls per-symbol close history. Implementations
// must be safe for concurrent use; the engine appends from one goroutine
// per symbol.
type Store interface {
	Append(symbol string, d time.Time, price float64) error
	Prices(symbol string) ([]ClosePrice, error)
	Close() error
}
