package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/contactkeval/option-screener/internal/logger"
)

// SQLiteStore keeps close history in a single SQLite file. database/sql
// serializes access, so one store can be shared across the engine's
// per-symbol goroutines.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (creating if needed) the history database at
// the given path.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	const schema = `
	CREATE TABLE IF NOT EXISTS close_prices (
		symbol TEXT NOT NULL,
		date   TEXT NOT NULL,
		price  REAL NOT NULL,
		PRIMARY KEY (symbol, date)
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}

	logger.Debugf("history store opened at %s", path)
	return &SQLiteStore{db: db}, nil
}

// Append records one close for a symbol and prunes the window back to
// WindowSize rows. Re-recording the same (symbol, date) overwrites the
// earlier price.
func (s *SQLiteStore) Append(symbol string, d time.Time, price float64) error {
	day := d.Format("2006-01-02")

	if _, err := s.db.Exec(
		`INSERT OR REPLACE INTO close_prices (symbol, date, price) VALUES (?, ?, ?)`,
		symbol, day, price,
	); err != nil {
		return fmt.Errorf("append close %s %s: %w", symbol, day, err)
	}

	// Keep only the most recent WindowSize rows per symbol.
	if _, err := s.db.Exec(
		`DELETE FROM close_prices
		 WHERE symbol = ?
		   AND date NOT IN (
			SELECT date FROM close_prices WHERE symbol = ? ORDER BY date DESC LIMIT ?
		 )`,
		symbol, symbol, WindowSize,
	); err != nil {
		return fmt.Errorf("prune history %s: %w", symbol, err)
	}

	return nil
}

// Prices returns a symbol's recorded closes in ascending date order.
func (s *SQLiteStore) Prices(symbol string) ([]ClosePrice, error) {
	rows, err := s.db.Query(
		`SELECT date, price FROM close_prices WHERE symbol = ? ORDER BY date ASC`,
		symbol,
	)
	if err != nil {
		return nil, fmt.Errorf("load history %s: %w", symbol, err)
	}
	defer rows.Close()

	var out []ClosePrice
	for rows.Next() {
		var day string
		var px float64
		if err := rows.Scan(&day, &px); err != nil {
			return nil, err
		}
		t, err := time.Parse("2006-01-02", day)
		if err != nil {
			continue // skip malformed rows
		}
		out = append(out, ClosePrice{Date: t, Price: px})
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
