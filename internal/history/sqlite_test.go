package history

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func day(offset int) time.Time {
	return time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestAppendAndPrices(t *testing.T) {
	s := openTestStore(t)

	if err := s.Append("ABC", day(0), 50.0); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Append("ABC", day(1), 51.5); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Append("XYZ", day(0), 120.0); err != nil {
		t.Fatalf("append: %v", err)
	}

	prices, err := s.Prices("ABC")
	if err != nil {
		t.Fatalf("prices: %v", err)
	}
	if len(prices) != 2 {
		t.Fatalf("got %d prices, want 2", len(prices))
	}
	if prices[0].Price != 50.0 || prices[1].Price != 51.5 {
		t.Errorf("wrong prices: %+v", prices)
	}
	if !prices[0].Date.Before(prices[1].Date) {
		t.Errorf("prices not in ascending date order: %+v", prices)
	}
}

func TestAppendSameDayOverwrites(t *testing.T) {
	s := openTestStore(t)

	if err := s.Append("ABC", day(0), 50.0); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Append("ABC", day(0), 49.25); err != nil {
		t.Fatalf("append: %v", err)
	}

	prices, err := s.Prices("ABC")
	if err != nil {
		t.Fatalf("prices: %v", err)
	}
	if len(prices) != 1 || prices[0].Price != 49.25 {
		t.Errorf("expected single overwritten row, got %+v", prices)
	}
}

func TestRollingWindowPrunes(t *testing.T) {
	s := openTestStore(t)

	total := WindowSize + 10
	for i := 0; i < total; i++ {
		if err := s.Append("ABC", day(i), 50.0+float64(i)); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	prices, err := s.Prices("ABC")
	if err != nil {
		t.Fatalf("prices: %v", err)
	}
	if len(prices) != WindowSize {
		t.Fatalf("got %d prices, want %d", len(prices), WindowSize)
	}
	// Oldest rows were dropped: the first surviving close is the 11th.
	if prices[0].Price != 50.0+float64(total-WindowSize) {
		t.Errorf("oldest surviving price = %v, want %v", prices[0].Price, 50.0+float64(total-WindowSize))
	}
	if prices[len(prices)-1].Price != 50.0+float64(total-1) {
		t.Errorf("newest price = %v, want %v", prices[len(prices)-1].Price, 50.0+float64(total-1))
	}
}

func TestPricesUnknownSymbolEmpty(t *testing.T) {
	s := openTestStore(t)

	prices, err := s.Prices("NOPE")
	if err != nil {
		t.Fatalf("prices: %v", err)
	}
	if len(prices) != 0 {
		t.Errorf("expected empty history, got %+v", prices)
	}
}
