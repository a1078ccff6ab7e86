package data

import (
	"errors"
	"testing"
	"time"
)

func TestSyntheticBarsSkipWeekends(t *testing.T) {
	prov := NewSyntheticProvider()
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	bars, err := prov.GetDailyBars("ABC", from, to)
	if err != nil {
		t.Fatalf("get bars: %v", err)
	}
	if len(bars) == 0 {
		t.Fatal("no bars generated")
	}
	for _, b := range bars {
		if b.Date.Weekday() == time.Saturday || b.Date.Weekday() == time.Sunday {
			t.Errorf("bar on weekend: %s", b.Date.Format("2006-01-02"))
		}
		if b.High < b.Low {
			t.Errorf("bar %s has high %v < low %v", b.Date.Format("2006-01-02"), b.High, b.Low)
		}
	}
}

func TestSyntheticPreviousCloseDeterministic(t *testing.T) {
	prov := NewSyntheticProvider()
	asOf := time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC)

	first, err := prov.PreviousClose("AAPL", asOf)
	if err != nil {
		t.Fatalf("previous close: %v", err)
	}
	second, err := prov.PreviousClose("AAPL", asOf)
	if err != nil {
		t.Fatalf("previous close: %v", err)
	}
	if first != second {
		t.Errorf("repeated calls differ: %v vs %v", first, second)
	}
	if first <= 0 {
		t.Errorf("implausible close %v", first)
	}

	other, err := prov.PreviousClose("MSFT", asOf)
	if err != nil {
		t.Fatalf("previous close: %v", err)
	}
	if other == first {
		t.Errorf("different symbols produced identical synthetic closes")
	}
}

func TestPreviousCloseFromBars(t *testing.T) {
	d := func(day int) time.Time {
		return time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)
	}

	bars := []Bar{
		{Date: d(2), Close: 48.0},
		{Date: d(3), Close: 49.5},
		{Date: d(4), Close: 51.0},
	}
	px, err := previousCloseFromBars(bars)
	if err != nil {
		t.Fatalf("previous close: %v", err)
	}
	if px != 49.5 {
		t.Errorf("got %v, want second-to-last close 49.5", px)
	}

	if _, err := previousCloseFromBars(bars[:1]); !errors.Is(err, ErrNoData) {
		t.Errorf("single bar: got err=%v, want ErrNoData", err)
	}
	if _, err := previousCloseFromBars(nil); !errors.Is(err, ErrNoData) {
		t.Errorf("no bars: got err=%v, want ErrNoData", err)
	}
}
