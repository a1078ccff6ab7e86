package calendar

import (
	"testing"
	"time"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestNYSETradingDays(t *testing.T) {
	cal := NewNYSE()

	cases := []struct {
		name string
		date time.Time
		want bool
	}{
		{"regular tuesday", d(2024, time.January, 2), true},
		{"saturday", d(2024, time.January, 6), false},
		{"sunday", d(2024, time.January, 7), false},
		{"new years day", d(2024, time.January, 1), false},
		{"mlk day", d(2024, time.January, 15), false},
		{"washingtons birthday", d(2024, time.February, 19), false},
		{"good friday", d(2024, time.March, 29), false},
		{"memorial day", d(2024, time.May, 27), false},
		{"juneteenth", d(2024, time.June, 19), false},
		{"juneteenth before adoption", d(2021, time.June, 18), true}, // Jun 19 2021 was a Saturday; Fri 18 stayed open
		{"independence day", d(2024, time.July, 4), false},
		{"labor day", d(2024, time.September, 2), false},
		{"thanksgiving", d(2024, time.November, 28), false},
		{"christmas", d(2024, time.December, 25), false},
		{"christmas observed friday", d(2021, time.December, 24), false}, // Dec 25 2021 was a Saturday
		{"day after thanksgiving is open", d(2024, time.November, 29), true},
		{"july 5 observed", d(2021, time.July, 5), false}, // Jul 4 2021 was a Sunday
		{"dec 31 before saturday new years", d(2021, time.December, 31), true},
	}

	for _, tc := range cases {
		if got := cal.IsTradingDay(tc.date); got != tc.want {
			t.Errorf("%s (%s): IsTradingDay = %v, want %v",
				tc.name, tc.date.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestEasterSunday(t *testing.T) {
	cases := map[int]time.Time{
		2023: d(2023, time.April, 9),
		2024: d(2024, time.March, 31),
		2025: d(2025, time.April, 20),
		2026: d(2026, time.April, 5),
	}
	for year, want := range cases {
		if got := easterSunday(year); !got.Equal(want) {
			t.Errorf("easterSunday(%d) = %s, want %s", year, got.Format("2006-01-02"), want.Format("2006-01-02"))
		}
	}
}
