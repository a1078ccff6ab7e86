// Package calendar answers whether a given date is a trading day.
//
// The screener core never consults the clock itself; the engine asks an
// injected Calendar with an explicit date so runs stay reproducible.
package calendar

import "time"

// Calendar reports whether an exchange is open on a given date.
type Calendar interface {
	IsTradingDay(d time.Time) bool
}

// NYSE implements Calendar for the regular US equity session: weekends
// plus the exchange's observed full-day holidays.
type NYSE struct{}

func NewNYSE() NYSE { return NYSE{} }

func (NYSE) IsTradingDay(d time.Time) bool {
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		return false
	}
	return !isNYSEHoliday(d)
}

func isNYSEHoliday(d time.Time) bool {
	y, m, day := d.Year(), d.Month(), d.Day()

	// Fixed-date holidays, shifted to Friday/Monday when they fall on a
	// weekend (the observed date is the market closure).
	fixed := []time.Time{
		observed(time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)),   // New Year's Day
		observed(time.Date(y, time.June, 19, 0, 0, 0, 0, time.UTC)),     // Juneteenth (since 2022)
		observed(time.Date(y, time.July, 4, 0, 0, 0, 0, time.UTC)),      // Independence Day
		observed(time.Date(y, time.December, 25, 0, 0, 0, 0, time.UTC)), // Christmas Day
	}
	for _, h := range fixed {
		if h.Month() == m && h.Day() == day && h.Year() == y {
			if h.Month() == time.June && y < 2022 {
				continue
			}
			return true
		}
	}

	// Floating holidays.
	switch {
	case m == time.January && d.Equal(nthWeekday(y, time.January, time.Monday, 3)): // MLK Day
		return true
	case m == time.February && d.Equal(nthWeekday(y, time.February, time.Monday, 3)): // Washington's Birthday
		return true
	case m == time.May && d.Equal(lastWeekday(y, time.May, time.Monday)): // Memorial Day
		return true
	case m == time.September && d.Equal(nthWeekday(y, time.September, time.Monday, 1)): // Labor Day
		return true
	case m == time.November && d.Equal(nthWeekday(y, time.November, time.Thursday, 4)): // Thanksgiving
		return true
	}

	// Good Friday.
	if d.Equal(easterSunday(y).AddDate(0, 0, -2)) {
		return true
	}

	return false
}

// observed maps a weekend holiday to its closure date: Saturday observes
// on the preceding Friday, Sunday on the following Monday.
func observed(h time.Time) time.Time {
	switch h.Weekday() {
	case time.Saturday:
		return h.AddDate(0, 0, -1)
	case time.Sunday:
		return h.AddDate(0, 0, 1)
	}
	return h
}

func nthWeekday(year int, month time.Month, wd time.Weekday, n int) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(wd) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, offset+(n-1)*7)
}

func lastWeekday(year int, month time.Month, wd time.Weekday) time.Time {
	last := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	offset := (int(last.Weekday()) - int(wd) + 7) % 7
	return last.AddDate(0, 0, -offset)
}

// easterSunday computes Easter via the anonymous Gregorian computus.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
