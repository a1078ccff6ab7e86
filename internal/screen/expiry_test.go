package screen

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthlyExpirationsAreThirdFridays(t *testing.T) {
	asOfs := []time.Time{
		date(2024, time.January, 2),
		date(2024, time.February, 29),
		date(2024, time.December, 31),
		date(2025, time.June, 15),
	}

	for _, asOf := range asOfs {
		for _, exp := range MonthlyExpirations(asOf) {
			if exp.Weekday() != time.Friday {
				t.Errorf("asOf=%s: expiration %s is a %s, want Friday",
					asOf.Format("2006-01-02"), exp.Format("2006-01-02"), exp.Weekday())
			}
			// Third Friday always lands on day 15..21.
			if exp.Day() < 15 || exp.Day() > 21 {
				t.Errorf("asOf=%s: expiration %s day=%d not in third-Friday range",
					asOf.Format("2006-01-02"), exp.Format("2006-01-02"), exp.Day())
			}
		}
	}
}

func TestResolveExpirationKnownDates(t *testing.T) {
	asOf := date(2024, time.January, 2)

	cases := []struct {
		days int
		want string
	}{
		{90, "2024-03-15"},  // target Apr 1, Mar 15 is 17 days off vs Apr 19's 18
		{180, "2024-06-21"}, // target Jun 30
		{135, "2024-05-17"}, // target May 16
		{60, "2024-03-15"},  // target Mar 2
	}

	for _, tc := range cases {
		got := ResolveExpiration(asOf, tc.days)
		if got.Format("2006-01-02") != tc.want {
			t.Errorf("ResolveExpiration(%s, %d) = %s, want %s",
				asOf.Format("2006-01-02"), tc.days, got.Format("2006-01-02"), tc.want)
		}
	}
}

func TestResolveExpirationIsClosestCandidate(t *testing.T) {
	asOf := date(2024, time.March, 7)

	for _, days := range []int{30, 60, 90, 135, 180, 210} {
		got := ResolveExpiration(asOf, days)
		target := asOf.AddDate(0, 0, days)

		gotDiff := absDays(got, target)
		for _, c := range MonthlyExpirations(asOf) {
			if absDays(c, target) < gotDiff {
				t.Errorf("days=%d: candidate %s is closer to %s than resolved %s",
					days, c.Format("2006-01-02"), target.Format("2006-01-02"), got.Format("2006-01-02"))
			}
		}
	}
}

func TestResolveExpirationTieKeepsEarliest(t *testing.T) {
	// 2024-01-02 + 59d = 2024-03-01, exactly 14 days from both the
	// February (02-16) and March (03-15) expirations.
	got := ResolveExpiration(date(2024, time.January, 2), 59)
	if got.Format("2006-01-02") != "2024-02-16" {
		t.Errorf("tie broke to %s, want earliest candidate 2024-02-16", got.Format("2006-01-02"))
	}
}

func TestResolveExpirationIgnoresTimeOfDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	midnight := ResolveExpiration(date(2024, time.January, 2), 90)
	afternoon := ResolveExpiration(time.Date(2024, time.January, 2, 15, 45, 3, 0, loc), 90)
	if !midnight.Equal(afternoon) {
		t.Errorf("time of day changed resolution: %s vs %s", midnight, afternoon)
	}
}
