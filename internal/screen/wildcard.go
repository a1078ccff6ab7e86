package screen

import "time"

//
// ==========================
// Wildcard Selection
// ==========================
//

// The wildcard menus. Both must stay the same length: a single mod-len
// seed indexes each of them, and downstream reports depend on the exact
// pairing this produces.
var (
	wildcardOTMLevels = []float64{0.95, 0.90, 0.82, 0.75, 0.65, 0.55}
	wildcardDayMenu   = []int{60, 90, 120, 150, 180, 210}
)

func init() {
	if len(wildcardOTMLevels) != len(wildcardDayMenu) {
		panic("screen: wildcard menus must have equal length")
	}
}

// SelectWildcard deterministically picks the eighth slot's OTM fraction
// and days-ahead horizon from the fixed menus.
//
// The seed is (day-of-year * sum of the symbol's character codes) modulo
// the menu length. It is a weak, non-uniform hash on purpose: the exact
// formula is load-bearing because existing report sequences were
// produced with it. Identical (asOf, symbol) always yields the same
// pair; there is no entropy source.
func SelectWildcard(asOf time.Time, symbol string) (otm float64, daysAhead int) {
	mix := dayOfYear(asOf) * charSum(symbol)

	otm = wildcardOTMLevels[mix%len(wildcardOTMLevels)]
	daysAhead = wildcardDayMenu[mix%len(wildcardDayMenu)]
	return otm, daysAhead
}

func dayOfYear(t time.Time) int {
	return dateOnly(t).YearDay()
}

func charSum(s string) int {
	sum := 0
	for _, r := range s {
		sum += int(r)
	}
	return sum
}
