package screen

import "math"

//
// ==========================
// Strike Rounding
// ==========================
//

// strikeIncrement returns the listed-option strike increment for a given
// underlying price. Exchanges list finer strikes on cheap underlyings
// and coarser ones as the share price grows.
func strikeIncrement(refPrice float64) float64 {
	switch {
	case refPrice < 25:
		return 0.5
	case refPrice < 200:
		return 1.0
	default:
		return 5.0
	}
}

// RoundStrike snaps a raw strike target to the nearest listed increment.
//
// The tier is chosen by the reference price of the underlying, not by
// the target itself, so every strike for one symbol shares one grid.
// Ties at exactly half an increment round away from zero (math.Round),
// e.g. RoundStrike(100, 100.5) == 101.
func RoundStrike(refPrice, target float64) float64 {
	inc := strikeIncrement(refPrice)
	return math.Round(target/inc) * inc
}
