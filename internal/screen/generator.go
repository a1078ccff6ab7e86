package screen

import (
	"fmt"
	"math"
	"time"

	"github.com/contactkeval/option-screener/internal/logger"
)

// CandidatesPerSymbol is the fixed size of one symbol's screen output.
const CandidatesPerSymbol = 8

// Generate produces the ordered set of eight long-put candidates for one
// (symbol, reference price, as-of date) triple.
//
// Slot layout, which callers may rely on:
//
//	1-5  structured exploitation around the 3- and 6-month horizons
//	6-7  exploration picks with their own horizons
//	8    deterministic wildcard from the fixed menus
//
// Returns ErrInvalidPrice (wrapped) for a non-positive or non-finite
// reference price; no partial output is ever produced.
func Generate(symbol string, refPrice float64, asOf time.Time) ([]Candidate, error) {
	if refPrice <= 0 || math.IsNaN(refPrice) || math.IsInf(refPrice, 0) {
		return nil, fmt.Errorf("%w: %s price=%v", ErrInvalidPrice, symbol, refPrice)
	}
	asOf = dateOnly(asOf)

	logger.Debugf("event=generate symbol=%s price=%.2f as_of=%s",
		symbol, refPrice, asOf.Format("2006-01-02"))

	// Phase 1: structured exploitation. The two shared horizons are
	// resolved once and reused across slots 1-5.
	exp3m := ResolveExpiration(asOf, 90)
	exp6m := ResolveExpiration(asOf, 180)

	out := make([]Candidate, 0, CandidatesPerSymbol)
	add := func(exp time.Time, strike float64, desc string) {
		out = append(out, Candidate{
			Symbol:      symbol,
			Num:         len(out) + 1,
			Expiration:  exp.Format("2006-01-02"),
			Strike:      strike,
			Type:        PutType,
			Description: desc,
		})
	}

	add(exp3m, RoundStrike(refPrice, refPrice), "3mo ATM - Anchor")
	add(exp3m, RoundStrike(refPrice, refPrice*0.85), "3mo 15% OTM - Fear Premium")
	add(exp3m, RoundStrike(refPrice, refPrice*0.70), "3mo 30% OTM - Lottery")
	add(exp6m, RoundStrike(refPrice, refPrice*0.85), "6mo 15% OTM - Sweet Spot")
	add(exp6m, RoundStrike(refPrice, refPrice), "6mo ATM - Arb Check")

	// Phase 2: exploration. Each slot resolves its own horizon; slot 7
	// re-resolves 90 days and must land on the same date as slot 1.
	add(ResolveExpiration(asOf, 135), RoundStrike(refPrice, refPrice*0.80), "4.5mo 20% OTM - Explore")
	add(ResolveExpiration(asOf, 90), RoundStrike(refPrice, refPrice*0.60), "3mo 40% OTM - Deep Explore")

	// Phase 3: wildcard.
	otm, days := SelectWildcard(asOf, symbol)
	otmPct := int(math.Round((1 - otm) * 100))
	add(ResolveExpiration(asOf, days), RoundStrike(refPrice, refPrice*otm),
		fmt.Sprintf("Random - %d%% OTM", otmPct))

	logger.Tracef("event=generated symbol=%s candidates=%d wildcard_otm=%.2f wildcard_days=%d",
		symbol, len(out), otm, days)

	return out, nil
}
