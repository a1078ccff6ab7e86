package screen

import (
	"fmt"
	"strings"
	"time"

	"github.com/Knetic/govaluate"

	"github.com/contactkeval/option-screener/internal/logger"
)

//
// ==========================
// Custom Picks
// ==========================
//

// PickSpec defines one user-configured candidate beyond the built-in
// eight. The strike rule is either "ATM" or an expression over PRICE,
// e.g. "PRICE * 0.85" or "PRICE - 10".
type PickSpec struct {
	StrikeRule string `json:"strike_rule"`
	DaysAhead  int    `json:"days_ahead"`
	Label      string `json:"label,omitempty"`
}

// AppendCustomPicks resolves the configured extra picks for a symbol and
// appends them after the built-in candidates, numbering from 9 upward.
// The built-in slots are never reordered or altered.
func AppendCustomPicks(cands []Candidate, picks []PickSpec, symbol string, refPrice float64, asOf time.Time) ([]Candidate, error) {
	asOf = dateOnly(asOf)

	for i, pick := range picks {
		target, err := resolvePickStrike(pick.StrikeRule, refPrice)
		if err != nil {
			return nil, fmt.Errorf("custom pick %d for %s: %w", i+1, symbol, err)
		}

		label := pick.Label
		if label == "" {
			label = fmt.Sprintf("Custom - %s @ %dd", strings.TrimSpace(pick.StrikeRule), pick.DaysAhead)
		}

		exp := ResolveExpiration(asOf, pick.DaysAhead)
		cands = append(cands, Candidate{
			Symbol:      symbol,
			Num:         len(cands) + 1,
			Expiration:  exp.Format("2006-01-02"),
			Strike:      RoundStrike(refPrice, target),
			Type:        PutType,
			Description: label,
		})

		logger.Tracef("event=custom_pick symbol=%s rule=%q strike=%.2f expiry=%s",
			symbol, pick.StrikeRule, target, exp.Format("2006-01-02"))
	}
	return cands, nil
}

// resolvePickStrike converts a strike rule into a raw strike target.
//
// Supported formats:
//   - ATM
//   - any govaluate expression over PRICE, e.g. "PRICE * 0.85"
func resolvePickStrike(rule string, refPrice float64) (float64, error) {
	rule = strings.TrimSpace(strings.ToUpper(rule))
	if rule == "" {
		return 0, fmt.Errorf("%w: empty rule", ErrInvalidStrikeRule)
	}
	if rule == "ATM" {
		return refPrice, nil
	}

	expr, err := govaluate.NewEvaluableExpression(rule)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidStrikeRule, rule, err)
	}

	res, err := expr.Evaluate(map[string]interface{}{"PRICE": refPrice})
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidStrikeRule, rule, err)
	}

	target, ok := res.(float64)
	if !ok || target <= 0 {
		return 0, fmt.Errorf("%w: %q evaluated to %v", ErrInvalidStrikeRule, rule, res)
	}
	return target, nil
}
