// Package screen contains the candidate-generation engine for the daily
// long-put screening report.
//
// Responsibilities:
//   - Resolve standard monthly expirations nearest a target horizon
//   - Round target strikes to listed-option increments
//   - Pick the deterministic wildcard slot from fixed menus
//   - Assemble the fixed, ordered set of eight candidates per symbol
//
// Design notes:
//   - Everything here is a pure function of its inputs; the as-of date is
//     always an explicit parameter, never read from the ambient clock
//   - Determinism is part of the contract: the same (symbol, price, date)
//     triple always yields byte-identical output
//   - Errors are typed where useful and wrapped for caller inspection
package screen

import "errors"

//
// ==========================
// Error taxonomy
// ==========================
//

// Typed errors allow callers and tests to detect failure categories
// without string matching.
var (
	ErrInvalidPrice      = errors.New("invalid reference price")
	ErrInvalidStrikeRule = errors.New("invalid strike rule")
)

//
// ==========================
// Domain Types
// ==========================
//

// PutType is the only contract type this screener emits.
const PutType = "Put"

// Candidate is one screened long-put contract.
//
// Bid, Ask, Mid and Notes are deliberately left empty; a downstream
// market-data enrichment step fills them before the report is consumed.
type Candidate struct {
	Symbol      string  `csv:"Symbol" json:"symbol"`
	Num         int     `csv:"Option_Num" json:"option_num"`
	Expiration  string  `csv:"Expiration" json:"expiration"` // ISO YYYY-MM-DD
	Strike      float64 `csv:"Strike" json:"strike"`
	Type        string  `csv:"Type" json:"type"`
	Description string  `csv:"Description" json:"description"`
	Bid         string  `csv:"Bid" json:"bid"`
	Ask         string  `csv:"Ask" json:"ask"`
	Mid         string  `csv:"Mid" json:"mid"`
	Notes       string  `csv:"Notes" json:"notes"`
}
