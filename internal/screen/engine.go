package screen

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/contactkeval/option-screener/internal/calendar"
	"github.com/contactkeval/option-screener/internal/data"
	"github.com/contactkeval/option-screener/internal/history"
	"github.com/contactkeval/option-screener/internal/logger"
)

// Config struct
type Config struct {
	SymbolsFile string     `json:"symbols_file,omitempty"` // newline-delimited ticker file
	Symbols     []string   `json:"symbols,omitempty"`      // inline symbols, appended to the file's
	OutputDir   string     `json:"output_dir,omitempty"`   // report directory
	HistoryDB   string     `json:"history_db,omitempty"`   // close-history sqlite path
	CustomPicks []PickSpec `json:"custom_picks,omitempty"` // extra per-symbol picks beyond the fixed 8
	Verbosity   int        `json:"verbosity,omitempty"`    // 0=errors,1=info,2=debug
}

// LoadSymbols returns the configured symbol universe: the symbols file
// (when set) followed by any inline symbols, trimmed and deduplicated in
// order of first appearance.
func (cfg *Config) LoadSymbols() ([]string, error) {
	var raw []string

	if cfg.SymbolsFile != "" {
		f, err := os.Open(cfg.SymbolsFile)
		if err != nil {
			return nil, fmt.Errorf("open symbols file: %w", err)
		}
		defer f.Close()

		sc := bufio.NewScanner(f)
		for sc.Scan() {
			raw = append(raw, sc.Text())
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read symbols file: %w", err)
		}
	}
	raw = append(raw, cfg.Symbols...)

	seen := map[string]bool{}
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no symbols configured")
	}
	return out, nil
}

// SymbolError records a per-symbol failure the engine skipped over.
type SymbolError struct {
	Symbol string `json:"symbol"`
	Reason string `json:"reason"`
}

// Result aggregates one run's output across all symbols.
type Result struct {
	AsOf       string        `json:"as_of"`
	Skipped    bool          `json:"skipped,omitempty"` // true when asOf was not a trading day
	Candidates []Candidate   `json:"candidates"`
	Failures   []SymbolError `json:"failures,omitempty"`
}

// Engine runs the daily screen: previous close per symbol, history
// update, candidate generation, aggregation.
type Engine struct {
	cfg   *Config
	prov  data.Provider
	store history.Store
	cal   calendar.Calendar
}

func NewEngine(cfg *Config, prov data.Provider, store history.Store, cal calendar.Calendar) *Engine {
	return &Engine{cfg: cfg, prov: prov, store: store, cal: cal}
}

// Run screens every configured symbol for the given as-of date.
//
// A non-trading asOf short-circuits to an empty, Skipped result. Fetch,
// persistence and generation failures are recorded per symbol and the
// batch continues; Run only errors on configuration problems that make
// the whole run meaningless.
//
// Symbols are screened concurrently. Each symbol's computation reads
// only its own inputs, so the only ordering guarantee needed is the
// output one: candidates appear grouped by symbol in configured order,
// numbered 1..8 (plus any custom picks) within each group.
func (e *Engine) Run(asOf time.Time) (*Result, error) {
	asOf = dateOnly(asOf)
	res := &Result{AsOf: asOf.Format("2006-01-02")}

	if !e.cal.IsTradingDay(asOf) {
		logger.Infof("event=skip_run as_of=%s reason=not_trading_day", res.AsOf)
		res.Skipped = true
		return res, nil
	}

	symbols, err := e.cfg.LoadSymbols()
	if err != nil {
		return nil, err
	}
	logger.Infof("event=run_start as_of=%s symbols=%d", res.AsOf, len(symbols))

	perSymbol := make([][]Candidate, len(symbols))
	failures := make([]*SymbolError, len(symbols))

	var wg sync.WaitGroup
	for i, sym := range symbols {
		wg.Add(1)
		go func(i int, sym string) {
			defer wg.Done()
			cands, err := e.screenSymbol(sym, asOf)
			if err != nil {
				logger.Errorf("event=symbol_failed symbol=%s err=%v", sym, err)
				failures[i] = &SymbolError{Symbol: sym, Reason: err.Error()}
				return
			}
			perSymbol[i] = cands
		}(i, sym)
	}
	wg.Wait()

	for i := range symbols {
		if failures[i] != nil {
			res.Failures = append(res.Failures, *failures[i])
			continue
		}
		res.Candidates = append(res.Candidates, perSymbol[i]...)
	}

	logger.Infof("event=run_done as_of=%s candidates=%d failures=%d",
		res.AsOf, len(res.Candidates), len(res.Failures))
	return res, nil
}

// screenSymbol produces one symbol's candidate set: fetch the previous
// close, record it in the rolling history, then generate. Any failure
// fails the whole symbol; no partial candidate lists escape.
func (e *Engine) screenSymbol(symbol string, asOf time.Time) ([]Candidate, error) {
	px, err := e.prov.PreviousClose(symbol, asOf)
	if err != nil {
		return nil, fmt.Errorf("fetch previous close: %w", err)
	}
	logger.Infof("event=previous_close symbol=%s price=%.2f", symbol, px)

	if e.store != nil {
		if err := e.store.Append(symbol, asOf, px); err != nil {
			return nil, fmt.Errorf("record close history: %w", err)
		}
	}

	cands, err := Generate(symbol, px, asOf)
	if err != nil {
		return nil, err
	}

	if len(e.cfg.CustomPicks) > 0 {
		cands, err = AppendCustomPicks(cands, e.cfg.CustomPicks, symbol, px, asOf)
		if err != nil {
			return nil, err
		}
	}
	return cands, nil
}
