package data

import (
	"math"
	"math/rand"
	"time"
)

// synthDataProvider implements Provider generating synthetic data.
//
// Bars are produced from a source seeded by (symbol, from-date), so
// repeated runs over the same inputs see the same series. This keeps
// offline screener output reproducible, which the candidate engine's
// determinism contract depends on.
type synthDataProvider struct {
	secondary Provider
}

func NewSyntheticProvider() Provider { return &synthDataProvider{} }

func (synthDataProv *synthDataProvider) Secondary() Provider {
	return synthDataProv.secondary
}

func (synthDataProv *synthDataProvider) GetDailyBars(symbol string, fromDate, toDate time.Time) ([]Bar, error) {
	rng := rand.New(rand.NewSource(synthSeed(symbol, fromDate)))

	// Base the start price on the symbol so different tickers screen at
	// different strike tiers.
	price := basePrice(symbol)

	var out []Bar
	for cur := fromDate; !cur.After(toDate); cur = cur.AddDate(0, 0, 1) {
		if cur.Weekday() == time.Saturday || cur.Weekday() == time.Sunday {
			continue
		}
		delta := rng.NormFloat64() * 0.01 * price
		open := price
		close := price + delta
		high := math.Max(open, close) + math.Abs(rng.NormFloat64()*0.3)
		low := math.Min(open, close) - math.Abs(rng.NormFloat64()*0.3)
		out = append(out, Bar{Date: cur, Open: open, High: high, Low: low, Close: close, Vol: float64(1000 + rng.Intn(5000))})
		price = close
	}
	return out, nil
}

func (synthDataProv *synthDataProvider) PreviousClose(symbol string, asOf time.Time) (float64, error) {
	if synthDataProv.secondary != nil {
		return synthDataProv.secondary.PreviousClose(symbol, asOf)
	}
	bars, err := synthDataProv.GetDailyBars(symbol, asOf.AddDate(0, 0, -14), asOf)
	if err != nil {
		return 0, err
	}
	return previousCloseFromBars(bars)
}

func synthSeed(symbol string, d time.Time) int64 {
	seed := int64(d.Year())*10000 + int64(d.Month())*100 + int64(d.Day())
	for _, r := range symbol {
		seed = seed*31 + int64(r)
	}
	return seed
}

func basePrice(symbol string) float64 {
	sum := 0
	for _, r := range symbol {
		sum += int(r)
	}
	return 20.0 + float64((sum*7)%480)
}
