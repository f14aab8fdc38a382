package indicator

import (
	"fmt"
	"math"
	"time"
)

// Price is one OHLCV bar
type Price struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    int64     `json:"volume"`
}

// Validate checks the bar invariants. Indicators do not call it; sources do.
func (p Price) Validate() error {
	if p.Timestamp.IsZero() {
		return fmt.Errorf("%w: timestamp is required", ErrInvalidPrice)
	}
	if p.High < p.Low {
		return fmt.Errorf("%w: high %g < low %g", ErrInvalidPrice, p.High, p.Low)
	}
	if p.Volume < 0 {
		return fmt.Errorf("%w: negative volume %d", ErrInvalidPrice, p.Volume)
	}
	return nil
}

// Typical returns (high + low + close) / 3
func (p Price) Typical() float64 {
	return (p.High + p.Low + p.Close) / 3
}

// TrueRange returns the largest of high-low, |high-previous close| and
// |low-previous close|
func (p Price) TrueRange(previous Price) float64 {
	return math.Max(p.High-p.Low, math.Max(math.Abs(p.High-previous.Close), math.Abs(p.Low-previous.Close)))
}

// MoneyFlowMultiplier returns ((close-low) - (high-close)) / (high-low).
// A bar with high == low yields NaN.
func (p Price) MoneyFlowMultiplier() float64 {
	return ((p.Close - p.Low) - (p.High - p.Close)) / (p.High - p.Low)
}

// MoneyFlowVolume returns the money flow multiplier times volume
func (p Price) MoneyFlowVolume() float64 {
	return p.MoneyFlowMultiplier() * float64(p.Volume)
}

// sameDate reports whether both timestamps fall on the same calendar date
// in their own locations.
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Indicator is the part of the contract shared by every indicator
type Indicator interface {
	// IsReady reports whether the warm-up period is over
	IsReady() bool

	// Plot describes how the outputs are charted
	Plot() Plot
}

// AverageIndicator consumes scalar values
type AverageIndicator interface {
	Indicator
	Add(value float64)
	Values() *Series
	// Last returns the latest computed value. Some averages compute a value
	// during warm-up before anything is appended to Values.
	Last() (float64, bool)
}

// PriceIndicator consumes price bars
type PriceIndicator interface {
	Indicator
	Add(price Price)
}

// ComparisonIndicator consumes pairs of price bars for the same period
type ComparisonIndicator interface {
	Indicator
	Add(first, second Price)
}

// AddValues feeds values in order
func AddValues(ind AverageIndicator, values ...float64) {
	for _, v := range values {
		ind.Add(v)
	}
}

// AddPrices feeds prices in order
func AddPrices(ind PriceIndicator, prices ...Price) {
	for _, p := range prices {
		ind.Add(p)
	}
}

// AddPricePairs feeds first[i] and second[i] together
func AddPricePairs(ind ComparisonIndicator, first, second []Price) error {
	if len(first) != len(second) {
		return fmt.Errorf("%w: price series lengths differ (%d != %d)", ErrInvalidConfiguration, len(first), len(second))
	}
	for i := range first {
		ind.Add(first[i], second[i])
	}
	return nil
}

// Feed routes a single bar to ind according to its capability. Average
// indicators receive the close.
func Feed(ind Indicator, price Price) error {
	switch v := ind.(type) {
	case AverageIndicator:
		v.Add(price.Close)
	case PriceIndicator:
		v.Add(price)
	case ComparisonIndicator:
		return fmt.Errorf("%w: comparison indicators need a pair of prices", ErrUnsupportedInput)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedInput, ind)
	}
	return nil
}
