package models

import (
	"math"
	"time"

	"github.com/mohamedkhairy/stock-indicators/pkg/indicator"
)

// Bar is a price bar of one symbol
type Bar struct {
	Symbol string `json:"symbol"`
	indicator.Price
}

// NewBar builds a bar from its fields
func NewBar(symbol string, timestamp time.Time, open, high, low, close float64, volume int64) Bar {
	return Bar{
		Symbol: symbol,
		Price: indicator.Price{
			Timestamp: timestamp,
			Open:      open,
			High:      high,
			Low:       low,
			Close:     close,
			Volume:    volume,
		},
	}
}

// Validate validates a Bar
func (b Bar) Validate() error {
	if b.Symbol == "" {
		return ErrInvalidSymbol
	}
	if b.Timestamp.IsZero() {
		return ErrInvalidTimestamp
	}
	for _, v := range []float64{b.Open, b.High, b.Low, b.Close} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return ErrInvalidPrice
		}
	}
	if b.High < b.Low {
		return ErrInvalidBar
	}
	if b.Volume < 0 {
		return ErrInvalidVolume
	}
	return nil
}

// Value is the latest output of one indicator line
type Value struct {
	Indicator string  `json:"indicator"`
	Line      string  `json:"line"`
	Value     float64 `json:"value"`
	Ready     bool    `json:"ready"`
}

// Snapshot holds the latest values of every indicator of a symbol
type Snapshot struct {
	Symbol    string    `json:"symbol"`
	Timestamp time.Time `json:"timestamp"`
	Bars      int       `json:"bars"`
	Values    []Value   `json:"values"`
}

// Lookup returns the value of the named indicator line
func (s Snapshot) Lookup(indicator, line string) (Value, bool) {
	for _, v := range s.Values {
		if v.Indicator == indicator && v.Line == line {
			return v, true
		}
	}
	return Value{}, false
}
