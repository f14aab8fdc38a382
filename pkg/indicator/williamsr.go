package indicator

import "fmt"

var williamsRPeriods = periodsParam(1, 100, 14)

// WilliamsRSettings configures WilliamsR
type WilliamsRSettings struct {
	Periods int
}

// DefaultWilliamsRSettings returns the catalog defaults
func DefaultWilliamsRSettings() WilliamsRSettings {
	return WilliamsRSettings{Periods: int(williamsRPeriods.Default)}
}

// Validate checks the settings ranges
func (s WilliamsRSettings) Validate() error { return williamsRPeriods.checkInt(s.Periods) }

// WilliamsR places the close in the high/low range of the window on a
// 0..-100 scale
type WilliamsR struct {
	periods int
	highs   *Window
	lows    *Window
	values  *Series
}

// NewWilliamsR creates a Williams %R
func NewWilliamsR(capacity Capacity, settings WilliamsRSettings) (*WilliamsR, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &WilliamsR{
		periods: settings.Periods,
		highs:   mustWindow(settings.Periods, WithMinMax()),
		lows:    mustWindow(settings.Periods, WithMinMax()),
		values:  capacity.newSeries(),
	}, nil
}

// Add processes a bar
func (w *WilliamsR) Add(price Price) {
	w.highs.Push(price.High)
	w.lows.Push(price.Low)
	if w.IsReady() {
		highest := w.highs.Max()
		w.values.push((highest - price.Close) / (highest - w.lows.Min()) * -100)
	}
}

// Values returns the %R values
func (w *WilliamsR) Values() *Series { return w.values }

// IsReady returns true once both windows are full
func (w *WilliamsR) IsReady() bool { return w.highs.IsFull() && w.lows.IsFull() }

// Plot returns the %R chart
func (w *WilliamsR) Plot() Plot {
	return oscillator(fmt.Sprintf("Williams %%R (%d)", w.periods), 0, -100, 0,
		[]float64{-20, -50, -80}, []Band{{0, -20}, {-80, -100}},
		line("%R", w.values, ColorRed))
}
