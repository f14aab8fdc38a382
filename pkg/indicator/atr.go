package indicator

import "fmt"

var atrPeriods = periodsParam(1, 100, 14)

// AverageTrueRangeSettings configures AverageTrueRange
type AverageTrueRangeSettings struct {
	Periods int
}

// DefaultAverageTrueRangeSettings returns the catalog defaults
func DefaultAverageTrueRangeSettings() AverageTrueRangeSettings {
	return AverageTrueRangeSettings{Periods: int(atrPeriods.Default)}
}

// Validate checks the settings ranges
func (s AverageTrueRangeSettings) Validate() error {
	return atrPeriods.checkInt(s.Periods)
}

// AverageTrueRange is Wilder's smoothed true range. The first bar seeds the
// range with high-low, the first Periods bars are averaged, later bars are
// smoothed with weight 1/Periods.
type AverageTrueRange struct {
	periods  int
	count    int
	previous *Price
	atr      float64
	values   *Series
}

// NewAverageTrueRange creates an ATR
func NewAverageTrueRange(capacity Capacity, settings AverageTrueRangeSettings) (*AverageTrueRange, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &AverageTrueRange{periods: settings.Periods, values: capacity.newSeries()}, nil
}

// Add processes a bar
func (a *AverageTrueRange) Add(price Price) {
	switch {
	case a.count == 0 || a.previous == nil:
		a.atr = price.High - price.Low
		a.count++
	case a.count < a.periods-1:
		a.atr += price.TrueRange(*a.previous)
		a.count++
	case a.count < a.periods:
		a.atr = (a.atr + price.TrueRange(*a.previous)) / float64(a.periods)
		a.values.push(a.atr)
		a.count++
	default:
		a.atr = (a.atr*float64(a.periods-1) + price.TrueRange(*a.previous)) / float64(a.periods)
		a.values.push(a.atr)
	}

	previous := price
	a.previous = &previous
}

// Values returns the ATR values
func (a *AverageTrueRange) Values() *Series { return a.values }

// IsReady returns true once Periods bars were seen
func (a *AverageTrueRange) IsReady() bool { return a.count >= a.periods }

// Plot returns the ATR chart
func (a *AverageTrueRange) Plot() Plot {
	return chart(fmt.Sprintf("ATR (%d)", a.periods), 2, line("ATR", a.values, ColorRed))
}
