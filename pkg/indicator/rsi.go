package indicator

import (
	"fmt"
	"math"
)

var rsiPeriods = periodsParam(1, 100, 14)

// RelativeStrengthIndexSettings configures RelativeStrengthIndex
type RelativeStrengthIndexSettings struct {
	Periods int
}

// DefaultRelativeStrengthIndexSettings returns the catalog defaults
func DefaultRelativeStrengthIndexSettings() RelativeStrengthIndexSettings {
	return RelativeStrengthIndexSettings{Periods: int(rsiPeriods.Default)}
}

// Validate checks the settings ranges
func (s RelativeStrengthIndexSettings) Validate() error { return rsiPeriods.checkInt(s.Periods) }

// RelativeStrengthIndex uses Wilder smoothing of the average gain and loss
// between consecutive closes
type RelativeStrengthIndex struct {
	periods  int
	count    int
	previous float64
	started  bool
	avgGain  float64
	avgLoss  float64
	values   *Series
}

// NewRelativeStrengthIndex creates an RSI
func NewRelativeStrengthIndex(capacity Capacity, settings RelativeStrengthIndexSettings) (*RelativeStrengthIndex, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &RelativeStrengthIndex{periods: settings.Periods, values: capacity.newSeries()}, nil
}

// Add processes a bar
func (r *RelativeStrengthIndex) Add(price Price) {
	if !r.started {
		r.previous = price.Close
		r.started = true
		return
	}

	change := price.Close - r.previous
	r.previous = price.Close
	gain, loss := math.Max(change, 0), math.Max(-change, 0)
	p := float64(r.periods)

	r.count++
	switch {
	case r.count < r.periods:
		r.avgGain += gain
		r.avgLoss += loss
		return
	case r.count == r.periods:
		r.avgGain = (r.avgGain + gain) / p
		r.avgLoss = (r.avgLoss + loss) / p
	default:
		r.avgGain = (r.avgGain*(p-1) + gain) / p
		r.avgLoss = (r.avgLoss*(p-1) + loss) / p
	}
	r.values.push(100 - 100/(1+r.avgGain/r.avgLoss))
}

// Values returns the RSI values
func (r *RelativeStrengthIndex) Values() *Series { return r.values }

// IsReady returns true once a value was emitted
func (r *RelativeStrengthIndex) IsReady() bool { return r.values.Len() > 0 }

// Plot returns the RSI chart
func (r *RelativeStrengthIndex) Plot() Plot {
	return oscillator(fmt.Sprintf("RSI (%d)", r.periods), 0, 0, 100,
		[]float64{30, 50, 70}, []Band{{0, 30}, {70, 100}},
		line("RSI", r.values, ColorRed))
}

var stochRSIPeriods = periodsParam(1, 100, 14)

// StochRSISettings configures StochRSI
type StochRSISettings struct {
	Periods int
}

// DefaultStochRSISettings returns the catalog defaults
func DefaultStochRSISettings() StochRSISettings {
	return StochRSISettings{Periods: int(stochRSIPeriods.Default)}
}

// Validate checks the settings ranges
func (s StochRSISettings) Validate() error { return stochRSIPeriods.checkInt(s.Periods) }

// StochRSI places the latest RSI inside the range of the last Periods RSI
// values, 0 at the low and 1 at the high
type StochRSI struct {
	periods int
	rsi     *RelativeStrengthIndex
	values  *Series
}

// NewStochRSI creates a StochRSI
func NewStochRSI(capacity Capacity, settings StochRSISettings) (*StochRSI, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	retained, err := FromPeriods(settings.Periods)
	if err != nil {
		return nil, err
	}
	rsi, err := NewRelativeStrengthIndex(retained, RelativeStrengthIndexSettings(settings))
	if err != nil {
		return nil, err
	}
	return &StochRSI{periods: settings.Periods, rsi: rsi, values: capacity.newSeries()}, nil
}

// Add processes a bar
func (s *StochRSI) Add(price Price) {
	s.rsi.Add(price)
	if !s.IsReady() {
		return
	}
	highest, lowest := math.Inf(-1), math.Inf(1)
	for v := range s.rsi.values.All() {
		highest = math.Max(highest, v)
		lowest = math.Min(lowest, v)
	}
	s.values.push((s.rsi.values.last() - lowest) / (highest - lowest))
}

// Values returns the StochRSI values
func (s *StochRSI) Values() *Series { return s.values }

// IsReady returns true once Periods RSI values are retained
func (s *StochRSI) IsReady() bool { return s.rsi.values.Len() >= s.periods }

// Plot returns the StochRSI chart
func (s *StochRSI) Plot() Plot {
	return oscillator(fmt.Sprintf("StochRSI (%d)", s.periods), 2, 0, 1,
		[]float64{0.3, 0.5, 0.7}, []Band{{0, 0.3}, {0.7, 1}},
		line("StochRSI", s.values, ColorRed))
}
