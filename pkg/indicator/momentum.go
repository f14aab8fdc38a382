package indicator

import (
	"fmt"
	"math"
)

var momentumPeriods = periodsParam(1, 100, 14)

// MomentumSettings configures Momentum
type MomentumSettings struct {
	Periods int
}

// DefaultMomentumSettings returns the catalog defaults
func DefaultMomentumSettings() MomentumSettings {
	return MomentumSettings{Periods: int(momentumPeriods.Default)}
}

// Validate checks the settings ranges
func (s MomentumSettings) Validate() error { return momentumPeriods.checkInt(s.Periods) }

// Momentum is the close minus the close Periods bars ago
type Momentum struct {
	periods int
	closes  *Window
	values  *Series
}

// NewMomentum creates a momentum indicator
func NewMomentum(capacity Capacity, settings MomentumSettings) (*Momentum, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Momentum{
		periods: settings.Periods,
		closes:  mustWindow(settings.Periods+1, WithMinMax()),
		values:  capacity.newSeries(),
	}, nil
}

// Add processes a bar
func (m *Momentum) Add(price Price) {
	m.closes.Push(price.Close)
	if m.closes.IsFull() {
		m.values.push(m.closes.Last() - m.closes.First())
	}
}

// Values returns the momentum values
func (m *Momentum) Values() *Series { return m.values }

// IsReady returns true once Periods+1 closes were seen
func (m *Momentum) IsReady() bool { return m.closes.IsFull() }

// Plot returns the momentum chart with a grid line at zero
func (m *Momentum) Plot() Plot {
	p := chart(fmt.Sprintf("Momentum (%d)", m.periods), 2, line("Momentum", m.values, ColorRed))
	p.GridLines = []float64{0}
	return p
}

var rocPeriods = periodsParam(1, 200, 12)

// RateOfChangeSettings configures RateOfChange
type RateOfChangeSettings struct {
	Periods int
}

// DefaultRateOfChangeSettings returns the catalog defaults
func DefaultRateOfChangeSettings() RateOfChangeSettings {
	return RateOfChangeSettings{Periods: int(rocPeriods.Default)}
}

// Validate checks the settings ranges
func (s RateOfChangeSettings) Validate() error { return rocPeriods.checkInt(s.Periods) }

// RateOfChange is the percent change of the close over Periods bars
type RateOfChange struct {
	periods int
	closes  *Window
	values  *Series
}

// NewRateOfChange creates a ROC
func NewRateOfChange(capacity Capacity, settings RateOfChangeSettings) (*RateOfChange, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &RateOfChange{
		periods: settings.Periods,
		closes:  mustWindow(settings.Periods),
		values:  capacity.newSeries(),
	}, nil
}

// Add processes a bar. The window holds the previous Periods closes, so the
// oldest one is exactly Periods bars back.
func (r *RateOfChange) Add(price Price) {
	if r.closes.IsFull() {
		past := r.closes.First()
		r.values.push((price.Close - past) / past * 100)
	}
	r.closes.Push(price.Close)
}

// Values returns the ROC values
func (r *RateOfChange) Values() *Series { return r.values }

// IsReady returns true once a value was emitted
func (r *RateOfChange) IsReady() bool { return r.values.Len() > 0 }

// Plot returns the ROC chart
func (r *RateOfChange) Plot() Plot {
	p := chart(fmt.Sprintf("ROC (%d)", r.periods), 2, line("ROC", r.values, ColorRed))
	p.GridLines = []float64{0}
	return p
}

var stdDevPeriods = periodsParam(1, 200, 50)

// StandardDeviationSettings configures StandardDeviation
type StandardDeviationSettings struct {
	Periods int
}

// DefaultStandardDeviationSettings returns the catalog defaults
func DefaultStandardDeviationSettings() StandardDeviationSettings {
	return StandardDeviationSettings{Periods: int(stdDevPeriods.Default)}
}

// Validate checks the settings ranges
func (s StandardDeviationSettings) Validate() error { return stdDevPeriods.checkInt(s.Periods) }

// StandardDeviation is the square root of the average squared deviation of
// the close from its running mean
type StandardDeviation struct {
	periods    int
	closes     *Window
	deviations *Window
	values     *Series
}

// NewStandardDeviation creates a standard deviation indicator
func NewStandardDeviation(capacity Capacity, settings StandardDeviationSettings) (*StandardDeviation, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &StandardDeviation{
		periods:    settings.Periods,
		closes:     mustWindow(settings.Periods, WithSum()),
		deviations: mustWindow(settings.Periods, WithSum()),
		values:     capacity.newSeries(),
	}, nil
}

// Add processes a bar
func (s *StandardDeviation) Add(price Price) {
	s.closes.Push(price.Close)
	d := price.Close - s.closes.Average()
	s.deviations.Push(d * d)
	if s.closes.IsFull() && s.deviations.IsFull() {
		s.values.push(math.Sqrt(s.deviations.Average()))
	}
}

// Values returns the deviation values
func (s *StandardDeviation) Values() *Series { return s.values }

// IsReady returns true once both windows are full
func (s *StandardDeviation) IsReady() bool { return s.closes.IsFull() && s.deviations.IsFull() }

// Plot returns the deviation chart
func (s *StandardDeviation) Plot() Plot {
	return chart(fmt.Sprintf("StdDev (%d)", s.periods), 2, line("StdDev", s.values, ColorRed))
}
