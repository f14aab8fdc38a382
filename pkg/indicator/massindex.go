package indicator

import (
	"errors"
	"fmt"
)

var (
	massMAPeriods  = intParam("MovingAveragePeriods", "MA Periods", "The number of look-back periods for the moving average.", 1, 100, 9)
	massSumPeriods = intParam("SumPeriods", "Sum Periods", "The number of values to calculate the sum from.", 1, 100, 25)
	massMAType     = movingAverageTypeParam(ExponentialMovingAverageType)
)

// MassIndexSettings configures MassIndex
type MassIndexSettings struct {
	MovingAveragePeriods int
	SumPeriods           int
	MovingAverageType    MovingAverageType
}

// DefaultMassIndexSettings returns the catalog defaults
func DefaultMassIndexSettings() MassIndexSettings {
	return MassIndexSettings{
		MovingAveragePeriods: int(massMAPeriods.Default),
		SumPeriods:           int(massSumPeriods.Default),
		MovingAverageType:    MovingAverageType(massMAType.Default),
	}
}

// Validate checks the settings ranges
func (s MassIndexSettings) Validate() error {
	return errors.Join(
		massMAPeriods.checkInt(s.MovingAveragePeriods),
		massSumPeriods.checkInt(s.SumPeriods),
		checkMovingAverageType(s.MovingAverageType),
	)
}

// MassIndex sums the ratio of a single to a double smoothed high-low range
type MassIndex struct {
	settings MassIndexSettings
	single   AverageIndicator
	double   AverageIndicator
	ratios   *Window
	values   *Series
}

// NewMassIndex creates a mass index
func NewMassIndex(capacity Capacity, settings MassIndexSettings) (*MassIndex, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	single, err := NewMovingAverage(settings.MovingAverageType, settings.MovingAveragePeriods)
	if err != nil {
		return nil, err
	}
	double, err := NewMovingAverage(settings.MovingAverageType, settings.MovingAveragePeriods)
	if err != nil {
		return nil, err
	}
	return &MassIndex{
		settings: settings,
		single:   single,
		double:   double,
		ratios:   mustWindow(settings.SumPeriods, WithSum()),
		values:   capacity.newSeries(),
	}, nil
}

// Add processes a bar
func (m *MassIndex) Add(price Price) {
	m.single.Add(price.High - price.Low)
	if !m.single.IsReady() {
		return
	}
	single, _ := m.single.Last()
	m.double.Add(single)
	if !m.double.IsReady() {
		return
	}
	double, _ := m.double.Last()
	m.ratios.Push(single / double)
	if m.ratios.IsFull() {
		m.values.push(m.ratios.Sum())
	}
}

// Values returns the mass index values
func (m *MassIndex) Values() *Series { return m.values }

// IsReady returns true once a value was emitted
func (m *MassIndex) IsReady() bool { return m.values.Len() > 0 }

// Plot returns the mass index chart with the reversal bulge line at 27
func (m *MassIndex) Plot() Plot {
	p := chart(fmt.Sprintf("Mass Index (%d, %d)", m.settings.MovingAveragePeriods, m.settings.SumPeriods), 2,
		line("Mass Index", m.values, ColorRed))
	p.GridLines = []float64{27}
	return p
}
