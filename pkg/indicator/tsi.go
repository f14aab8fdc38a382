package indicator

import (
	"errors"
	"fmt"
	"math"
)

var (
	tsiFirst  = intParam("FirstSmoothingPeriods", "1st Smoothing Periods", "The number of periods of the first smoothing.", 1, 100, 25)
	tsiSecond = intParam("SecondSmoothingPeriods", "2nd Smoothing Periods", "The number of periods of the second smoothing.", 1, 100, 13)
	tsiMAType = movingAverageTypeParam(ExponentialMovingAverageType)
)

// TrueStrengthIndexSettings configures TrueStrengthIndex
type TrueStrengthIndexSettings struct {
	FirstSmoothingPeriods  int
	SecondSmoothingPeriods int
	MovingAverageType      MovingAverageType
}

// DefaultTrueStrengthIndexSettings returns the catalog defaults
func DefaultTrueStrengthIndexSettings() TrueStrengthIndexSettings {
	return TrueStrengthIndexSettings{
		FirstSmoothingPeriods:  int(tsiFirst.Default),
		SecondSmoothingPeriods: int(tsiSecond.Default),
		MovingAverageType:      MovingAverageType(tsiMAType.Default),
	}
}

// Validate checks the settings ranges
func (s TrueStrengthIndexSettings) Validate() error {
	return errors.Join(
		tsiFirst.checkInt(s.FirstSmoothingPeriods),
		tsiSecond.checkInt(s.SecondSmoothingPeriods),
		checkMovingAverageType(s.MovingAverageType),
	)
}

// TrueStrengthIndex is the double-smoothed close change divided by the
// double-smoothed absolute close change, times 100
type TrueStrengthIndex struct {
	settings               TrueStrengthIndexSettings
	first, firstAbsolute   AverageIndicator
	second, secondAbsolute AverageIndicator
	previous               float64
	hasPrevious            bool
	values                 *Series
}

// NewTrueStrengthIndex creates a TSI
func NewTrueStrengthIndex(capacity Capacity, settings TrueStrengthIndexSettings) (*TrueStrengthIndex, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	averages := make([]AverageIndicator, 4)
	for i, periods := range []int{settings.FirstSmoothingPeriods, settings.FirstSmoothingPeriods, settings.SecondSmoothingPeriods, settings.SecondSmoothingPeriods} {
		ma, err := NewMovingAverage(settings.MovingAverageType, periods)
		if err != nil {
			return nil, err
		}
		averages[i] = ma
	}
	return &TrueStrengthIndex{
		settings:       settings,
		first:          averages[0],
		firstAbsolute:  averages[1],
		second:         averages[2],
		secondAbsolute: averages[3],
		values:         capacity.newSeries(),
	}, nil
}

// Add processes a bar
func (t *TrueStrengthIndex) Add(price Price) {
	previous, hasPrevious := t.previous, t.hasPrevious
	t.previous, t.hasPrevious = price.Close, true
	if !hasPrevious {
		return
	}

	change := price.Close - previous
	t.first.Add(change)
	t.firstAbsolute.Add(math.Abs(change))
	if !t.first.IsReady() || !t.firstAbsolute.IsReady() {
		return
	}

	first, _ := t.first.Last()
	firstAbsolute, _ := t.firstAbsolute.Last()
	t.second.Add(first)
	t.secondAbsolute.Add(firstAbsolute)
	if t.second.IsReady() && t.secondAbsolute.IsReady() {
		second, _ := t.second.Last()
		secondAbsolute, _ := t.secondAbsolute.Last()
		t.values.push(100 * second / secondAbsolute)
	}
}

// Values returns the TSI values
func (t *TrueStrengthIndex) Values() *Series { return t.values }

// IsReady returns true once a value was emitted
func (t *TrueStrengthIndex) IsReady() bool { return t.values.Len() > 0 }

// Plot returns the TSI chart
func (t *TrueStrengthIndex) Plot() Plot {
	return oscillator(fmt.Sprintf("TSI (%d, %d)", t.settings.FirstSmoothingPeriods, t.settings.SecondSmoothingPeriods),
		2, -100, 100, []float64{-25, 0, 25}, nil,
		line("TSI", t.values, ColorRed))
}
