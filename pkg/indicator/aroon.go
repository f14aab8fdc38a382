package indicator

import (
	"fmt"
	"math"
)

var aroonPeriods = periodsParam(1, 100, 25)

// AroonSettings configures AroonUpDown and AroonOscillator
type AroonSettings struct {
	Periods int
}

// DefaultAroonSettings returns the catalog defaults
func DefaultAroonSettings() AroonSettings {
	return AroonSettings{Periods: int(aroonPeriods.Default)}
}

// Validate checks the settings ranges
func (s AroonSettings) Validate() error {
	return aroonPeriods.checkInt(s.Periods)
}

// AroonUpDown measures how many periods passed since the highest and the
// lowest close of the window, scaled to 0..100.
type AroonUpDown struct {
	periods int
	closes  *Window
	up      *Series
	down    *Series
}

// NewAroonUpDown creates an Aroon Up/Down indicator
func NewAroonUpDown(capacity Capacity, settings AroonSettings) (*AroonUpDown, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &AroonUpDown{
		periods: settings.Periods,
		closes:  mustWindow(settings.Periods),
		up:      capacity.newSeries(),
		down:    capacity.newSeries(),
	}, nil
}

// Add processes a bar
func (a *AroonUpDown) Add(price Price) {
	a.closes.Push(price.Close)
	if !a.closes.IsFull() {
		return
	}

	highest, lowest := -math.MaxFloat64, math.MaxFloat64
	sinceHighest, sinceLowest := 0, 0
	for v := range a.closes.All() {
		if v > highest {
			highest = v
			sinceHighest = 0
		} else {
			sinceHighest++
		}
		if v < lowest {
			lowest = v
			sinceLowest = 0
		} else {
			sinceLowest++
		}
	}

	p := float64(a.periods)
	a.up.push(float64(a.periods-sinceHighest) * 100 / p)
	a.down.push(float64(a.periods-sinceLowest) * 100 / p)
}

// Up returns the Aroon Up line
func (a *AroonUpDown) Up() *Series { return a.up }

// Down returns the Aroon Down line
func (a *AroonUpDown) Down() *Series { return a.down }

// IsReady returns true once the window is full
func (a *AroonUpDown) IsReady() bool { return a.closes.IsFull() }

// Plot returns the Aroon chart
func (a *AroonUpDown) Plot() Plot {
	return oscillator(fmt.Sprintf("Aroon Up/Down (%d)", a.periods), 0, 0, 100,
		[]float64{30, 50, 70}, []Band{{0, 30}, {70, 100}},
		line("Up", a.up, ColorPositive),
		line("Down", a.down, ColorNegative))
}

// AroonOscillator is Aroon Up minus Aroon Down
type AroonOscillator struct {
	periods int
	aroon   *AroonUpDown
	values  *Series
}

// NewAroonOscillator creates an Aroon oscillator
func NewAroonOscillator(capacity Capacity, settings AroonSettings) (*AroonOscillator, error) {
	aroon, err := NewAroonUpDown(Minimum, settings)
	if err != nil {
		return nil, err
	}
	return &AroonOscillator{periods: settings.Periods, aroon: aroon, values: capacity.newSeries()}, nil
}

// Add processes a bar
func (a *AroonOscillator) Add(price Price) {
	a.aroon.Add(price)
	if a.aroon.IsReady() {
		a.values.push(a.aroon.up.last() - a.aroon.down.last())
	}
}

// Values returns the oscillator
func (a *AroonOscillator) Values() *Series { return a.values }

// IsReady returns true once the Aroon lines are ready
func (a *AroonOscillator) IsReady() bool { return a.aroon.IsReady() }

// Plot returns the oscillator chart
func (a *AroonOscillator) Plot() Plot {
	return oscillator(fmt.Sprintf("Aroon Oscillator (%d)", a.periods), 0, -100, 100,
		[]float64{0}, nil, line("Aroon", a.values, ColorRed))
}
