package indicator

import "fmt"

var movingAveragePeriods = periodsParam(1, 1000, 50)

// MovingAverageSettings configures the scalar moving averages
type MovingAverageSettings struct {
	Periods int
}

// DefaultMovingAverageSettings returns the catalog defaults
func DefaultMovingAverageSettings() MovingAverageSettings {
	return MovingAverageSettings{Periods: int(movingAveragePeriods.Default)}
}

// Validate checks the periods range
func (s MovingAverageSettings) Validate() error {
	return movingAveragePeriods.checkInt(s.Periods)
}

// SimpleMovingAverage is the arithmetic mean of the last Periods values
type SimpleMovingAverage struct {
	periods int
	window  *Window
	values  *Series
	last    float64
	hasLast bool
}

// NewSimpleMovingAverage creates an SMA
func NewSimpleMovingAverage(capacity Capacity, settings MovingAverageSettings) (*SimpleMovingAverage, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &SimpleMovingAverage{
		periods: settings.Periods,
		window:  mustWindow(settings.Periods, WithSum()),
		values:  capacity.newSeries(),
	}, nil
}

// Add pushes a value into the window
func (s *SimpleMovingAverage) Add(value float64) {
	s.window.Push(value)
	if s.window.IsFull() {
		s.last = s.window.Average()
		s.hasLast = true
		s.values.push(s.last)
	}
}

// Values returns the averages computed so far
func (s *SimpleMovingAverage) Values() *Series { return s.values }

// Last returns the latest average
func (s *SimpleMovingAverage) Last() (float64, bool) { return s.last, s.hasLast }

// IsReady returns true once Periods values were added
func (s *SimpleMovingAverage) IsReady() bool { return s.window.IsFull() }

// Plot draws the average over the prices
func (s *SimpleMovingAverage) Plot() Plot {
	return overlay(fmt.Sprintf("SMA (%d)", s.periods), line("SMA", s.values, ColorAuto))
}
