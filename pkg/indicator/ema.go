package indicator

import "fmt"

// ExponentialMovingAverage weights recent values with factor 2/(1+Periods).
// The first value seeds the average; values are emitted after Periods
// further inputs, although Last is available from the first input on.
type ExponentialMovingAverage struct {
	periods int
	factor  float64
	count   int
	values  *Series
	last    float64
	hasLast bool
}

// NewExponentialMovingAverage creates an EMA
func NewExponentialMovingAverage(capacity Capacity, settings MovingAverageSettings) (*ExponentialMovingAverage, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &ExponentialMovingAverage{
		periods: settings.Periods,
		factor:  2.0 / (1.0 + float64(settings.Periods)),
		values:  capacity.newSeries(),
	}, nil
}

// Add updates the average with value
func (e *ExponentialMovingAverage) Add(value float64) {
	previous := value
	if e.hasLast {
		previous = e.last
	}
	e.last = (value-previous)*e.factor + previous
	e.hasLast = true

	if e.count < e.periods {
		e.count++
		return
	}
	e.values.push(e.last)
}

// Values returns the emitted averages
func (e *ExponentialMovingAverage) Values() *Series { return e.values }

// Last returns the running average
func (e *ExponentialMovingAverage) Last() (float64, bool) { return e.last, e.hasLast }

// IsReady returns true once a value was emitted
func (e *ExponentialMovingAverage) IsReady() bool { return e.values.Len() > 0 }

// Plot draws the average over the prices
func (e *ExponentialMovingAverage) Plot() Plot {
	return overlay(fmt.Sprintf("EMA (%d)", e.periods), line("EMA", e.values, ColorAuto))
}
