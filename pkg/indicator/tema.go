package indicator

import "fmt"

// TripleExponentialMovingAverage is 3*EMA - 3*EMA(EMA) + EMA(EMA(EMA))
type TripleExponentialMovingAverage struct {
	periods int
	single  *ExponentialMovingAverage
	double  *ExponentialMovingAverage
	triple  *ExponentialMovingAverage
	values  *Series
	last    float64
	hasLast bool
}

// NewTripleExponentialMovingAverage creates a TEMA
func NewTripleExponentialMovingAverage(capacity Capacity, settings MovingAverageSettings) (*TripleExponentialMovingAverage, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	single, _ := NewExponentialMovingAverage(Minimum, settings)
	double, _ := NewExponentialMovingAverage(Minimum, settings)
	triple, _ := NewExponentialMovingAverage(Minimum, settings)
	return &TripleExponentialMovingAverage{
		periods: settings.Periods,
		single:  single,
		double:  double,
		triple:  triple,
		values:  capacity.newSeries(),
	}, nil
}

// Add chains value through the single, double and triple EMAs in that order
func (t *TripleExponentialMovingAverage) Add(value float64) {
	t.single.Add(value)
	s, _ := t.single.Last()
	t.double.Add(s)
	d, _ := t.double.Last()
	t.triple.Add(d)
	tt, _ := t.triple.Last()

	t.last = 3*s - 3*d + tt
	t.hasLast = true
	if t.triple.IsReady() {
		t.values.push(t.last)
	}
}

// Values returns the emitted averages
func (t *TripleExponentialMovingAverage) Values() *Series { return t.values }

// Last returns the latest average
func (t *TripleExponentialMovingAverage) Last() (float64, bool) { return t.last, t.hasLast }

// IsReady returns true once a value was emitted
func (t *TripleExponentialMovingAverage) IsReady() bool { return t.values.Len() > 0 }

// Plot draws the average over the prices
func (t *TripleExponentialMovingAverage) Plot() Plot {
	return overlay(fmt.Sprintf("TEMA (%d)", t.periods), line("TEMA", t.values, ColorAuto))
}
