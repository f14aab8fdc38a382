package indicator

import "fmt"

// DoubleExponentialMovingAverage is 2*EMA - EMA(EMA)
type DoubleExponentialMovingAverage struct {
	periods int
	single  *ExponentialMovingAverage
	double  *ExponentialMovingAverage
	values  *Series
	last    float64
	hasLast bool
}

// NewDoubleExponentialMovingAverage creates a DEMA
func NewDoubleExponentialMovingAverage(capacity Capacity, settings MovingAverageSettings) (*DoubleExponentialMovingAverage, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	single, _ := NewExponentialMovingAverage(Minimum, settings)
	double, _ := NewExponentialMovingAverage(Minimum, settings)
	return &DoubleExponentialMovingAverage{
		periods: settings.Periods,
		single:  single,
		double:  double,
		values:  capacity.newSeries(),
	}, nil
}

// Add feeds value to the single EMA, then the single EMA's value to the double one
func (d *DoubleExponentialMovingAverage) Add(value float64) {
	d.single.Add(value)
	s, _ := d.single.Last()
	d.double.Add(s)
	dd, _ := d.double.Last()

	d.last = 2*s - dd
	d.hasLast = true
	if d.double.IsReady() {
		d.values.push(d.last)
	}
}

// Values returns the emitted averages
func (d *DoubleExponentialMovingAverage) Values() *Series { return d.values }

// Last returns the latest average
func (d *DoubleExponentialMovingAverage) Last() (float64, bool) { return d.last, d.hasLast }

// IsReady returns true once a value was emitted
func (d *DoubleExponentialMovingAverage) IsReady() bool { return d.values.Len() > 0 }

// Plot draws the average over the prices
func (d *DoubleExponentialMovingAverage) Plot() Plot {
	return overlay(fmt.Sprintf("DEMA (%d)", d.periods), line("DEMA", d.values, ColorAuto))
}
