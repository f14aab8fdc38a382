package indicator

import (
	"fmt"
	"math"
)

var correlationPeriods = periodsParam(1, 200, 50)

// CorrelationCoefficientSettings configures CorrelationCoefficient
type CorrelationCoefficientSettings struct {
	Periods int
}

// DefaultCorrelationCoefficientSettings returns the catalog defaults
func DefaultCorrelationCoefficientSettings() CorrelationCoefficientSettings {
	return CorrelationCoefficientSettings{Periods: int(correlationPeriods.Default)}
}

// Validate checks the settings ranges
func (s CorrelationCoefficientSettings) Validate() error {
	return correlationPeriods.checkInt(s.Periods)
}

// CorrelationCoefficient is the Pearson correlation of two close series
// over a rolling window
type CorrelationCoefficient struct {
	periods       int
	first, second *Window
	firstSquared  *Window
	secondSquared *Window
	products      *Window
	values        *Series
}

// NewCorrelationCoefficient creates a correlation indicator
func NewCorrelationCoefficient(capacity Capacity, settings CorrelationCoefficientSettings) (*CorrelationCoefficient, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	n := settings.Periods
	return &CorrelationCoefficient{
		periods:       n,
		first:         mustWindow(n, WithSum()),
		second:        mustWindow(n, WithSum()),
		firstSquared:  mustWindow(n, WithSum()),
		secondSquared: mustWindow(n, WithSum()),
		products:      mustWindow(n, WithSum()),
		values:        capacity.newSeries(),
	}, nil
}

// Add processes one bar of each instrument for the same period
func (c *CorrelationCoefficient) Add(first, second Price) {
	a, b := first.Close, second.Close
	c.first.Push(a)
	c.second.Push(b)
	c.firstSquared.Push(a * a)
	c.secondSquared.Push(b * b)
	c.products.Push(a * b)
	if !c.products.IsFull() {
		return
	}

	meanA, meanB := c.first.Average(), c.second.Average()
	varianceA := c.firstSquared.Average() - meanA*meanA
	varianceB := c.secondSquared.Average() - meanB*meanB
	covariance := c.products.Average() - meanA*meanB
	c.values.push(covariance / math.Sqrt(varianceA*varianceB))
}

// Values returns the coefficients
func (c *CorrelationCoefficient) Values() *Series { return c.values }

// IsReady returns true once a value was emitted
func (c *CorrelationCoefficient) IsReady() bool { return c.values.Len() > 0 }

// Plot returns the correlation chart
func (c *CorrelationCoefficient) Plot() Plot {
	return oscillator(fmt.Sprintf("Correlation (%d)", c.periods), 2, -1, 1,
		[]float64{-0.75, -0.5, -0.25, 0, 0.25, 0.5, 0.75}, nil,
		line("Correlation", c.values, ColorRed))
}
