package indicator

import (
	"errors"
	"fmt"
)

var (
	chaikinFastPeriods = intParam("FastPeriods", "Fast Periods", "The number of look-back periods for the fast moving average.", 1, 100, 3)
	chaikinSlowPeriods = intParam("SlowPeriods", "Slow Periods", "The number of look-back periods for the slow moving average.", 1, 100, 10)

	chaikinComparePeriods   = intParam("ComparePeriods", "Compare Periods", "The number of look-back periods to compare.", 1, 50, 10)
	chaikinSmoothingPeriods = intParam("SmoothingPeriods", "Smoothing Periods", "The number of look-back periods for smoothing.", 1, 50, 10)
)

// ChaikinOscillatorSettings configures ChaikinOscillator
type ChaikinOscillatorSettings struct {
	FastPeriods int
	SlowPeriods int
}

// DefaultChaikinOscillatorSettings returns the catalog defaults
func DefaultChaikinOscillatorSettings() ChaikinOscillatorSettings {
	return ChaikinOscillatorSettings{
		FastPeriods: int(chaikinFastPeriods.Default),
		SlowPeriods: int(chaikinSlowPeriods.Default),
	}
}

// Validate checks the settings ranges
func (s ChaikinOscillatorSettings) Validate() error {
	return errors.Join(chaikinFastPeriods.checkInt(s.FastPeriods), chaikinSlowPeriods.checkInt(s.SlowPeriods))
}

// ChaikinOscillator is the difference between a fast and a slow EMA of the
// accumulation distribution line
type ChaikinOscillator struct {
	settings ChaikinOscillatorSettings
	adl      float64
	fast     *ExponentialMovingAverage
	slow     *ExponentialMovingAverage
	values   *Series
}

// NewChaikinOscillator creates a Chaikin oscillator
func NewChaikinOscillator(capacity Capacity, settings ChaikinOscillatorSettings) (*ChaikinOscillator, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	fast, _ := NewExponentialMovingAverage(Minimum, MovingAverageSettings{Periods: settings.FastPeriods})
	slow, _ := NewExponentialMovingAverage(Minimum, MovingAverageSettings{Periods: settings.SlowPeriods})
	return &ChaikinOscillator{settings: settings, fast: fast, slow: slow, values: capacity.newSeries()}, nil
}

// Add processes a bar
func (c *ChaikinOscillator) Add(price Price) {
	c.adl += price.MoneyFlowVolume()
	c.fast.Add(c.adl)
	c.slow.Add(c.adl)
	if c.IsReady() {
		f, _ := c.fast.Last()
		s, _ := c.slow.Last()
		c.values.push(f - s)
	}
}

// Values returns the oscillator
func (c *ChaikinOscillator) Values() *Series { return c.values }

// IsReady returns true once both averages are ready
func (c *ChaikinOscillator) IsReady() bool { return c.fast.IsReady() && c.slow.IsReady() }

// Plot returns the oscillator chart
func (c *ChaikinOscillator) Plot() Plot {
	p := chart(fmt.Sprintf("Chaikin Oscillator (%d, %d)", c.settings.FastPeriods, c.settings.SlowPeriods), 0,
		line("Chaikin", c.values, ColorRed))
	p.GridLines = []float64{0}
	return p
}

// ChaikinVolatilitySettings configures ChaikinVolatility
type ChaikinVolatilitySettings struct {
	ComparePeriods   int
	SmoothingPeriods int
}

// DefaultChaikinVolatilitySettings returns the catalog defaults
func DefaultChaikinVolatilitySettings() ChaikinVolatilitySettings {
	return ChaikinVolatilitySettings{
		ComparePeriods:   int(chaikinComparePeriods.Default),
		SmoothingPeriods: int(chaikinSmoothingPeriods.Default),
	}
}

// Validate checks the settings ranges
func (s ChaikinVolatilitySettings) Validate() error {
	return errors.Join(chaikinComparePeriods.checkInt(s.ComparePeriods), chaikinSmoothingPeriods.checkInt(s.SmoothingPeriods))
}

// ChaikinVolatility is the percent change of the smoothed high-low range over
// ComparePeriods
type ChaikinVolatility struct {
	settings ChaikinVolatilitySettings
	ema      *ExponentialMovingAverage
	smoothed *Window
	values   *Series
}

// NewChaikinVolatility creates a Chaikin volatility indicator
func NewChaikinVolatility(capacity Capacity, settings ChaikinVolatilitySettings) (*ChaikinVolatility, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	ema, _ := NewExponentialMovingAverage(Minimum, MovingAverageSettings{Periods: settings.SmoothingPeriods})
	return &ChaikinVolatility{
		settings: settings,
		ema:      ema,
		smoothed: mustWindow(settings.ComparePeriods + 1),
		values:   capacity.newSeries(),
	}, nil
}

// Add processes a bar
func (c *ChaikinVolatility) Add(price Price) {
	c.ema.Add(price.High - price.Low)
	if !c.ema.IsReady() {
		return
	}
	v, _ := c.ema.Last()
	c.smoothed.Push(v)
	if c.smoothed.IsFull() {
		first := c.smoothed.First()
		c.values.push((c.smoothed.Last() - first) / first * 100)
	}
}

// Values returns the volatility line
func (c *ChaikinVolatility) Values() *Series { return c.values }

// IsReady returns true once a comparison is possible
func (c *ChaikinVolatility) IsReady() bool { return c.ema.IsReady() && c.smoothed.IsFull() }

// Plot returns the volatility chart
func (c *ChaikinVolatility) Plot() Plot {
	p := chart(fmt.Sprintf("Chaikin Volatility (%d, %d)", c.settings.ComparePeriods, c.settings.SmoothingPeriods), 2,
		line("Volatility", c.values, ColorRed))
	p.GridLines = []float64{0}
	return p
}
