package indicator

import (
	"errors"
	"fmt"
)

var (
	convergenceFast   = fastPeriodsParam(12)
	convergenceSlow   = slowPeriodsParam(26)
	convergenceSignal = signalPeriodsParam(100, 9)
	convergenceMAType = movingAverageTypeParam(ExponentialMovingAverageType)
)

// ConvergenceSettings configures MACD, PPO and PVO
type ConvergenceSettings struct {
	FastPeriods       int
	SlowPeriods       int
	SignalPeriods     int
	MovingAverageType MovingAverageType
}

// DefaultConvergenceSettings returns the catalog defaults
func DefaultConvergenceSettings() ConvergenceSettings {
	return ConvergenceSettings{
		FastPeriods:       int(convergenceFast.Default),
		SlowPeriods:       int(convergenceSlow.Default),
		SignalPeriods:     int(convergenceSignal.Default),
		MovingAverageType: MovingAverageType(convergenceMAType.Default),
	}
}

// Validate checks the settings ranges
func (s ConvergenceSettings) Validate() error {
	return errors.Join(
		convergenceFast.checkInt(s.FastPeriods),
		convergenceSlow.checkInt(s.SlowPeriods),
		convergenceSignal.checkInt(s.SignalPeriods),
		checkMovingAverageType(s.MovingAverageType),
	)
}

// convergence holds a fast, a slow and a signal average plus the three
// output lines shared by MACD, PPO and PVO
type convergence struct {
	settings           ConvergenceSettings
	fast, slow, signal AverageIndicator

	values, signalLine, histogram *Series
}

func newConvergence(capacity Capacity, settings ConvergenceSettings) (convergence, error) {
	if err := settings.Validate(); err != nil {
		return convergence{}, err
	}
	fast, err := NewMovingAverage(settings.MovingAverageType, settings.FastPeriods)
	if err != nil {
		return convergence{}, err
	}
	slow, err := NewMovingAverage(settings.MovingAverageType, settings.SlowPeriods)
	if err != nil {
		return convergence{}, err
	}
	signal, err := NewMovingAverage(settings.MovingAverageType, settings.SignalPeriods)
	if err != nil {
		return convergence{}, err
	}
	return convergence{
		settings:   settings,
		fast:       fast,
		slow:       slow,
		signal:     signal,
		values:     capacity.newSeries(),
		signalLine: capacity.newSeries(),
		histogram:  capacity.newSeries(),
	}, nil
}

// percent feeds (fast-slow)/slow*100 to the signal average once both
// averages are ready and emits when the signal is ready
func (c *convergence) percent(value float64) {
	c.fast.Add(value)
	c.slow.Add(value)
	if !c.fast.IsReady() || !c.slow.IsReady() {
		return
	}
	f, _ := c.fast.Last()
	s, _ := c.slow.Last()
	osc := (f - s) / s * 100
	c.signal.Add(osc)
	if c.signal.IsReady() {
		sig, _ := c.signal.Last()
		c.values.push(osc)
		c.signalLine.push(sig)
		c.histogram.push(osc - sig)
	}
}

// Values returns the oscillator line
func (c *convergence) Values() *Series { return c.values }

// Signal returns the signal line
func (c *convergence) Signal() *Series { return c.signalLine }

// Histogram returns oscillator minus signal
func (c *convergence) Histogram() *Series { return c.histogram }

func (c *convergence) plot(title, name string) Plot {
	hist := line("Histogram", c.histogram, ColorStrongGray)
	hist.Style = LineStyleBar
	p := chart(title, 2,
		line(fmt.Sprintf("%s (%d, %d)", name, c.settings.FastPeriods, c.settings.SlowPeriods), c.values, ColorBlack),
		line(fmt.Sprintf("Signal (%d)", c.settings.SignalPeriods), c.signalLine, ColorRed),
		hist)
	p.GridLines = []float64{0}
	return p
}

// MACD is the difference between a fast and a slow average of the close,
// with a signal average of that difference
type MACD struct {
	convergence
}

// NewMACD creates a MACD
func NewMACD(capacity Capacity, settings ConvergenceSettings) (*MACD, error) {
	c, err := newConvergence(capacity, settings)
	if err != nil {
		return nil, err
	}
	return &MACD{c}, nil
}

// Add processes a bar. The signal average is fed as soon as both averages
// have a running value; lines are emitted once all three are ready.
func (m *MACD) Add(price Price) {
	m.fast.Add(price.Close)
	m.slow.Add(price.Close)

	f, okFast := m.fast.Last()
	s, okSlow := m.slow.Last()
	if !okFast || !okSlow {
		return
	}
	macd := f - s
	m.signal.Add(macd)
	sig, ok := m.signal.Last()
	if ok && m.IsReady() {
		m.values.push(macd)
		m.histogram.push(macd - sig)
		m.signalLine.push(sig)
	}
}

// IsReady returns true once the three averages are ready
func (m *MACD) IsReady() bool {
	return m.fast.IsReady() && m.slow.IsReady() && m.signal.IsReady()
}

// Plot returns the MACD chart
func (m *MACD) Plot() Plot { return m.plot("MACD", "MACD") }

// PercentagePriceOscillator is MACD expressed as a percentage of the slow
// average
type PercentagePriceOscillator struct {
	convergence
}

// NewPercentagePriceOscillator creates a PPO
func NewPercentagePriceOscillator(capacity Capacity, settings ConvergenceSettings) (*PercentagePriceOscillator, error) {
	c, err := newConvergence(capacity, settings)
	if err != nil {
		return nil, err
	}
	return &PercentagePriceOscillator{c}, nil
}

// Add processes a bar
func (p *PercentagePriceOscillator) Add(price Price) { p.percent(price.Close) }

// IsReady returns true once the three averages are ready
func (p *PercentagePriceOscillator) IsReady() bool {
	return p.fast.IsReady() && p.slow.IsReady() && p.signal.IsReady()
}

// Plot returns the PPO chart
func (p *PercentagePriceOscillator) Plot() Plot { return p.plot("PPO", "PPO") }

// PercentageVolumeOscillator applies the PPO formula to volume
type PercentageVolumeOscillator struct {
	convergence
}

// NewPercentageVolumeOscillator creates a PVO
func NewPercentageVolumeOscillator(capacity Capacity, settings ConvergenceSettings) (*PercentageVolumeOscillator, error) {
	c, err := newConvergence(capacity, settings)
	if err != nil {
		return nil, err
	}
	return &PercentageVolumeOscillator{c}, nil
}

// Add processes a bar
func (p *PercentageVolumeOscillator) Add(price Price) { p.percent(float64(price.Volume)) }

// IsReady returns true once a value was emitted
func (p *PercentageVolumeOscillator) IsReady() bool { return p.values.Len() > 0 }

// Plot returns the PVO chart
func (p *PercentageVolumeOscillator) Plot() Plot { return p.plot("PVO", "PVO") }
