package indicator

import (
	"errors"
	"fmt"
)

var (
	stochasticK       = intParam("KPeriods", "%K Periods", "The number of look-back periods for %K.", 1, 100, 14)
	stochasticKSmooth = intParam("KSmoothPeriods", "%K Smoothing Periods", "The number of periods used to smooth %K.", 1, 100, 3)
	stochasticDSmooth = intParam("DSmoothPeriods", "%D Smoothing Periods", "The number of periods used to smooth %D.", 1, 100, 3)
	stochasticMAType  = movingAverageTypeParam(SimpleMovingAverageType)
)

// StochasticSettings configures Stochastic
type StochasticSettings struct {
	KPeriods          int
	KSmoothPeriods    int
	DSmoothPeriods    int
	MovingAverageType MovingAverageType
}

// DefaultStochasticSettings returns the catalog defaults
func DefaultStochasticSettings() StochasticSettings {
	return StochasticSettings{
		KPeriods:          int(stochasticK.Default),
		KSmoothPeriods:    int(stochasticKSmooth.Default),
		DSmoothPeriods:    int(stochasticDSmooth.Default),
		MovingAverageType: MovingAverageType(stochasticMAType.Default),
	}
}

// Validate checks the settings ranges
func (s StochasticSettings) Validate() error {
	return errors.Join(
		stochasticK.checkInt(s.KPeriods),
		stochasticKSmooth.checkInt(s.KSmoothPeriods),
		stochasticDSmooth.checkInt(s.DSmoothPeriods),
		checkMovingAverageType(s.MovingAverageType),
	)
}

// Stochastic is the full stochastic oscillator. Raw %K places the close in
// the high/low range of KPeriods bars; it is smoothed once into %K and
// again into %D.
type Stochastic struct {
	settings StochasticSettings
	lows     *Window
	highs    *Window
	fast     AverageIndicator
	full     AverageIndicator
	k, d     *Series
}

// NewStochastic creates a stochastic oscillator
func NewStochastic(capacity Capacity, settings StochasticSettings) (*Stochastic, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	fast, err := NewMovingAverage(settings.MovingAverageType, settings.KSmoothPeriods)
	if err != nil {
		return nil, err
	}
	full, err := NewMovingAverage(settings.MovingAverageType, settings.DSmoothPeriods)
	if err != nil {
		return nil, err
	}
	return &Stochastic{
		settings: settings,
		lows:     mustWindow(settings.KPeriods, WithMinMax()),
		highs:    mustWindow(settings.KPeriods, WithMinMax()),
		fast:     fast,
		full:     full,
		k:        capacity.newSeries(),
		d:        capacity.newSeries(),
	}, nil
}

// Add processes a bar
func (s *Stochastic) Add(price Price) {
	s.lows.Push(price.Low)
	s.highs.Push(price.High)
	if !s.lows.IsFull() || !s.highs.IsFull() {
		return
	}

	lowest := s.lows.Min()
	s.fast.Add((price.Close - lowest) / (s.highs.Max() - lowest) * 100)
	if !s.fast.IsReady() {
		return
	}
	k, _ := s.fast.Last()
	s.full.Add(k)
	if s.full.IsReady() {
		d, _ := s.full.Last()
		s.k.push(k)
		s.d.push(d)
	}
}

// K returns the smoothed %K line
func (s *Stochastic) K() *Series { return s.k }

// D returns the %D line
func (s *Stochastic) D() *Series { return s.d }

// IsReady returns true once %D is ready
func (s *Stochastic) IsReady() bool { return s.full.IsReady() }

// Plot returns the stochastic chart
func (s *Stochastic) Plot() Plot {
	return oscillator(fmt.Sprintf("Stochastic (%d, %d, %d)", s.settings.KPeriods, s.settings.KSmoothPeriods, s.settings.DSmoothPeriods),
		0, 0, 100, []float64{20, 50, 80}, []Band{{0, 20}, {80, 100}},
		line("%K", s.k, ColorBlack),
		line("%D", s.d, ColorRed))
}
