package indicator

import (
	"errors"
	"fmt"
	"math"
)

var (
	bollingerPeriods = periodsParam(1, 100, 20)
	bollingerFactor  = floatParam("Factor", "Factor", "The standard deviation multiplication factor.", 0.5, 5.0, 2.0)
	bollingerMAType  = movingAverageTypeParam(SimpleMovingAverageType)
)

// BollingerBandSettings configures the Bollinger family
type BollingerBandSettings struct {
	Periods           int
	Factor            float64
	MovingAverageType MovingAverageType
}

// DefaultBollingerBandSettings returns the catalog defaults
func DefaultBollingerBandSettings() BollingerBandSettings {
	return BollingerBandSettings{
		Periods:           int(bollingerPeriods.Default),
		Factor:            bollingerFactor.Default,
		MovingAverageType: MovingAverageType(bollingerMAType.Default),
	}
}

// Validate checks the settings ranges
func (s BollingerBandSettings) Validate() error {
	return errors.Join(
		bollingerPeriods.checkInt(s.Periods),
		bollingerFactor.Check(s.Factor),
		checkMovingAverageType(s.MovingAverageType),
	)
}

// BollingerBand draws bands Factor deviations around a moving average. The
// deviation is the square root of an average of squared distances to the
// moving average, using the same average type.
type BollingerBand struct {
	periods   int
	factor    float64
	average   AverageIndicator
	deviation AverageIndicator

	upper, middle, lower *Series
}

// NewBollingerBand creates Bollinger Bands
func NewBollingerBand(capacity Capacity, settings BollingerBandSettings) (*BollingerBand, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	average, err := NewMovingAverage(settings.MovingAverageType, settings.Periods)
	if err != nil {
		return nil, err
	}
	deviation, err := NewMovingAverage(settings.MovingAverageType, settings.Periods)
	if err != nil {
		return nil, err
	}
	return &BollingerBand{
		periods:   settings.Periods,
		factor:    settings.Factor,
		average:   average,
		deviation: deviation,
		upper:     capacity.newSeries(),
		middle:    capacity.newSeries(),
		lower:     capacity.newSeries(),
	}, nil
}

// Add processes a bar
func (b *BollingerBand) Add(price Price) {
	b.average.Add(price.Close)
	if !b.average.IsReady() {
		return
	}

	avg, _ := b.average.Last()
	b.deviation.Add(math.Pow(price.Close-avg, 2))
	if b.deviation.IsReady() {
		d, _ := b.deviation.Last()
		dev := math.Sqrt(d)
		b.middle.push(avg)
		b.upper.push(avg + dev*b.factor)
		b.lower.push(avg - dev*b.factor)
	}
}

// Upper returns the upper band
func (b *BollingerBand) Upper() *Series { return b.upper }

// Middle returns the moving average
func (b *BollingerBand) Middle() *Series { return b.middle }

// Lower returns the lower band
func (b *BollingerBand) Lower() *Series { return b.lower }

// IsReady returns true once the deviation average is ready
func (b *BollingerBand) IsReady() bool { return b.deviation.IsReady() }

// Plot draws the bands over the prices
func (b *BollingerBand) Plot() Plot {
	return overlay(fmt.Sprintf("BB (%d, %.1f)", b.periods, b.factor),
		line("Upper", b.upper, ColorAuto),
		line("Middle", b.middle, ColorAuto),
		line("Lower", b.lower, ColorAuto))
}

// BollingerBandPercentB locates the close inside the bands: 0 at the lower
// band, 1 at the upper band.
type BollingerBandPercentB struct {
	bands  *BollingerBand
	values *Series
}

// NewBollingerBandPercentB creates a %B indicator
func NewBollingerBandPercentB(capacity Capacity, settings BollingerBandSettings) (*BollingerBandPercentB, error) {
	bands, err := NewBollingerBand(Minimum, settings)
	if err != nil {
		return nil, err
	}
	return &BollingerBandPercentB{bands: bands, values: capacity.newSeries()}, nil
}

// Add processes a bar
func (b *BollingerBandPercentB) Add(price Price) {
	b.bands.Add(price)
	if b.bands.IsReady() {
		lower, upper := b.bands.lower.last(), b.bands.upper.last()
		b.values.push((price.Close - lower) / (upper - lower))
	}
}

// Values returns %B
func (b *BollingerBandPercentB) Values() *Series { return b.values }

// IsReady returns true once the bands are ready
func (b *BollingerBandPercentB) IsReady() bool { return b.bands.IsReady() }

// Plot returns the %B chart
func (b *BollingerBandPercentB) Plot() Plot {
	return chart(fmt.Sprintf("Bollinger Bands - %%B (%d, %.1f)", b.bands.periods, b.bands.factor), 2,
		line("%B", b.values, ColorRed))
}

// BollingerBandWidth is (upper - lower) / middle
type BollingerBandWidth struct {
	bands  *BollingerBand
	values *Series
}

// NewBollingerBandWidth creates a bandwidth indicator
func NewBollingerBandWidth(capacity Capacity, settings BollingerBandSettings) (*BollingerBandWidth, error) {
	bands, err := NewBollingerBand(Minimum, settings)
	if err != nil {
		return nil, err
	}
	return &BollingerBandWidth{bands: bands, values: capacity.newSeries()}, nil
}

// Add processes a bar
func (b *BollingerBandWidth) Add(price Price) {
	b.bands.Add(price)
	if b.bands.IsReady() {
		b.values.push((b.bands.upper.last() - b.bands.lower.last()) / b.bands.middle.last())
	}
}

// Values returns the bandwidth
func (b *BollingerBandWidth) Values() *Series { return b.values }

// IsReady returns true once the bands are ready
func (b *BollingerBandWidth) IsReady() bool { return b.bands.IsReady() }

// Plot returns the bandwidth chart
func (b *BollingerBandWidth) Plot() Plot {
	return chart(fmt.Sprintf("Bollinger Bands - Bandwidth (%d, %.1f)", b.bands.periods, b.bands.factor), 2,
		line("Bandwidth", b.values, ColorRed))
}
