package indicator

import (
	"errors"
	"fmt"
)

var (
	keltnerMAType    = movingAverageTypeParam(ExponentialMovingAverageType)
	keltnerMAPeriods = intParam("MovingAveragePeriods", "MA Periods", "The number of look-back periods for the moving average.", 1, 200, 20)
	keltnerATRPeriod = intParam("AverageTrueRangePeriods", "ATR Periods", "The number of look-back periods for the ATR.", 1, 100, 10)
	keltnerFactor    = floatParam("Factor", "Factor", "The ATR multiplication factor.", 1.0, 10.0, 3.0)
)

// KeltnerChannelSettings configures KeltnerChannel
type KeltnerChannelSettings struct {
	MovingAverageType       MovingAverageType
	MovingAveragePeriods    int
	AverageTrueRangePeriods int
	Factor                  float64
}

// DefaultKeltnerChannelSettings returns the catalog defaults
func DefaultKeltnerChannelSettings() KeltnerChannelSettings {
	return KeltnerChannelSettings{
		MovingAverageType:       MovingAverageType(keltnerMAType.Default),
		MovingAveragePeriods:    int(keltnerMAPeriods.Default),
		AverageTrueRangePeriods: int(keltnerATRPeriod.Default),
		Factor:                  keltnerFactor.Default,
	}
}

// Validate checks the settings ranges
func (s KeltnerChannelSettings) Validate() error {
	return errors.Join(
		checkMovingAverageType(s.MovingAverageType),
		keltnerMAPeriods.checkInt(s.MovingAveragePeriods),
		keltnerATRPeriod.checkInt(s.AverageTrueRangePeriods),
		keltnerFactor.Check(s.Factor),
	)
}

// KeltnerChannel draws bands Factor ATRs around a moving average of the close
type KeltnerChannel struct {
	settings KeltnerChannelSettings
	atr      *AverageTrueRange
	average  AverageIndicator

	upper, middle, lower *Series
}

// NewKeltnerChannel creates a Keltner channel
func NewKeltnerChannel(capacity Capacity, settings KeltnerChannelSettings) (*KeltnerChannel, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	average, err := NewMovingAverage(settings.MovingAverageType, settings.MovingAveragePeriods)
	if err != nil {
		return nil, err
	}
	atr, _ := NewAverageTrueRange(Minimum, AverageTrueRangeSettings{Periods: settings.AverageTrueRangePeriods})
	return &KeltnerChannel{
		settings: settings,
		atr:      atr,
		average:  average,
		upper:    capacity.newSeries(),
		middle:   capacity.newSeries(),
		lower:    capacity.newSeries(),
	}, nil
}

// Add feeds the ATR first, then the average
func (k *KeltnerChannel) Add(price Price) {
	k.atr.Add(price)
	k.average.Add(price.Close)
	if !k.IsReady() {
		return
	}
	atr, ok := k.atr.values.Last()
	if !ok {
		return
	}
	avg, _ := k.average.Last()
	k.middle.push(avg)
	k.upper.push(avg + k.settings.Factor*atr)
	k.lower.push(avg - k.settings.Factor*atr)
}

// Upper returns the upper band
func (k *KeltnerChannel) Upper() *Series { return k.upper }

// Middle returns the moving average
func (k *KeltnerChannel) Middle() *Series { return k.middle }

// Lower returns the lower band
func (k *KeltnerChannel) Lower() *Series { return k.lower }

// IsReady returns true once both the ATR and the average are ready
func (k *KeltnerChannel) IsReady() bool { return k.atr.IsReady() && k.average.IsReady() }

// Plot draws the channel over the prices
func (k *KeltnerChannel) Plot() Plot {
	return overlay(fmt.Sprintf("Keltner (%d, %d, %.1f)", k.settings.MovingAveragePeriods, k.settings.AverageTrueRangePeriods, k.settings.Factor),
		line("Upper", k.upper, ColorAuto),
		line("Middle", k.middle, ColorAuto),
		line("Lower", k.lower, ColorAuto))
}
