package indicator

import (
	"errors"
	"fmt"
)

var (
	trixPeriods = periodsParam(1, 100, 15)
	trixSignal  = signalPeriodsParam(100, 9)
)

// TRIXSettings configures TRIX
type TRIXSettings struct {
	Periods       int
	SignalPeriods int
}

// DefaultTRIXSettings returns the catalog defaults
func DefaultTRIXSettings() TRIXSettings {
	return TRIXSettings{Periods: int(trixPeriods.Default), SignalPeriods: int(trixSignal.Default)}
}

// Validate checks the settings ranges
func (s TRIXSettings) Validate() error {
	return errors.Join(trixPeriods.checkInt(s.Periods), trixSignal.checkInt(s.SignalPeriods))
}

// TRIX is the one-bar percent change of a triple-smoothed exponential
// average of the close, with an exponential signal line
type TRIX struct {
	settings               TRIXSettings
	single, double, triple *ExponentialMovingAverage
	signal                 *ExponentialMovingAverage
	previous               float64
	hasPrevious            bool
	values, signalLine     *Series
}

// NewTRIX creates a TRIX
func NewTRIX(capacity Capacity, settings TRIXSettings) (*TRIX, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	ema := func(periods int) *ExponentialMovingAverage {
		e, _ := NewExponentialMovingAverage(Minimum, MovingAverageSettings{Periods: periods})
		return e
	}
	return &TRIX{
		settings:   settings,
		single:     ema(settings.Periods),
		double:     ema(settings.Periods),
		triple:     ema(settings.Periods),
		signal:     ema(settings.SignalPeriods),
		values:     capacity.newSeries(),
		signalLine: capacity.newSeries(),
	}, nil
}

// Add processes a bar
func (t *TRIX) Add(price Price) {
	t.single.Add(price.Close)
	t.double.Add(t.single.last)
	t.triple.Add(t.double.last)

	last := t.triple.last
	if t.hasPrevious {
		trix := (last - t.previous) / last * 100
		t.signal.Add(trix)
		if t.triple.IsReady() && t.signal.IsReady() {
			t.values.push(trix)
			t.signalLine.push(t.signal.last)
		}
	}
	t.previous, t.hasPrevious = last, true
}

// Values returns the TRIX line
func (t *TRIX) Values() *Series { return t.values }

// Signal returns the signal line
func (t *TRIX) Signal() *Series { return t.signalLine }

// IsReady returns true once a value was emitted
func (t *TRIX) IsReady() bool { return t.values.Len() > 0 }

// Plot returns the TRIX chart
func (t *TRIX) Plot() Plot {
	p := chart("TRIX", 4,
		line(fmt.Sprintf("TRIX (%d)", t.settings.Periods), t.values, ColorBlack),
		line(fmt.Sprintf("Signal (%d)", t.settings.SignalPeriods), t.signalLine, ColorRed))
	p.GridLines = []float64{0}
	return p
}
