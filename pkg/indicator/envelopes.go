package indicator

import (
	"errors"
	"fmt"
)

var (
	envelopesPeriods  = periodsParam(1, 200, 20)
	envelopesEnvelope = floatParam("Envelope", "Envelope", "The envelope width.", 0.005, 0.5, 0.025)
	envelopesMAType   = movingAverageTypeParam(ExponentialMovingAverageType)
)

// EnvelopesSettings configures Envelopes
type EnvelopesSettings struct {
	Periods           int
	Envelope          float64
	MovingAverageType MovingAverageType
}

// DefaultEnvelopesSettings returns the catalog defaults
func DefaultEnvelopesSettings() EnvelopesSettings {
	return EnvelopesSettings{
		Periods:           int(envelopesPeriods.Default),
		Envelope:          envelopesEnvelope.Default,
		MovingAverageType: MovingAverageType(envelopesMAType.Default),
	}
}

// Validate checks the settings ranges
func (s EnvelopesSettings) Validate() error {
	return errors.Join(
		envelopesPeriods.checkInt(s.Periods),
		envelopesEnvelope.Check(s.Envelope),
		checkMovingAverageType(s.MovingAverageType),
	)
}

// Envelopes draws lines a fixed percentage above and below a moving average
type Envelopes struct {
	settings EnvelopesSettings
	average  AverageIndicator

	upper, middle, lower *Series
}

// NewEnvelopes creates an envelopes indicator
func NewEnvelopes(capacity Capacity, settings EnvelopesSettings) (*Envelopes, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	average, err := NewMovingAverage(settings.MovingAverageType, settings.Periods)
	if err != nil {
		return nil, err
	}
	return &Envelopes{
		settings: settings,
		average:  average,
		upper:    capacity.newSeries(),
		middle:   capacity.newSeries(),
		lower:    capacity.newSeries(),
	}, nil
}

// Add processes a bar
func (e *Envelopes) Add(price Price) {
	e.average.Add(price.Close)
	if !e.average.IsReady() {
		return
	}
	avg, _ := e.average.Last()
	e.middle.push(avg)
	e.upper.push(avg + avg*e.settings.Envelope)
	e.lower.push(avg - avg*e.settings.Envelope)
}

// Upper returns the upper envelope
func (e *Envelopes) Upper() *Series { return e.upper }

// Middle returns the moving average
func (e *Envelopes) Middle() *Series { return e.middle }

// Lower returns the lower envelope
func (e *Envelopes) Lower() *Series { return e.lower }

// IsReady returns true once the average is ready
func (e *Envelopes) IsReady() bool { return e.average.IsReady() }

// Plot draws the envelopes over the prices
func (e *Envelopes) Plot() Plot {
	return overlay(fmt.Sprintf("Envelopes (%d, %.3f)", e.settings.Periods, e.settings.Envelope),
		line("Upper", e.upper, ColorAuto),
		line("Middle", e.middle, ColorAuto),
		line("Lower", e.lower, ColorAuto))
}
