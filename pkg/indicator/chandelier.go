package indicator

import (
	"errors"
	"fmt"
)

var (
	chandelierPeriods = periodsParam(1, 200, 22)
	chandelierFactor  = floatParam("Factor", "Factor", "The ATR multiplication factor.", 0.5, 10.0, 3.0)
)

// ChandelierExitSettings configures both Chandelier exits
type ChandelierExitSettings struct {
	Periods int
	Factor  float64
}

// DefaultChandelierExitSettings returns the catalog defaults
func DefaultChandelierExitSettings() ChandelierExitSettings {
	return ChandelierExitSettings{Periods: int(chandelierPeriods.Default), Factor: chandelierFactor.Default}
}

// Validate checks the settings ranges
func (s ChandelierExitSettings) Validate() error {
	return errors.Join(chandelierPeriods.checkInt(s.Periods), chandelierFactor.Check(s.Factor))
}

// chandelier holds the state shared by the long and short exits
type chandelier struct {
	settings ChandelierExitSettings
	extremes *Window
	atr      *AverageTrueRange
	values   *Series
}

func newChandelier(capacity Capacity, settings ChandelierExitSettings) (chandelier, error) {
	if err := settings.Validate(); err != nil {
		return chandelier{}, err
	}
	atr, _ := NewAverageTrueRange(Minimum, AverageTrueRangeSettings{Periods: settings.Periods})
	return chandelier{
		settings: settings,
		extremes: mustWindow(settings.Periods, WithMinMax()),
		atr:      atr,
		values:   capacity.newSeries(),
	}, nil
}

// latestATR returns the ATR once it is ready and has emitted a value. A
// one-period ATR is ready after its seed bar, before its first value.
func (c *chandelier) latestATR() (float64, bool) {
	if !c.atr.IsReady() {
		return 0, false
	}
	return c.atr.values.Last()
}

// ChandelierLongExit trails the highest high by Factor ATRs
type ChandelierLongExit struct {
	chandelier
}

// NewChandelierLongExit creates a long exit
func NewChandelierLongExit(capacity Capacity, settings ChandelierExitSettings) (*ChandelierLongExit, error) {
	c, err := newChandelier(capacity, settings)
	if err != nil {
		return nil, err
	}
	return &ChandelierLongExit{c}, nil
}

// Add processes a bar
func (c *ChandelierLongExit) Add(price Price) {
	c.extremes.Push(price.High)
	c.atr.Add(price)
	if atr, ok := c.latestATR(); ok {
		c.values.push(c.extremes.Max() - atr*c.settings.Factor)
	}
}

// Values returns the exit level
func (c *ChandelierLongExit) Values() *Series { return c.values }

// IsReady returns true once a level was emitted
func (c *ChandelierLongExit) IsReady() bool { return c.values.Len() > 0 }

// Plot draws the exit level over the prices
func (c *ChandelierLongExit) Plot() Plot {
	l := line("Exit", c.values, ColorNegative)
	l.Style = LineStyleDot
	return overlay(fmt.Sprintf("Chandelier Long Exit (%d, %.1f)", c.settings.Periods, c.settings.Factor), l)
}

// ChandelierShortExit trails the lowest low by Factor ATRs
type ChandelierShortExit struct {
	chandelier
}

// NewChandelierShortExit creates a short exit
func NewChandelierShortExit(capacity Capacity, settings ChandelierExitSettings) (*ChandelierShortExit, error) {
	c, err := newChandelier(capacity, settings)
	if err != nil {
		return nil, err
	}
	return &ChandelierShortExit{c}, nil
}

// Add processes a bar
func (c *ChandelierShortExit) Add(price Price) {
	c.extremes.Push(price.Low)
	c.atr.Add(price)
	if atr, ok := c.latestATR(); ok {
		c.values.push(c.extremes.Min() + atr*c.settings.Factor)
	}
}

// Values returns the exit level
func (c *ChandelierShortExit) Values() *Series { return c.values }

// IsReady returns true once a level was emitted
func (c *ChandelierShortExit) IsReady() bool { return c.values.Len() > 0 }

// Plot draws the exit level over the prices
func (c *ChandelierShortExit) Plot() Plot {
	l := line("Exit", c.values, ColorNegative)
	l.Style = LineStyleDot
	return overlay(fmt.Sprintf("Chandelier Short Exit (%d, %.1f)", c.settings.Periods, c.settings.Factor), l)
}
