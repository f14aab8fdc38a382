package indicator

import "fmt"

var donchianPeriods = periodsParam(1, 200, 20)

// DonchianChannelSettings configures DonchianChannel and its width
type DonchianChannelSettings struct {
	Periods int
}

// DefaultDonchianChannelSettings returns the catalog defaults
func DefaultDonchianChannelSettings() DonchianChannelSettings {
	return DonchianChannelSettings{Periods: int(donchianPeriods.Default)}
}

// Validate checks the settings ranges
func (s DonchianChannelSettings) Validate() error {
	return donchianPeriods.checkInt(s.Periods)
}

// DonchianChannel is the highest high and lowest low of the window and
// their midpoint
type DonchianChannel struct {
	periods int
	highs   *Window
	lows    *Window

	upper, center, lower *Series
}

// NewDonchianChannel creates a Donchian channel
func NewDonchianChannel(capacity Capacity, settings DonchianChannelSettings) (*DonchianChannel, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &DonchianChannel{
		periods: settings.Periods,
		highs:   mustWindow(settings.Periods, WithMinMax()),
		lows:    mustWindow(settings.Periods, WithMinMax()),
		upper:   capacity.newSeries(),
		center:  capacity.newSeries(),
		lower:   capacity.newSeries(),
	}, nil
}

// Add processes a bar
func (d *DonchianChannel) Add(price Price) {
	d.highs.Push(price.High)
	d.lows.Push(price.Low)
	if d.highs.IsFull() && d.lows.IsFull() {
		high, low := d.highs.Max(), d.lows.Min()
		d.center.push((high + low) / 2)
		d.upper.push(high)
		d.lower.push(low)
	}
}

// Upper returns the highest highs
func (d *DonchianChannel) Upper() *Series { return d.upper }

// Center returns the midpoints
func (d *DonchianChannel) Center() *Series { return d.center }

// Lower returns the lowest lows
func (d *DonchianChannel) Lower() *Series { return d.lower }

// IsReady returns true once a channel was emitted
func (d *DonchianChannel) IsReady() bool { return d.center.Len() > 0 }

// Plot draws the channel over the prices
func (d *DonchianChannel) Plot() Plot {
	return overlay(fmt.Sprintf("Donchian (%d)", d.periods),
		line("Upper", d.upper, ColorAuto),
		line("Center", d.center, ColorAuto),
		line("Lower", d.lower, ColorAuto))
}

// DonchianChannelWidth is the distance between the channel lines
type DonchianChannelWidth struct {
	channel *DonchianChannel
	values  *Series
}

// NewDonchianChannelWidth creates a channel width indicator
func NewDonchianChannelWidth(capacity Capacity, settings DonchianChannelSettings) (*DonchianChannelWidth, error) {
	channel, err := NewDonchianChannel(Minimum, settings)
	if err != nil {
		return nil, err
	}
	return &DonchianChannelWidth{channel: channel, values: capacity.newSeries()}, nil
}

// Add processes a bar
func (d *DonchianChannelWidth) Add(price Price) {
	d.channel.Add(price)
	if d.channel.IsReady() {
		d.values.push(d.channel.upper.last() - d.channel.lower.last())
	}
}

// Values returns the width
func (d *DonchianChannelWidth) Values() *Series { return d.values }

// IsReady returns true once a width was emitted
func (d *DonchianChannelWidth) IsReady() bool { return d.values.Len() > 0 }

// Plot returns the width chart
func (d *DonchianChannelWidth) Plot() Plot {
	return chart(fmt.Sprintf("Donchian Width (%d)", d.channel.periods), 2, line("Width", d.values, ColorRed))
}
