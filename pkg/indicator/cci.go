package indicator

import (
	"fmt"
	"math"
)

var cciPeriods = periodsParam(1, 100, 20)

// CommodityChannelIndexSettings configures CommodityChannelIndex
type CommodityChannelIndexSettings struct {
	Periods int
}

// DefaultCommodityChannelIndexSettings returns the catalog defaults
func DefaultCommodityChannelIndexSettings() CommodityChannelIndexSettings {
	return CommodityChannelIndexSettings{Periods: int(cciPeriods.Default)}
}

// Validate checks the settings ranges
func (s CommodityChannelIndexSettings) Validate() error {
	return cciPeriods.checkInt(s.Periods)
}

// CommodityChannelIndex relates the typical price to its moving average,
// scaled by 0.015 times the mean deviation
type CommodityChannelIndex struct {
	periods  int
	typicals *Window
	values   *Series
}

// NewCommodityChannelIndex creates a CCI
func NewCommodityChannelIndex(capacity Capacity, settings CommodityChannelIndexSettings) (*CommodityChannelIndex, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &CommodityChannelIndex{
		periods:  settings.Periods,
		typicals: mustWindow(settings.Periods, WithSum()),
		values:   capacity.newSeries(),
	}, nil
}

// Add processes a bar
func (c *CommodityChannelIndex) Add(price Price) {
	typical := price.Typical()
	c.typicals.Push(typical)
	if !c.typicals.IsFull() {
		return
	}

	avg := c.typicals.Average()
	var deviation float64
	for v := range c.typicals.All() {
		deviation += math.Abs(avg - v)
	}
	deviation /= float64(c.typicals.Len())
	c.values.push((typical - avg) / (0.015 * deviation))
}

// Values returns the CCI line
func (c *CommodityChannelIndex) Values() *Series { return c.values }

// IsReady returns true once the window is full
func (c *CommodityChannelIndex) IsReady() bool { return c.typicals.IsFull() }

// Plot returns the CCI chart
func (c *CommodityChannelIndex) Plot() Plot {
	p := chart(fmt.Sprintf("CCI (%d)", c.periods), 0, line("CCI", c.values, ColorRed))
	p.GridLines = []float64{-100, 0, 100}
	return p
}
