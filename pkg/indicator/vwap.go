package indicator

import "time"

// VolumeWeightedAveragePrice is the intraday cumulative typical price
// weighted by volume. It restarts, dropping its values, whenever a bar falls
// on a new date.
type VolumeWeightedAveragePrice struct {
	date             time.Time
	started          bool
	cumulativePrice  float64
	cumulativeVolume float64
	values           *Series
}

// NewVolumeWeightedAveragePrice creates a VWAP
func NewVolumeWeightedAveragePrice(capacity Capacity) *VolumeWeightedAveragePrice {
	return &VolumeWeightedAveragePrice{values: capacity.newSeries()}
}

// Add processes a bar
func (v *VolumeWeightedAveragePrice) Add(price Price) {
	if !v.started || !sameDate(v.date, price.Timestamp) {
		v.values.clear()
		v.date = price.Timestamp
		v.started = true
		v.cumulativePrice = 0
		v.cumulativeVolume = 0
	}

	volume := float64(price.Volume)
	v.cumulativeVolume += volume
	v.cumulativePrice += price.Typical() * volume
	v.values.push(v.cumulativePrice / v.cumulativeVolume)
}

// Values returns the VWAP values of the current date
func (v *VolumeWeightedAveragePrice) Values() *Series { return v.values }

// IsReady returns true once a value was emitted for the current date
func (v *VolumeWeightedAveragePrice) IsReady() bool { return v.values.Len() > 0 }

// Plot draws VWAP over the prices
func (v *VolumeWeightedAveragePrice) Plot() Plot {
	return overlay("VWAP", line("VWAP", v.values, ColorRed))
}
