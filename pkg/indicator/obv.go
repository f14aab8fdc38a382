package indicator

// OnBalanceVolume adds the bar's volume on up closes and subtracts it on
// down closes. The first bar only sets the reference close.
type OnBalanceVolume struct {
	previous *Price
	total    float64
	values   *Series
}

// NewOnBalanceVolume creates an OBV
func NewOnBalanceVolume(capacity Capacity) *OnBalanceVolume {
	return &OnBalanceVolume{values: capacity.newSeries()}
}

// Add processes a bar
func (o *OnBalanceVolume) Add(price Price) {
	previous := o.previous
	current := price
	o.previous = &current
	if previous == nil {
		return
	}

	switch {
	case price.Close > previous.Close:
		o.total += float64(price.Volume)
	case price.Close < previous.Close:
		o.total -= float64(price.Volume)
	}
	o.values.push(o.total)
}

// Values returns the running volume totals
func (o *OnBalanceVolume) Values() *Series { return o.values }

// IsReady always returns true
func (o *OnBalanceVolume) IsReady() bool { return true }

// Plot returns the OBV chart
func (o *OnBalanceVolume) Plot() Plot {
	return chart("OBV", 0, line("OBV", o.values, ColorRed))
}
