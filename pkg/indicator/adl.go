package indicator

// AccumulationDistributionLine is the running total of money flow volume
type AccumulationDistributionLine struct {
	total  float64
	values *Series
}

// NewAccumulationDistributionLine creates an ADL
func NewAccumulationDistributionLine(capacity Capacity) *AccumulationDistributionLine {
	return &AccumulationDistributionLine{values: capacity.newSeries()}
}

// Add accumulates the bar's money flow volume
func (a *AccumulationDistributionLine) Add(price Price) {
	a.total += price.MoneyFlowVolume()
	a.values.push(a.total)
}

// Values returns the line
func (a *AccumulationDistributionLine) Values() *Series { return a.values }

// IsReady is always true; the line has no warm-up
func (a *AccumulationDistributionLine) IsReady() bool { return true }

// Plot returns the ADL chart
func (a *AccumulationDistributionLine) Plot() Plot {
	return chart("ADL", 0, line("ADL", a.values, ColorRed))
}
