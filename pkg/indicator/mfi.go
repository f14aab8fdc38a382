package indicator

import (
	"fmt"
	"math"
)

var mfiPeriods = periodsParam(1, 100, 14)

// MoneyFlowIndexSettings configures MoneyFlowIndex
type MoneyFlowIndexSettings struct {
	Periods int
}

// DefaultMoneyFlowIndexSettings returns the catalog defaults
func DefaultMoneyFlowIndexSettings() MoneyFlowIndexSettings {
	return MoneyFlowIndexSettings{Periods: int(mfiPeriods.Default)}
}

// Validate checks the settings ranges
func (s MoneyFlowIndexSettings) Validate() error { return mfiPeriods.checkInt(s.Periods) }

// MoneyFlowIndex is a volume-weighted RSI over typical prices. Each bar's
// raw money flow is signed by the direction of the typical price.
type MoneyFlowIndex struct {
	periods int
	flows   *Window
	last    float64
	hasLast bool
	values  *Series
}

// NewMoneyFlowIndex creates an MFI
func NewMoneyFlowIndex(capacity Capacity, settings MoneyFlowIndexSettings) (*MoneyFlowIndex, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &MoneyFlowIndex{
		periods: settings.Periods,
		flows:   mustWindow(settings.Periods),
		values:  capacity.newSeries(),
	}, nil
}

// Add processes a bar. The first bar has no direction and counts as zero
// flow.
func (m *MoneyFlowIndex) Add(price Price) {
	typical := price.Typical()
	if !m.hasLast {
		m.last, m.hasLast = typical, true
	}

	direction := 0.0
	switch {
	case typical > m.last:
		direction = 1
	case typical < m.last:
		direction = -1
	}
	m.flows.Push(typical * float64(price.Volume) * direction)
	m.last = typical

	if !m.IsReady() {
		return
	}
	var positive, negative float64
	for flow := range m.flows.All() {
		if flow > 0 {
			positive += flow
		} else if flow < 0 {
			negative += flow
		}
	}
	ratio := math.Abs(positive / negative)
	m.values.push(100 - 100/(1+ratio))
}

// Values returns the MFI values
func (m *MoneyFlowIndex) Values() *Series { return m.values }

// IsReady returns true once the window is full
func (m *MoneyFlowIndex) IsReady() bool { return m.flows.IsFull() }

// Plot returns the MFI chart
func (m *MoneyFlowIndex) Plot() Plot {
	return oscillator(fmt.Sprintf("MFI (%d)", m.periods), 0, 0, 100,
		[]float64{20, 50, 80}, []Band{{0, 20}, {80, 100}},
		line("MFI", m.values, ColorRed))
}
