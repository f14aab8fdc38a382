package indicator

import "fmt"

var cmfPeriods = periodsParam(1, 100, 20)

// ChaikinMoneyFlowSettings configures ChaikinMoneyFlow
type ChaikinMoneyFlowSettings struct {
	Periods int
}

// DefaultChaikinMoneyFlowSettings returns the catalog defaults
func DefaultChaikinMoneyFlowSettings() ChaikinMoneyFlowSettings {
	return ChaikinMoneyFlowSettings{Periods: int(cmfPeriods.Default)}
}

// Validate checks the settings ranges
func (s ChaikinMoneyFlowSettings) Validate() error {
	return cmfPeriods.checkInt(s.Periods)
}

// ChaikinMoneyFlow is the windowed money flow volume divided by the windowed
// volume
type ChaikinMoneyFlow struct {
	periods   int
	moneyFlow *Window
	volumes   *Window
	values    *Series
}

// NewChaikinMoneyFlow creates a CMF
func NewChaikinMoneyFlow(capacity Capacity, settings ChaikinMoneyFlowSettings) (*ChaikinMoneyFlow, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &ChaikinMoneyFlow{
		periods:   settings.Periods,
		moneyFlow: mustWindow(settings.Periods, WithSum()),
		volumes:   mustWindow(settings.Periods, WithSum()),
		values:    capacity.newSeries(),
	}, nil
}

// Add processes a bar
func (c *ChaikinMoneyFlow) Add(price Price) {
	c.moneyFlow.Push(price.MoneyFlowVolume())
	c.volumes.Push(float64(price.Volume))
	if c.IsReady() {
		c.values.push(c.moneyFlow.Sum() / c.volumes.Sum())
	}
}

// Values returns the CMF line
func (c *ChaikinMoneyFlow) Values() *Series { return c.values }

// IsReady returns true once both windows are full
func (c *ChaikinMoneyFlow) IsReady() bool { return c.moneyFlow.IsFull() && c.volumes.IsFull() }

// Plot returns the CMF chart
func (c *ChaikinMoneyFlow) Plot() Plot {
	p := chart(fmt.Sprintf("CMF (%d)", c.periods), 2, line("CMF", c.values, ColorRed))
	p.GridLines = []float64{0}
	return p
}
