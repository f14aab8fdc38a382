package indicator

import (
	"fmt"
	"math"
)

var vortexPeriods = periodsParam(1, 100, 14)

// VortexSettings configures Vortex
type VortexSettings struct {
	Periods int
}

// DefaultVortexSettings returns the catalog defaults
func DefaultVortexSettings() VortexSettings {
	return VortexSettings{Periods: int(vortexPeriods.Default)}
}

// Validate checks the settings ranges
func (s VortexSettings) Validate() error { return vortexPeriods.checkInt(s.Periods) }

// Vortex sums positive and negative vortex movement over the window and
// divides each by the summed true range
type Vortex struct {
	periods  int
	ranges   *Window
	plus     *Window
	minus    *Window
	previous *Price
	up, down *Series
}

// NewVortex creates a vortex indicator
func NewVortex(capacity Capacity, settings VortexSettings) (*Vortex, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Vortex{
		periods: settings.Periods,
		ranges:  mustWindow(settings.Periods, WithSum()),
		plus:    mustWindow(settings.Periods, WithSum()),
		minus:   mustWindow(settings.Periods, WithSum()),
		up:      capacity.newSeries(),
		down:    capacity.newSeries(),
	}, nil
}

// Add processes a bar
func (v *Vortex) Add(price Price) {
	if v.previous != nil {
		v.ranges.Push(price.TrueRange(*v.previous))
		v.plus.Push(math.Abs(price.High - v.previous.Low))
		v.minus.Push(math.Abs(price.Low - v.previous.High))
		if v.ranges.IsFull() && v.plus.IsFull() && v.minus.IsFull() {
			tr := v.ranges.Sum()
			v.up.push(v.plus.Sum() / tr)
			v.down.push(v.minus.Sum() / tr)
		}
	}
	previous := price
	v.previous = &previous
}

// Up returns the +VI line
func (v *Vortex) Up() *Series { return v.up }

// Down returns the -VI line
func (v *Vortex) Down() *Series { return v.down }

// IsReady returns true once both lines hold a value
func (v *Vortex) IsReady() bool { return v.up.Len() > 0 && v.down.Len() > 0 }

// Plot returns the vortex chart
func (v *Vortex) Plot() Plot {
	p := chart(fmt.Sprintf("VTX (%d)", v.periods), 4,
		line("+VI", v.up, ColorPositive),
		line("-VI", v.down, ColorNegative))
	p.GridLines = []float64{1}
	return p
}
