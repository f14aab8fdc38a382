package indicator

import "fmt"

var emvPeriods = periodsParam(1, 100, 14)

// EaseOfMovementSettings configures EaseOfMovement
type EaseOfMovementSettings struct {
	Periods int
}

// DefaultEaseOfMovementSettings returns the catalog defaults
func DefaultEaseOfMovementSettings() EaseOfMovementSettings {
	return EaseOfMovementSettings{Periods: int(emvPeriods.Default)}
}

// Validate checks the settings ranges
func (s EaseOfMovementSettings) Validate() error {
	return emvPeriods.checkInt(s.Periods)
}

// emvVolumeScale expresses volume in units of 100 million shares
const emvVolumeScale = 100_000_000.0

// EaseOfMovement averages the midpoint move divided by the box ratio
// (scaled volume over range)
type EaseOfMovement struct {
	periods  int
	previous *Price
	emvs     *Window
	values   *Series
}

// NewEaseOfMovement creates an EMV
func NewEaseOfMovement(capacity Capacity, settings EaseOfMovementSettings) (*EaseOfMovement, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &EaseOfMovement{
		periods: settings.Periods,
		emvs:    mustWindow(settings.Periods, WithSum()),
		values:  capacity.newSeries(),
	}, nil
}

// Add processes a bar
func (e *EaseOfMovement) Add(price Price) {
	if e.previous == nil {
		e.previous = &price
		return
	}
	prev := *e.previous

	distance := (price.High+price.Low)/2 - (prev.High+prev.Low)/2
	box := float64(price.Volume) / emvVolumeScale / (price.High - price.Low)
	e.emvs.Push(distance / box)
	if e.emvs.IsFull() {
		e.values.push(e.emvs.Average())
	}

	e.previous = &price
}

// Values returns the EMV line
func (e *EaseOfMovement) Values() *Series { return e.values }

// IsReady returns true once a value was emitted
func (e *EaseOfMovement) IsReady() bool { return e.values.Len() > 0 }

// Plot returns the EMV chart
func (e *EaseOfMovement) Plot() Plot {
	p := chart(fmt.Sprintf("EMV (%d)", e.periods), 1, line("EMV", e.values, ColorRed))
	p.GridLines = []float64{0}
	return p
}
