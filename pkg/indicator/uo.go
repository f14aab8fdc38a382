package indicator

import (
	"errors"
	"fmt"
	"math"
)

var (
	uoShort  = intParam("ShortPeriods", "Short Periods", "The number of look-back periods for the short period.", 1, 100, 7)
	uoMedium = intParam("MediumPeriods", "Medium Periods", "The number of look-back periods for the medium period.", 1, 100, 14)
	uoLong   = intParam("LongPeriods", "Long Periods", "The number of look-back periods for the long period.", 1, 100, 28)
)

// UltimateOscillatorSettings configures UltimateOscillator
type UltimateOscillatorSettings struct {
	ShortPeriods  int
	MediumPeriods int
	LongPeriods   int
}

// DefaultUltimateOscillatorSettings returns the catalog defaults
func DefaultUltimateOscillatorSettings() UltimateOscillatorSettings {
	return UltimateOscillatorSettings{
		ShortPeriods:  int(uoShort.Default),
		MediumPeriods: int(uoMedium.Default),
		LongPeriods:   int(uoLong.Default),
	}
}

// Validate checks the ranges and that short < medium < long
func (s UltimateOscillatorSettings) Validate() error {
	errs := []error{uoShort.checkInt(s.ShortPeriods), uoMedium.checkInt(s.MediumPeriods), uoLong.checkInt(s.LongPeriods)}
	if s.ShortPeriods >= s.MediumPeriods {
		errs = append(errs, fmt.Errorf("%w: ShortPeriods must be less than MediumPeriods", ErrInvalidConfiguration))
	}
	if s.MediumPeriods >= s.LongPeriods {
		errs = append(errs, fmt.Errorf("%w: MediumPeriods must be less than LongPeriods", ErrInvalidConfiguration))
	}
	return errors.Join(errs...)
}

// pressureWindow sums buying pressure and true range over one period
type pressureWindow struct {
	pressure *Window
	ranges   *Window
}

func newPressureWindow(periods int) pressureWindow {
	return pressureWindow{pressure: mustWindow(periods, WithSum()), ranges: mustWindow(periods, WithSum())}
}

func (w pressureWindow) push(pressure, trueRange float64) {
	w.pressure.Push(pressure)
	w.ranges.Push(trueRange)
}

func (w pressureWindow) average() float64 { return w.pressure.Sum() / w.ranges.Sum() }

// UltimateOscillator weights buying pressure over three periods 4:2:1
type UltimateOscillator struct {
	settings            UltimateOscillatorSettings
	short, medium, long pressureWindow
	previous            *Price
	values              *Series
}

// NewUltimateOscillator creates an ultimate oscillator
func NewUltimateOscillator(capacity Capacity, settings UltimateOscillatorSettings) (*UltimateOscillator, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &UltimateOscillator{
		settings: settings,
		short:    newPressureWindow(settings.ShortPeriods),
		medium:   newPressureWindow(settings.MediumPeriods),
		long:     newPressureWindow(settings.LongPeriods),
		values:   capacity.newSeries(),
	}, nil
}

// Add processes a bar
func (u *UltimateOscillator) Add(price Price) {
	if u.previous != nil {
		low := math.Min(price.Low, u.previous.Close)
		pressure := price.Close - low
		trueRange := math.Max(price.High, u.previous.Close) - low
		for _, w := range []pressureWindow{u.short, u.medium, u.long} {
			w.push(pressure, trueRange)
		}
		if u.long.pressure.IsFull() && u.long.ranges.IsFull() {
			u.values.push(100 * (4*u.short.average() + 2*u.medium.average() + u.long.average()) / 7)
		}
	}
	previous := price
	u.previous = &previous
}

// Values returns the oscillator values
func (u *UltimateOscillator) Values() *Series { return u.values }

// IsReady returns true once a value was emitted
func (u *UltimateOscillator) IsReady() bool { return u.values.Len() > 0 }

// Plot returns the oscillator chart
func (u *UltimateOscillator) Plot() Plot {
	return oscillator(fmt.Sprintf("UO (%d, %d, %d)", u.settings.ShortPeriods, u.settings.MediumPeriods, u.settings.LongPeriods),
		0, 0, 100, []float64{30, 50, 70}, []Band{{0, 30}, {70, 100}},
		line("UO", u.values, ColorRed))
}
