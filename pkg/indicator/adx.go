package indicator

import (
	"fmt"
	"math"
)

var adxPeriods = periodsParam(1, 100, 14)

// AverageDirectionalIndexSettings configures AverageDirectionalIndex
type AverageDirectionalIndexSettings struct {
	Periods int
}

// DefaultAverageDirectionalIndexSettings returns the catalog defaults
func DefaultAverageDirectionalIndexSettings() AverageDirectionalIndexSettings {
	return AverageDirectionalIndexSettings{Periods: int(adxPeriods.Default)}
}

// Validate checks the settings ranges
func (s AverageDirectionalIndexSettings) Validate() error {
	return adxPeriods.checkInt(s.Periods)
}

// AverageDirectionalIndex computes +DI, -DI and the smoothed ADX
type AverageDirectionalIndex struct {
	periods  int
	previous *Price

	tr, plusDM, minusDM, dx *Window

	smoothedTR, smoothedPlusDM, smoothedMinusDM, adx float64
	smoothing, averaging                         bool

	up, down, values *Series
}

// NewAverageDirectionalIndex creates an ADX
func NewAverageDirectionalIndex(capacity Capacity, settings AverageDirectionalIndexSettings) (*AverageDirectionalIndex, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	n := settings.Periods
	return &AverageDirectionalIndex{
		periods: n,
		tr:      mustWindow(n, WithSum()),
		plusDM:  mustWindow(n, WithSum()),
		minusDM: mustWindow(n, WithSum()),
		dx:      mustWindow(n, WithSum()),
		up:      capacity.newSeries(),
		down:    capacity.newSeries(),
		values:  capacity.newSeries(),
	}, nil
}

// Add processes a bar
func (a *AverageDirectionalIndex) Add(price Price) {
	if a.previous == nil {
		a.previous = &price
		return
	}
	prev := *a.previous
	n := float64(a.periods)

	tr := price.TrueRange(prev)
	a.tr.Push(tr)

	upMove := price.High - prev.High
	downMove := prev.Low - price.Low
	plusDM, minusDM := 0.0, 0.0
	if upMove > downMove {
		plusDM = math.Max(upMove, 0)
	}
	if downMove > upMove {
		minusDM = math.Max(downMove, 0)
	}
	a.plusDM.Push(plusDM)
	a.minusDM.Push(minusDM)

	if a.tr.IsFull() && a.plusDM.IsFull() && a.minusDM.IsFull() {
		if a.smoothing {
			a.smoothedTR = a.smoothedTR - a.smoothedTR/n + tr
			a.smoothedPlusDM = a.smoothedPlusDM - a.smoothedPlusDM/n + plusDM
			a.smoothedMinusDM = a.smoothedMinusDM - a.smoothedMinusDM/n + minusDM
		} else {
			a.smoothedTR = a.tr.Sum()
			a.smoothedPlusDM = a.plusDM.Sum()
			a.smoothedMinusDM = a.minusDM.Sum()
			a.smoothing = true
		}

		plusDI := 100 * (a.smoothedPlusDM / a.smoothedTR)
		minusDI := 100 * (a.smoothedMinusDM / a.smoothedTR)
		a.dx.Push(100 * (math.Abs(plusDI-minusDI) / (plusDI + minusDI)))

		if a.dx.IsFull() {
			if a.averaging {
				a.adx = (a.adx*(n-1) + a.dx.Last()) / n
			} else {
				a.adx = a.dx.Average()
				a.averaging = true
			}
			a.up.push(plusDI)
			a.down.push(minusDI)
			a.values.push(a.adx)
		}
	}

	a.previous = &price
}

// Up returns the +DI line
func (a *AverageDirectionalIndex) Up() *Series { return a.up }

// Down returns the -DI line
func (a *AverageDirectionalIndex) Down() *Series { return a.down }

// Values returns the ADX line
func (a *AverageDirectionalIndex) Values() *Series { return a.values }

// IsReady returns true once an ADX value was emitted
func (a *AverageDirectionalIndex) IsReady() bool { return a.values.Len() > 0 }

// Plot returns the ADX chart
func (a *AverageDirectionalIndex) Plot() Plot {
	return chart(fmt.Sprintf("ADX (%d)", a.periods), 2,
		line("Up", a.up, ColorPositive),
		line("Down", a.down, ColorNegative),
		line("Average", a.values, ColorBlack))
}
