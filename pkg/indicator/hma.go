package indicator

import (
	"fmt"
	"math"
)

// HullMovingAverage is WMA(sqrt(n)) of 2*WMA(n/2) - WMA(n)
type HullMovingAverage struct {
	periods int
	long    *WeightedMovingAverage
	short   *WeightedMovingAverage
	result  *WeightedMovingAverage
	values  *Series
	last    float64
	hasLast bool
}

// NewHullMovingAverage creates an HMA. The half-length average keeps at
// least one period, so HMA(1) passes its input through.
func NewHullMovingAverage(capacity Capacity, settings MovingAverageSettings) (*HullMovingAverage, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	sqrtPeriods := int(math.Round(math.Sqrt(float64(settings.Periods))))
	long, _ := NewWeightedMovingAverage(Minimum, settings)
	short, _ := NewWeightedMovingAverage(Minimum, MovingAverageSettings{Periods: max(1, settings.Periods/2)})
	result, _ := NewWeightedMovingAverage(Minimum, MovingAverageSettings{Periods: sqrtPeriods})

	return &HullMovingAverage{
		periods: settings.Periods,
		long:    long,
		short:   short,
		result:  result,
		values:  capacity.newSeries(),
	}, nil
}

// Add feeds both half and full length averages, then the result average once
// both are ready
func (h *HullMovingAverage) Add(value float64) {
	h.long.Add(value)
	h.short.Add(value)

	if h.long.IsReady() && h.short.IsReady() {
		s, _ := h.short.Last()
		l, _ := h.long.Last()
		h.result.Add(2*s - l)
		h.last, h.hasLast = h.result.Last()

		if h.result.IsReady() {
			h.values.push(h.last)
		}
	}
}

// Values returns the emitted averages
func (h *HullMovingAverage) Values() *Series { return h.values }

// Last returns the latest average
func (h *HullMovingAverage) Last() (float64, bool) { return h.last, h.hasLast }

// IsReady returns true once a value was emitted
func (h *HullMovingAverage) IsReady() bool { return h.values.Len() > 0 }

// Plot draws the average over the prices
func (h *HullMovingAverage) Plot() Plot {
	return overlay(fmt.Sprintf("HMA (%d)", h.periods), line("HMA", h.values, ColorAuto))
}
