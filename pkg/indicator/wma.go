package indicator

import "fmt"

// WeightedMovingAverage weights the i-th oldest value of the window by i.
// While the window fills, Last holds the weighted average of what is there.
type WeightedMovingAverage struct {
	periods int
	window  *Window
	values  *Series
	last    float64
	hasLast bool
}

// NewWeightedMovingAverage creates a WMA
func NewWeightedMovingAverage(capacity Capacity, settings MovingAverageSettings) (*WeightedMovingAverage, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &WeightedMovingAverage{
		periods: settings.Periods,
		window:  mustWindow(settings.Periods),
		values:  capacity.newSeries(),
	}, nil
}

// Add pushes value and recomputes the weighted average
func (w *WeightedMovingAverage) Add(value float64) {
	w.window.Push(value)

	n := w.window.Len()
	total := float64(n*(n+1)) / 2
	var sum float64
	i := 1
	for v := range w.window.All() {
		sum += v * float64(i) / total
		i++
	}
	w.last = sum
	w.hasLast = true

	if w.window.IsFull() {
		w.values.push(w.last)
	}
}

// Values returns the emitted averages
func (w *WeightedMovingAverage) Values() *Series { return w.values }

// Last returns the latest weighted average
func (w *WeightedMovingAverage) Last() (float64, bool) { return w.last, w.hasLast }

// IsReady returns true once the window is full
func (w *WeightedMovingAverage) IsReady() bool { return w.window.IsFull() }

// Plot draws the average over the prices
func (w *WeightedMovingAverage) Plot() Plot {
	return overlay(fmt.Sprintf("WMA (%d)", w.periods), line("WMA", w.values, ColorAuto))
}
