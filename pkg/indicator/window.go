package indicator

import (
	"iter"
	"math"
)

// Window is a fixed-size sliding window over float64 values that keeps its
// sum and extremes up to date as values are pushed and evicted.
//
// Sum and min/max maintenance are opt-in. Average and Sum cost O(1). Min and
// Max cost O(1) except when the evicted value was the tracked extreme, in
// which case the surviving values are rescanned.
type Window struct {
	buf *BoundedSequence[float64]

	trackSum    bool
	trackMinMax bool

	sum      float64
	minIndex int
	maxIndex int
}

// WindowOption configures the aggregates a Window maintains
type WindowOption func(*Window)

// WithSum enables the running sum (and therefore Average)
func WithSum() WindowOption {
	return func(w *Window) { w.trackSum = true }
}

// WithMinMax enables minimum and maximum tracking
func WithMinMax() WindowOption {
	return func(w *Window) { w.trackMinMax = true }
}

// NewWindow creates a window holding the last size values
func NewWindow(size int, opts ...WindowOption) (*Window, error) {
	buf, err := NewBoundedSequence[float64](size)
	if err != nil {
		return nil, err
	}

	w := &Window{buf: buf, minIndex: -1, maxIndex: -1}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// mustWindow is used by indicators whose window size was already validated.
func mustWindow(size int, opts ...WindowOption) *Window {
	w, err := NewWindow(size, opts...)
	if err != nil {
		panic(err)
	}
	return w
}

// Push adds a value, evicting the oldest one once the window is full
func (w *Window) Push(value float64) {
	items := w.buf.items
	n := len(items)
	next := (w.buf.head + 1) % n

	if w.trackSum {
		if w.buf.full {
			w.sum -= items[next]
		}
		w.sum += value
	}

	if w.trackMinMax {
		if w.buf.full && next == w.minIndex {
			w.minIndex = w.rescan(next, func(a, b float64) bool { return a < b })
		}
		if w.buf.full && next == w.maxIndex {
			w.maxIndex = w.rescan(next, func(a, b float64) bool { return a > b })
		}
		if w.minIndex == -1 || value < items[w.minIndex] {
			w.minIndex = next
		}
		if w.maxIndex == -1 || value > items[w.maxIndex] {
			w.maxIndex = next
		}
	}

	w.buf.Push(value)
}

// rescan finds the extreme among the n-1 slots that survive an eviction at
// slot evicted, visiting them oldest first so ties keep the earliest value.
func (w *Window) rescan(evicted int, better func(a, b float64) bool) int {
	items := w.buf.items
	n := len(items)
	best := -1
	for k := 1; k < n; k++ {
		p := (evicted + k) % n
		if best == -1 || better(items[p], items[best]) {
			best = p
		}
	}
	return best
}

// Len returns the number of values currently in the window
func (w *Window) Len() int { return w.buf.Len() }

// Size returns the window size
func (w *Window) Size() int { return w.buf.Cap() }

// IsFull reports whether the window holds Size values
func (w *Window) IsFull() bool { return w.buf.IsFull() }

// Sum returns the sum of the values in the window, NaN if sums are not tracked
func (w *Window) Sum() float64 {
	if !w.trackSum {
		return math.NaN()
	}
	return w.sum
}

// Average returns Sum()/Len(), NaN if sums are not tracked
func (w *Window) Average() float64 {
	if !w.trackSum {
		return math.NaN()
	}
	return w.sum / float64(w.Len())
}

// Min returns the smallest value in the window
func (w *Window) Min() float64 {
	if !w.trackMinMax || w.minIndex < 0 {
		return math.NaN()
	}
	return w.buf.items[w.minIndex]
}

// Max returns the largest value in the window
func (w *Window) Max() float64 {
	if !w.trackMinMax || w.maxIndex < 0 {
		return math.NaN()
	}
	return w.buf.items[w.maxIndex]
}

// First returns the oldest value in the window
func (w *Window) First() float64 {
	if w.Len() == 0 {
		return math.NaN()
	}
	return w.buf.items[w.buf.slot(0)]
}

// Last returns the newest value in the window
func (w *Window) Last() float64 {
	v, ok := w.buf.Last()
	if !ok {
		return math.NaN()
	}
	return v
}

// At returns the value at logical index i (0 is the oldest)
func (w *Window) At(i int) (float64, error) {
	return w.buf.At(i)
}

// All iterates the window from the oldest to the newest value
func (w *Window) All() iter.Seq[float64] {
	return w.buf.All()
}

// minIndexLogical returns the logical position of the tracked minimum.
// Used by tests to check the tie-break rule.
func (w *Window) minIndexLogical() int { return w.logical(w.minIndex) }

func (w *Window) maxIndexLogical() int { return w.logical(w.maxIndex) }

func (w *Window) logical(slot int) int {
	if slot < 0 {
		return -1
	}
	if !w.buf.full {
		return slot
	}
	n := len(w.buf.items)
	oldest := (w.buf.head + 1) % n
	return (slot - oldest + n) % n
}
