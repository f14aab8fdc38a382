package indicator

import (
	"fmt"
	"iter"
)

// Capacity is the retention policy for an indicator's output series. The
// zero value is Infinite.
type Capacity struct {
	periods int
}

var (
	// Infinite keeps every output value
	Infinite = Capacity{}

	// Minimum keeps only the latest output value. Child indicators inside a
	// composition are built with it.
	Minimum = Capacity{periods: 1}
)

// FromPeriods returns a capacity that retains the last periods values
func FromPeriods(periods int) (Capacity, error) {
	if periods < 1 {
		return Capacity{}, fmt.Errorf("%w: capacity periods cannot be less than 1, got %d", ErrInvalidConfiguration, periods)
	}
	return Capacity{periods: periods}, nil
}

// IsInfinite reports whether the capacity is unbounded
func (c Capacity) IsInfinite() bool { return c.periods == 0 }

// Periods returns the retained value count, 0 for Infinite
func (c Capacity) Periods() int { return c.periods }

func (c Capacity) String() string {
	if c.IsInfinite() {
		return "infinite"
	}
	return fmt.Sprintf("%d", c.periods)
}

func (c Capacity) newSeries() *Series {
	s := &Series{capacity: c}
	s.clear()
	return s
}

// Series is a read-only output sequence of an indicator, ordered from the
// oldest to the newest value. Only the owning indicator appends to it.
type Series struct {
	capacity Capacity
	values   []float64                 // Infinite
	ring     *BoundedSequence[float64] // fixed capacity
	appended int
}

// Len returns the number of values held
func (s *Series) Len() int {
	if s.ring != nil {
		return s.ring.Len()
	}
	return len(s.values)
}

// At returns the value at index i, 0 being the oldest value held
func (s *Series) At(i int) (float64, error) {
	if s.ring != nil {
		return s.ring.At(i)
	}
	if i < 0 || i >= len(s.values) {
		return 0, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(s.values))
	}
	return s.values[i], nil
}

// Last returns the newest value, false when the series is empty
func (s *Series) Last() (float64, bool) {
	if s.ring != nil {
		return s.ring.Last()
	}
	if len(s.values) == 0 {
		return 0, false
	}
	return s.values[len(s.values)-1], true
}

// All iterates from the oldest to the newest value
func (s *Series) All() iter.Seq[float64] {
	if s.ring != nil {
		return s.ring.All()
	}
	return func(yield func(float64) bool) {
		for _, v := range s.values {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice returns a copy of the values
func (s *Series) Slice() []float64 {
	if s.ring != nil {
		return s.ring.Slice()
	}
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Appended returns how many values were ever appended, counting values
// since evicted by the capacity or dropped at a reset
func (s *Series) Appended() int { return s.appended }

// Capacity returns the retention policy of the series
func (s *Series) Capacity() Capacity { return s.capacity }

func (s *Series) push(v float64) {
	s.appended++
	if s.ring != nil {
		s.ring.Push(v)
		return
	}
	s.values = append(s.values, v)
}

// last returns the newest value or 0. Indicators call it only once a value
// was pushed.
func (s *Series) last() float64 {
	v, _ := s.Last()
	return v
}

// clear drops every value. Only boundary-scoped indicators use it.
func (s *Series) clear() {
	if s.capacity.IsInfinite() {
		s.values = s.values[:0]
		return
	}
	ring, _ := NewBoundedSequence[float64](s.capacity.periods)
	s.ring = ring
}
