package indicator

import (
	"fmt"
	"iter"
)

// BoundedSequence is a fixed-capacity circular buffer. Logical index 0 is the
// oldest retained element and Len()-1 the newest; pushing into a full
// sequence overwrites the oldest element.
type BoundedSequence[T any] struct {
	items []T
	head  int // slot of the newest element, -1 while empty
	full  bool
}

// NewBoundedSequence creates a sequence that retains at most capacity elements
func NewBoundedSequence[T any](capacity int) (*BoundedSequence[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: sequence capacity must be at least 1, got %d", ErrInvalidConfiguration, capacity)
	}

	return &BoundedSequence[T]{
		items: make([]T, capacity),
		head:  -1,
	}, nil
}

// Push appends a value, evicting the oldest one when the sequence is full
func (s *BoundedSequence[T]) Push(value T) {
	s.head = (s.head + 1) % len(s.items)
	s.items[s.head] = value
	if s.head == len(s.items)-1 {
		s.full = true
	}
}

// Len returns the number of retained elements
func (s *BoundedSequence[T]) Len() int {
	if s.full {
		return len(s.items)
	}
	return s.head + 1
}

// Cap returns the fixed capacity
func (s *BoundedSequence[T]) Cap() int {
	return len(s.items)
}

// IsFull reports whether capacity pushes have happened
func (s *BoundedSequence[T]) IsFull() bool {
	return s.full
}

// At returns the element at logical index i
func (s *BoundedSequence[T]) At(i int) (T, error) {
	if i < 0 || i >= s.Len() {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, s.Len())
	}
	return s.items[s.slot(i)], nil
}

// Last returns the newest element
func (s *BoundedSequence[T]) Last() (T, bool) {
	if s.head < 0 {
		var zero T
		return zero, false
	}
	return s.items[s.head], true
}

// All iterates from the oldest to the newest element. Each call starts over.
func (s *BoundedSequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		n := s.Len()
		for i := 0; i < n; i++ {
			if !yield(s.items[s.slot(i)]) {
				return
			}
		}
	}
}

// Slice copies the retained elements in logical order
func (s *BoundedSequence[T]) Slice() []T {
	out := make([]T, 0, s.Len())
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}

// slot maps a logical index to a physical one. Callers validate i.
func (s *BoundedSequence[T]) slot(i int) int {
	if !s.full {
		return i
	}
	n := len(s.items)
	return (s.head - (n - 1 - i) + n) % n
}
