package indicator

import (
	"errors"
	"slices"
	"testing"
)

func TestFromPeriods(t *testing.T) {
	if _, err := FromPeriods(0); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
	c, err := FromPeriods(3)
	if err != nil {
		t.Fatalf("FromPeriods failed: %v", err)
	}
	if c.IsInfinite() || c.Periods() != 3 {
		t.Errorf("unexpected capacity %v", c)
	}
	if !Infinite.IsInfinite() || Minimum.Periods() != 1 {
		t.Error("unexpected predefined capacities")
	}
}

func TestSeries_Retention(t *testing.T) {
	bounded, _ := FromPeriods(3)
	tests := []struct {
		name     string
		capacity Capacity
		want     []float64
	}{
		{"infinite", Infinite, []float64{1, 2, 3, 4, 5}},
		{"bounded", bounded, []float64{3, 4, 5}},
		{"minimum", Minimum, []float64{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.capacity.newSeries()
			for v := 1.0; v <= 5; v++ {
				s.push(v)
			}
			if !slices.Equal(s.Slice(), tt.want) {
				t.Errorf("expected %v, got %v", tt.want, s.Slice())
			}
			if got := slices.Collect(s.All()); !slices.Equal(got, tt.want) {
				t.Errorf("All: expected %v, got %v", tt.want, got)
			}
			if last, ok := s.Last(); !ok || last != 5 {
				t.Errorf("expected last 5, got %v", last)
			}
			if _, err := s.At(s.Len()); !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("expected ErrIndexOutOfRange, got %v", err)
			}
			if s.Appended() != 5 {
				t.Errorf("expected 5 appended values, got %d", s.Appended())
			}
		})
	}
}

func TestSeries_Clear(t *testing.T) {
	bounded, _ := FromPeriods(2)
	for _, c := range []Capacity{Infinite, bounded} {
		s := c.newSeries()
		s.push(1)
		s.push(2)
		s.clear()
		if s.Len() != 0 {
			t.Errorf("%v: expected empty series after clear, got %d", c, s.Len())
		}
		if _, ok := s.Last(); ok {
			t.Errorf("%v: cleared series should have no last value", c)
		}
		s.push(3)
		if s.Appended() != 3 {
			t.Errorf("%v: clear should not reset the appended count, got %d", c, s.Appended())
		}
	}
}

func TestIndicatorCapacityBoundsOutputs(t *testing.T) {
	capacity, _ := FromPeriods(4)
	sma, err := NewSimpleMovingAverage(capacity, MovingAverageSettings{Periods: 3})
	if err != nil {
		t.Fatalf("Failed to create SMA: %v", err)
	}
	AddValues(sma, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	want := []float64{5, 6, 7, 8}
	if !slices.Equal(sma.Values().Slice(), want) {
		t.Errorf("expected %v, got %v", want, sma.Values().Slice())
	}
}
