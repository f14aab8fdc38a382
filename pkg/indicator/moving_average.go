package indicator

import (
	"fmt"
	"strings"
)

// MovingAverageType selects the average used by composed indicators
type MovingAverageType int

const (
	SimpleMovingAverageType MovingAverageType = iota
	ExponentialMovingAverageType
	DoubleExponentialMovingAverageType
	TripleExponentialMovingAverageType
	WeightedMovingAverageType
	HullMovingAverageType
)

var movingAverageTypeNames = []string{
	"Simple",
	"Exponential",
	"DoubleExponential",
	"TripleExponential",
	"Weighted",
	"Hull",
}

// MovingAverageTypeNames returns the enum names ordered by value
func MovingAverageTypeNames() []string {
	out := make([]string, len(movingAverageTypeNames))
	copy(out, movingAverageTypeNames)
	return out
}

func (t MovingAverageType) String() string {
	if t.valid() {
		return movingAverageTypeNames[t]
	}
	return fmt.Sprintf("MovingAverageType(%d)", int(t))
}

func (t MovingAverageType) valid() bool {
	return t >= SimpleMovingAverageType && t <= HullMovingAverageType
}

// ParseMovingAverageType parses an enum name, case-insensitively
func ParseMovingAverageType(s string) (MovingAverageType, error) {
	for i, name := range movingAverageTypeNames {
		if strings.EqualFold(name, s) {
			return MovingAverageType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown moving average type %q", ErrInvalidConfiguration, s)
}

// NewMovingAverage builds a child average with Minimum capacity
func NewMovingAverage(t MovingAverageType, periods int) (AverageIndicator, error) {
	return NewMovingAverageWithCapacity(t, Minimum, periods)
}

// NewMovingAverageWithCapacity builds an average of the given type
func NewMovingAverageWithCapacity(t MovingAverageType, capacity Capacity, periods int) (AverageIndicator, error) {
	switch t {
	case SimpleMovingAverageType:
		return asAverage(NewSimpleMovingAverage(capacity, MovingAverageSettings{Periods: periods}))
	case ExponentialMovingAverageType:
		return asAverage(NewExponentialMovingAverage(capacity, MovingAverageSettings{Periods: periods}))
	case DoubleExponentialMovingAverageType:
		return asAverage(NewDoubleExponentialMovingAverage(capacity, MovingAverageSettings{Periods: periods}))
	case TripleExponentialMovingAverageType:
		return asAverage(NewTripleExponentialMovingAverage(capacity, MovingAverageSettings{Periods: periods}))
	case WeightedMovingAverageType:
		return asAverage(NewWeightedMovingAverage(capacity, MovingAverageSettings{Periods: periods}))
	case HullMovingAverageType:
		return asAverage(NewHullMovingAverage(capacity, MovingAverageSettings{Periods: periods}))
	default:
		return nil, fmt.Errorf("%w: unknown moving average type %d", ErrInvalidConfiguration, int(t))
	}
}

// asAverage keeps a failed constructor from returning a typed nil interface
func asAverage[T AverageIndicator](ind T, err error) (AverageIndicator, error) {
	if err != nil {
		return nil, err
	}
	return ind, nil
}

func checkMovingAverageType(t MovingAverageType) error {
	if !t.valid() {
		return fmt.Errorf("%w: unknown moving average type %d", ErrInvalidConfiguration, int(t))
	}
	return nil
}
