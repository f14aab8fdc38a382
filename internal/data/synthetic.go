package data

import (
	"context"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/mohamedkhairy/stock-indicators/internal/models"
)

// SyntheticStart is the first date of synthetic bars unless configured
var SyntheticStart = time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)

// SyntheticSource generates daily random-walk bars. Every day yields one bar
// per symbol, in the order the symbols were given, so bars of the same date
// arrive together.
type SyntheticSource struct {
	rng     *rand.Rand
	symbols []string
	bars    int
	day     int
	next    int
	date    time.Time
	closes  []float64
}

// NewSyntheticSource creates a seeded generator of bars days for symbols
func NewSyntheticSource(symbols []string, bars int, seed int64, start time.Time) (*SyntheticSource, error) {
	if len(symbols) == 0 {
		return nil, errors.Wrap(models.ErrInvalidSymbol, "at least one symbol is required")
	}
	for _, s := range symbols {
		if s == "" {
			return nil, models.ErrInvalidSymbol
		}
	}
	if bars <= 0 {
		return nil, errors.Errorf("bar count must be positive, got %d", bars)
	}
	if start.IsZero() {
		start = SyntheticStart
	}

	rng := rand.New(rand.NewSource(seed))
	closes := make([]float64, len(symbols))
	for i := range closes {
		closes[i] = 50 + rng.Float64()*150
	}

	return &SyntheticSource{
		rng:     rng,
		symbols: append([]string(nil), symbols...),
		bars:    bars,
		date:    start,
		closes:  closes,
	}, nil
}

// Next returns the next bar
func (s *SyntheticSource) Next(ctx context.Context) (models.Bar, error) {
	if err := ctx.Err(); err != nil {
		return models.Bar{}, err
	}
	if s.day >= s.bars {
		return models.Bar{}, io.EOF
	}

	i := s.next
	open := s.closes[i]
	close := math.Max(open*(1+s.rng.NormFloat64()*0.015), 0.01)
	high := math.Max(open, close) * (1 + math.Abs(s.rng.NormFloat64())*0.006)
	low := math.Min(open, close) * (1 - math.Abs(s.rng.NormFloat64())*0.006)
	volume := int64(100_000 + s.rng.Intn(900_000))
	s.closes[i] = close

	bar := models.NewBar(s.symbols[i], s.date, round(open), round(high), round(low), round(close), volume)

	s.next++
	if s.next == len(s.symbols) {
		s.next = 0
		s.day++
		s.date = s.date.AddDate(0, 0, 1)
	}
	return bar, nil
}

// round keeps generated prices at cent precision
func round(v float64) float64 {
	return math.Round(v*100) / 100
}

// Close is a no-op
func (s *SyntheticSource) Close() error { return nil }

// Name returns "synthetic"
func (s *SyntheticSource) Name() string { return "synthetic" }
