package engine

import (
	"time"

	"github.com/mohamedkhairy/stock-indicators/internal/models"
	"github.com/mohamedkhairy/stock-indicators/pkg/indicator"
)

// entry is one pipeline indicator instance of a symbol
type entry struct {
	name      string
	kind      string
	benchmark string
	indicator indicator.Indicator
	pairedAt  time.Time
	// appended holds the Appended count of each plot line at the last record
	appended  []int
	// times holds the bar timestamp of every output step
	times     *history[time.Time]
	nonFinite int
}

// symbolState holds the indicator set of one symbol
type symbolState struct {
	symbol  string
	entries []*entry
	prices  *history[indicator.Price]
	last    models.Bar
	bars    int
}

func (s *symbolState) snapshot() models.Snapshot {
	snapshot := models.Snapshot{
		Symbol:    s.symbol,
		Timestamp: s.last.Timestamp,
		Bars:      s.bars,
	}
	for _, entry := range s.entries {
		ready := entry.indicator.IsReady()
		for _, line := range entry.indicator.Plot().Lines {
			v, ok := line.Series.Last()
			if !ok {
				continue
			}
			snapshot.Values = append(snapshot.Values, models.Value{
				Indicator: entry.name,
				Line:      line.Name,
				Value:     v,
				Ready:     ready,
			})
		}
	}
	return snapshot
}

// history retains values with the same capacity as indicator outputs
type history[T any] struct {
	bounded *indicator.BoundedSequence[T]
	all     []T
}

func newHistory[T any](capacity indicator.Capacity) *history[T] {
	if capacity.IsInfinite() {
		return &history[T]{}
	}
	// capacity periods are always >= 1
	bounded, _ := indicator.NewBoundedSequence[T](capacity.Periods())
	return &history[T]{bounded: bounded}
}

func (h *history[T]) push(v T) {
	if h.bounded != nil {
		h.bounded.Push(v)
		return
	}
	h.all = append(h.all, v)
}

func (h *history[T]) slice() []T {
	if h.bounded != nil {
		return h.bounded.Slice()
	}
	return append([]T(nil), h.all...)
}
