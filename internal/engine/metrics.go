package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the engine collectors on a private registry
type Metrics struct {
	registry *prometheus.Registry

	barsProcessed *prometheus.CounterVec
	valuesEmitted *prometheus.CounterVec
	nonFinite     *prometheus.CounterVec
	created       *prometheus.CounterVec
	barDuration   prometheus.Histogram
}

// NewMetrics creates the engine collectors
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		barsProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "indicators_bars_processed_total",
				Help: "Total number of bars processed",
			},
			[]string{"symbol"},
		),
		valuesEmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "indicators_values_emitted_total",
				Help: "Total number of values appended to indicator lines",
			},
			[]string{"indicator"},
		),
		nonFinite: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "indicators_non_finite_values_total",
				Help: "Total number of NaN or infinite indicator values",
			},
			[]string{"indicator"},
		),
		created: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "indicators_created_total",
				Help: "Total number of indicator instances created",
			},
			[]string{"indicator"},
		),
		barDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "indicators_bar_processing_seconds",
				Help:    "Time spent feeding one bar to every indicator of its symbol",
				Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
			},
		),
	}
}

// Registry returns the registry holding the collectors
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteToTextfile writes the collectors in the text exposition format, for
// the node exporter textfile collector
func (m *Metrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
