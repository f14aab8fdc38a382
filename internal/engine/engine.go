package engine

import (
	"context"
	"io"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mohamedkhairy/stock-indicators/internal/data"
	"github.com/mohamedkhairy/stock-indicators/internal/models"
	"github.com/mohamedkhairy/stock-indicators/pkg/indicator"
	"github.com/mohamedkhairy/stock-indicators/pkg/logger"
)

// OnUpdate is called with the symbol snapshot after every processed bar
type OnUpdate func(snapshot models.Snapshot)

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the engine logger
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithMetrics sets the collectors the engine records into
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithOnUpdate sets the update callback
func WithOnUpdate(fn OnUpdate) Option {
	return func(e *Engine) { e.onUpdate = fn }
}

// Engine feeds bars of many symbols to per-symbol indicator sets. It is
// safe for concurrent use: bars are processed one at a time while
// snapshots may be read concurrently.
type Engine struct {
	catalog  *indicator.Catalog
	pipeline *Pipeline
	capacity indicator.Capacity
	logger   *zap.Logger
	metrics  *Metrics
	onUpdate OnUpdate

	mu     sync.RWMutex
	states map[string]*symbolState
}

// New creates an engine computing pipeline with indicators from catalog
func New(catalog *indicator.Catalog, pipeline *Pipeline, opts ...Option) (*Engine, error) {
	if err := pipeline.Validate(catalog); err != nil {
		return nil, errors.Wrap(err, "invalid pipeline")
	}
	capacity, err := pipeline.capacity()
	if err != nil {
		return nil, errors.Wrap(err, "invalid pipeline")
	}

	e := &Engine{
		catalog:  catalog,
		pipeline: pipeline,
		capacity: capacity,
		logger:   zap.NewNop(),
		metrics:  NewMetrics(),
		states:   make(map[string]*symbolState),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Metrics returns the engine collectors
func (e *Engine) Metrics() *Metrics {
	return e.metrics
}

// ProcessBar validates bar and feeds it to every indicator of its symbol.
// Comparison indicators are fed once both the symbol and its benchmark
// have a bar with the same timestamp.
func (e *Engine) ProcessBar(bar models.Bar) error {
	if err := bar.Validate(); err != nil {
		return errors.Wrapf(err, "invalid bar for %q at %s", bar.Symbol, bar.Timestamp.Format(time.RFC3339))
	}

	start := time.Now()
	e.mu.Lock()

	state, exists := e.states[bar.Symbol]
	if !exists {
		var err error
		if state, err = e.register(bar.Symbol); err != nil {
			e.mu.Unlock()
			return err
		}
	}

	state.prices.push(bar.Price)
	state.last = bar
	state.bars++

	for _, entry := range state.entries {
		if entry.benchmark != "" {
			continue
		}
		if err := indicator.Feed(entry.indicator, bar.Price); err != nil {
			e.mu.Unlock()
			return errors.Wrapf(err, "entry %q", entry.name)
		}
		e.record(entry, bar.Timestamp)
	}
	e.pair(state)

	snapshot := state.snapshot()
	e.mu.Unlock()

	e.metrics.barsProcessed.WithLabelValues(bar.Symbol).Inc()
	e.metrics.barDuration.Observe(time.Since(start).Seconds())

	if e.onUpdate != nil {
		e.onUpdate(snapshot)
	}
	return nil
}

// register builds the indicator set of a new symbol
func (e *Engine) register(symbol string) (*symbolState, error) {
	state := &symbolState{symbol: symbol, prices: newHistory[indicator.Price](e.capacity)}
	for _, def := range e.pipeline.Indicators {
		ind, err := e.catalog.CreateWithCapacity(def.Indicator, e.capacity, def.Params)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create %q for %s", def.Name, symbol)
		}
		state.entries = append(state.entries, &entry{
			name:      def.Name,
			kind:      def.Indicator,
			benchmark: def.Benchmark,
			indicator: ind,
			times:     newHistory[time.Time](e.capacity),
		})
		e.metrics.created.WithLabelValues(def.Indicator).Inc()
		e.logger.Debug("indicator created", logger.Symbol(symbol), logger.Indicator(def.Name), logger.String("type", def.Indicator))
	}
	e.states[symbol] = state
	e.logger.Info("symbol registered", logger.Symbol(symbol), logger.Int("indicators", len(state.entries)))
	return state, nil
}

// pair feeds the comparison indicators that became complete with the
// latest bar of state: its own entries benchmarked against another symbol
// and other symbols' entries benchmarked against it.
func (e *Engine) pair(state *symbolState) {
	ts := state.last.Timestamp
	for _, other := range e.states {
		for _, entry := range other.entries {
			if entry.benchmark == "" || entry.pairedAt.Equal(ts) {
				continue
			}
			if other != state && entry.benchmark != state.symbol {
				continue
			}
			benchmark, ok := e.states[entry.benchmark]
			if !ok || !other.last.Timestamp.Equal(ts) || !benchmark.last.Timestamp.Equal(ts) {
				continue
			}
			entry.indicator.(indicator.ComparisonIndicator).Add(other.last.Price, benchmark.last.Price)
			entry.pairedAt = ts
			e.record(entry, ts)
		}
	}
}

// record counts the values appended to the lines of entry since its
// previous call and stamps the output step with ts
func (e *Engine) record(entry *entry, ts time.Time) {
	lines := entry.indicator.Plot().Lines
	if len(entry.appended) != len(lines) {
		entry.appended = make([]int, len(lines))
	}
	stepped := false
	for i, line := range lines {
		series := line.Series
		added := series.Appended() - entry.appended[i]
		if added <= 0 {
			continue
		}
		stepped = true
		entry.appended[i] = series.Appended()
		e.metrics.valuesEmitted.WithLabelValues(entry.kind).Add(float64(added))

		// values evicted within the same bar are not inspected
		for j := series.Len() - min(added, series.Len()); j < series.Len(); j++ {
			v, _ := series.At(j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				entry.nonFinite++
				e.metrics.nonFinite.WithLabelValues(entry.kind).Inc()
			}
		}
	}
	if stepped {
		entry.times.push(ts)
	}
}

// Run processes every bar of src until it is exhausted or ctx is done
func (e *Engine) Run(ctx context.Context, src data.Source) error {
	start := time.Now()
	processed := 0
	for {
		bar, err := src.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrapf(err, "failed to read from %s source", src.Name())
		}
		if err := e.ProcessBar(bar); err != nil {
			return err
		}
		processed++
	}

	e.logger.Info("source drained",
		logger.String("source", src.Name()),
		logger.Int("bars", processed),
		logger.Duration("elapsed", time.Since(start)),
	)
	e.logNonFinite()
	return nil
}

func (e *Engine) logNonFinite() {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, state := range e.states {
		for _, entry := range state.entries {
			if entry.nonFinite > 0 {
				e.logger.Warn("non-finite indicator values",
					logger.Symbol(state.symbol),
					logger.Indicator(entry.name),
					logger.Int("count", entry.nonFinite),
				)
			}
		}
	}
}

// Symbols returns the symbols seen so far in sorted order
func (e *Engine) Symbols() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	symbols := make([]string, 0, len(e.states))
	for symbol := range e.states {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

// Snapshot returns the latest values of every indicator of symbol
func (e *Engine) Snapshot(symbol string) (models.Snapshot, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	state, ok := e.states[symbol]
	if !ok {
		return models.Snapshot{}, errors.Wrap(models.ErrUnknownSymbol, symbol)
	}
	return state.snapshot(), nil
}

// Indicator returns the named indicator instance of symbol. The instance
// must not be read while bars are being processed.
func (e *Engine) Indicator(symbol, name string) (indicator.Indicator, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	state, ok := e.states[symbol]
	if !ok {
		return nil, errors.Wrap(models.ErrUnknownSymbol, symbol)
	}
	for _, entry := range state.entries {
		if entry.name == name {
			return entry.indicator, nil
		}
	}
	return nil, errors.Wrapf(models.ErrUnknownIndicator, "%s for %s", name, symbol)
}

// ValueTimes returns the bar timestamps of the retained outputs of the
// named instance, oldest first. Comparison instances only step on paired
// bars, so their times can skip dates of the symbol.
func (e *Engine) ValueTimes(symbol, name string) ([]time.Time, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	state, ok := e.states[symbol]
	if !ok {
		return nil, errors.Wrap(models.ErrUnknownSymbol, symbol)
	}
	for _, entry := range state.entries {
		if entry.name == name {
			return entry.times.slice(), nil
		}
	}
	return nil, errors.Wrapf(models.ErrUnknownIndicator, "%s for %s", name, symbol)
}

// Prices returns the retained bars of symbol, oldest first
func (e *Engine) Prices(symbol string) ([]indicator.Price, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	state, ok := e.states[symbol]
	if !ok {
		return nil, errors.Wrap(models.ErrUnknownSymbol, symbol)
	}
	return state.prices.slice(), nil
}
