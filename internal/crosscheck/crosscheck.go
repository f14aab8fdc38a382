// Package crosscheck compares streaming results with batch computations of
// independent libraries.
package crosscheck

import (
	"math"
	"time"

	"github.com/cinar/indicator/v2/helper"
	"github.com/cinar/indicator/v2/trend"
	"github.com/pkg/errors"
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/mohamedkhairy/stock-indicators/pkg/indicator"
)

// Check is the outcome of one comparison
type Check struct {
	Name       string
	Reference  string
	Compared   int
	MaxAbsDiff float64
}

// Passed reports whether every compared value is within tolerance
func (c Check) Passed(tolerance float64) bool {
	return c.Compared > 0 && c.MaxAbsDiff <= tolerance
}

// Result holds every check of a run
type Result struct {
	Periods int
	Checks  []Check
}

// Passed reports whether all checks passed
func (r Result) Passed(tolerance float64) bool {
	for _, c := range r.Checks {
		if !c.Passed(tolerance) {
			return false
		}
	}
	return len(r.Checks) > 0
}

// Run compares rolling computations over closes with windows of periods
func Run(closes []float64, periods int) (Result, error) {
	if periods < 2 {
		return Result{}, errors.Errorf("periods must be at least 2, got %d", periods)
	}
	if len(closes) < periods {
		return Result{}, errors.Errorf("need at least %d closes, got %d", periods, len(closes))
	}

	sma, err := streamSMA(closes, periods)
	if err != nil {
		return Result{}, err
	}
	mins, maxs, sums, err := streamWindow(closes, periods)
	if err != nil {
		return Result{}, err
	}
	correlations, err := streamCorrelation(closes, periods)
	if err != nil {
		return Result{}, err
	}

	var gonumMin, gonumMax, gonumSum, gonumCorr []float64
	trendLine := make([]float64, len(closes))
	for i := range trendLine {
		trendLine[i] = float64(i)
	}
	for end := periods; end <= len(closes); end++ {
		w := closes[end-periods : end]
		gonumMin = append(gonumMin, floats.Min(w))
		gonumMax = append(gonumMax, floats.Max(w))
		gonumSum = append(gonumSum, floats.Sum(w))
		gonumCorr = append(gonumCorr, stat.Correlation(w, trendLine[end-periods:end], nil))
	}

	return Result{
		Periods: periods,
		Checks: []Check{
			compare("SMA", "techan", sma, techanSMA(closes, periods)),
			compare("SMA", "cinar/indicator", sma, cinarSMA(closes, periods)),
			compare("Window.Min", "gonum floats.Min", mins, gonumMin),
			compare("Window.Max", "gonum floats.Max", maxs, gonumMax),
			compare("Window.Sum", "gonum floats.Sum", sums, gonumSum),
			compare("CorrelationCoefficient", "gonum stat.Correlation", correlations, gonumCorr),
		},
	}, nil
}

// compare aligns both series on their newest values
func compare(name, reference string, got, want []float64) Check {
	n := min(len(got), len(want))
	got, want = got[len(got)-n:], want[len(want)-n:]

	c := Check{Name: name, Reference: reference, Compared: n}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if math.IsNaN(diff) {
			diff = math.Inf(1)
		}
		c.MaxAbsDiff = math.Max(c.MaxAbsDiff, diff)
	}
	return c
}

func streamSMA(closes []float64, periods int) ([]float64, error) {
	sma, err := indicator.NewSimpleMovingAverage(indicator.Infinite, indicator.MovingAverageSettings{Periods: periods})
	if err != nil {
		return nil, err
	}
	indicator.AddValues(sma, closes...)
	return sma.Values().Slice(), nil
}

func streamWindow(closes []float64, periods int) (mins, maxs, sums []float64, err error) {
	w, err := indicator.NewWindow(periods, indicator.WithSum(), indicator.WithMinMax())
	if err != nil {
		return nil, nil, nil, err
	}
	for _, v := range closes {
		w.Push(v)
		if w.IsFull() {
			mins = append(mins, w.Min())
			maxs = append(maxs, w.Max())
			sums = append(sums, w.Sum())
		}
	}
	return mins, maxs, sums, nil
}

// streamCorrelation correlates closes with their bar index
func streamCorrelation(closes []float64, periods int) ([]float64, error) {
	corr, err := indicator.NewCorrelationCoefficient(indicator.Infinite, indicator.CorrelationCoefficientSettings{Periods: periods})
	if err != nil {
		return nil, err
	}
	for i, v := range closes {
		corr.Add(indicator.Price{Close: v}, indicator.Price{Close: float64(i)})
	}
	return corr.Values().Slice(), nil
}

// techanSMA evaluates techan's SMA on a daily candle series
func techanSMA(closes []float64, periods int) []float64 {
	series := techan.NewTimeSeries()
	start := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i, v := range closes {
		candle := techan.NewCandle(techan.NewTimePeriod(start.AddDate(0, 0, i), 24*time.Hour))
		candle.OpenPrice = big.NewDecimal(v)
		candle.MaxPrice = big.NewDecimal(v)
		candle.MinPrice = big.NewDecimal(v)
		candle.ClosePrice = big.NewDecimal(v)
		series.AddCandle(candle)
	}

	sma := techan.NewSimpleMovingAverage(techan.NewClosePriceIndicator(series), periods)
	out := make([]float64, 0, len(closes)-periods+1)
	for i := periods - 1; i < len(closes); i++ {
		out = append(out, sma.Calculate(i).Float())
	}
	return out
}

func cinarSMA(closes []float64, periods int) []float64 {
	sma := trend.NewSmaWithPeriod[float64](periods)
	return helper.ChanToSlice(sma.Compute(helper.SliceToChan(closes)))
}
