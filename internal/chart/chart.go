package chart

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/mohamedkhairy/stock-indicators/pkg/indicator"
)

// ErrNothingToPlot is returned when neither the indicator nor the prices
// have a value to draw
var ErrNothingToPlot = errors.New("nothing to plot")

// Options controls the rendered image
type Options struct {
	Width  int
	Height int
	Format string // "svg" or "png"

	// ValueTimes are the timestamps of the plotted values, oldest first.
	// Empty means the values end at the latest price.
	ValueTimes []time.Time
}

// DefaultOptions returns a 1000x300 SVG
func DefaultOptions() Options {
	return Options{Width: 1000, Height: 300, Format: "svg"}
}

func (o Options) renderer() (chart.RendererProvider, error) {
	switch o.Format {
	case "", "svg":
		return chart.SVG, nil
	case "png":
		return chart.PNG, nil
	default:
		return nil, errors.Errorf("unknown chart format %q", o.Format)
	}
}

// Build converts a plot descriptor into a go-chart chart. Output series
// end at the latest price: the i-th newest value is drawn at the i-th
// newest timestamp, or the i-th newest of opts.ValueTimes when set.
// Overlay plots also draw the closing prices.
func Build(plot indicator.Plot, prices []indicator.Price, opts Options) (chart.Chart, error) {
	timestamps := make([]time.Time, len(prices))
	closes := make([]float64, len(prices))
	for i, p := range prices {
		timestamps[i] = p.Timestamp
		closes[i] = p.Close
	}

	var series []chart.Series
	if plot.Overlay && len(prices) > 1 {
		series = append(series, chart.TimeSeries{
			Name:    "Close",
			Style:   chart.Style{StrokeColor: chart.ColorAlternateGray, StrokeWidth: 1},
			XValues: timestamps,
			YValues: closes,
		})
	}

	axis := timestamps
	if len(opts.ValueTimes) > 0 {
		axis = opts.ValueTimes
	}
	for _, line := range plot.Lines {
		s, ok := timeSeries(line, axis)
		if !ok {
			continue
		}
		if line.Style == indicator.LineStyleBar {
			series = append(series, chart.HistogramSeries{Name: line.Name, Style: s.Style, InnerSeries: s})
			continue
		}
		series = append(series, s)
	}
	if len(series) == 0 {
		return chart.Chart{}, ErrNothingToPlot
	}

	c := chart.Chart{
		Title:  plot.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 30, Left: 10, Right: 10, Bottom: 10},
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			ValueFormatter: precisionFormatter(plot.Precision),
			GridLines:      gridLines(plot),
			GridMajorStyle: chart.Style{
				StrokeColor:     chart.ColorAlternateLightGray,
				StrokeWidth:     1,
				StrokeDashArray: []float64{4, 4},
			},
		},
		Series: series,
	}
	if plot.Min != nil && plot.Max != nil {
		c.YAxis.Range = &chart.ContinuousRange{Min: *plot.Min, Max: *plot.Max}
	}
	c.Elements = []chart.Renderable{chart.LegendLeft(&c)}
	return c, nil
}

// timeSeries aligns a line with the newest timestamps, dropping non-finite
// values that go-chart cannot range over
func timeSeries(line indicator.Line, timestamps []time.Time) (chart.TimeSeries, bool) {
	values := line.Series.Slice()
	if len(values) > len(timestamps) {
		values = values[len(values)-len(timestamps):]
	}
	offset := len(timestamps) - len(values)

	s := chart.TimeSeries{Name: line.Name, Style: style(line)}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		s.XValues = append(s.XValues, timestamps[offset+i])
		s.YValues = append(s.YValues, v)
	}
	// a single point has no range to draw
	return s, len(s.YValues) > 1
}

func style(line indicator.Line) chart.Style {
	color := colorOf(line.Color)
	switch line.Style {
	case indicator.LineStyleDot:
		return chart.Style{StrokeWidth: chart.Disabled, DotWidth: 2, DotColor: color}
	case indicator.LineStyleArea:
		s := chart.Style{StrokeWidth: 1, StrokeColor: color}
		if !color.IsZero() {
			s.FillColor = color.WithAlpha(64)
		}
		return s
	case indicator.LineStyleBar:
		return chart.Style{StrokeWidth: 1, StrokeColor: color, FillColor: color}
	default:
		return chart.Style{StrokeWidth: 1.5, StrokeColor: color}
	}
}

// colorOf maps a color role to the chart palette. The zero color lets
// go-chart pick from its default palette.
func colorOf(c indicator.Color) drawing.Color {
	switch c {
	case indicator.ColorPositive:
		return chart.ColorGreen
	case indicator.ColorNegative, indicator.ColorRed:
		return chart.ColorRed
	case indicator.ColorLightGray:
		return chart.ColorAlternateLightGray
	case indicator.ColorStrongGray:
		return chart.ColorAlternateGray
	case indicator.ColorBlack:
		return chart.ColorBlack
	case indicator.ColorNeutral:
		return chart.ColorBlue
	default:
		return drawing.Color{}
	}
}

// gridLines merges the plot grid lines with the highlight band edges
func gridLines(plot indicator.Plot) []chart.GridLine {
	values := append([]float64(nil), plot.GridLines...)
	for _, b := range plot.Highlights {
		values = append(values, b.From, b.To)
	}
	sort.Float64s(values)

	var lines []chart.GridLine
	for i, v := range values {
		if i > 0 && v == values[i-1] {
			continue
		}
		lines = append(lines, chart.GridLine{Value: v})
	}
	return lines
}

func precisionFormatter(precision int) chart.ValueFormatter {
	format := fmt.Sprintf("%%.%df", precision)
	return func(v interface{}) string {
		return chart.FloatValueFormatterWithFormat(v, format)
	}
}

// Render writes the chart of plot to w
func Render(w io.Writer, plot indicator.Plot, prices []indicator.Price, opts Options) error {
	rp, err := opts.renderer()
	if err != nil {
		return err
	}
	c, err := Build(plot, prices, opts)
	if err != nil {
		return err
	}
	if err := c.Render(rp, w); err != nil {
		return errors.Wrapf(err, "failed to render %q", plot.Title)
	}
	return nil
}

// RenderFile writes the chart of plot to path
func RenderFile(path string, plot indicator.Plot, prices []indicator.Price, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create %s", path)
	}
	if err := Render(f, plot, prices, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
