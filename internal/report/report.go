package report

import (
	"encoding/json"
	"io"
	"math"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/mohamedkhairy/stock-indicators/internal/models"
	"github.com/mohamedkhairy/stock-indicators/pkg/indicator"
)

// Output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Writer prints snapshots with values rounded to a fixed number of places
type Writer struct {
	w         io.Writer
	format    string
	precision int32
}

// New creates a report writer
func New(w io.Writer, format string, precision int) (*Writer, error) {
	if format != FormatTable && format != FormatJSON {
		return nil, errors.Errorf("unknown report format %q", format)
	}
	if precision < 0 {
		return nil, errors.Errorf("precision cannot be negative, got %d", precision)
	}
	return &Writer{w: w, format: format, precision: int32(precision)}, nil
}

// Round rounds v half away from zero. Non-finite values yield ok=false.
func Round(v float64, places int32) (decimal.Decimal, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromFloat(v).Round(places), true
}

// Format renders v with exactly places decimals
func Format(v float64, places int32) string {
	d, ok := Round(v, places)
	if !ok {
		return formatNonFinite(v)
	}
	return d.StringFixed(places)
}

func formatNonFinite(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case v > 0:
		return "+Inf"
	default:
		return "-Inf"
	}
}

type jsonValue struct {
	Indicator string           `json:"indicator"`
	Line      string           `json:"line"`
	Value     *decimal.Decimal `json:"value"`
	Ready     bool             `json:"ready"`
}

type jsonSnapshot struct {
	Symbol    string      `json:"symbol"`
	Timestamp time.Time   `json:"timestamp"`
	Bars      int         `json:"bars"`
	Values    []jsonValue `json:"values"`
}

// WriteSnapshots prints the latest values of each snapshot
func (r *Writer) WriteSnapshots(snapshots ...models.Snapshot) error {
	if r.format == FormatJSON {
		return r.writeJSON(snapshots)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Symbol", "Date", "Indicator", "Line", "Value", "Ready"})
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 5, Align: text.AlignRight}})
	for _, s := range snapshots {
		for _, v := range s.Values {
			t.AppendRow(table.Row{s.Symbol, s.Timestamp.Format("2006-01-02"), v.Indicator, v.Line, Format(v.Value, r.precision), v.Ready})
		}
		t.AppendSeparator()
	}
	t.Render()
	return nil
}

func (r *Writer) writeJSON(snapshots []models.Snapshot) error {
	out := make([]jsonSnapshot, 0, len(snapshots))
	for _, s := range snapshots {
		js := jsonSnapshot{Symbol: s.Symbol, Timestamp: s.Timestamp, Bars: s.Bars, Values: []jsonValue{}}
		for _, v := range s.Values {
			jv := jsonValue{Indicator: v.Indicator, Line: v.Line, Ready: v.Ready}
			if d, ok := Round(v.Value, r.precision); ok {
				jv.Value = &d
			}
			js.Values = append(js.Values, jv)
		}
		out = append(out, js)
	}

	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(out), "failed to encode snapshots")
}

// WriteCatalog prints the indicator descriptions with their parameters.
// Parameter values use the parameter scale.
func (r *Writer) WriteCatalog(descriptions []indicator.Description) error {
	if r.format == FormatJSON {
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(catalogJSON(descriptions)), "failed to encode catalog")
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Display Name", "Categories", "Parameters"})
	for _, d := range descriptions {
		categories := make([]string, len(d.Categories))
		for i, c := range d.Categories {
			categories[i] = string(c)
		}
		params := make([]string, len(d.Parameters))
		for i, p := range d.Parameters {
			params[i] = p.Name + "=" + parameterValue(p, p.Default)
		}
		t.AppendRow(table.Row{d.Name, d.DisplayName, strings.Join(categories, ", "), strings.Join(params, " ")})
	}
	t.Render()
	return nil
}

func parameterValue(p indicator.Parameter, v float64) string {
	if p.Kind == indicator.EnumParameter && int(v) >= 0 && int(v) < len(p.Options) {
		return p.Options[int(v)]
	}
	return Format(v, int32(p.Scale()))
}

type parameterJSON struct {
	Name        string          `json:"name"`
	DisplayName string          `json:"displayName"`
	Kind        string          `json:"kind"`
	Min         decimal.Decimal `json:"min"`
	Max         decimal.Decimal `json:"max"`
	Default     decimal.Decimal `json:"default"`
	Options     []string        `json:"options,omitempty"`
}

type descriptionJSON struct {
	Name        string          `json:"name"`
	DisplayName string          `json:"displayName"`
	Description string          `json:"description"`
	Categories  []string        `json:"categories"`
	Parameters  []parameterJSON `json:"parameters"`
}

func catalogJSON(descriptions []indicator.Description) []descriptionJSON {
	out := make([]descriptionJSON, 0, len(descriptions))
	for _, d := range descriptions {
		dj := descriptionJSON{
			Name:        d.Name,
			DisplayName: d.DisplayName,
			Description: d.Description,
			Parameters:  []parameterJSON{},
		}
		for _, c := range d.Categories {
			dj.Categories = append(dj.Categories, string(c))
		}
		for _, p := range d.Parameters {
			scale := int32(p.Scale())
			dj.Parameters = append(dj.Parameters, parameterJSON{
				Name:        p.Name,
				DisplayName: p.DisplayName,
				Kind:        p.Kind.String(),
				Min:         decimal.NewFromFloat(p.Min).Round(scale),
				Max:         decimal.NewFromFloat(p.Max).Round(scale),
				Default:     decimal.NewFromFloat(p.Default).Round(scale),
				Options:     p.Options,
			})
		}
		out = append(out, dj)
	}
	return out
}
