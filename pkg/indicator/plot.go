package indicator

// LineStyle is how a plotted line is drawn
type LineStyle int

const (
	LineStyleLine LineStyle = iota
	LineStyleDot
	LineStyleBar
	LineStyleArea
)

func (s LineStyle) String() string {
	switch s {
	case LineStyleDot:
		return "dot"
	case LineStyleBar:
		return "bar"
	case LineStyleArea:
		return "area"
	default:
		return "line"
	}
}

// Color is a color role; renderers map roles to concrete colors
type Color int

const (
	ColorAuto Color = iota
	ColorPositive
	ColorNegative
	ColorLightGray
	ColorStrongGray
	ColorBlack
	ColorRed
	ColorNeutral
)

// Line is one plotted output series
type Line struct {
	Name   string
	Series *Series
	Style  LineStyle
	Color  Color
}

// Band is a highlighted value range, e.g. overbought territory
type Band struct {
	From float64
	To   float64
}

// Plot describes how an indicator's outputs are charted. Overlay plots are
// drawn over the price chart; the others get a chart of their own.
type Plot struct {
	Title      string
	Overlay    bool
	Precision  int
	Min        *float64
	Max        *float64
	GridLines  []float64
	Highlights []Band
	Lines      []Line
}

// Line returns the plotted line with the given name
func (p Plot) Line(name string) (Line, bool) {
	for _, l := range p.Lines {
		if l.Name == name {
			return l, true
		}
	}
	return Line{}, false
}

func bounds(min, max float64) (*float64, *float64) {
	return &min, &max
}

func overlay(title string, lines ...Line) Plot {
	return Plot{Title: title, Overlay: true, Precision: 2, Lines: lines}
}

func line(name string, s *Series, color Color) Line {
	return Line{Name: name, Series: s, Style: LineStyleLine, Color: color}
}

func chart(title string, precision int, lines ...Line) Plot {
	return Plot{Title: title, Precision: precision, Lines: lines}
}

// oscillator returns a bounded chart with grid lines and highlight bands
func oscillator(title string, precision int, min, max float64, grid []float64, highlights []Band, lines ...Line) Plot {
	p := chart(title, precision, lines...)
	p.Min, p.Max = bounds(min, max)
	p.GridLines = grid
	p.Highlights = highlights
	return p
}
