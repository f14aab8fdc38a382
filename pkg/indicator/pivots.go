package indicator

// PivotLevels is one set of pivot levels
type PivotLevels struct {
	R3, R2, R1, Pivot, S1, S2, S3 float64
}

// pivotPoints recomputes its levels from the reference bar whenever the
// calendar date changes and repeats them for the other bars of the day. The
// reference bar is the first bar seen on the previous date.
type pivotPoints struct {
	levels    func(Price) PivotLevels
	reference *Price

	r3, r2, r1, pivot, s1, s2, s3 *Series
}

func newPivotPoints(capacity Capacity, levels func(Price) PivotLevels) pivotPoints {
	return pivotPoints{
		levels: levels,
		r3:     capacity.newSeries(),
		r2:     capacity.newSeries(),
		r1:     capacity.newSeries(),
		pivot:  capacity.newSeries(),
		s1:     capacity.newSeries(),
		s2:     capacity.newSeries(),
		s3:     capacity.newSeries(),
	}
}

// Add processes a bar
func (p *pivotPoints) Add(price Price) {
	if p.reference == nil {
		p.reference = &price
		return
	}

	if !sameDate(p.reference.Timestamp, price.Timestamp) {
		p.push(p.levels(*p.reference))
		p.reference = &price
	} else if p.pivot.Len() > 0 {
		p.push(p.Last())
	}
}

func (p *pivotPoints) push(l PivotLevels) {
	p.r3.push(l.R3)
	p.r2.push(l.R2)
	p.r1.push(l.R1)
	p.pivot.push(l.Pivot)
	p.s1.push(l.S1)
	p.s2.push(l.S2)
	p.s3.push(l.S3)
}

// Last returns the current levels; zero before the first date change
func (p *pivotPoints) Last() PivotLevels {
	return PivotLevels{
		R3: p.r3.last(), R2: p.r2.last(), R1: p.r1.last(),
		Pivot: p.pivot.last(),
		S1:    p.s1.last(), S2: p.s2.last(), S3: p.s3.last(),
	}
}

// Values returns the pivot line
func (p *pivotPoints) Values() *Series { return p.pivot }

// Resistance3 returns R3
func (p *pivotPoints) Resistance3() *Series { return p.r3 }

// Resistance2 returns R2
func (p *pivotPoints) Resistance2() *Series { return p.r2 }

// Resistance1 returns R1
func (p *pivotPoints) Resistance1() *Series { return p.r1 }

// Support1 returns S1
func (p *pivotPoints) Support1() *Series { return p.s1 }

// Support2 returns S2
func (p *pivotPoints) Support2() *Series { return p.s2 }

// Support3 returns S3
func (p *pivotPoints) Support3() *Series { return p.s3 }

// IsReady returns true after the first date change
func (p *pivotPoints) IsReady() bool { return p.pivot.Len() > 0 }

func (p *pivotPoints) plot(title string) Plot {
	return overlay(title,
		line("R3", p.r3, ColorNegative),
		line("R2", p.r2, ColorNegative),
		line("R1", p.r1, ColorNegative),
		line("P", p.pivot, ColorBlack),
		line("S1", p.s1, ColorPositive),
		line("S2", p.s2, ColorPositive),
		line("S3", p.s3, ColorPositive))
}

// StandardPivotPoints are the classic floor-trader pivots
type StandardPivotPoints struct {
	pivotPoints
}

// NewStandardPivotPoints creates standard pivots
func NewStandardPivotPoints(capacity Capacity) *StandardPivotPoints {
	return &StandardPivotPoints{newPivotPoints(capacity, standardLevels)}
}

func standardLevels(ref Price) PivotLevels {
	p := ref.Typical()
	return PivotLevels{
		R3:    ref.High + 2*(p-ref.Low),
		R2:    p + (ref.High - ref.Low),
		R1:    2*p - ref.Low,
		Pivot: p,
		S1:    2*p - ref.High,
		S2:    p - (ref.High - ref.Low),
		S3:    ref.Low - 2*(ref.High-p),
	}
}

// Plot draws the levels over the prices
func (s *StandardPivotPoints) Plot() Plot { return s.plot("Standard Pivot Points") }

// FibonacciPivotPoints place supports and resistances at Fibonacci ratios
// of the reference range
type FibonacciPivotPoints struct {
	pivotPoints
}

// NewFibonacciPivotPoints creates Fibonacci pivots
func NewFibonacciPivotPoints(capacity Capacity) *FibonacciPivotPoints {
	return &FibonacciPivotPoints{newPivotPoints(capacity, fibonacciLevels)}
}

func fibonacciLevels(ref Price) PivotLevels {
	p := ref.Typical()
	r := ref.High - ref.Low
	return PivotLevels{
		R3:    p + 1.000*r,
		R2:    p + 0.618*r,
		R1:    p + 0.382*r,
		Pivot: p,
		S1:    p - 0.382*r,
		S2:    p - 0.618*r,
		S3:    p - 1.000*r,
	}
}

// Plot draws the levels over the prices
func (f *FibonacciPivotPoints) Plot() Plot { return f.plot("Fibonacci Pivot Points") }
