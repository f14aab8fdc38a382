package engine

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mohamedkhairy/stock-indicators/pkg/indicator"
)

// Entry configures one indicator instance of a pipeline
type Entry struct {
	// Name identifies the instance within a symbol; defaults to Indicator
	Name      string             `yaml:"name,omitempty" json:"name"`
	Indicator string             `yaml:"indicator" json:"indicator"`
	Params    map[string]float64 `yaml:"params,omitempty" json:"params,omitempty"`
	// Benchmark is the symbol whose bars are paired with the processed
	// symbol's bars. Required by comparison indicators only.
	Benchmark string `yaml:"benchmark,omitempty" json:"benchmark,omitempty"`
}

// Pipeline is the set of indicators computed for every symbol
type Pipeline struct {
	// Capacity bounds every output series; 0 keeps everything
	Capacity   int     `yaml:"capacity,omitempty" json:"capacity"`
	Indicators []Entry `yaml:"indicators" json:"indicators"`
}

// DefaultPipeline is used when no pipeline file is configured
func DefaultPipeline() *Pipeline {
	return &Pipeline{
		Indicators: []Entry{
			{Name: "sma20", Indicator: "SimpleMovingAverage", Params: map[string]float64{"Periods": 20}},
			{Name: "ema20", Indicator: "ExponentialMovingAverage", Params: map[string]float64{"Periods": 20}},
			{Name: "rsi", Indicator: "RelativeStrengthIndex"},
			{Name: "macd", Indicator: "MACD"},
			{Name: "bb", Indicator: "BollingerBand"},
			{Name: "atr", Indicator: "AverageTrueRange"},
			{Name: "obv", Indicator: "OnBalanceVolume"},
		},
	}
}

// ParsePipeline decodes a YAML pipeline definition
func ParsePipeline(data []byte) (*Pipeline, error) {
	var p Pipeline
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "failed to parse pipeline")
	}
	return &p, nil
}

// LoadPipeline reads a YAML pipeline file
func LoadPipeline(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read pipeline %s", path)
	}
	p, err := ParsePipeline(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return p, nil
}

// Validate fills default names and checks every entry against the catalog
func (p *Pipeline) Validate(catalog *indicator.Catalog) error {
	if p.Capacity < 0 {
		return errors.Errorf("capacity cannot be negative, got %d", p.Capacity)
	}
	if len(p.Indicators) == 0 {
		return errors.New("pipeline has no indicators")
	}

	seen := make(map[string]bool, len(p.Indicators))
	for i := range p.Indicators {
		e := &p.Indicators[i]
		if e.Name == "" {
			e.Name = e.Indicator
		}
		if seen[e.Name] {
			return errors.Errorf("duplicate pipeline entry %q", e.Name)
		}
		seen[e.Name] = true

		d, err := catalog.Get(e.Indicator)
		if err != nil {
			return errors.Wrapf(err, "entry %q", e.Name)
		}
		comparison := d.HasCategory(indicator.CategoryComparison)
		if comparison && e.Benchmark == "" {
			return errors.Errorf("entry %q: comparison indicator %s needs a benchmark symbol", e.Name, e.Indicator)
		}
		if !comparison && e.Benchmark != "" {
			return errors.Errorf("entry %q: %s does not take a benchmark", e.Name, e.Indicator)
		}
		if _, err := catalog.Create(e.Indicator, e.Params); err != nil {
			return errors.Wrapf(err, "entry %q", e.Name)
		}
	}
	return nil
}

// capacity returns the output capacity of the pipeline
func (p *Pipeline) capacity() (indicator.Capacity, error) {
	if p.Capacity == 0 {
		return indicator.Infinite, nil
	}
	return indicator.FromPeriods(p.Capacity)
}
