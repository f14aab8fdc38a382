package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "csv", cfg.Source.Type)
	assert.Equal(t, "20060102", cfg.Source.DateLayout)
	assert.Equal(t, 500, cfg.Source.SyntheticBars)
	assert.Equal(t, []string{"SAMPLE"}, cfg.Source.SyntheticSymbols)
	assert.Equal(t, 0, cfg.Pipeline.OutputCapacity)
	assert.Equal(t, "svg", cfg.Chart.Format)
	assert.Equal(t, 1000, cfg.Chart.Width)
	assert.Equal(t, 300, cfg.Chart.Height)
	assert.Equal(t, 4, cfg.Report.Precision)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("INDICATORS_SOURCE", "synthetic")
	t.Setenv("INDICATORS_SYNTHETIC_SYMBOLS", "AAPL, MSFT,,SPY")
	t.Setenv("INDICATORS_SYNTHETIC_BARS", "250")
	t.Setenv("INDICATORS_REPORT_FORMAT", "json")
	t.Setenv("INDICATORS_OUTPUT_CAPACITY", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "synthetic", cfg.Source.Type)
	assert.Equal(t, []string{"AAPL", "MSFT", "SPY"}, cfg.Source.SyntheticSymbols)
	assert.Equal(t, 250, cfg.Source.SyntheticBars)
	assert.Equal(t, "json", cfg.Report.Format)
	assert.Equal(t, 0, cfg.Pipeline.OutputCapacity, "invalid numbers fall back to the default")
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("INDICATORS_CHART_FORMAT", "gif")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestRead_DefersValidation(t *testing.T) {
	t.Setenv("INDICATORS_REPORT_FORMAT", "xml")

	cfg := Read()
	assert.Equal(t, "xml", cfg.Report.Format)
	require.Error(t, cfg.Validate())

	cfg.Report.Format = "json"
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Source:   SourceConfig{Type: "csv", DataFile: "bars.csv", Symbol: "X"},
			Chart:    ChartConfig{Format: "png", Width: 10, Height: 10},
			Report:   ReportConfig{Format: "table", Precision: 2},
			Pipeline: PipelineConfig{},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"unknown source", func(c *Config) { c.Source.Type = "kafka" }, true},
		{"csv without file", func(c *Config) { c.Source.DataFile = "" }, true},
		{"synthetic without bars", func(c *Config) {
			c.Source.Type = "synthetic"
			c.Source.SyntheticSymbols = []string{"A"}
		}, true},
		{"negative capacity", func(c *Config) { c.Pipeline.OutputCapacity = -1 }, true},
		{"bad report format", func(c *Config) { c.Report.Format = "xml" }, true},
		{"bad precision", func(c *Config) { c.Report.Precision = 13 }, true},
		{"zero height", func(c *Config) { c.Chart.Height = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
