package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config holds all configuration for the application
type Config struct {
	// Common
	Environment string
	LogLevel    string

	Source   SourceConfig
	Pipeline PipelineConfig
	Chart    ChartConfig
	Report   ReportConfig
}

// SourceConfig selects and configures the bar source
type SourceConfig struct {
	Type             string // "csv" or "synthetic"
	DataFile         string
	Symbol           string
	DateLayout       string
	SyntheticBars    int
	SyntheticSeed    int64
	SyntheticSymbols []string
}

// PipelineConfig configures the engine
type PipelineConfig struct {
	File           string
	OutputCapacity int // 0 means unbounded
	MetricsFile    string
}

// ChartConfig configures chart rendering
type ChartConfig struct {
	Dir    string
	Format string // "svg" or "png"
	Width  int
	Height int
}

// ReportConfig configures snapshot output
type ReportConfig struct {
	Format    string // "table" or "json"
	Precision int
}

// Load reads and validates the configuration
func Load() (*Config, error) {
	cfg := Read()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}
	return cfg, nil
}

// Read loads configuration from environment variables without validating
// it, so callers can apply overrides first.
// It loads a .env file from the working directory when one exists
func Read() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Source: SourceConfig{
			Type:             getEnv("INDICATORS_SOURCE", "csv"),
			DataFile:         getEnv("INDICATORS_DATA_FILE", "data/sample.csv"),
			Symbol:           getEnv("INDICATORS_SYMBOL", "SAMPLE"),
			DateLayout:       getEnv("INDICATORS_DATE_LAYOUT", "20060102"),
			SyntheticBars:    getEnvAsInt("INDICATORS_SYNTHETIC_BARS", 500),
			SyntheticSeed:    int64(getEnvAsInt("INDICATORS_SYNTHETIC_SEED", 1)),
			SyntheticSymbols: getEnvAsStringSlice("INDICATORS_SYNTHETIC_SYMBOLS", []string{"SAMPLE"}),
		},
		Pipeline: PipelineConfig{
			File:           getEnv("INDICATORS_PIPELINE_FILE", ""),
			OutputCapacity: getEnvAsInt("INDICATORS_OUTPUT_CAPACITY", 0),
			MetricsFile:    getEnv("INDICATORS_METRICS_FILE", ""),
		},
		Chart: ChartConfig{
			Dir:    getEnv("INDICATORS_CHART_DIR", "charts"),
			Format: getEnv("INDICATORS_CHART_FORMAT", "svg"),
			Width:  getEnvAsInt("INDICATORS_CHART_WIDTH", 1000),
			Height: getEnvAsInt("INDICATORS_CHART_HEIGHT", 300),
		},
		Report: ReportConfig{
			Format:    getEnv("INDICATORS_REPORT_FORMAT", "table"),
			Precision: getEnvAsInt("INDICATORS_REPORT_PRECISION", 4),
		},
	}
	return cfg
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Source.Type {
	case "csv":
		if c.Source.DataFile == "" {
			return errors.New("INDICATORS_DATA_FILE is required for the csv source")
		}
		if c.Source.Symbol == "" {
			return errors.New("INDICATORS_SYMBOL is required for the csv source")
		}
	case "synthetic":
		if c.Source.SyntheticBars <= 0 {
			return errors.New("INDICATORS_SYNTHETIC_BARS must be positive")
		}
		if len(c.Source.SyntheticSymbols) == 0 {
			return errors.New("INDICATORS_SYNTHETIC_SYMBOLS must contain at least one symbol")
		}
	default:
		return errors.Errorf("unknown INDICATORS_SOURCE %q", c.Source.Type)
	}
	if c.Pipeline.OutputCapacity < 0 {
		return errors.New("INDICATORS_OUTPUT_CAPACITY cannot be negative")
	}
	if c.Chart.Format != "svg" && c.Chart.Format != "png" {
		return errors.Errorf("unknown INDICATORS_CHART_FORMAT %q", c.Chart.Format)
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return errors.New("chart width and height must be positive")
	}
	if c.Report.Format != "table" && c.Report.Format != "json" {
		return errors.Errorf("unknown INDICATORS_REPORT_FORMAT %q", c.Report.Format)
	}
	if c.Report.Precision < 0 || c.Report.Precision > 12 {
		return errors.New("INDICATORS_REPORT_PRECISION must be in [0, 12]")
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getEnvAsStringSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
