package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mohamedkhairy/stock-indicators/internal/engine"
	"github.com/mohamedkhairy/stock-indicators/internal/models"
	"github.com/mohamedkhairy/stock-indicators/internal/report"
	"github.com/mohamedkhairy/stock-indicators/pkg/indicator"
	"github.com/mohamedkhairy/stock-indicators/pkg/logger"
)

// go run ./cmd/indicators run --pipeline configs/pipeline.yaml
// go run ./cmd/indicators run --indicator RelativeStrengthIndex --param Periods=9
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "feed the configured bars through an indicator pipeline and print the latest values",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		pipeline, err := pipelineFromFlags(cmd)
		if err != nil {
			return err
		}

		eng, err := engine.New(indicator.DefaultCatalog(), pipeline, engine.WithLogger(logger.Get()))
		if err != nil {
			return err
		}
		if err := drain(ctx, eng); err != nil {
			return err
		}

		snapshots := make([]models.Snapshot, 0)
		for _, symbol := range eng.Symbols() {
			snapshot, err := eng.Snapshot(symbol)
			if err != nil {
				return err
			}
			snapshots = append(snapshots, snapshot)
		}

		w, err := report.New(cmd.OutOrStdout(), cfg.Report.Format, cfg.Report.Precision)
		if err != nil {
			return err
		}
		if err := w.WriteSnapshots(snapshots...); err != nil {
			return err
		}

		metricsFile, err := cmd.Flags().GetString("metrics-file")
		if err != nil {
			return err
		}
		if metricsFile == "" {
			metricsFile = cfg.Pipeline.MetricsFile
		}
		if metricsFile != "" {
			if err := eng.Metrics().WriteToTextfile(metricsFile); err != nil {
				return err
			}
			logger.Info("metrics written", logger.String("file", metricsFile))
		}
		return nil
	},
}

// drain runs the configured source through eng
func drain(ctx context.Context, eng *engine.Engine) error {
	src, err := openSource()
	if err != nil {
		return err
	}
	defer closeSource(src)
	return eng.Run(ctx, src)
}

// pipelineFromFlags builds the pipeline from --indicator, --pipeline or
// the configuration, in that order
func pipelineFromFlags(cmd *cobra.Command) (*engine.Pipeline, error) {
	flags := cmd.Flags()
	name, err := flags.GetString("indicator")
	if err != nil {
		return nil, err
	}
	file, err := flags.GetString("pipeline")
	if err != nil {
		return nil, err
	}
	capacity, err := flags.GetInt("capacity")
	if err != nil {
		return nil, err
	}
	if !flags.Changed("capacity") {
		capacity = cfg.Pipeline.OutputCapacity
	}
	if capacity < 0 {
		return nil, errors.Errorf("--capacity cannot be negative, got %d", capacity)
	}

	var pipeline *engine.Pipeline
	switch {
	case name != "":
		if file != "" {
			return nil, errors.New("--indicator and --pipeline are mutually exclusive")
		}
		entry, err := entryFromFlags(cmd, name)
		if err != nil {
			return nil, err
		}
		pipeline = &engine.Pipeline{Indicators: []engine.Entry{entry}}
	case file != "" || cfg.Pipeline.File != "":
		if file == "" {
			file = cfg.Pipeline.File
		}
		if pipeline, err = engine.LoadPipeline(file); err != nil {
			return nil, err
		}
	default:
		pipeline = engine.DefaultPipeline()
	}

	if pipeline.Capacity == 0 || flags.Changed("capacity") {
		pipeline.Capacity = capacity
	}

	names := make([]string, 0, len(pipeline.Indicators))
	for _, entry := range pipeline.Indicators {
		names = append(names, entry.Indicator)
	}
	logger.Debug("pipeline selected",
		logger.String("file", file),
		logger.Strings("indicators", names),
		logger.Int("capacity", pipeline.Capacity),
	)
	return pipeline, nil
}

// entryFromFlags builds a single pipeline entry from --param and --benchmark
func entryFromFlags(cmd *cobra.Command, name string) (engine.Entry, error) {
	raw, err := cmd.Flags().GetStringToString("param")
	if err != nil {
		return engine.Entry{}, err
	}
	params, err := parseParams(raw)
	if err != nil {
		return engine.Entry{}, err
	}
	benchmark, err := cmd.Flags().GetString("benchmark")
	if err != nil {
		return engine.Entry{}, err
	}
	return engine.Entry{Name: name, Indicator: name, Params: params, Benchmark: benchmark}, nil
}

// addIndicatorFlags registers the flags selecting a single indicator
func addIndicatorFlags(cmd *cobra.Command) {
	cmd.Flags().String("indicator", "", "catalog name of the indicator, e.g. SimpleMovingAverage")
	cmd.Flags().StringToString("param", nil, "indicator parameter as name=value, repeatable")
	cmd.Flags().String("benchmark", "", "benchmark symbol of a comparison indicator")
}

func init() {
	addIndicatorFlags(runCmd)
	runCmd.Flags().String("pipeline", "", "YAML pipeline file")
	runCmd.Flags().Int("capacity", 0, "number of values kept per output series, 0 keeps all")
	runCmd.Flags().String("metrics-file", "", "write prometheus metrics to this textfile")
	RootCmd.AddCommand(runCmd)
}
