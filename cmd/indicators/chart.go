package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mohamedkhairy/stock-indicators/internal/chart"
	"github.com/mohamedkhairy/stock-indicators/internal/engine"
	"github.com/mohamedkhairy/stock-indicators/pkg/indicator"
	"github.com/mohamedkhairy/stock-indicators/pkg/logger"
)

// go run ./cmd/indicators chart --indicator BollingerBand --param Periods=20
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "render the chart of one indicator over the configured bars",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		name, err := cmd.Flags().GetString("indicator")
		if err != nil {
			return err
		}
		if name == "" {
			return errors.New("--indicator option is required")
		}
		entry, err := entryFromFlags(cmd, name)
		if err != nil {
			return err
		}

		pipeline := &engine.Pipeline{Capacity: cfg.Pipeline.OutputCapacity, Indicators: []engine.Entry{entry}}
		eng, err := engine.New(indicator.DefaultCatalog(), pipeline, engine.WithLogger(logger.Get()))
		if err != nil {
			return err
		}
		if err := drain(ctx, eng); err != nil {
			return err
		}

		symbol, err := cmd.Flags().GetString("chart-symbol")
		if err != nil {
			return err
		}
		if symbol == "" {
			symbols := eng.Symbols()
			if len(symbols) == 0 {
				return errors.New("the source has no bars")
			}
			symbol = symbols[0]
		}

		ind, err := eng.Indicator(symbol, name)
		if err != nil {
			return err
		}
		prices, err := eng.Prices(symbol)
		if err != nil {
			return err
		}
		times, err := eng.ValueTimes(symbol, name)
		if err != nil {
			return err
		}

		out, err := cmd.Flags().GetString("out")
		if err != nil {
			return err
		}
		opts := chart.Options{
			Width:      cfg.Chart.Width,
			Height:     cfg.Chart.Height,
			Format:     cfg.Chart.Format,
			ValueTimes: times,
		}
		if out == "" {
			if err := os.MkdirAll(cfg.Chart.Dir, 0o755); err != nil {
				return errors.Wrapf(err, "failed to create chart directory %s", cfg.Chart.Dir)
			}
			out = filepath.Join(cfg.Chart.Dir, strings.ToLower(symbol+"_"+name)+"."+opts.Format)
		} else if ext := strings.TrimPrefix(filepath.Ext(out), "."); ext == "png" || ext == "svg" {
			opts.Format = ext
		}

		if err := chart.RenderFile(out, ind.Plot(), prices, opts); err != nil {
			return err
		}
		fields := []zap.Field{logger.Symbol(symbol), logger.Indicator(name), logger.String("file", out)}
		if len(prices) > 0 {
			fields = append(fields,
				logger.Time("from", prices[0].Timestamp),
				logger.Time("to", prices[len(prices)-1].Timestamp),
			)
		}
		logger.Info("chart written", fields...)
		return nil
	},
}

func init() {
	addIndicatorFlags(chartCmd)
	chartCmd.Flags().String("out", "", "output file; the extension selects svg or png")
	chartCmd.Flags().String("chart-symbol", "", "symbol to chart, defaults to the first symbol")
	RootCmd.AddCommand(chartCmd)
}
