package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mohamedkhairy/stock-indicators/internal/config"
	"github.com/mohamedkhairy/stock-indicators/internal/data"
	"github.com/mohamedkhairy/stock-indicators/pkg/logger"
)

// cfg is loaded, overridden by flags and validated before any subcommand runs
var cfg *config.Config

var RootCmd = &cobra.Command{
	Use:          "indicators",
	Short:        "streaming technical indicators over daily bars",
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded := config.Read()
		if err := applyRootFlags(cmd, loaded); err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return errors.Wrap(err, "config validation failed")
		}
		cfg = loaded

		if err := logger.Init(cfg.LogLevel, cfg.Environment); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},

	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	RootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	RootCmd.PersistentFlags().String("source", "", "bar source type: csv or synthetic")
	RootCmd.PersistentFlags().String("data-file", "", "csv file with date,open,high,low,close,volume rows")
	RootCmd.PersistentFlags().String("symbol", "", "symbol of the csv bars")
	RootCmd.PersistentFlags().String("format", "", "output format: table or json")
	RootCmd.PersistentFlags().Int("precision", -1, "decimal places of printed values")
}

// applyRootFlags overrides the configuration with the flags that were set
func applyRootFlags(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()
	for name, target := range map[string]*string{
		"log-level": &c.LogLevel,
		"source":    &c.Source.Type,
		"data-file": &c.Source.DataFile,
		"symbol":    &c.Source.Symbol,
		"format":    &c.Report.Format,
	} {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetString(name)
		if err != nil {
			return err
		}
		*target = v
	}
	if flags.Changed("precision") {
		v, err := flags.GetInt("precision")
		if err != nil {
			return err
		}
		c.Report.Precision = v
	}
	return nil
}

// openSource creates the configured bar source
func openSource() (data.Source, error) {
	src, err := data.NewSourceFactory().Create(cfg.Source.Type, data.SourceConfigFrom(cfg.Source))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s source", cfg.Source.Type)
	}
	return src, nil
}

// closeSource releases src, logging the failure since the bars were
// already consumed
func closeSource(src data.Source) {
	if err := src.Close(); err != nil {
		logger.Warn("failed to close source", logger.String("source", src.Name()), logger.ErrorField(err))
	}
}

// parseParams converts --param name=value pairs
func parseParams(raw map[string]string) (map[string]float64, error) {
	params := make(map[string]float64, len(raw))
	for name, value := range raw {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, errors.Errorf("parameter %s: %q is not a number", name, value)
		}
		params[name] = v
	}
	return params, nil
}
