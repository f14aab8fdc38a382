package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mohamedkhairy/stock-indicators/internal/crosscheck"
	"github.com/mohamedkhairy/stock-indicators/internal/data"
	"github.com/mohamedkhairy/stock-indicators/pkg/logger"
)

// go run ./cmd/indicators verify --periods 20
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "compare the streaming computations with techan, cinar and gonum",
	RunE: func(cmd *cobra.Command, args []string) error {
		periods, err := cmd.Flags().GetInt("periods")
		if err != nil {
			return err
		}
		tolerance, err := cmd.Flags().GetFloat64("tolerance")
		if err != nil {
			return err
		}

		src, err := openSource()
		if err != nil {
			return err
		}
		defer closeSource(src)
		bars, err := data.ReadAll(cmd.Context(), src)
		if err != nil {
			return err
		}
		if len(bars) == 0 {
			return errors.New("the source has no bars")
		}

		symbol := bars[0].Symbol
		var closes []float64
		for _, bar := range bars {
			if bar.Symbol == symbol {
				closes = append(closes, bar.Close)
			}
		}

		result, err := crosscheck.Run(closes, periods)
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Check", "Reference", "Values", "Max Abs Diff", "Status"})
		for _, c := range result.Checks {
			status := "ok"
			if !c.Passed(tolerance) {
				status = "FAIL"
			}
			t.AppendRow(table.Row{c.Name, c.Reference, c.Compared, c.MaxAbsDiff, status})
		}
		t.SetColumnConfigs([]table.ColumnConfig{
			{Number: 3, Align: text.AlignRight},
			{Number: 4, Align: text.AlignRight},
		})
		t.Render()

		if !result.Passed(tolerance) {
			return errors.Errorf("cross-check of %s failed with tolerance %g", symbol, tolerance)
		}
		logger.Info("cross-check passed",
			logger.Symbol(symbol),
			logger.Int("periods", periods),
			logger.Int("closes", len(closes)),
			logger.Float64("tolerance", tolerance),
		)
		return nil
	},
}

func init() {
	verifyCmd.Flags().Int("periods", 20, "window length of the compared computations")
	verifyCmd.Flags().Float64("tolerance", 1e-6, "maximum accepted absolute difference")
	RootCmd.AddCommand(verifyCmd)
}
