package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mohamedkhairy/stock-indicators/internal/report"
	"github.com/mohamedkhairy/stock-indicators/pkg/indicator"
)

// go run ./cmd/indicators list --category Momentum
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list the available indicators and their parameters",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := cmd.Flags().GetString("category")
		if err != nil {
			return err
		}
		all, err := cmd.Flags().GetBool("all")
		if err != nil {
			return err
		}

		descriptions, err := filterDescriptions(indicator.DefaultCatalog().Descriptions(), indicator.Category(category), all)
		if err != nil {
			return err
		}

		w, err := report.New(cmd.OutOrStdout(), cfg.Report.Format, cfg.Report.Precision)
		if err != nil {
			return err
		}
		return w.WriteCatalog(descriptions)
	},
}

// filterDescriptions keeps the descriptions of category. Comparison
// indicators need a second price stream and are only listed on request.
func filterDescriptions(descriptions []indicator.Description, category indicator.Category, all bool) ([]indicator.Description, error) {
	var out []indicator.Description
	for _, d := range descriptions {
		if category != "" && !d.HasCategory(category) {
			continue
		}
		if !all && category != indicator.CategoryComparison && d.HasCategory(indicator.CategoryComparison) {
			continue
		}
		out = append(out, d)
	}
	if len(out) == 0 && category != "" {
		return nil, errors.Errorf("no indicator in category %q", category)
	}
	return out, nil
}

func init() {
	listCmd.Flags().String("category", "", "only list indicators of this category")
	listCmd.Flags().Bool("all", false, "include comparison indicators")
	RootCmd.AddCommand(listCmd)
}
