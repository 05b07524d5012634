package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/cashflow"
)

func newForecastCommand() *cobra.Command {
	forecastCmd := &cobra.Command{
		Use:   "forecast",
		Short: "Manage cashflow projections",
	}
	forecastCmd.AddCommand(newForecastSetCommand())
	return forecastCmd
}

func newForecastSetCommand() *cobra.Command {
	var dir, month, notes, by string
	var rent, other, maintenance, operating, taxInsurance, management string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the projected figures for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(dir)
			if err != nil {
				return err
			}

			parse := func(name, value string) (decimal.Decimal, error) {
				if value == "" {
					return decimal.Zero, nil
				}
				d, err := decimal.NewFromString(value)
				if err != nil {
					return decimal.Zero, fmt.Errorf("parsing %s %q: %w", name, value, err)
				}
				return d, nil
			}

			params := cashflow.ProjectionParams{MonthYear: month, Notes: notes}
			if params.RentIncome, err = parse("rent", rent); err != nil {
				return err
			}
			if params.OtherIncome, err = parse("other", other); err != nil {
				return err
			}
			if params.MaintenanceExpenses, err = parse("maintenance", maintenance); err != nil {
				return err
			}
			if params.OperatingExpenses, err = parse("operating", operating); err != nil {
				return err
			}
			if params.PropertyTaxInsurance, err = parse("tax-insurance", taxInsurance); err != nil {
				return err
			}
			if params.ManagementFees, err = parse("management", management); err != nil {
				return err
			}

			entry, err := a.cashflow.SetProjection(params)
			if err != nil {
				return err
			}

			a.finish(by, "set_projection", month,
				fmt.Sprintf("Projected net %s for %s", entry.ProjectedNet.StringFixed(2), month))
			fmt.Printf("Projection for %s: net %s (current actual net %s, variance %s)\n",
				month, entry.ProjectedNet.StringFixed(2), entry.ActualNet.StringFixed(2), entry.Variance.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&month, "month", "", "month YYYY-MM (required)")
	cmd.Flags().StringVar(&rent, "rent", "", "projected rent income")
	cmd.Flags().StringVar(&other, "other", "", "projected other income")
	cmd.Flags().StringVar(&maintenance, "maintenance", "", "projected maintenance expenses")
	cmd.Flags().StringVar(&operating, "operating", "", "projected operating expenses")
	cmd.Flags().StringVar(&taxInsurance, "tax-insurance", "", "projected property tax and insurance")
	cmd.Flags().StringVar(&management, "management", "", "projected management fees")
	cmd.Flags().StringVar(&notes, "notes", "", "notes")
	cmd.Flags().StringVar(&by, "by", "", "who set the projection")
	_ = cmd.MarkFlagRequired("month")

	return cmd
}
