package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/metrics"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/model"
)

func newReportCommand() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Reports over the books and the portfolio",
	}
	reportCmd.AddCommand(newTrialBalanceCommand())
	reportCmd.AddCommand(newCashflowReportCommand())
	reportCmd.AddCommand(newDashboardCommand())
	return reportCmd
}

func newTrialBalanceCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Print every account with its debit/credit totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(dir)
			if err != nil {
				return err
			}

			accounts, err := a.registry.All()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tACCOUNT\tDEBIT\tCREDIT")

			totalDebit := decimal.Zero
			totalCredit := decimal.Zero
			for _, account := range accounts {
				debit := decimal.Zero
				credit := decimal.Zero
				if account.NormalBalance == model.NormalDebit {
					debit = account.CurrentBalance
				} else {
					credit = account.CurrentBalance
				}
				if debit.IsNegative() {
					credit = debit.Neg()
					debit = decimal.Zero
				}
				if credit.IsNegative() {
					debit = credit.Neg()
					credit = decimal.Zero
				}
				totalDebit = totalDebit.Add(debit)
				totalCredit = totalCredit.Add(credit)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					account.Code, account.Name, debit.StringFixed(2), credit.StringFixed(2))
			}
			fmt.Fprintf(w, "\tTOTAL\t%s\t%s\n", totalDebit.StringFixed(2), totalCredit.StringFixed(2))
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	return cmd
}

func newCashflowReportCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "cashflow",
		Short: "Print the monthly cashflow forecast with actuals and variance",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(dir)
			if err != nil {
				return err
			}

			entries, err := a.cashflow.All()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No cashflow projections yet. Add one with 'vgk forecast set'.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MONTH\tPROJECTED NET\tACTUAL NET\tVARIANCE")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					e.MonthYear,
					e.ProjectedNet.StringFixed(2),
					e.ActualNet.StringFixed(2),
					e.Variance.StringFixed(2))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	return cmd
}

func newDashboardCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Print the portfolio health summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(dir)
			if err != nil {
				return err
			}

			properties, err := a.properties.All()
			if err != nil {
				return err
			}
			tenants, err := a.tenants.All()
			if err != nil {
				return err
			}
			open, err := a.maintenance.Open()
			if err != nil {
				return err
			}
			requests, err := a.maintenance.All()
			if err != nil {
				return err
			}
			kpis, err := a.planning.KPIs()
			if err != nil {
				return err
			}

			m := metrics.AggregatePortfolio(properties)
			fmt.Printf("Portfolio: %d properties, %d/%d units occupied (%.1f%%)\n",
				m.TotalProperties, m.OccupiedUnits, m.TotalUnits, m.OverallOccupancyRate)
			fmt.Printf("Monthly NOI: %s  Portfolio value: %s\n",
				m.PortfolioNOI.StringFixed(2), m.PortfolioValue.StringFixed(2))

			overdue := 0
			outstanding := decimal.Zero
			for _, tenant := range tenants {
				if tenant.PaymentStatus == model.PaymentOverdue {
					overdue++
				}
				outstanding = outstanding.Add(tenant.OutstandingBalance)
			}
			fmt.Printf("Tenants: %d total, %d overdue, %s outstanding\n",
				len(tenants), overdue, outstanding.StringFixed(2))
			fmt.Printf("Maintenance: %d open requests\n", len(open))

			var responseHours []float64
			for _, request := range requests {
				if request.Status == model.MaintenanceCompleted && request.ResponseTime > 0 {
					responseHours = append(responseHours, request.ResponseTime)
				}
			}
			if len(responseHours) > 0 {
				fmt.Printf("Response time: avg %.1fh, median %.1fh, p90 %.1fh\n",
					metrics.Average(responseHours),
					metrics.Median(responseHours),
					metrics.Percentile(responseHours, 90))
			}

			if len(kpis) > 0 {
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "\nKPI\tCURRENT\tTARGET\tSTATUS\tTREND")
				for _, kpi := range kpis {
					fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%s\t%s\n",
						kpi.Name, kpi.CurrentValue, kpi.TargetValue, kpi.Status, kpi.Trend)
				}
				if err := w.Flush(); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	return cmd
}
