package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/ledger"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/model"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/portfolio"
)

const dateFormat = "2006-01-02"

func newRecordCommand() *cobra.Command {
	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "Record business events in the books",
	}
	recordCmd.AddCommand(newRecordPaymentCommand())
	recordCmd.AddCommand(newRecordMaintenanceCommand())
	recordCmd.AddCommand(newRecordEntryCommand())
	recordCmd.AddCommand(newChargeRentCommand())
	return recordCmd
}

func newChargeRentCommand() *cobra.Command {
	var dir, by string

	cmd := &cobra.Command{
		Use:   "charge-rent",
		Short: "Add one month's rent to every tenant's outstanding balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(dir)
			if err != nil {
				return err
			}

			charged, err := a.tenants.ChargeMonthlyRent()
			if err != nil {
				return err
			}

			a.finish(by, "charge_rent", "", fmt.Sprintf("Charged monthly rent to %d tenants", charged))
			fmt.Printf("Charged monthly rent to %d tenants\n", charged)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&by, "by", "", "who ran the charge")
	return cmd
}

func newRecordPaymentCommand() *cobra.Command {
	var dir, tenantID, amount, date, method, forMonth, notes, by string

	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Record a received rent payment",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(dir)
			if err != nil {
				return err
			}

			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", amount, err)
			}
			var paidAt time.Time
			if date != "" {
				paidAt, err = time.Parse(dateFormat, date)
				if err != nil {
					return fmt.Errorf("parsing date %q: %w", date, err)
				}
			}

			payment, err := a.tenants.RecordPayment(portfolio.PaymentParams{
				TenantID:    tenantID,
				Amount:      amt,
				PaymentDate: paidAt,
				Method:      model.PaymentMethod(method),
				ForMonth:    forMonth,
				Notes:       notes,
				RecordedBy:  by,
			})
			if err != nil {
				return err
			}

			a.finish(by, "record_payment", payment.ID,
				fmt.Sprintf("Rent payment %s for %s (%s)", amt.StringFixed(2), payment.ForMonth, tenantID))
			fmt.Printf("Recorded payment %s (ledger ref %s)\n", payment.ID, payment.GLEntryRef)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&tenantID, "tenant", "", "tenant ID (required)")
	cmd.Flags().StringVar(&amount, "amount", "", "payment amount (required)")
	cmd.Flags().StringVar(&date, "date", "", "payment date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&method, "method", "cash", "payment method")
	cmd.Flags().StringVar(&forMonth, "month", "", "rent month YYYY-MM (default payment month)")
	cmd.Flags().StringVar(&notes, "notes", "", "notes")
	cmd.Flags().StringVar(&by, "by", "", "who recorded the payment")
	_ = cmd.MarkFlagRequired("tenant")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newRecordMaintenanceCommand() *cobra.Command {
	var dir, propertyID, description, category, priority, vendorID, cost, by string

	cmd := &cobra.Command{
		Use:   "maintenance",
		Short: "File a maintenance request, optionally completed with a cost",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(dir)
			if err != nil {
				return err
			}

			request, err := a.maintenance.Create(portfolio.RequestParams{
				PropertyID:  propertyID,
				Category:    category,
				Priority:    model.MaintenancePriority(priority),
				Description: description,
				AssignedTo:  vendorID,
			})
			if err != nil {
				return err
			}

			if cost != "" {
				actual, err := decimal.NewFromString(cost)
				if err != nil {
					return fmt.Errorf("parsing cost %q: %w", cost, err)
				}
				request, err = a.maintenance.Update(request.ID, portfolio.UpdateParams{
					Status:     model.MaintenanceCompleted,
					Priority:   request.Priority,
					AssignedTo: vendorID,
					ActualCost: actual,
				})
				if err != nil {
					return err
				}
				a.finish(by, "record_maintenance", request.ID,
					fmt.Sprintf("Completed: %s, cost %s", description, actual.StringFixed(2)))
				fmt.Printf("Recorded completed maintenance %s (ledger ref %s)\n", request.ID, request.GLEntryRef)
				return nil
			}

			a.finish(by, "record_maintenance", request.ID, "Filed: "+description)
			fmt.Printf("Filed maintenance request %s\n", request.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&propertyID, "property", "", "property ID (required)")
	cmd.Flags().StringVar(&description, "desc", "", "description (required)")
	cmd.Flags().StringVar(&category, "category", "", "category, e.g. plumbing")
	cmd.Flags().StringVar(&priority, "priority", "medium", "priority")
	cmd.Flags().StringVar(&vendorID, "vendor", "", "assigned vendor ID")
	cmd.Flags().StringVar(&cost, "cost", "", "actual cost; completes the request and posts the expense")
	cmd.Flags().StringVar(&by, "by", "", "who recorded the request")
	_ = cmd.MarkFlagRequired("property")
	_ = cmd.MarkFlagRequired("desc")

	return cmd
}

func newRecordEntryCommand() *cobra.Command {
	var dir, debitCode, creditCode, amount, date, description, propertyID, by string

	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Record a manual transaction by account code",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(dir)
			if err != nil {
				return err
			}

			amt, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", amount, err)
			}
			when := time.Now()
			if date != "" {
				when, err = time.Parse(dateFormat, date)
				if err != nil {
					return fmt.Errorf("parsing date %q: %w", date, err)
				}
			}

			debit, err := a.registry.GetByCode(debitCode)
			if err != nil {
				return err
			}
			credit, err := a.registry.GetByCode(creditCode)
			if err != nil {
				return err
			}

			reference, err := a.recorder.Record(ledger.TransactionParams{
				Date:            when,
				Description:     description,
				DebitAccountID:  debit.ID,
				CreditAccountID: credit.ID,
				Amount:          amt,
				SourceType:      model.SourceManual,
				PropertyID:      propertyID,
				CreatedBy:       by,
			})
			if err != nil {
				return err
			}

			a.finish(by, "record_entry", reference,
				fmt.Sprintf("%s: %s -> %s %s", description, creditCode, debitCode, amt.StringFixed(2)))
			fmt.Printf("Recorded transaction %s\n", reference)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&debitCode, "debit", "", "debit account code (required)")
	cmd.Flags().StringVar(&creditCode, "credit", "", "credit account code (required)")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	cmd.Flags().StringVar(&date, "date", "", "transaction date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&description, "desc", "", "description (required)")
	cmd.Flags().StringVar(&propertyID, "property", "", "linked property ID")
	cmd.Flags().StringVar(&by, "by", "", "who recorded the entry")
	_ = cmd.MarkFlagRequired("debit")
	_ = cmd.MarkFlagRequired("credit")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("desc")

	return cmd
}
