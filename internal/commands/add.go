package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/model"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/portfolio"
)

func newAddCommand() *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add portfolio records",
	}
	addCmd.AddCommand(newAddPropertyCommand())
	addCmd.AddCommand(newAddTenantCommand())
	addCmd.AddCommand(newAddVendorCommand())
	return addCmd
}

func newAddPropertyCommand() *cobra.Command {
	var dir, name, address, propertyType, value, income, expenses, by string
	var totalUnits, occupiedUnits int

	cmd := &cobra.Command{
		Use:   "property",
		Short: "Add a property",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(dir)
			if err != nil {
				return err
			}

			parse := func(field, v string) (decimal.Decimal, error) {
				if v == "" {
					return decimal.Zero, nil
				}
				d, err := decimal.NewFromString(v)
				if err != nil {
					return decimal.Zero, fmt.Errorf("parsing %s %q: %w", field, v, err)
				}
				return d, nil
			}

			params := portfolio.PropertyParams{
				Name:          name,
				Address:       address,
				Type:          model.PropertyType(propertyType),
				TotalUnits:    totalUnits,
				OccupiedUnits: occupiedUnits,
			}
			if params.CurrentValue, err = parse("value", value); err != nil {
				return err
			}
			if params.MonthlyIncome, err = parse("income", income); err != nil {
				return err
			}
			if params.MonthlyExpenses, err = parse("expenses", expenses); err != nil {
				return err
			}

			property, err := a.properties.Create(params)
			if err != nil {
				return err
			}

			a.finish(by, "add_property", property.ID, name)
			fmt.Printf("Added property %s\n", property.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&name, "name", "", "property name (required)")
	cmd.Flags().StringVar(&address, "address", "", "address (required)")
	cmd.Flags().StringVar(&propertyType, "type", string(model.PropertyResidential), "property type")
	cmd.Flags().IntVar(&totalUnits, "units", 0, "total units")
	cmd.Flags().IntVar(&occupiedUnits, "occupied", 0, "occupied units")
	cmd.Flags().StringVar(&value, "value", "", "current value")
	cmd.Flags().StringVar(&income, "income", "", "monthly income")
	cmd.Flags().StringVar(&expenses, "expenses", "", "monthly expenses")
	cmd.Flags().StringVar(&by, "by", "", "who added the property")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("address")

	return cmd
}

func newAddTenantCommand() *cobra.Command {
	var dir, propertyID, unit, name, phone, email, rent, deposit, leaseStart, leaseEnd, by string

	cmd := &cobra.Command{
		Use:   "tenant",
		Short: "Add a tenant",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(dir)
			if err != nil {
				return err
			}

			monthlyRent := decimal.Zero
			if rent != "" {
				monthlyRent, err = decimal.NewFromString(rent)
				if err != nil {
					return fmt.Errorf("parsing rent %q: %w", rent, err)
				}
			}
			dep := decimal.Zero
			if deposit != "" {
				dep, err = decimal.NewFromString(deposit)
				if err != nil {
					return fmt.Errorf("parsing deposit %q: %w", deposit, err)
				}
			}
			parseDate := func(field, v string) (time.Time, error) {
				if v == "" {
					return time.Time{}, nil
				}
				d, err := time.Parse(dateFormat, v)
				if err != nil {
					return time.Time{}, fmt.Errorf("parsing %s %q: %w", field, v, err)
				}
				return d, nil
			}
			start, err := parseDate("lease-start", leaseStart)
			if err != nil {
				return err
			}
			end, err := parseDate("lease-end", leaseEnd)
			if err != nil {
				return err
			}

			tenant, err := a.tenants.Create(portfolio.TenantParams{
				PropertyID:     propertyID,
				UnitNumber:     unit,
				Name:           name,
				Email:          email,
				Phone:          phone,
				LeaseStartDate: start,
				LeaseEndDate:   end,
				MonthlyRent:    monthlyRent,
				Deposit:        dep,
			})
			if err != nil {
				return err
			}

			a.finish(by, "add_tenant", tenant.ID, name)
			fmt.Printf("Added tenant %s\n", tenant.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&propertyID, "property", "", "property ID (required)")
	cmd.Flags().StringVar(&unit, "unit", "", "unit number")
	cmd.Flags().StringVar(&name, "name", "", "tenant name (required)")
	cmd.Flags().StringVar(&phone, "phone", "", "phone")
	cmd.Flags().StringVar(&email, "email", "", "email")
	cmd.Flags().StringVar(&rent, "rent", "", "monthly rent")
	cmd.Flags().StringVar(&deposit, "deposit", "", "deposit")
	cmd.Flags().StringVar(&leaseStart, "lease-start", "", "lease start YYYY-MM-DD")
	cmd.Flags().StringVar(&leaseEnd, "lease-end", "", "lease end YYYY-MM-DD")
	cmd.Flags().StringVar(&by, "by", "", "who added the tenant")
	_ = cmd.MarkFlagRequired("property")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newAddVendorCommand() *cobra.Command {
	var dir, name, category, contact, phone, by string
	var rating int
	var preferred bool

	cmd := &cobra.Command{
		Use:   "vendor",
		Short: "Add a vendor",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(dir)
			if err != nil {
				return err
			}

			vendor, err := a.vendors.Create(portfolio.VendorParams{
				Name:          name,
				Category:      category,
				ContactPerson: contact,
				Phone:         phone,
				Rating:        rating,
				IsPreferred:   preferred,
			})
			if err != nil {
				return err
			}

			a.finish(by, "add_vendor", vendor.ID, name)
			fmt.Printf("Added vendor %s\n", vendor.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&name, "name", "", "vendor name (required)")
	cmd.Flags().StringVar(&category, "category", "", "category, e.g. plumbing")
	cmd.Flags().StringVar(&contact, "contact", "", "contact person")
	cmd.Flags().StringVar(&phone, "phone", "", "phone")
	cmd.Flags().IntVar(&rating, "rating", 0, "rating 0-5")
	cmd.Flags().BoolVar(&preferred, "preferred", false, "preferred vendor")
	cmd.Flags().StringVar(&by, "by", "", "who added the vendor")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
