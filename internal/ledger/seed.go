package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/model"
)

// Well-known account codes used by the domain services. The designated
// accounts in vgk.yaml default to these.
const (
	CodeCashAtBank         = "1000"
	CodeAccountsReceivable = "1100"
	CodeRentalIncome       = "4000"
	CodeLateFees           = "4100"
	CodeOtherIncome        = "4200"
	CodeMaintenance        = "5000"
	CodeUtilities          = "5100"
	CodePropertyTax        = "5200"
	CodeInsurance          = "5300"
	CodeManagementFees     = "5400"
	CodeAdministrative     = "5500"
)

// DefaultChart returns the IFRS-flavored chart of accounts seeded at first
// run. IDs are stable so seeded data can reference them.
func DefaultChart(now time.Time) []model.Account {
	mk := func(acctID, code, name string, category model.AccountCategory, acctType, description string) model.Account {
		return model.Account{
			ID:             acctID,
			Code:           code,
			Name:           name,
			Category:       category,
			Type:           acctType,
			NormalBalance:  model.NormalBalanceFor(category),
			CurrentBalance: decimal.Zero,
			Description:    description,
			IsActive:       true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
	}

	return []model.Account{
		// Assets
		mk("acc_1000", CodeCashAtBank, "Cash at Bank", model.CategoryAsset, "Current Asset", "Main operating bank account"),
		mk("acc_1100", CodeAccountsReceivable, "Accounts Receivable", model.CategoryAsset, "Current Asset", "Rent and other amounts due from tenants"),
		mk("acc_1200", "1200", "Security Deposits Held", model.CategoryAsset, "Current Asset", "Tenant security deposits in escrow"),
		mk("acc_1500", "1500", "Investment Property", model.CategoryAsset, "Fixed Asset", "Real estate held for rental income (IAS 40)"),

		// Liabilities
		mk("acc_2000", "2000", "Accounts Payable", model.CategoryLiability, "Current Liability", "Amounts owed to vendors and contractors"),
		mk("acc_2100", "2100", "Security Deposits Liability", model.CategoryLiability, "Current Liability", "Obligation to return tenant deposits"),
		mk("acc_2200", "2200", "Accrued Expenses", model.CategoryLiability, "Current Liability", "Expenses incurred but not yet paid"),

		// Equity
		mk("acc_3000", "3000", "Owner's Equity", model.CategoryEquity, "Equity", "Capital contributed by owners"),
		mk("acc_3100", "3100", "Retained Earnings", model.CategoryEquity, "Equity", "Accumulated profits reinvested"),

		// Income
		mk("acc_4000", CodeRentalIncome, "Rental Income - Residential", model.CategoryIncome, "Operating Revenue", "Monthly rent from residential tenants"),
		mk("acc_4100", CodeLateFees, "Late Fees", model.CategoryIncome, "Operating Revenue", "Late payment fees"),
		mk("acc_4200", CodeOtherIncome, "Other Income", model.CategoryIncome, "Operating Revenue", "Application fees, pet fees, utility reimbursements"),

		// Expenses
		mk("acc_5000", CodeMaintenance, "Maintenance & Repairs", model.CategoryExpense, "Operating Expense", "Routine and emergency repairs"),
		mk("acc_5000_01", "5000.01", "Maintenance - Plumbing", model.CategoryExpense, "Operating Expense", "Plumbing repairs and maintenance"),
		mk("acc_5000_02", "5000.02", "Maintenance - Electrical", model.CategoryExpense, "Operating Expense", "Electrical repairs and maintenance"),
		mk("acc_5100", CodeUtilities, "Utilities", model.CategoryExpense, "Operating Expense", "Water and electricity for common areas"),
		mk("acc_5200", CodePropertyTax, "Property Tax", model.CategoryExpense, "Operating Expense", "Local council property taxes"),
		mk("acc_5300", CodeInsurance, "Insurance", model.CategoryExpense, "Operating Expense", "Property and liability insurance"),
		mk("acc_5400", CodeManagementFees, "Management Fees", model.CategoryExpense, "Operating Expense", "Property management fees"),
		mk("acc_5500", CodeAdministrative, "Administrative Expenses", model.CategoryExpense, "Operating Expense", "Office, software, communications"),
	}
}
