package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashflowEntry is one forecast month. Projected figures are entered manually;
// actual figures are derived from the ledger on every read and never stored.
type CashflowEntry struct {
	MonthYear string `json:"monthYear"` // "YYYY-MM"

	ProjectedRentIncome           decimal.Decimal `json:"projectedRentIncome"`
	ProjectedOtherIncome          decimal.Decimal `json:"projectedOtherIncome"`
	ProjectedMaintenanceExpenses  decimal.Decimal `json:"projectedMaintenanceExpenses"`
	ProjectedOperatingExpenses    decimal.Decimal `json:"projectedOperatingExpenses"`
	ProjectedPropertyTaxInsurance decimal.Decimal `json:"projectedPropertyTaxInsurance"`
	ProjectedManagementFees       decimal.Decimal `json:"projectedManagementFees"`
	ProjectedNet                  decimal.Decimal `json:"projectedNet"`

	ActualRentIncome           decimal.Decimal `json:"actualRentIncome"`
	ActualOtherIncome          decimal.Decimal `json:"actualOtherIncome"`
	ActualMaintenanceExpenses  decimal.Decimal `json:"actualMaintenanceExpenses"`
	ActualOperatingExpenses    decimal.Decimal `json:"actualOperatingExpenses"`
	ActualPropertyTaxInsurance decimal.Decimal `json:"actualPropertyTaxInsurance"`
	ActualManagementFees       decimal.Decimal `json:"actualManagementFees"`
	ActualNet                  decimal.Decimal `json:"actualNet"`

	Variance decimal.Decimal `json:"variance"` // actualNet - projectedNet

	Notes       string    `json:"notes,omitempty"`
	LastUpdated time.Time `json:"lastUpdated"`
}
