package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountCategory classifies accounts in the chart of accounts.
type AccountCategory string

const (
	CategoryAsset     AccountCategory = "asset"
	CategoryLiability AccountCategory = "liability"
	CategoryEquity    AccountCategory = "equity"
	CategoryIncome    AccountCategory = "income"
	CategoryExpense   AccountCategory = "expense"
)

// NormalBalance is the side on which an account's balance conventionally
// increases, fixed by its category.
type NormalBalance string

const (
	NormalDebit  NormalBalance = "debit"
	NormalCredit NormalBalance = "credit"
)

// NormalBalanceFor returns the polarity fixed by an account category:
// assets and expenses are debit-normal, everything else credit-normal.
func NormalBalanceFor(category AccountCategory) NormalBalance {
	switch category {
	case CategoryAsset, CategoryExpense:
		return NormalDebit
	default:
		return NormalCredit
	}
}

// Account is a chart-of-accounts entry. CurrentBalance is a cache derived
// from ledger entries, never a source of truth.
type Account struct {
	ID   string `json:"id"`
	Code string `json:"code"` // e.g. "1000"; "1000.01" is a sub-account of 1000
	Name string `json:"name"`

	Category      AccountCategory `json:"category"`
	Type          string          `json:"type"` // free-form subtype, e.g. "Current Asset"
	NormalBalance NormalBalance   `json:"normalBalance"`

	CurrentBalance decimal.Decimal `json:"currentBalance"`
	Description    string          `json:"description,omitempty"`
	IsActive       bool            `json:"isActive"`
	ParentAccount  string          `json:"parentAccountId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
