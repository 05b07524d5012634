package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the derived standing of a tenant's rent account.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentDue     PaymentStatus = "due"
	PaymentOverdue PaymentStatus = "overdue"
)

// PaymentMethod is how a rent payment was made.
type PaymentMethod string

const (
	MethodMobileMoney  PaymentMethod = "mobile-money"
	MethodBankTransfer PaymentMethod = "bank-transfer"
	MethodCash         PaymentMethod = "cash"
	MethodCheque       PaymentMethod = "cheque"
)

// Tenant is a leaseholder on a property unit.
type Tenant struct {
	ID         string `json:"id"`
	PropertyID string `json:"propertyId"`
	UnitNumber string `json:"unitNumber"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`

	LeaseStartDate time.Time       `json:"leaseStartDate"`
	LeaseEndDate   time.Time       `json:"leaseEndDate"`
	MonthlyRent    decimal.Decimal `json:"monthlyRent"`
	Deposit        decimal.Decimal `json:"deposit"`

	PaymentStatus      PaymentStatus   `json:"paymentStatus"`
	LastPaymentDate    *time.Time      `json:"lastPaymentDate,omitempty"`
	LastPaymentAmount  decimal.Decimal `json:"lastPaymentAmount"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"`

	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PaymentRecord is one received rent payment. GLEntryRef links to the ledger
// transaction the payment produced.
type PaymentRecord struct {
	ID         string `json:"id"`
	TenantID   string `json:"tenantId"`
	PropertyID string `json:"propertyId"`

	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
	Method      PaymentMethod   `json:"paymentMethod"`
	Reference   string          `json:"reference,omitempty"`
	ForMonth    string          `json:"forMonth,omitempty"` // "YYYY-MM"

	Notes      string    `json:"notes,omitempty"`
	RecordedBy string    `json:"recordedBy,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`

	GLEntryRef string `json:"glEntryRef,omitempty"`
}
