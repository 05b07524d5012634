package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PropertyType classifies properties in the portfolio.
type PropertyType string

const (
	PropertyResidential PropertyType = "residential"
	PropertyCommercial  PropertyType = "commercial"
	PropertyMixedUse    PropertyType = "mixed-use"
	PropertyIndustrial  PropertyType = "industrial"
)

// PropertyStatus is the operational state of a property.
type PropertyStatus string

const (
	PropertyActive          PropertyStatus = "active"
	PropertyInactive        PropertyStatus = "inactive"
	PropertyUnderRenovation PropertyStatus = "under-renovation"
)

// Property is a managed rental property.
type Property struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Address string         `json:"address"`
	Type    PropertyType   `json:"type"`
	Status  PropertyStatus `json:"status"`

	TotalUnits    int `json:"totalUnits"`
	OccupiedUnits int `json:"occupiedUnits"`
	SquareFeet    int `json:"squareFeet"`

	PurchasePrice   decimal.Decimal `json:"purchasePrice"`
	PurchaseDate    time.Time       `json:"purchaseDate"`
	CurrentValue    decimal.Decimal `json:"currentValue"` // IAS 40 investment property
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses"`
	ManagementFee   decimal.Decimal `json:"managementFee"`

	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
