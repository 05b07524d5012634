// Package portfolio manages the operational records behind the dashboard:
// properties, tenants, maintenance requests, and vendors. Money movements are
// never written here directly; anything financial goes through the ledger
// recorder.
package portfolio

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/apperrors"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/id"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/model"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/storage"
)

// Properties manages the property records.
type Properties struct {
	store storage.Store

	now func() time.Time
}

// NewProperties creates a Properties manager.
func NewProperties(store storage.Store) *Properties {
	return &Properties{store: store, now: time.Now}
}

// PropertyParams holds the caller-supplied fields of a property.
type PropertyParams struct {
	Name    string
	Address string
	Type    model.PropertyType
	Status  model.PropertyStatus

	TotalUnits    int
	OccupiedUnits int
	SquareFeet    int

	PurchasePrice   decimal.Decimal
	PurchaseDate    time.Time
	CurrentValue    decimal.Decimal
	MonthlyIncome   decimal.Decimal
	MonthlyExpenses decimal.Decimal
	ManagementFee   decimal.Decimal

	Notes string
}

// All returns every property.
func (p *Properties) All() ([]model.Property, error) {
	var properties []model.Property
	if _, err := p.store.Get(storage.KeyProperties, &properties); err != nil {
		return nil, fmt.Errorf("loading properties: %w", err)
	}
	return properties, nil
}

// Get returns a property by ID.
func (p *Properties) Get(propertyID string) (model.Property, error) {
	properties, err := p.All()
	if err != nil {
		return model.Property{}, err
	}
	for _, prop := range properties {
		if prop.ID == propertyID {
			return prop, nil
		}
	}
	return model.Property{}, fmt.Errorf("property %s: %w", propertyID, apperrors.ErrNotFound)
}

// Create adds a property. Occupied units may not exceed total units.
func (p *Properties) Create(params PropertyParams) (model.Property, error) {
	if err := validateProperty(params); err != nil {
		return model.Property{}, err
	}

	now := p.now()
	property := model.Property{
		ID:              id.New(id.PrefixProperty),
		Name:            params.Name,
		Address:         params.Address,
		Type:            params.Type,
		Status:          params.Status,
		TotalUnits:      params.TotalUnits,
		OccupiedUnits:   params.OccupiedUnits,
		SquareFeet:      params.SquareFeet,
		PurchasePrice:   params.PurchasePrice,
		PurchaseDate:    params.PurchaseDate,
		CurrentValue:    params.CurrentValue,
		MonthlyIncome:   params.MonthlyIncome,
		MonthlyExpenses: params.MonthlyExpenses,
		ManagementFee:   params.ManagementFee,
		Notes:           params.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if property.Status == "" {
		property.Status = model.PropertyActive
	}

	properties, err := p.All()
	if err != nil {
		return model.Property{}, err
	}
	properties = append(properties, property)
	if err := p.saveAll(properties); err != nil {
		return model.Property{}, err
	}
	return property, nil
}

// Update replaces a property's caller-editable fields.
func (p *Properties) Update(propertyID string, params PropertyParams) (model.Property, error) {
	if err := validateProperty(params); err != nil {
		return model.Property{}, err
	}

	properties, err := p.All()
	if err != nil {
		return model.Property{}, err
	}
	for i := range properties {
		if properties[i].ID != propertyID {
			continue
		}
		created := properties[i].CreatedAt
		properties[i] = model.Property{
			ID:              propertyID,
			Name:            params.Name,
			Address:         params.Address,
			Type:            params.Type,
			Status:          params.Status,
			TotalUnits:      params.TotalUnits,
			OccupiedUnits:   params.OccupiedUnits,
			SquareFeet:      params.SquareFeet,
			PurchasePrice:   params.PurchasePrice,
			PurchaseDate:    params.PurchaseDate,
			CurrentValue:    params.CurrentValue,
			MonthlyIncome:   params.MonthlyIncome,
			MonthlyExpenses: params.MonthlyExpenses,
			ManagementFee:   params.ManagementFee,
			Notes:           params.Notes,
			CreatedAt:       created,
			UpdatedAt:       p.now(),
		}
		if err := p.saveAll(properties); err != nil {
			return model.Property{}, err
		}
		return properties[i], nil
	}
	return model.Property{}, fmt.Errorf("property %s: %w", propertyID, apperrors.ErrNotFound)
}

// AdjustOccupancy moves the occupied-unit count by delta, clamped to the
// range 0..TotalUnits. Used when tenants move in or out.
func (p *Properties) AdjustOccupancy(propertyID string, delta int) (model.Property, error) {
	properties, err := p.All()
	if err != nil {
		return model.Property{}, err
	}
	for i := range properties {
		if properties[i].ID != propertyID {
			continue
		}
		occupied := properties[i].OccupiedUnits + delta
		if occupied < 0 {
			occupied = 0
		}
		if occupied > properties[i].TotalUnits {
			occupied = properties[i].TotalUnits
		}
		properties[i].OccupiedUnits = occupied
		properties[i].UpdatedAt = p.now()
		if err := p.saveAll(properties); err != nil {
			return model.Property{}, err
		}
		return properties[i], nil
	}
	return model.Property{}, fmt.Errorf("property %s: %w", propertyID, apperrors.ErrNotFound)
}

// Delete removes a property.
func (p *Properties) Delete(propertyID string) error {
	properties, err := p.All()
	if err != nil {
		return err
	}
	for i := range properties {
		if properties[i].ID == propertyID {
			properties = append(properties[:i], properties[i+1:]...)
			return p.saveAll(properties)
		}
	}
	return fmt.Errorf("property %s: %w", propertyID, apperrors.ErrNotFound)
}

func (p *Properties) saveAll(properties []model.Property) error {
	if err := p.store.Set(storage.KeyProperties, properties); err != nil {
		return fmt.Errorf("saving properties: %w", err)
	}
	return nil
}

func validateProperty(params PropertyParams) error {
	if params.Name == "" || params.Address == "" {
		return fmt.Errorf("property name and address are required: %w", apperrors.ErrValidation)
	}
	if params.TotalUnits < 0 || params.OccupiedUnits < 0 {
		return fmt.Errorf("unit counts must not be negative: %w", apperrors.ErrValidation)
	}
	if params.OccupiedUnits > params.TotalUnits {
		return fmt.Errorf("occupied units %d exceed total units %d: %w",
			params.OccupiedUnits, params.TotalUnits, apperrors.ErrValidation)
	}
	return nil
}
