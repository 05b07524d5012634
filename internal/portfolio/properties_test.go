package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/apperrors"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/model"
)

func TestCreateProperty(t *testing.T) {
	f := newFixture(t)

	property, err := f.properties.Create(PropertyParams{
		Name:          "Kololo Heights",
		Address:       "12 Acacia Ave, Kampala",
		Type:          model.PropertyResidential,
		TotalUnits:    10,
		OccupiedUnits: 8,
		CurrentValue:  dec("500000"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.PropertyActive, property.Status, "defaults to active")
	assert.NotEmpty(t, property.ID)

	loaded, err := f.properties.Get(property.ID)
	require.NoError(t, err)
	assert.Equal(t, property, loaded)
}

func TestCreateProperty_Validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		params PropertyParams
	}{
		{"missing name", PropertyParams{Address: "12 Acacia Ave"}},
		{"missing address", PropertyParams{Name: "Kololo Heights"}},
		{"occupied exceeds total", PropertyParams{Name: "Kololo Heights", Address: "12 Acacia Ave", TotalUnits: 4, OccupiedUnits: 5}},
		{"negative units", PropertyParams{Name: "Kololo Heights", Address: "12 Acacia Ave", TotalUnits: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.properties.Create(tt.params)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestUpdateProperty(t *testing.T) {
	f := newFixture(t)
	property, err := f.properties.Create(PropertyParams{Name: "Kololo Heights", Address: "12 Acacia Ave", TotalUnits: 10})
	require.NoError(t, err)

	updated, err := f.properties.Update(property.ID, PropertyParams{
		Name:       "Kololo Heights",
		Address:    "12 Acacia Ave",
		Status:     model.PropertyUnderRenovation,
		TotalUnits: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, model.PropertyUnderRenovation, updated.Status)
	assert.Equal(t, 12, updated.TotalUnits)
	assert.Equal(t, property.CreatedAt, updated.CreatedAt, "creation time survives updates")

	_, err = f.properties.Update("prop_missing", PropertyParams{Name: "X", Address: "Y"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAdjustOccupancy(t *testing.T) {
	f := newFixture(t)
	property, err := f.properties.Create(PropertyParams{Name: "Kololo Heights", Address: "12 Acacia Ave", TotalUnits: 10, OccupiedUnits: 9})
	require.NoError(t, err)

	updated, err := f.properties.AdjustOccupancy(property.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, updated.OccupiedUnits)

	// Clamped at total units and at zero.
	updated, err = f.properties.AdjustOccupancy(property.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 10, updated.OccupiedUnits)

	updated, err = f.properties.AdjustOccupancy(property.ID, -20)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.OccupiedUnits)
}

func TestDeleteProperty(t *testing.T) {
	f := newFixture(t)
	property, err := f.properties.Create(PropertyParams{Name: "Kololo Heights", Address: "12 Acacia Ave"})
	require.NoError(t, err)

	require.NoError(t, f.properties.Delete(property.ID))
	assert.ErrorIs(t, f.properties.Delete(property.ID), apperrors.ErrNotFound)

	_, err = f.properties.Get(property.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
