package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/apperrors"
)

func TestCreateVendor(t *testing.T) {
	f := newFixture(t)

	vendor, err := f.vendors.Create(VendorParams{
		Name:        "Kampala Plumbing Co",
		Category:    "plumbing",
		Rating:      4,
		IsPreferred: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, vendor.TotalJobsCompleted)
	assert.Equal(t, 0.0, vendor.AverageResponseTime)

	_, err = f.vendors.Create(VendorParams{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = f.vendors.Create(VendorParams{Name: "Bad Rating", Rating: 6})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateVendor_PreservesJobStats(t *testing.T) {
	f := newFixture(t)
	vendor, err := f.vendors.Create(VendorParams{Name: "Kampala Plumbing Co", Rating: 3})
	require.NoError(t, err)

	require.NoError(t, f.vendors.recordCompletedJob(vendor.ID, 24))

	updated, err := f.vendors.Update(vendor.ID, VendorParams{Name: "Kampala Plumbing Ltd", Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, "Kampala Plumbing Ltd", updated.Name)
	assert.Equal(t, 1, updated.TotalJobsCompleted, "stats untouched by profile edits")
	assert.Equal(t, 24.0, updated.AverageResponseTime)
}

func TestRecordCompletedJob_RollingAverage(t *testing.T) {
	f := newFixture(t)
	vendor, err := f.vendors.Create(VendorParams{Name: "Kampala Plumbing Co"})
	require.NoError(t, err)

	require.NoError(t, f.vendors.recordCompletedJob(vendor.ID, 10))
	require.NoError(t, f.vendors.recordCompletedJob(vendor.ID, 20))
	require.NoError(t, f.vendors.recordCompletedJob(vendor.ID, 30))

	updated, err := f.vendors.Get(vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.TotalJobsCompleted)
	assert.Equal(t, 20.0, updated.AverageResponseTime)

	assert.ErrorIs(t, f.vendors.recordCompletedJob("vendor_missing", 5), apperrors.ErrNotFound)
}

func TestDeleteVendor(t *testing.T) {
	f := newFixture(t)
	vendor, err := f.vendors.Create(VendorParams{Name: "Kampala Plumbing Co"})
	require.NoError(t, err)

	require.NoError(t, f.vendors.Delete(vendor.ID))
	assert.ErrorIs(t, f.vendors.Delete(vendor.ID), apperrors.ErrNotFound)
}
