package portfolio

import (
	"fmt"
	"time"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/apperrors"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/id"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/model"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/storage"
)

// Vendors manages contractor records. Job statistics are maintained by the
// maintenance manager as work completes.
type Vendors struct {
	store storage.Store

	now func() time.Time
}

// NewVendors creates a Vendors manager.
func NewVendors(store storage.Store) *Vendors {
	return &Vendors{store: store, now: time.Now}
}

// VendorParams holds the caller-supplied fields of a vendor.
type VendorParams struct {
	Name          string
	Category      string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	Rating        int
	IsPreferred   bool
	Notes         string
}

// All returns every vendor.
func (v *Vendors) All() ([]model.Vendor, error) {
	var vendors []model.Vendor
	if _, err := v.store.Get(storage.KeyVendors, &vendors); err != nil {
		return nil, fmt.Errorf("loading vendors: %w", err)
	}
	return vendors, nil
}

// Get returns a vendor by ID.
func (v *Vendors) Get(vendorID string) (model.Vendor, error) {
	vendors, err := v.All()
	if err != nil {
		return model.Vendor{}, err
	}
	for _, vendor := range vendors {
		if vendor.ID == vendorID {
			return vendor, nil
		}
	}
	return model.Vendor{}, fmt.Errorf("vendor %s: %w", vendorID, apperrors.ErrNotFound)
}

// Create adds a vendor.
func (v *Vendors) Create(params VendorParams) (model.Vendor, error) {
	if params.Name == "" {
		return model.Vendor{}, fmt.Errorf("vendor name is required: %w", apperrors.ErrValidation)
	}
	if params.Rating < 0 || params.Rating > 5 {
		return model.Vendor{}, fmt.Errorf("vendor rating must be 0-5, got %d: %w", params.Rating, apperrors.ErrValidation)
	}

	now := v.now()
	vendor := model.Vendor{
		ID:            id.New(id.PrefixVendor),
		Name:          params.Name,
		Category:      params.Category,
		ContactPerson: params.ContactPerson,
		Phone:         params.Phone,
		Email:         params.Email,
		Address:       params.Address,
		Rating:        params.Rating,
		IsPreferred:   params.IsPreferred,
		Notes:         params.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	vendors, err := v.All()
	if err != nil {
		return model.Vendor{}, err
	}
	vendors = append(vendors, vendor)
	if err := v.saveAll(vendors); err != nil {
		return model.Vendor{}, err
	}
	return vendor, nil
}

// Update replaces a vendor's caller-editable fields. Job statistics are left
// alone.
func (v *Vendors) Update(vendorID string, params VendorParams) (model.Vendor, error) {
	if params.Name == "" {
		return model.Vendor{}, fmt.Errorf("vendor name is required: %w", apperrors.ErrValidation)
	}

	vendors, err := v.All()
	if err != nil {
		return model.Vendor{}, err
	}
	for i := range vendors {
		if vendors[i].ID != vendorID {
			continue
		}
		vendors[i].Name = params.Name
		vendors[i].Category = params.Category
		vendors[i].ContactPerson = params.ContactPerson
		vendors[i].Phone = params.Phone
		vendors[i].Email = params.Email
		vendors[i].Address = params.Address
		vendors[i].Rating = params.Rating
		vendors[i].IsPreferred = params.IsPreferred
		vendors[i].Notes = params.Notes
		vendors[i].UpdatedAt = v.now()
		if err := v.saveAll(vendors); err != nil {
			return model.Vendor{}, err
		}
		return vendors[i], nil
	}
	return model.Vendor{}, fmt.Errorf("vendor %s: %w", vendorID, apperrors.ErrNotFound)
}

// Delete removes a vendor.
func (v *Vendors) Delete(vendorID string) error {
	vendors, err := v.All()
	if err != nil {
		return err
	}
	for i := range vendors {
		if vendors[i].ID == vendorID {
			vendors = append(vendors[:i], vendors[i+1:]...)
			return v.saveAll(vendors)
		}
	}
	return fmt.Errorf("vendor %s: %w", vendorID, apperrors.ErrNotFound)
}

// recordCompletedJob folds one completed job into the vendor's running
// statistics: the job count increments and the average response time moves
// toward responseHours.
func (v *Vendors) recordCompletedJob(vendorID string, responseHours float64) error {
	vendors, err := v.All()
	if err != nil {
		return err
	}
	for i := range vendors {
		if vendors[i].ID != vendorID {
			continue
		}
		completed := vendors[i].TotalJobsCompleted
		total := vendors[i].AverageResponseTime*float64(completed) + responseHours
		vendors[i].TotalJobsCompleted = completed + 1
		vendors[i].AverageResponseTime = total / float64(completed+1)
		vendors[i].UpdatedAt = v.now()
		return v.saveAll(vendors)
	}
	return fmt.Errorf("vendor %s: %w", vendorID, apperrors.ErrNotFound)
}

func (v *Vendors) saveAll(vendors []model.Vendor) error {
	if err := v.store.Set(storage.KeyVendors, vendors); err != nil {
		return fmt.Errorf("saving vendors: %w", err)
	}
	return nil
}
