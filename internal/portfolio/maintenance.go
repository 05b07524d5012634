package portfolio

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/apperrors"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/id"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/ledger"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/metrics"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/model"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/storage"
)

// Maintenance manages repair requests. Completing a request with an actual
// cost posts one expense transaction; GLEntryRef marks the request as posted
// so the cost can never hit the books twice.
type Maintenance struct {
	store    storage.Store
	recorder *ledger.Recorder
	registry *ledger.Registry
	vendors  *Vendors
	accounts DesignatedAccounts

	now func() time.Time
}

// NewMaintenance creates a Maintenance manager. vendors may be nil if vendor
// statistics are not tracked.
func NewMaintenance(store storage.Store, recorder *ledger.Recorder, registry *ledger.Registry, vendors *Vendors, accounts DesignatedAccounts) *Maintenance {
	return &Maintenance{store: store, recorder: recorder, registry: registry, vendors: vendors, accounts: accounts, now: time.Now}
}

// RequestParams holds the caller-supplied fields of a new maintenance request.
type RequestParams struct {
	PropertyID  string
	UnitNumber  string
	TenantID    string
	Category    string
	Priority    model.MaintenancePriority
	Description string

	ReportedDate  time.Time
	ScheduledDate *time.Time
	AssignedTo    string

	EstimatedCost decimal.Decimal
	Notes         string
}

// UpdateParams holds the mutable fields of an existing request. Zero values
// are applied as given; callers pass the full desired state.
type UpdateParams struct {
	Status        model.MaintenanceStatus
	Priority      model.MaintenancePriority
	ScheduledDate *time.Time
	CompletedDate *time.Time
	AssignedTo    string
	ActualCost    decimal.Decimal
	Notes         string
}

// All returns every maintenance request.
func (m *Maintenance) All() ([]model.MaintenanceRequest, error) {
	var requests []model.MaintenanceRequest
	if _, err := m.store.Get(storage.KeyMaintenance, &requests); err != nil {
		return nil, fmt.Errorf("loading maintenance requests: %w", err)
	}
	return requests, nil
}

// Get returns a maintenance request by ID.
func (m *Maintenance) Get(requestID string) (model.MaintenanceRequest, error) {
	requests, err := m.All()
	if err != nil {
		return model.MaintenanceRequest{}, err
	}
	for _, req := range requests {
		if req.ID == requestID {
			return req, nil
		}
	}
	return model.MaintenanceRequest{}, fmt.Errorf("maintenance request %s: %w", requestID, apperrors.ErrNotFound)
}

// ByProperty returns the requests of one property.
func (m *Maintenance) ByProperty(propertyID string) ([]model.MaintenanceRequest, error) {
	requests, err := m.All()
	if err != nil {
		return nil, err
	}
	var matched []model.MaintenanceRequest
	for _, req := range requests {
		if req.PropertyID == propertyID {
			matched = append(matched, req)
		}
	}
	return matched, nil
}

// Open returns the requests that are pending or in progress.
func (m *Maintenance) Open() ([]model.MaintenanceRequest, error) {
	requests, err := m.All()
	if err != nil {
		return nil, err
	}
	var open []model.MaintenanceRequest
	for _, req := range requests {
		if req.Status == model.MaintenancePending || req.Status == model.MaintenanceInProgress {
			open = append(open, req)
		}
	}
	return open, nil
}

// Create files a new request in pending state.
func (m *Maintenance) Create(params RequestParams) (model.MaintenanceRequest, error) {
	if params.PropertyID == "" || params.Description == "" {
		return model.MaintenanceRequest{}, fmt.Errorf("maintenance property and description are required: %w", apperrors.ErrValidation)
	}
	if params.Priority == "" {
		params.Priority = model.PriorityMedium
	}
	if params.ReportedDate.IsZero() {
		params.ReportedDate = m.now()
	}

	now := m.now()
	request := model.MaintenanceRequest{
		ID:            id.New(id.PrefixMaintenance),
		PropertyID:    params.PropertyID,
		UnitNumber:    params.UnitNumber,
		TenantID:      params.TenantID,
		Category:      params.Category,
		Priority:      params.Priority,
		Status:        model.MaintenancePending,
		Description:   params.Description,
		ReportedDate:  params.ReportedDate,
		ScheduledDate: params.ScheduledDate,
		AssignedTo:    params.AssignedTo,
		EstimatedCost: params.EstimatedCost,
		ActualCost:    decimal.Zero,
		Notes:         params.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	requests, err := m.All()
	if err != nil {
		return model.MaintenanceRequest{}, err
	}
	requests = append(requests, request)
	if err := m.saveAll(requests); err != nil {
		return model.MaintenanceRequest{}, err
	}
	return request, nil
}

// Update moves a request through its lifecycle. Transitioning to completed
// stamps the completion date, derives the response time, folds the job into
// the assigned vendor's statistics, and posts the actual cost to the ledger
// if one is given and not yet posted.
func (m *Maintenance) Update(requestID string, params UpdateParams) (model.MaintenanceRequest, error) {
	switch params.Status {
	case model.MaintenancePending, model.MaintenanceInProgress, model.MaintenanceCompleted, model.MaintenanceCancelled:
	default:
		return model.MaintenanceRequest{}, fmt.Errorf("unknown maintenance status %q: %w", params.Status, apperrors.ErrValidation)
	}
	if params.ActualCost.IsNegative() {
		return model.MaintenanceRequest{}, fmt.Errorf("actual cost must not be negative: %w", apperrors.ErrValidation)
	}

	requests, err := m.All()
	if err != nil {
		return model.MaintenanceRequest{}, err
	}
	index := -1
	for i := range requests {
		if requests[i].ID == requestID {
			index = i
			break
		}
	}
	if index == -1 {
		return model.MaintenanceRequest{}, fmt.Errorf("maintenance request %s: %w", requestID, apperrors.ErrNotFound)
	}

	req := &requests[index]
	wasCompleted := req.Status == model.MaintenanceCompleted

	req.Priority = params.Priority
	req.ScheduledDate = params.ScheduledDate
	req.AssignedTo = params.AssignedTo
	req.ActualCost = params.ActualCost
	req.Notes = params.Notes
	req.Status = params.Status
	req.UpdatedAt = m.now()

	if params.Status == model.MaintenanceCompleted {
		completedAt := m.now()
		if params.CompletedDate != nil {
			completedAt = *params.CompletedDate
		}
		if req.CompletedDate == nil {
			req.CompletedDate = &completedAt
			req.ResponseTime = metrics.ResponseTimeHours(req.ReportedDate, completedAt)
		}
		if !wasCompleted && req.AssignedTo != "" && m.vendors != nil {
			if err := m.vendors.recordCompletedJob(req.AssignedTo, req.ResponseTime); err != nil {
				return model.MaintenanceRequest{}, fmt.Errorf("updating vendor statistics: %w", err)
			}
		}
		if req.ActualCost.IsPositive() && req.GLEntryRef == "" {
			reference, err := m.postCost(*req)
			if err != nil {
				return model.MaintenanceRequest{}, err
			}
			req.GLEntryRef = reference
		}
	} else {
		req.CompletedDate = nil
		req.ResponseTime = 0
	}

	if err := m.saveAll(requests); err != nil {
		return model.MaintenanceRequest{}, err
	}
	return *req, nil
}

// Delete removes a request. Requests with a posted cost cannot be deleted;
// reverse the transaction first.
func (m *Maintenance) Delete(requestID string) error {
	requests, err := m.All()
	if err != nil {
		return err
	}
	for i := range requests {
		if requests[i].ID != requestID {
			continue
		}
		if requests[i].GLEntryRef != "" {
			return fmt.Errorf("maintenance request %s has a posted cost: %w", requestID, apperrors.ErrValidation)
		}
		requests = append(requests[:i], requests[i+1:]...)
		return m.saveAll(requests)
	}
	return fmt.Errorf("maintenance request %s: %w", requestID, apperrors.ErrNotFound)
}

// postCost records the completed repair as maintenance expense against cash.
func (m *Maintenance) postCost(req model.MaintenanceRequest) (string, error) {
	expense, err := m.registry.GetByCode(m.accounts.MaintenanceExpense)
	if err != nil {
		return "", err
	}
	cash, err := m.registry.GetByCode(m.accounts.Cash)
	if err != nil {
		return "", err
	}

	date := m.now()
	if req.CompletedDate != nil {
		date = *req.CompletedDate
	}
	reference, err := m.recorder.Record(ledger.TransactionParams{
		Date:              date,
		Description:       fmt.Sprintf("Maintenance: %s", req.Description),
		DebitAccountID:    expense.ID,
		CreditAccountID:   cash.ID,
		Amount:            req.ActualCost,
		SourceType:        model.SourceMaintenance,
		SourceID:          req.ID,
		PropertyID:        req.PropertyID,
		RelatedEntityType: model.RelatedMaintenance,
		RelatedEntityID:   req.ID,
	})
	if err != nil {
		return "", fmt.Errorf("posting maintenance cost: %w", err)
	}
	return reference, nil
}

func (m *Maintenance) saveAll(requests []model.MaintenanceRequest) error {
	if err := m.store.Set(storage.KeyMaintenance, requests); err != nil {
		return fmt.Errorf("saving maintenance requests: %w", err)
	}
	return nil
}
