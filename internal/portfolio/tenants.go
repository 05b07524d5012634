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

// DesignatedAccounts names the chart codes the portfolio managers post
// against. Populated from vgk.yaml.
type DesignatedAccounts struct {
	Cash               string
	RentalIncome       string
	MaintenanceExpense string
}

// Tenants manages tenant records and their rent payments. Recording a payment
// is the one place tenant state and the ledger move together: the payment
// record, the tenant's balance, and the rent transaction are produced by a
// single call.
type Tenants struct {
	store    storage.Store
	recorder *ledger.Recorder
	registry *ledger.Registry
	accounts DesignatedAccounts

	now func() time.Time
}

// NewTenants creates a Tenants manager.
func NewTenants(store storage.Store, recorder *ledger.Recorder, registry *ledger.Registry, accounts DesignatedAccounts) *Tenants {
	return &Tenants{store: store, recorder: recorder, registry: registry, accounts: accounts, now: time.Now}
}

// TenantParams holds the caller-supplied fields of a tenant.
type TenantParams struct {
	PropertyID string
	UnitNumber string
	Name       string
	Email      string
	Phone      string

	LeaseStartDate time.Time
	LeaseEndDate   time.Time
	MonthlyRent    decimal.Decimal
	Deposit        decimal.Decimal

	Notes string
}

// PaymentParams holds the caller-supplied fields of a rent payment.
type PaymentParams struct {
	TenantID    string
	Amount      decimal.Decimal
	PaymentDate time.Time
	Method      model.PaymentMethod
	ForMonth    string // "YYYY-MM", defaults to the payment date's month
	Notes       string
	RecordedBy  string
}

// All returns every tenant with payment status derived at read time.
func (t *Tenants) All() ([]model.Tenant, error) {
	var tenants []model.Tenant
	if _, err := t.store.Get(storage.KeyTenants, &tenants); err != nil {
		return nil, fmt.Errorf("loading tenants: %w", err)
	}
	now := t.now()
	for i := range tenants {
		tenants[i].PaymentStatus = metrics.PaymentStatusOf(tenants[i].LastPaymentDate, tenants[i].OutstandingBalance, now)
	}
	return tenants, nil
}

// Get returns a tenant by ID.
func (t *Tenants) Get(tenantID string) (model.Tenant, error) {
	tenants, err := t.All()
	if err != nil {
		return model.Tenant{}, err
	}
	for _, tenant := range tenants {
		if tenant.ID == tenantID {
			return tenant, nil
		}
	}
	return model.Tenant{}, fmt.Errorf("tenant %s: %w", tenantID, apperrors.ErrNotFound)
}

// ByProperty returns the tenants of one property.
func (t *Tenants) ByProperty(propertyID string) ([]model.Tenant, error) {
	tenants, err := t.All()
	if err != nil {
		return nil, err
	}
	var matched []model.Tenant
	for _, tenant := range tenants {
		if tenant.PropertyID == propertyID {
			matched = append(matched, tenant)
		}
	}
	return matched, nil
}

// Create adds a tenant. The opening outstanding balance is one month's rent,
// due from lease start.
func (t *Tenants) Create(params TenantParams) (model.Tenant, error) {
	if params.Name == "" || params.PropertyID == "" {
		return model.Tenant{}, fmt.Errorf("tenant name and property are required: %w", apperrors.ErrValidation)
	}
	if params.MonthlyRent.IsNegative() {
		return model.Tenant{}, fmt.Errorf("monthly rent must not be negative: %w", apperrors.ErrValidation)
	}

	now := t.now()
	tenant := model.Tenant{
		ID:                 id.New(id.PrefixTenant),
		PropertyID:         params.PropertyID,
		UnitNumber:         params.UnitNumber,
		Name:               params.Name,
		Email:              params.Email,
		Phone:              params.Phone,
		LeaseStartDate:     params.LeaseStartDate,
		LeaseEndDate:       params.LeaseEndDate,
		MonthlyRent:        params.MonthlyRent,
		Deposit:            params.Deposit,
		PaymentStatus:      model.PaymentDue,
		LastPaymentAmount:  decimal.Zero,
		OutstandingBalance: params.MonthlyRent,
		Notes:              params.Notes,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	var tenants []model.Tenant
	if _, err := t.store.Get(storage.KeyTenants, &tenants); err != nil {
		return model.Tenant{}, fmt.Errorf("loading tenants: %w", err)
	}
	tenants = append(tenants, tenant)
	if err := t.saveAll(tenants); err != nil {
		return model.Tenant{}, err
	}
	return tenant, nil
}

// Update replaces a tenant's lease and contact fields. Payment state is only
// changed by RecordPayment.
func (t *Tenants) Update(tenantID string, params TenantParams) (model.Tenant, error) {
	if params.Name == "" || params.PropertyID == "" {
		return model.Tenant{}, fmt.Errorf("tenant name and property are required: %w", apperrors.ErrValidation)
	}

	var tenants []model.Tenant
	if _, err := t.store.Get(storage.KeyTenants, &tenants); err != nil {
		return model.Tenant{}, fmt.Errorf("loading tenants: %w", err)
	}
	for i := range tenants {
		if tenants[i].ID != tenantID {
			continue
		}
		tenants[i].PropertyID = params.PropertyID
		tenants[i].UnitNumber = params.UnitNumber
		tenants[i].Name = params.Name
		tenants[i].Email = params.Email
		tenants[i].Phone = params.Phone
		tenants[i].LeaseStartDate = params.LeaseStartDate
		tenants[i].LeaseEndDate = params.LeaseEndDate
		tenants[i].MonthlyRent = params.MonthlyRent
		tenants[i].Deposit = params.Deposit
		tenants[i].Notes = params.Notes
		tenants[i].UpdatedAt = t.now()
		if err := t.saveAll(tenants); err != nil {
			return model.Tenant{}, err
		}
		return tenants[i], nil
	}
	return model.Tenant{}, fmt.Errorf("tenant %s: %w", tenantID, apperrors.ErrNotFound)
}

// Delete removes a tenant. Payment records are kept for the books.
func (t *Tenants) Delete(tenantID string) error {
	var tenants []model.Tenant
	if _, err := t.store.Get(storage.KeyTenants, &tenants); err != nil {
		return fmt.Errorf("loading tenants: %w", err)
	}
	for i := range tenants {
		if tenants[i].ID == tenantID {
			tenants = append(tenants[:i], tenants[i+1:]...)
			return t.saveAll(tenants)
		}
	}
	return fmt.Errorf("tenant %s: %w", tenantID, apperrors.ErrNotFound)
}

// Payments returns a tenant's payment history, or all payments when tenantID
// is empty.
func (t *Tenants) Payments(tenantID string) ([]model.PaymentRecord, error) {
	var payments []model.PaymentRecord
	if _, err := t.store.Get(storage.KeyPayments, &payments); err != nil {
		return nil, fmt.Errorf("loading payments: %w", err)
	}
	if tenantID == "" {
		return payments, nil
	}
	var matched []model.PaymentRecord
	for _, payment := range payments {
		if payment.TenantID == tenantID {
			matched = append(matched, payment)
		}
	}
	return matched, nil
}

// RecordPayment records a received rent payment. It posts a cash-against-
// rental-income transaction, stores the payment record carrying the
// transaction reference, and updates the tenant's payment state.
func (t *Tenants) RecordPayment(params PaymentParams) (model.PaymentRecord, error) {
	if !params.Amount.IsPositive() {
		return model.PaymentRecord{}, fmt.Errorf("payment amount must be > 0, got %s: %w", params.Amount, apperrors.ErrValidation)
	}

	var tenants []model.Tenant
	if _, err := t.store.Get(storage.KeyTenants, &tenants); err != nil {
		return model.PaymentRecord{}, fmt.Errorf("loading tenants: %w", err)
	}
	index := -1
	for i := range tenants {
		if tenants[i].ID == params.TenantID {
			index = i
			break
		}
	}
	if index == -1 {
		return model.PaymentRecord{}, fmt.Errorf("tenant %s: %w", params.TenantID, apperrors.ErrNotFound)
	}
	tenant := tenants[index]

	if params.PaymentDate.IsZero() {
		params.PaymentDate = t.now()
	}
	if params.ForMonth == "" {
		params.ForMonth = params.PaymentDate.Format("2006-01")
	}
	if params.Method == "" {
		params.Method = model.MethodCash
	}

	cash, err := t.registry.GetByCode(t.accounts.Cash)
	if err != nil {
		return model.PaymentRecord{}, err
	}
	income, err := t.registry.GetByCode(t.accounts.RentalIncome)
	if err != nil {
		return model.PaymentRecord{}, err
	}

	payment := model.PaymentRecord{
		ID:          id.New(id.PrefixPayment),
		TenantID:    tenant.ID,
		PropertyID:  tenant.PropertyID,
		Amount:      params.Amount,
		PaymentDate: params.PaymentDate,
		Method:      params.Method,
		ForMonth:    params.ForMonth,
		Notes:       params.Notes,
		RecordedBy:  params.RecordedBy,
		CreatedAt:   t.now(),
	}

	reference, err := t.recorder.Record(ledger.TransactionParams{
		Date:              params.PaymentDate,
		Description:       fmt.Sprintf("Rent payment from %s for %s", tenant.Name, params.ForMonth),
		DebitAccountID:    cash.ID,
		CreditAccountID:   income.ID,
		Amount:            params.Amount,
		SourceType:        model.SourcePayment,
		SourceID:          payment.ID,
		PropertyID:        tenant.PropertyID,
		RelatedEntityType: model.RelatedTenant,
		RelatedEntityID:   tenant.ID,
		CreatedBy:         params.RecordedBy,
	})
	if err != nil {
		return model.PaymentRecord{}, fmt.Errorf("posting rent payment: %w", err)
	}
	payment.GLEntryRef = reference

	var payments []model.PaymentRecord
	if _, err := t.store.Get(storage.KeyPayments, &payments); err != nil {
		return model.PaymentRecord{}, fmt.Errorf("loading payments: %w", err)
	}
	payments = append(payments, payment)
	if err := t.store.Set(storage.KeyPayments, payments); err != nil {
		return model.PaymentRecord{}, fmt.Errorf("saving payments: %w", err)
	}

	balance := tenant.OutstandingBalance.Sub(params.Amount)
	if balance.IsNegative() {
		balance = decimal.Zero
	}
	paidAt := params.PaymentDate
	tenants[index].LastPaymentDate = &paidAt
	tenants[index].LastPaymentAmount = params.Amount
	tenants[index].OutstandingBalance = balance
	tenants[index].PaymentStatus = metrics.PaymentStatusOf(&paidAt, balance, t.now())
	tenants[index].UpdatedAt = t.now()
	if err := t.saveAll(tenants); err != nil {
		return model.PaymentRecord{}, err
	}

	return payment, nil
}

// ChargeMonthlyRent adds one month's rent to every active tenant's
// outstanding balance. Meant to run once per billing period.
func (t *Tenants) ChargeMonthlyRent() (int, error) {
	var tenants []model.Tenant
	if _, err := t.store.Get(storage.KeyTenants, &tenants); err != nil {
		return 0, fmt.Errorf("loading tenants: %w", err)
	}
	now := t.now()
	charged := 0
	for i := range tenants {
		if tenants[i].MonthlyRent.IsZero() {
			continue
		}
		tenants[i].OutstandingBalance = tenants[i].OutstandingBalance.Add(tenants[i].MonthlyRent)
		tenants[i].PaymentStatus = metrics.PaymentStatusOf(tenants[i].LastPaymentDate, tenants[i].OutstandingBalance, now)
		tenants[i].UpdatedAt = now
		charged++
	}
	if charged > 0 {
		if err := t.saveAll(tenants); err != nil {
			return 0, err
		}
	}
	return charged, nil
}

func (t *Tenants) saveAll(tenants []model.Tenant) error {
	if err := t.store.Set(storage.KeyTenants, tenants); err != nil {
		return fmt.Errorf("saving tenants: %w", err)
	}
	return nil
}
