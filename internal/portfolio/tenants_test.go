package portfolio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/apperrors"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/ledger"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/model"
)

func createTenant(t *testing.T, f *fixture, rent string) model.Tenant {
	t.Helper()
	tenant, err := f.tenants.Create(TenantParams{
		PropertyID:     "prop_test",
		UnitNumber:     "A1",
		Name:           "Moses Okello",
		LeaseStartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		LeaseEndDate:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		MonthlyRent:    dec(rent),
	})
	require.NoError(t, err)
	return tenant
}

func TestCreateTenant(t *testing.T) {
	f := newFixture(t)

	tenant := createTenant(t, f, "1200000")
	assert.True(t, tenant.OutstandingBalance.Equal(dec("1200000")), "first month due on move-in")
	assert.Equal(t, model.PaymentDue, tenant.PaymentStatus)
	assert.Nil(t, tenant.LastPaymentDate)

	_, err := f.tenants.Create(TenantParams{Name: "No Property"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = f.tenants.Create(TenantParams{Name: "Bad Rent", PropertyID: "prop_test", MonthlyRent: dec("-5")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRecordPayment(t *testing.T) {
	f := newFixture(t)
	tenant := createTenant(t, f, "1200000")

	payment, err := f.tenants.RecordPayment(PaymentParams{
		TenantID:    tenant.ID,
		Amount:      dec("1200000"),
		PaymentDate: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
		Method:      model.MethodMobileMoney,
		RecordedBy:  "grace",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, payment.GLEntryRef, "payment carries its ledger reference")
	assert.Equal(t, "2026-02", payment.ForMonth)

	// The payment posted a balanced cash-against-income transaction.
	entries, err := f.entries.ByReference(payment.GLEntryRef)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, f.balanceOf(t, ledger.CodeCashAtBank).Equal(dec("1200000")))
	assert.True(t, f.balanceOf(t, ledger.CodeRentalIncome).Equal(dec("1200000")))

	// Tenant state moved in the same call.
	updated, err := f.tenants.Get(tenant.ID)
	require.NoError(t, err)
	assert.True(t, updated.OutstandingBalance.IsZero())
	assert.Equal(t, model.PaymentPaid, updated.PaymentStatus)
	require.NotNil(t, updated.LastPaymentDate)
	assert.True(t, updated.LastPaymentAmount.Equal(dec("1200000")))

	payments, err := f.tenants.Payments(tenant.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, payment.ID, payments[0].ID)
}

func TestRecordPayment_PartialLeavesBalanceDue(t *testing.T) {
	f := newFixture(t)
	tenant := createTenant(t, f, "1000000")

	_, err := f.tenants.RecordPayment(PaymentParams{
		TenantID:    tenant.ID,
		Amount:      dec("400000"),
		PaymentDate: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	updated, err := f.tenants.Get(tenant.ID)
	require.NoError(t, err)
	assert.True(t, updated.OutstandingBalance.Equal(dec("600000")), "got %s", updated.OutstandingBalance)
}

func TestRecordPayment_OverpaymentFloorsAtZero(t *testing.T) {
	f := newFixture(t)
	tenant := createTenant(t, f, "1000000")

	_, err := f.tenants.RecordPayment(PaymentParams{TenantID: tenant.ID, Amount: dec("1500000")})
	require.NoError(t, err)

	updated, err := f.tenants.Get(tenant.ID)
	require.NoError(t, err)
	assert.True(t, updated.OutstandingBalance.IsZero())
}

func TestRecordPayment_Validation(t *testing.T) {
	f := newFixture(t)
	tenant := createTenant(t, f, "1000000")

	_, err := f.tenants.RecordPayment(PaymentParams{TenantID: tenant.ID, Amount: dec("0")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = f.tenants.RecordPayment(PaymentParams{TenantID: "tenant_missing", Amount: dec("100")})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRecordPayment_StorageFailureLeavesTenantUntouched(t *testing.T) {
	f := newFixture(t)
	tenant := createTenant(t, f, "1000000")

	f.store.Fail = true
	_, err := f.tenants.RecordPayment(PaymentParams{TenantID: tenant.ID, Amount: dec("100")})
	require.Error(t, err)
	f.store.Fail = false

	unchanged, err := f.tenants.Get(tenant.ID)
	require.NoError(t, err)
	assert.True(t, unchanged.OutstandingBalance.Equal(dec("1000000")))
	assert.Nil(t, unchanged.LastPaymentDate)
}

func TestChargeMonthlyRent(t *testing.T) {
	f := newFixture(t)
	first := createTenant(t, f, "1000000")
	second := createTenant(t, f, "800000")

	charged, err := f.tenants.ChargeMonthlyRent()
	require.NoError(t, err)
	assert.Equal(t, 2, charged)

	tenant, err := f.tenants.Get(first.ID)
	require.NoError(t, err)
	assert.True(t, tenant.OutstandingBalance.Equal(dec("2000000")))

	tenant, err = f.tenants.Get(second.ID)
	require.NoError(t, err)
	assert.True(t, tenant.OutstandingBalance.Equal(dec("1600000")))
}

func TestTenantsByProperty(t *testing.T) {
	f := newFixture(t)
	createTenant(t, f, "1000000")

	other, err := f.tenants.Create(TenantParams{Name: "Jane Akello", PropertyID: "prop_other"})
	require.NoError(t, err)

	matched, err := f.tenants.ByProperty("prop_other")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, other.ID, matched[0].ID)
}

func TestDeleteTenant_KeepsPayments(t *testing.T) {
	f := newFixture(t)
	tenant := createTenant(t, f, "1000000")

	_, err := f.tenants.RecordPayment(PaymentParams{TenantID: tenant.ID, Amount: dec("1000000")})
	require.NoError(t, err)

	require.NoError(t, f.tenants.Delete(tenant.ID))

	payments, err := f.tenants.Payments(tenant.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 1, "payment history survives the tenant record")
}
