package portfolio

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/ledger"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/storage"
)

type fixture struct {
	store    *storage.MemStore
	entries  *ledger.EntryStore
	registry *ledger.Registry
	recorder *ledger.Recorder

	properties  *Properties
	tenants     *Tenants
	maintenance *Maintenance
	vendors     *Vendors
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := storage.NewMemStore()
	entries := ledger.NewEntryStore(store)
	registry := ledger.NewRegistry(store, entries)
	seeded, err := registry.Seed(ledger.DefaultChart(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	require.True(t, seeded)

	recorder := ledger.NewRecorder(entries, registry, nil)
	accounts := DesignatedAccounts{
		Cash:               ledger.CodeCashAtBank,
		RentalIncome:       ledger.CodeRentalIncome,
		MaintenanceExpense: ledger.CodeMaintenance,
	}
	vendors := NewVendors(store)

	return &fixture{
		store:       store,
		entries:     entries,
		registry:    registry,
		recorder:    recorder,
		properties:  NewProperties(store),
		tenants:     NewTenants(store, recorder, registry, accounts),
		maintenance: NewMaintenance(store, recorder, registry, vendors, accounts),
		vendors:     vendors,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (f *fixture) balanceOf(t *testing.T, code string) decimal.Decimal {
	t.Helper()
	account, err := f.registry.GetByCode(code)
	require.NoError(t, err)
	return account.CurrentBalance
}
