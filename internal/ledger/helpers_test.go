package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/storage"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// fixture wires a seeded ledger over an in-memory store.
type fixture struct {
	store    *storage.MemStore
	entries  *EntryStore
	registry *Registry
	recorder *Recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := storage.NewMemStore()
	entries := NewEntryStore(store)
	registry := NewRegistry(store, entries)

	seeded, err := registry.Seed(DefaultChart(date(2026, 1, 1)))
	require.NoError(t, err)
	require.True(t, seeded)

	return &fixture{
		store:    store,
		entries:  entries,
		registry: registry,
		recorder: NewRecorder(entries, registry, nil),
	}
}

// recordRent posts a simple cash-debit / rental-income-credit transaction.
func (f *fixture) recordRent(t *testing.T, amount string, day int) string {
	t.Helper()
	ref, err := f.recorder.Record(TransactionParams{
		Date:            date(2026, 2, day),
		Description:     "Rent payment",
		DebitAccountID:  "acc_1000",
		CreditAccountID: "acc_4000",
		Amount:          dec(amount),
	})
	require.NoError(t, err)
	return ref
}
