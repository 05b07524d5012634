package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryStore_EmptyLedger(t *testing.T) {
	f := newFixture(t)

	all, err := f.entries.All()
	require.NoError(t, err)
	assert.Empty(t, all)

	byAcct, err := f.entries.ByAccount("acc_1000")
	require.NoError(t, err)
	assert.Empty(t, byAcct)
}

func TestEntryStore_ByAccount_InsertionOrder(t *testing.T) {
	f := newFixture(t)
	// Deliberately out of date order.
	f.recordRent(t, "100.00", 20)
	f.recordRent(t, "200.00", 5)

	entries, err := f.entries.ByAccount("acc_1000")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Debit.Equal(dec("100.00")))
	assert.True(t, entries[1].Debit.Equal(dec("200.00")))
}

func TestEntryStore_ByMonth(t *testing.T) {
	f := newFixture(t)
	f.recordRent(t, "100.00", 5) // 2026-02

	_, err := f.recorder.Record(TransactionParams{
		Date:            date(2026, 3, 1),
		Description:     "March rent",
		DebitAccountID:  "acc_1000",
		CreditAccountID: "acc_4000",
		Amount:          dec("300.00"),
	})
	require.NoError(t, err)

	feb, err := f.entries.ByMonth("2026-02")
	require.NoError(t, err)
	assert.Len(t, feb, 2)

	mar, err := f.entries.ByMonth("2026-03")
	require.NoError(t, err)
	assert.Len(t, mar, 2)

	year, err := f.entries.ByMonth("2026")
	require.NoError(t, err)
	assert.Len(t, year, 4)

	none, err := f.entries.ByMonth("2025-12")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEntryStore_ByDateRange(t *testing.T) {
	f := newFixture(t)
	f.recordRent(t, "100.00", 5)
	f.recordRent(t, "200.00", 15)
	f.recordRent(t, "300.00", 25)

	entries, err := f.entries.ByDateRange(date(2026, 2, 5), date(2026, 2, 15))
	require.NoError(t, err)
	assert.Len(t, entries, 4, "range is inclusive on both ends")
}

func TestEntryStore_ByProperty(t *testing.T) {
	f := newFixture(t)

	_, err := f.recorder.Record(TransactionParams{
		Date:            date(2026, 2, 5),
		Description:     "Rent",
		DebitAccountID:  "acc_1000",
		CreditAccountID: "acc_4000",
		Amount:          dec("100.00"),
		PropertyID:      "prop_a",
	})
	require.NoError(t, err)
	f.recordRent(t, "50.00", 6) // no property

	entries, err := f.entries.ByProperty("prop_a")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestEntryStore_ReversedExcludedFromReads(t *testing.T) {
	f := newFixture(t)
	ref := f.recordRent(t, "100.00", 5)
	_, err := f.recorder.Reverse(ref, "")
	require.NoError(t, err)

	byAcct, err := f.entries.ByAccount("acc_1000")
	require.NoError(t, err)
	assert.Empty(t, byAcct)

	byMonth, err := f.entries.ByMonth("2026-02")
	require.NoError(t, err)
	assert.Empty(t, byMonth)

	// Audit view keeps everything.
	all, err := f.entries.All()
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
