package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/apperrors"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/model"
)

func TestRecord_CreatesBalancedPair(t *testing.T) {
	f := newFixture(t)

	ref, err := f.recorder.Record(TransactionParams{
		Date:            date(2026, 2, 5),
		Description:     "Rent payment - Unit 3A",
		DebitAccountID:  "acc_1000",
		CreditAccountID: "acc_4000",
		Amount:          dec("2500000.00"),
		SourceType:      model.SourcePayment,
		PropertyID:      "prop_x",
	})
	require.NoError(t, err)
	require.NotEmpty(t, ref)

	entries, err := f.entries.ByReference(ref)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	debit, credit := entries[0], entries[1]
	assert.Equal(t, "acc_1000", debit.AccountID)
	assert.True(t, debit.Debit.Equal(dec("2500000.00")))
	assert.True(t, debit.Credit.IsZero())
	assert.Equal(t, "acc_4000", credit.AccountID)
	assert.True(t, credit.Credit.Equal(dec("2500000.00")))
	assert.True(t, credit.Debit.IsZero())

	// Shared metadata.
	assert.Equal(t, debit.Description, credit.Description)
	assert.Equal(t, debit.Date, credit.Date)
	assert.Equal(t, "prop_x", credit.PropertyID)
	assert.Equal(t, model.SourcePayment, credit.SourceType)
}

func TestRecord_DoubleEntryInvariant(t *testing.T) {
	f := newFixture(t)
	f.recordRent(t, "100.00", 1)
	f.recordRent(t, "250.50", 2)
	f.recordRent(t, "99.99", 3)

	active, err := f.entries.Active()
	require.NoError(t, err)

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, e := range active {
		totalDebit = totalDebit.Add(e.Debit)
		totalCredit = totalCredit.Add(e.Credit)
	}
	assert.True(t, totalDebit.Equal(totalCredit),
		"debits %s != credits %s", totalDebit, totalCredit)
}

func TestRecord_RejectsNonPositiveAmount(t *testing.T) {
	f := newFixture(t)

	for _, amount := range []string{"0", "-10.00"} {
		_, err := f.recorder.Record(TransactionParams{
			Date:            date(2026, 2, 5),
			Description:     "bad",
			DebitAccountID:  "acc_1000",
			CreditAccountID: "acc_4000",
			Amount:          dec(amount),
		})
		require.ErrorIs(t, err, apperrors.ErrValidation, "amount %s", amount)
	}

	// Nothing persisted.
	all, err := f.entries.All()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRecord_RejectsSameAccountBothSides(t *testing.T) {
	f := newFixture(t)

	_, err := f.recorder.Record(TransactionParams{
		Date:            date(2026, 2, 5),
		Description:     "self transfer",
		DebitAccountID:  "acc_1000",
		CreditAccountID: "acc_1000",
		Amount:          dec("50.00"),
	})
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRecord_RejectsUnknownAccount(t *testing.T) {
	f := newFixture(t)

	_, err := f.recorder.Record(TransactionParams{
		Date:            date(2026, 2, 5),
		Description:     "ghost",
		DebitAccountID:  "acc_9999",
		CreditAccountID: "acc_4000",
		Amount:          dec("50.00"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown account")

	all, err := f.entries.All()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRecord_RecomputesBothBalances(t *testing.T) {
	f := newFixture(t)
	f.recordRent(t, "1000.00", 5)

	cash, err := f.registry.Get("acc_1000")
	require.NoError(t, err)
	assert.True(t, cash.CurrentBalance.Equal(dec("1000.00")), "cash balance %s", cash.CurrentBalance)

	income, err := f.registry.Get("acc_4000")
	require.NoError(t, err)
	assert.True(t, income.CurrentBalance.Equal(dec("1000.00")), "income balance %s", income.CurrentBalance)
}

func TestRecord_StorageFailureSurfaces(t *testing.T) {
	f := newFixture(t)
	f.store.Fail = true

	_, err := f.recorder.Record(TransactionParams{
		Date:            date(2026, 2, 5),
		Description:     "rent",
		DebitAccountID:  "acc_1000",
		CreditAccountID: "acc_4000",
		Amount:          dec("10.00"),
	})
	require.ErrorIs(t, err, apperrors.ErrStorageUnavailable)
}

func TestReverse(t *testing.T) {
	f := newFixture(t)
	ref := f.recordRent(t, "500.00", 10)

	reversalRef, err := f.recorder.Reverse(ref, "duplicate capture")
	require.NoError(t, err)
	require.NotEmpty(t, reversalRef)
	assert.NotEqual(t, ref, reversalRef)

	// All four entries stay in the store for audit, flagged and linked.
	all, err := f.entries.All()
	require.NoError(t, err)
	require.Len(t, all, 4)

	var offsets int
	for _, e := range all {
		assert.True(t, e.IsReversed)
		assert.NotEmpty(t, e.ReversalEntryID)
		if e.Reference != reversalRef {
			continue
		}
		offsets++
		assert.Equal(t, model.SourceAdjustment, e.SourceType)
		assert.Contains(t, e.Description, "Reversal:")
		assert.Contains(t, e.Description, "duplicate capture")
	}
	assert.Equal(t, 2, offsets)

	// None of them feed reads anymore.
	active, err := f.entries.Active()
	require.NoError(t, err)
	assert.Empty(t, active)

	// Net effect on balances is zero.
	for _, acctID := range []string{"acc_1000", "acc_4000"} {
		acct, err := f.registry.Get(acctID)
		require.NoError(t, err)
		assert.True(t, acct.CurrentBalance.IsZero(), "%s balance %s", acctID, acct.CurrentBalance)
	}
}

func TestReverse_UnknownReference(t *testing.T) {
	f := newFixture(t)
	_, err := f.recorder.Reverse("txn_missing", "")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestReverse_Twice(t *testing.T) {
	f := newFixture(t)
	ref := f.recordRent(t, "500.00", 10)

	_, err := f.recorder.Reverse(ref, "")
	require.NoError(t, err)

	// The originals are now flagged, so the reference has no active entries.
	_, err = f.recorder.Reverse(ref, "")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}
