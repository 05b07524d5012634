package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/model"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	EntryID     string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.EntryID, e.Description)
}

// AccountChecker tests whether an account ID exists in the chart of accounts.
type AccountChecker interface {
	Exists(accountID string) bool
}

var hundred = decimal.NewFromInt(100)

// ValidateEntries enforces the ledger invariants on a set of entries before
// they are persisted:
//
//  1. Entries sharing a reference balance: sum(debits) == sum(credits).
//  2. Each entry has exactly one of debit/credit strictly positive.
//  3. Every account reference exists in the chart.
//  4. Amounts are never negative.
//  5. Amounts have at most two decimal places.
func ValidateEntries(entries []model.GeneralLedgerEntry, accounts AccountChecker) []ValidationError {
	var errs []ValidationError

	// Group entries by transaction reference.
	groups := make(map[string][]model.GeneralLedgerEntry)
	var groupOrder []string
	for _, e := range entries {
		if _, seen := groups[e.Reference]; !seen {
			groupOrder = append(groupOrder, e.Reference)
		}
		groups[e.Reference] = append(groups[e.Reference], e)
	}

	// Invariant 1: each transaction balances.
	for _, ref := range groupOrder {
		totalDebit := decimal.Zero
		totalCredit := decimal.Zero
		for _, e := range groups[ref] {
			totalDebit = totalDebit.Add(e.Debit)
			totalCredit = totalCredit.Add(e.Credit)
		}
		if !totalDebit.Equal(totalCredit) {
			errs = append(errs, ValidationError{
				Invariant:   1,
				EntryID:     ref,
				Description: fmt.Sprintf("debits (%s) != credits (%s)", totalDebit.StringFixed(2), totalCredit.StringFixed(2)),
			})
		}
	}

	for _, e := range entries {
		// Invariant 2: debit XOR credit strictly positive.
		hasDebit := e.Debit.IsPositive()
		hasCredit := e.Credit.IsPositive()
		if hasDebit == hasCredit {
			errs = append(errs, ValidationError{
				Invariant:   2,
				EntryID:     e.ID,
				Description: "entry must have exactly one of debit or credit",
			})
		}

		// Invariant 3: valid account reference.
		if !accounts.Exists(e.AccountID) {
			errs = append(errs, ValidationError{
				Invariant:   3,
				EntryID:     e.ID,
				Description: fmt.Sprintf("unknown account %s", e.AccountID),
			})
		}

		// Invariant 4: no negative amounts.
		if e.Debit.IsNegative() || e.Credit.IsNegative() {
			errs = append(errs, ValidationError{
				Invariant:   4,
				EntryID:     e.ID,
				Description: "debit and credit must be >= 0",
			})
		}

		// Invariant 5: at most two decimal places.
		for side, amount := range map[string]decimal.Decimal{"debit": e.Debit, "credit": e.Credit} {
			if !amount.IsZero() && !amount.Mul(hundred).Equal(amount.Mul(hundred).Floor()) {
				errs = append(errs, ValidationError{
					Invariant:   5,
					EntryID:     e.ID,
					Description: fmt.Sprintf("%s %s has more than 2 decimal places", side, amount),
				})
			}
		}
	}

	return errs
}
