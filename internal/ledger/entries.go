// Package ledger implements the double-entry general ledger: the entry store,
// the chart-of-accounts registry with balance recomputation, and the
// transaction recorder that is the only sanctioned writer of ledger entries.
package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/model"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/storage"
)

// EntryStore provides filtered reads over the append-mostly list of general
// ledger entries. Appends happen only through the Recorder; a stray
// single-sided write would break the double-entry invariant, so no append is
// exported here.
type EntryStore struct {
	store storage.Store
}

// NewEntryStore creates an EntryStore over a key-value store.
func NewEntryStore(store storage.Store) *EntryStore {
	return &EntryStore{store: store}
}

// All returns every entry in insertion order, including reversed entries.
// Reversed entries stay in the list for audit purposes.
func (s *EntryStore) All() ([]model.GeneralLedgerEntry, error) {
	var entries []model.GeneralLedgerEntry
	if _, err := s.store.Get(storage.KeyLedgerEntries, &entries); err != nil {
		return nil, fmt.Errorf("loading ledger entries: %w", err)
	}
	return entries, nil
}

// Active returns all non-reversed entries in insertion order.
func (s *EntryStore) Active() ([]model.GeneralLedgerEntry, error) {
	entries, err := s.All()
	if err != nil {
		return nil, err
	}
	var active []model.GeneralLedgerEntry
	for _, e := range entries {
		if !e.IsReversed {
			active = append(active, e)
		}
	}
	return active, nil
}

// ByAccount returns non-reversed entries for an account in insertion order.
// Insertion order is not guaranteed chronological; callers needing
// chronological order must sort by Date.
func (s *EntryStore) ByAccount(accountID string) ([]model.GeneralLedgerEntry, error) {
	return s.filter(func(e model.GeneralLedgerEntry) bool {
		return e.AccountID == accountID
	})
}

// ByMonth returns non-reversed entries whose transaction date falls in the
// given "YYYY-MM" month (or "YYYY" year, by prefix).
func (s *EntryStore) ByMonth(monthPrefix string) ([]model.GeneralLedgerEntry, error) {
	return s.filter(func(e model.GeneralLedgerEntry) bool {
		return strings.HasPrefix(e.Date.Format("2006-01-02"), monthPrefix)
	})
}

// ByDateRange returns non-reversed entries with from <= date <= to.
func (s *EntryStore) ByDateRange(from, to time.Time) ([]model.GeneralLedgerEntry, error) {
	return s.filter(func(e model.GeneralLedgerEntry) bool {
		return !e.Date.Before(from) && !e.Date.After(to)
	})
}

// ByProperty returns non-reversed entries linked to a property.
func (s *EntryStore) ByProperty(propertyID string) ([]model.GeneralLedgerEntry, error) {
	return s.filter(func(e model.GeneralLedgerEntry) bool {
		return e.PropertyID == propertyID
	})
}

// ByReference returns non-reversed entries sharing a transaction reference.
func (s *EntryStore) ByReference(reference string) ([]model.GeneralLedgerEntry, error) {
	return s.filter(func(e model.GeneralLedgerEntry) bool {
		return e.Reference == reference
	})
}

// HasActiveEntries reports whether any non-reversed entry references the
// account.
func (s *EntryStore) HasActiveEntries(accountID string) (bool, error) {
	entries, err := s.ByAccount(accountID)
	if err != nil {
		return false, err
	}
	return len(entries) > 0, nil
}

func (s *EntryStore) filter(keep func(model.GeneralLedgerEntry) bool) ([]model.GeneralLedgerEntry, error) {
	entries, err := s.All()
	if err != nil {
		return nil, err
	}
	var matched []model.GeneralLedgerEntry
	for _, e := range entries {
		if !e.IsReversed && keep(e) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// save persists the full entry list. Recorder-only.
func (s *EntryStore) save(entries []model.GeneralLedgerEntry) error {
	if err := s.store.Set(storage.KeyLedgerEntries, entries); err != nil {
		return fmt.Errorf("saving ledger entries: %w", err)
	}
	return nil
}
