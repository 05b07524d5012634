// Package cashflow derives the monthly cashflow forecast. Projections are
// entered manually; actuals are re-aggregated from the ledger on every read,
// so the forecast is always consistent with the ledger at the cost of a full
// scan. Incremental rollups are deliberately not maintained.
package cashflow

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/apperrors"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/ledger"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/model"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/storage"
)

// Prefixes maps each forecast line to the account-number prefixes whose
// entries feed it. An account number like "5000.01" matches the "5000"
// prefix, so sub-accounts roll up into their parent's line.
type Prefixes struct {
	RentIncome           []string
	OtherIncome          []string
	MaintenanceExpenses  []string
	OperatingExpenses    []string
	PropertyTaxInsurance []string
	ManagementFees       []string
}

// DefaultPrefixes matches the seeded chart of accounts.
func DefaultPrefixes() Prefixes {
	return Prefixes{
		RentIncome:           []string{"4000"},
		OtherIncome:          []string{"4100", "4200"},
		MaintenanceExpenses:  []string{"5000"},
		OperatingExpenses:    []string{"5100", "5500"},
		PropertyTaxInsurance: []string{"5200", "5300"},
		ManagementFees:       []string{"5400"},
	}
}

// Service reads stored projections and derives actuals from the ledger.
type Service struct {
	store    storage.Store
	registry *ledger.Registry
	entries  *ledger.EntryStore
	prefixes Prefixes

	now func() time.Time
}

// NewService creates a cashflow Service.
func NewService(store storage.Store, registry *ledger.Registry, entries *ledger.EntryStore, prefixes Prefixes) *Service {
	return &Service{store: store, registry: registry, entries: entries, prefixes: prefixes, now: time.Now}
}

// ProjectionParams holds the manually entered figures for one month.
type ProjectionParams struct {
	MonthYear string // "YYYY-MM"

	RentIncome           decimal.Decimal
	OtherIncome          decimal.Decimal
	MaintenanceExpenses  decimal.Decimal
	OperatingExpenses    decimal.Decimal
	PropertyTaxInsurance decimal.Decimal
	ManagementFees       decimal.Decimal

	Notes string
}

// SetProjection creates or replaces the projection for a month and derives
// its projected net. Actual figures are never stored.
func (s *Service) SetProjection(params ProjectionParams) (model.CashflowEntry, error) {
	if _, err := time.Parse("2006-01", params.MonthYear); err != nil {
		return model.CashflowEntry{}, fmt.Errorf("month must be YYYY-MM, got %q: %w", params.MonthYear, apperrors.ErrValidation)
	}

	entries, err := s.stored()
	if err != nil {
		return model.CashflowEntry{}, err
	}

	entry := model.CashflowEntry{
		MonthYear:                     params.MonthYear,
		ProjectedRentIncome:           params.RentIncome,
		ProjectedOtherIncome:          params.OtherIncome,
		ProjectedMaintenanceExpenses:  params.MaintenanceExpenses,
		ProjectedOperatingExpenses:    params.OperatingExpenses,
		ProjectedPropertyTaxInsurance: params.PropertyTaxInsurance,
		ProjectedManagementFees:       params.ManagementFees,
		Notes:                         params.Notes,
		LastUpdated:                   s.now(),
	}
	entry.ProjectedNet = params.RentIncome.Add(params.OtherIncome).
		Sub(params.MaintenanceExpenses).
		Sub(params.OperatingExpenses).
		Sub(params.PropertyTaxInsurance).
		Sub(params.ManagementFees)

	replaced := false
	for i := range entries {
		if entries[i].MonthYear == params.MonthYear {
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].MonthYear < entries[j].MonthYear })

	if err := s.store.Set(storage.KeyCashflowEntries, entries); err != nil {
		return model.CashflowEntry{}, fmt.Errorf("saving cashflow projections: %w", err)
	}
	return s.withActuals(entry)
}

// All returns every forecast month with freshly derived actuals, sorted by
// month.
func (s *Service) All() ([]model.CashflowEntry, error) {
	entries, err := s.stored()
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i], err = s.withActuals(entries[i])
		if err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// Get returns one forecast month with freshly derived actuals.
func (s *Service) Get(monthYear string) (model.CashflowEntry, error) {
	entries, err := s.stored()
	if err != nil {
		return model.CashflowEntry{}, err
	}
	for _, e := range entries {
		if e.MonthYear == monthYear {
			return s.withActuals(e)
		}
	}
	return model.CashflowEntry{}, fmt.Errorf("cashflow month %s: %w", monthYear, apperrors.ErrNotFound)
}

// withActuals aggregates the ledger into the six actual lines. Income
// postings are credit-heavy so their raw debit-credit sum is negative; the
// absolute value yields the positive income figure. Expense lines are
// debit-heavy and already positive, wrapped the same way for symmetry.
func (s *Service) withActuals(entry model.CashflowEntry) (model.CashflowEntry, error) {
	monthEntries, err := s.entries.ByMonth(entry.MonthYear)
	if err != nil {
		return model.CashflowEntry{}, err
	}

	codeByAccount, err := s.accountCodes()
	if err != nil {
		return model.CashflowEntry{}, err
	}

	sum := func(prefixes []string) (decimal.Decimal, error) {
		total := decimal.Zero
		for _, e := range monthEntries {
			code, ok := codeByAccount[e.AccountID]
			if !ok {
				return decimal.Zero, fmt.Errorf("ledger entry %s references account %s: %w", e.ID, e.AccountID, apperrors.ErrUnknownAccount)
			}
			if !matchesAny(code, prefixes) {
				continue
			}
			total = total.Add(e.Debit.Sub(e.Credit))
		}
		return total.Abs(), nil
	}

	lines := []struct {
		prefixes []string
		dst      *decimal.Decimal
	}{
		{s.prefixes.RentIncome, &entry.ActualRentIncome},
		{s.prefixes.OtherIncome, &entry.ActualOtherIncome},
		{s.prefixes.MaintenanceExpenses, &entry.ActualMaintenanceExpenses},
		{s.prefixes.OperatingExpenses, &entry.ActualOperatingExpenses},
		{s.prefixes.PropertyTaxInsurance, &entry.ActualPropertyTaxInsurance},
		{s.prefixes.ManagementFees, &entry.ActualManagementFees},
	}
	for _, line := range lines {
		total, err := sum(line.prefixes)
		if err != nil {
			return model.CashflowEntry{}, err
		}
		*line.dst = total
	}

	entry.ActualNet = entry.ActualRentIncome.Add(entry.ActualOtherIncome).
		Sub(entry.ActualMaintenanceExpenses).
		Sub(entry.ActualOperatingExpenses).
		Sub(entry.ActualPropertyTaxInsurance).
		Sub(entry.ActualManagementFees)
	entry.Variance = entry.ActualNet.Sub(entry.ProjectedNet)
	return entry, nil
}

func (s *Service) stored() ([]model.CashflowEntry, error) {
	var entries []model.CashflowEntry
	if _, err := s.store.Get(storage.KeyCashflowEntries, &entries); err != nil {
		return nil, fmt.Errorf("loading cashflow projections: %w", err)
	}
	return entries, nil
}

func (s *Service) accountCodes() (map[string]string, error) {
	accounts, err := s.registry.All()
	if err != nil {
		return nil, err
	}
	codes := make(map[string]string, len(accounts))
	for _, a := range accounts {
		codes[a.ID] = a.Code
	}
	return codes, nil
}

func matchesAny(code string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(code, p) {
			return true
		}
	}
	return false
}
