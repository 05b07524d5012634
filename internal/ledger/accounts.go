package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/apperrors"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/id"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/model"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/storage"
)

// Registry manages the chart of accounts and keeps each account's cached
// balance consistent with the entry store. CurrentBalance is recomputed from
// entries in full; it is never adjusted incrementally.
type Registry struct {
	store   storage.Store
	entries *EntryStore

	now func() time.Time
}

// NewRegistry creates a Registry sharing the entry store used by the Recorder.
func NewRegistry(store storage.Store, entries *EntryStore) *Registry {
	return &Registry{store: store, entries: entries, now: time.Now}
}

// All returns the chart of accounts.
func (r *Registry) All() ([]model.Account, error) {
	var accounts []model.Account
	if _, err := r.store.Get(storage.KeyAccounts, &accounts); err != nil {
		return nil, fmt.Errorf("loading chart of accounts: %w", err)
	}
	return accounts, nil
}

// Get returns an account by ID.
func (r *Registry) Get(accountID string) (model.Account, error) {
	accounts, err := r.All()
	if err != nil {
		return model.Account{}, err
	}
	for _, a := range accounts {
		if a.ID == accountID {
			return a, nil
		}
	}
	return model.Account{}, fmt.Errorf("account %s: %w", accountID, apperrors.ErrUnknownAccount)
}

// GetByCode returns an account by its code, e.g. "4000".
func (r *Registry) GetByCode(code string) (model.Account, error) {
	accounts, err := r.All()
	if err != nil {
		return model.Account{}, err
	}
	for _, a := range accounts {
		if a.Code == code {
			return a, nil
		}
	}
	return model.Account{}, fmt.Errorf("account code %s: %w", code, apperrors.ErrUnknownAccount)
}

// Exists reports whether an account ID is in the chart.
func (r *Registry) Exists(accountID string) bool {
	_, err := r.Get(accountID)
	return err == nil
}

// CreateParams holds the caller-supplied fields of a new account.
type CreateParams struct {
	Code        string
	Name        string
	Category    model.AccountCategory
	Type        string
	Description string
	Parent      string
}

// Create adds an account to the chart. The normal balance is fixed by the
// category, never chosen by the caller.
func (r *Registry) Create(params CreateParams) (model.Account, error) {
	if params.Code == "" || params.Name == "" {
		return model.Account{}, fmt.Errorf("account code and name are required: %w", apperrors.ErrValidation)
	}
	switch params.Category {
	case model.CategoryAsset, model.CategoryLiability, model.CategoryEquity, model.CategoryIncome, model.CategoryExpense:
	default:
		return model.Account{}, fmt.Errorf("unknown account category %q: %w", params.Category, apperrors.ErrValidation)
	}

	accounts, err := r.All()
	if err != nil {
		return model.Account{}, err
	}
	for _, a := range accounts {
		if a.Code == params.Code {
			return model.Account{}, fmt.Errorf("account code %s: %w", params.Code, apperrors.ErrDuplicate)
		}
	}

	now := r.now()
	account := model.Account{
		ID:             id.New(id.PrefixAccount),
		Code:           params.Code,
		Name:           params.Name,
		Category:       params.Category,
		Type:           params.Type,
		NormalBalance:  model.NormalBalanceFor(params.Category),
		CurrentBalance: decimal.Zero,
		Description:    params.Description,
		IsActive:       true,
		ParentAccount:  params.Parent,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	accounts = append(accounts, account)
	if err := r.saveAll(accounts); err != nil {
		return model.Account{}, err
	}
	return account, nil
}

// Delete removes an account from the chart. Accounts with non-reversed
// ledger entries cannot be deleted; the entries would be orphaned.
func (r *Registry) Delete(accountID string) error {
	accounts, err := r.All()
	if err != nil {
		return err
	}

	index := -1
	for i, a := range accounts {
		if a.ID == accountID {
			index = i
			break
		}
	}
	if index == -1 {
		return fmt.Errorf("account %s: %w", accountID, apperrors.ErrUnknownAccount)
	}

	inUse, err := r.entries.HasActiveEntries(accountID)
	if err != nil {
		return err
	}
	if inUse {
		return fmt.Errorf("account %s: %w", accountID, apperrors.ErrAccountInUse)
	}

	accounts = append(accounts[:index], accounts[index+1:]...)
	return r.saveAll(accounts)
}

// RecomputeBalance derives an account's balance from its non-reversed entries
// and stores the result. A debit-normal balance is totalDebit - totalCredit;
// a credit-normal balance is totalCredit - totalDebit.
func (r *Registry) RecomputeBalance(accountID string) (decimal.Decimal, error) {
	accounts, err := r.All()
	if err != nil {
		return decimal.Zero, err
	}

	index := -1
	for i, a := range accounts {
		if a.ID == accountID {
			index = i
			break
		}
	}
	if index == -1 {
		return decimal.Zero, fmt.Errorf("account %s: %w", accountID, apperrors.ErrUnknownAccount)
	}

	entries, err := r.entries.ByAccount(accountID)
	if err != nil {
		return decimal.Zero, err
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, e := range entries {
		totalDebit = totalDebit.Add(e.Debit)
		totalCredit = totalCredit.Add(e.Credit)
	}

	balance := totalDebit.Sub(totalCredit)
	if accounts[index].NormalBalance == model.NormalCredit {
		balance = totalCredit.Sub(totalDebit)
	}

	accounts[index].CurrentBalance = balance
	accounts[index].UpdatedAt = r.now()
	if err := r.saveAll(accounts); err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

// Seed writes the given chart if no chart exists yet. Returns true if it
// seeded.
func (r *Registry) Seed(chart []model.Account) (bool, error) {
	var existing []model.Account
	found, err := r.store.Get(storage.KeyAccounts, &existing)
	if err != nil {
		return false, fmt.Errorf("loading chart of accounts: %w", err)
	}
	if found && len(existing) > 0 {
		return false, nil
	}
	if err := r.saveAll(chart); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Registry) saveAll(accounts []model.Account) error {
	if err := r.store.Set(storage.KeyAccounts, accounts); err != nil {
		return fmt.Errorf("saving chart of accounts: %w", err)
	}
	return nil
}
