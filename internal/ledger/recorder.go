package ledger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/apperrors"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/id"
	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/model"
)

// Recorder is the only sanctioned way to introduce ledger entries for a
// business event. Every transaction produces a balanced set of entries and
// triggers balance recomputation for the affected accounts.
type Recorder struct {
	entries  *EntryStore
	registry *Registry
	logger   *slog.Logger

	now func() time.Time
}

// NewRecorder creates a Recorder. A nil logger disables logging.
func NewRecorder(entries *EntryStore, registry *Registry, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Recorder{entries: entries, registry: registry, logger: logger, now: time.Now}
}

// TransactionParams describes one business event to be expanded into a
// debit/credit entry pair.
type TransactionParams struct {
	Date            time.Time
	Description     string
	DebitAccountID  string
	CreditAccountID string
	Amount          decimal.Decimal

	SourceType model.EntrySource
	SourceID   string
	Reference  string // generated when empty

	PropertyID        string
	RelatedEntityType model.RelatedEntity
	RelatedEntityID   string
	CreatedBy         string
}

// Record creates exactly two ledger entries: a debit of Amount against the
// debit account and a matching credit against the credit account, sharing
// date, description, and linkage fields. Both account balances are recomputed
// after the append. Returns the transaction reference.
func (r *Recorder) Record(params TransactionParams) (string, error) {
	if !params.Amount.IsPositive() {
		return "", fmt.Errorf("transaction amount must be > 0, got %s: %w", params.Amount, apperrors.ErrValidation)
	}
	if params.DebitAccountID == params.CreditAccountID {
		return "", fmt.Errorf("debit and credit account must differ: %w", apperrors.ErrValidation)
	}
	if params.SourceType == "" {
		params.SourceType = model.SourceManual
	}

	reference := params.Reference
	if reference == "" {
		reference = id.New(id.PrefixTxn)
	}

	now := r.now()
	debitEntry := model.GeneralLedgerEntry{
		ID:                id.New(id.PrefixLedger),
		Date:              params.Date,
		AccountID:         params.DebitAccountID,
		Debit:             params.Amount,
		Credit:            decimal.Zero,
		Description:       params.Description,
		Reference:         reference,
		SourceType:        params.SourceType,
		SourceID:          params.SourceID,
		PropertyID:        params.PropertyID,
		RelatedEntityType: params.RelatedEntityType,
		RelatedEntityID:   params.RelatedEntityID,
		CreatedBy:         params.CreatedBy,
		CreatedAt:         now,
	}
	creditEntry := debitEntry
	creditEntry.ID = id.New(id.PrefixLedger)
	creditEntry.AccountID = params.CreditAccountID
	creditEntry.Debit = decimal.Zero
	creditEntry.Credit = params.Amount

	if err := r.append(debitEntry, creditEntry); err != nil {
		return "", err
	}

	r.logger.Info("transaction recorded",
		"reference", reference,
		"source", string(params.SourceType),
		"amount", params.Amount.StringFixed(2),
		"debit_account", params.DebitAccountID,
		"credit_account", params.CreditAccountID)

	return reference, nil
}

// Reverse nullifies a previously recorded transaction. It creates a balanced
// offsetting set of entries dated at reversal time (not the original date)
// and links originals and offsets via ReversalEntryID in both directions.
// Both sides are flagged IsReversed: reversed entries are excluded from
// balance recomputation and aggregation, so flagging only the originals while
// leaving live offsets would subtract the transaction twice. The full pair
// stays in the store for the audit trail. Returns the reference of the
// offsetting transaction.
func (r *Recorder) Reverse(reference, reason string) (string, error) {
	originals, err := r.entries.ByReference(reference)
	if err != nil {
		return "", err
	}
	if len(originals) == 0 {
		return "", fmt.Errorf("transaction %s has no active entries: %w", reference, apperrors.ErrNotFound)
	}

	reversalRef := id.New(id.PrefixTxn)
	now := r.now()

	description := "Reversal: " + originals[0].Description
	if reason != "" {
		description += " (" + reason + ")"
	}

	all, err := r.entries.All()
	if err != nil {
		return "", err
	}

	originalIDs := make(map[string]bool, len(originals))
	var offsets []model.GeneralLedgerEntry
	offsetFor := make(map[string]string, len(originals))
	for _, orig := range originals {
		originalIDs[orig.ID] = true
		offset := model.GeneralLedgerEntry{
			ID:                id.New(id.PrefixLedger),
			Date:              now,
			AccountID:         orig.AccountID,
			Debit:             orig.Credit,
			Credit:            orig.Debit,
			Description:       description,
			Reference:         reversalRef,
			SourceType:        model.SourceAdjustment,
			SourceID:          orig.ID,
			PropertyID:        orig.PropertyID,
			RelatedEntityType: orig.RelatedEntityType,
			RelatedEntityID:   orig.RelatedEntityID,
			CreatedBy:         orig.CreatedBy,
			CreatedAt:         now,
			IsReversed:        true,
			ReversalEntryID:   orig.ID,
		}
		offsets = append(offsets, offset)
		offsetFor[orig.ID] = offset.ID
	}

	if verrs := ValidateEntries(offsets, r.registry); len(verrs) > 0 {
		return "", fmt.Errorf("reversal validation failed: %s", joinValidationErrors(verrs))
	}

	// Flag originals and append offsets in a single write.
	for i := range all {
		if originalIDs[all[i].ID] {
			all[i].IsReversed = true
			all[i].ReversalEntryID = offsetFor[all[i].ID]
		}
	}
	all = append(all, offsets...)
	if err := r.entries.save(all); err != nil {
		return "", err
	}

	if err := r.recomputeAffected(offsets); err != nil {
		return "", err
	}

	r.logger.Info("transaction reversed",
		"reference", reference,
		"reversal_reference", reversalRef,
		"entries", len(offsets))

	return reversalRef, nil
}

// append validates new entries together and persists them, then recomputes
// balances for every affected account.
func (r *Recorder) append(newEntries ...model.GeneralLedgerEntry) error {
	if verrs := ValidateEntries(newEntries, r.registry); len(verrs) > 0 {
		return fmt.Errorf("validation failed: %s", joinValidationErrors(verrs))
	}

	all, err := r.entries.All()
	if err != nil {
		return err
	}
	all = append(all, newEntries...)
	if err := r.entries.save(all); err != nil {
		return err
	}

	return r.recomputeAffected(newEntries)
}

func (r *Recorder) recomputeAffected(entries []model.GeneralLedgerEntry) error {
	seen := make(map[string]bool)
	for _, e := range entries {
		if seen[e.AccountID] {
			continue
		}
		seen[e.AccountID] = true
		if _, err := r.registry.RecomputeBalance(e.AccountID); err != nil {
			return fmt.Errorf("recomputing balance for %s: %w", e.AccountID, err)
		}
	}
	return nil
}

func joinValidationErrors(verrs []ValidationError) string {
	msgs := make([]string, len(verrs))
	for i, ve := range verrs {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "; ")
}
