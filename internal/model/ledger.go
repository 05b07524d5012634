package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySource identifies the kind of business event behind a ledger entry.
type EntrySource string

const (
	SourcePayment      EntrySource = "payment"
	SourceMaintenance  EntrySource = "maintenance"
	SourceManual       EntrySource = "manual"
	SourceDepreciation EntrySource = "depreciation"
	SourceAdjustment   EntrySource = "adjustment"
)

// RelatedEntity names the domain record a ledger entry is linked to.
type RelatedEntity string

const (
	RelatedTenant      RelatedEntity = "tenant"
	RelatedVendor      RelatedEntity = "vendor"
	RelatedProperty    RelatedEntity = "property"
	RelatedMaintenance RelatedEntity = "maintenance"
)

// GeneralLedgerEntry is one side of a double-entry posting. Exactly one of
// Debit/Credit is nonzero. Entries are never edited after creation; the only
// permitted mutation is flagging IsReversed when a reversal is recorded.
type GeneralLedgerEntry struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"` // transaction date, not record time

	AccountID string          `json:"accountId"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`

	Description string      `json:"description"`
	Reference   string      `json:"reference"` // links the entries of one transaction
	SourceType  EntrySource `json:"sourceType"`
	SourceID    string      `json:"sourceId,omitempty"`

	PropertyID        string        `json:"propertyId,omitempty"`
	RelatedEntityType RelatedEntity `json:"relatedEntityType,omitempty"`
	RelatedEntityID   string        `json:"relatedEntityId,omitempty"`

	CreatedBy string    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`

	IsReversed      bool   `json:"isReversed"`
	ReversalEntryID string `json:"reversalEntryId,omitempty"`
}

// MonthKey returns the entry's transaction month as "YYYY-MM".
func (e GeneralLedgerEntry) MonthKey() string {
	return e.Date.Format("2006-01")
}
