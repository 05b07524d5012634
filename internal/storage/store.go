// Package storage provides durable key-value persistence of JSON-serializable
// values. One logical key maps to one JSON document.
package storage

// Store is the persistence contract used by every service. A miss is reported
// as found=false with a nil error; a broken medium surfaces an error wrapping
// apperrors.ErrStorageUnavailable so callers can tell "no data yet" from
// "storage broken".
type Store interface {
	// Get unmarshals the value stored under key into out.
	Get(key string, out any) (found bool, err error)
	// Set marshals value and stores it under key, replacing any prior value.
	// Atomic per individual key.
	Set(key string, value any) error
	// Remove deletes the value under key. Removing a missing key is a no-op.
	Remove(key string) error
	// Keys lists every stored key.
	Keys() ([]string, error)
}

// Logical storage keys, one JSON blob per key.
const (
	KeyOPSP            = "opsp"
	KeyRocks           = "rocks"
	KeyKPIs            = "kpis"
	KeyCriticalNumbers = "critical-numbers"
	KeyHuddles         = "huddles"
	KeyProperties      = "properties"
	KeyTenants         = "tenants"
	KeyPayments        = "payments"
	KeyMaintenance     = "maintenance-requests"
	KeyVendors         = "vendors"
	KeyAccounts        = "accounts"
	KeyLedgerEntries   = "ledger-entries"
	KeyCashflowEntries = "cashflow-entries"
	KeyInitialized     = "initialized"
)
