// Package apperrors defines the sentinel error kinds shared across services.
// Callers classify failures with errors.Is rather than string matching.
package apperrors

import "errors"

// ErrNotFound indicates that a requested record could not be found.
var ErrNotFound = errors.New("record not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates an attempt to create a record that already exists.
var ErrDuplicate = errors.New("record already exists")

// ErrStorageUnavailable indicates the underlying key-value medium could not
// be read or written. Distinct from ErrNotFound: "no data yet" is not
// "storage broken".
var ErrStorageUnavailable = errors.New("storage unavailable")

// ErrUnknownAccount indicates a ledger operation referenced an account ID
// that is not in the chart of accounts.
var ErrUnknownAccount = errors.New("unknown account")

// ErrAccountInUse indicates an attempt to delete an account that still has
// non-reversed ledger entries posted against it.
var ErrAccountInUse = errors.New("account has ledger entries")
