// Package id generates and parses prefixed record identifiers.
package id

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Entity prefixes used across the data set.
const (
	PrefixProperty    = "prop"
	PrefixTenant      = "tenant"
	PrefixPayment     = "payment"
	PrefixMaintenance = "maint"
	PrefixVendor      = "vendor"
	PrefixAccount     = "acc"
	PrefixLedger      = "gl"
	PrefixTxn         = "txn"
	PrefixRock        = "rock"
	PrefixKPI         = "kpi"
	PrefixCritical    = "cn"
	PrefixHuddle      = "huddle"
)

// New returns an ID like "gl_8f1c2b4d9e0a4f6b8c1d2e3f4a5b6c7d".
func New(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	if prefix == "" {
		return raw
	}
	return prefix + "_" + raw
}

// Prefix returns the entity prefix of an ID, or "" if it has none.
func Prefix(id string) string {
	i := strings.IndexByte(id, '_')
	if i <= 0 {
		return ""
	}
	return id[:i]
}

// Validate checks that an ID carries the expected prefix.
func Validate(id, prefix string) error {
	if Prefix(id) != prefix {
		return fmt.Errorf("invalid %s ID: %q", prefix, id)
	}
	return nil
}
