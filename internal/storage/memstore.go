package storage

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/apperrors"
)

// MemStore is an in-memory Store for tests. Values round-trip through JSON so
// it exercises the same serialization path as FileStore. Setting Fail makes
// every operation report a storage failure.
type MemStore struct {
	data map[string][]byte

	// Fail simulates a broken medium.
	Fail bool
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

// Get implements Store.
func (s *MemStore) Get(key string, out any) (bool, error) {
	if s.Fail {
		return false, fmt.Errorf("reading %s: %w", key, apperrors.ErrStorageUnavailable)
	}
	data, ok := s.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decoding %s: %w", key, err)
	}
	return true, nil
}

// Set implements Store.
func (s *MemStore) Set(key string, value any) error {
	if s.Fail {
		return fmt.Errorf("writing %s: %w", key, apperrors.ErrStorageUnavailable)
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	s.data[key] = data
	return nil
}

// Remove implements Store.
func (s *MemStore) Remove(key string) error {
	if s.Fail {
		return fmt.Errorf("removing %s: %w", key, apperrors.ErrStorageUnavailable)
	}
	delete(s.data, key)
	return nil
}

// Keys implements Store.
func (s *MemStore) Keys() ([]string, error) {
	if s.Fail {
		return nil, fmt.Errorf("listing keys: %w", apperrors.ErrStorageUnavailable)
	}
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
