package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Astute-Property-Managers/VGK-Property-Management/internal/apperrors"
)

type widget struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func stores(t *testing.T) map[string]Store {
	t.Helper()
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return map[string]Store{
		"file": fs,
		"mem":  NewMemStore(),
	}
}

func TestStore_RoundTrip(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set("widgets", []widget{{Name: "a", Count: 2}}))

			var got []widget
			found, err := s.Get("widgets", &got)
			require.NoError(t, err)
			assert.True(t, found)
			require.Len(t, got, 1)
			assert.Equal(t, "a", got[0].Name)
		})
	}
}

func TestStore_MissIsNotAnError(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			var got widget
			found, err := s.Get("absent", &got)
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func TestStore_Remove(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set("k", widget{Name: "x"}))
			require.NoError(t, s.Remove("k"))

			var got widget
			found, err := s.Get("k", &got)
			require.NoError(t, err)
			assert.False(t, found)

			// Removing again is a no-op.
			require.NoError(t, s.Remove("k"))
		})
	}
}

func TestStore_Keys(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set("b", 1))
			require.NoError(t, s.Set("a", 2))

			keys, err := s.Keys()
			require.NoError(t, err)
			assert.ElementsMatch(t, []string{"a", "b"}, keys)
		})
	}
}

func TestFileStore_Layout(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set(KeyAccounts, []widget{}))
	_, err = os.Stat(filepath.Join(dir, "accounts.json"))
	require.NoError(t, err)
}

func TestFileStore_CorruptDocument(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644))

	var got widget
	_, err = s.Get("bad", &got)
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrStorageUnavailable, "corruption is not unavailability")
}

func TestMemStore_Fail(t *testing.T) {
	s := NewMemStore()
	s.Fail = true

	var got widget
	_, err := s.Get("k", &got)
	require.ErrorIs(t, err, apperrors.ErrStorageUnavailable)
	require.ErrorIs(t, s.Set("k", got), apperrors.ErrStorageUnavailable)
	require.ErrorIs(t, s.Remove("k"), apperrors.ErrStorageUnavailable)
}
