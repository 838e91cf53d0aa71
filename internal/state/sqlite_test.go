// ABOUTME: Tests for the SQLite-backed state store
// ABOUTME: Covers roundtrip, overwrite, delete, and restart persistence

package state

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "console.db")
	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	s, _ := createTestStore(t)

	require.NoError(t, s.Set(KeyToken, "abc123"))

	got, err := s.Get(KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "abc123", got)
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	s, _ := createTestStore(t)

	_, err := s.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_Overwrite(t *testing.T) {
	s, _ := createTestStore(t)

	require.NoError(t, s.Set(KeyTheme, "light"))
	require.NoError(t, s.Set(KeyTheme, "dark"))

	got, err := s.Get(KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", got)
}

func TestSQLiteStore_Delete(t *testing.T) {
	s, _ := createTestStore(t)

	require.NoError(t, s.Set(KeyToken, "abc"))
	require.NoError(t, s.Delete(KeyToken))

	_, err := s.Get(KeyToken)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is not an error
	assert.NoError(t, s.Delete(KeyToken))
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console.db")

	s1, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s1.Set(KeyLocale, "zh-CN"))
	require.NoError(t, s1.Close())

	s2, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Get(KeyLocale)
	require.NoError(t, err)
	assert.Equal(t, "zh-CN", got)
}

func TestSQLiteStore_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "console.db")
	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set("k", "v"))
}

func TestMemoryStore_MatchesSemantics(t *testing.T) {
	m := NewMemoryStore()

	_, err := m.Get("absent")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Set("k", "v1"))
	require.NoError(t, m.Set("k", "v2"))
	got, err := m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v2", got)

	require.NoError(t, m.Delete("k"))
	_, err = m.Get("k")
	assert.ErrorIs(t, err, ErrNotFound)
}
