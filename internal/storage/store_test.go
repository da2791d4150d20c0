package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The port contract is identical for every adapter; run the same suite
// against all three.
func adapters(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	file, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   file,
		"sqlite": sqlite,
	}
}

func TestStore_ReadMissing(t *testing.T) {
	for name, s := range adapters(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.Read("session/ABC-DEF-123")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestStore_WriteReadRoundTrip(t *testing.T) {
	for name, s := range adapters(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Write("session/ABC-DEF-123", `{"a":1}`))

			got, ok, err := s.Read("session/ABC-DEF-123")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `{"a":1}`, got)
		})
	}
}

func TestStore_OverwriteKeepsLatest(t *testing.T) {
	for name, s := range adapters(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Write("k", "v1"))
			require.NoError(t, s.Write("k", "v2"))

			got, ok, err := s.Read("k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "v2", got)
		})
	}
}

func TestStore_RemoveIsIdempotent(t *testing.T) {
	for name, s := range adapters(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Write("k", "v"))
			require.NoError(t, s.Remove("k"))

			_, ok, err := s.Read("k")
			require.NoError(t, err)
			assert.False(t, ok)

			// removing a missing key is not an error
			assert.NoError(t, s.Remove("k"))
		})
	}
}

func TestStore_KeysByPrefix(t *testing.T) {
	for name, s := range adapters(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Write("session/AAA-BBB-100", "1"))
			require.NoError(t, s.Write("session/CCC-DDD-200", "2"))
			require.NoError(t, s.Write("meta/version", "3"))

			keys, err := s.Keys("session/")
			require.NoError(t, err)
			assert.ElementsMatch(t, []string{"session/AAA-BBB-100", "session/CCC-DDD-200"}, keys)
		})
	}
}

func TestFileStore_NoTempFilesLeftBehind(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Write("session/ABC-DEF-123", "v"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "session__ABC-DEF-123.json", entries[0].Name())
	assert.NotEqual(t, ".tmp", filepath.Ext(entries[0].Name()))
}

func TestMemoryStore_FailWrites(t *testing.T) {
	s := NewMemoryStore()
	s.FailWrites = assert.AnError

	err := s.Write("k", "v")
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 0, s.WriteCount())
}
