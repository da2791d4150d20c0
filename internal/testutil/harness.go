package testutil

import (
	"testing"

	"github.com/caregrid/intake/internal/clock"
	"github.com/caregrid/intake/internal/repository"
	"github.com/caregrid/intake/internal/storage"
)

// Harness wires a repository over an in-memory store with a manual clock.
// Most engine tests start here.
type Harness struct {
	Store *storage.MemoryStore
	Clock *clock.Manual
	Repo  *repository.SessionRepo
}

func NewHarness(t *testing.T) *Harness {
	t.Helper()
	store := storage.NewMemoryStore()
	clk := clock.NewManual(TestStart)
	return &Harness{
		Store: store,
		Clock: clk,
		Repo:  repository.NewSessionRepo(store, clk),
	}
}

// NewSQLiteStore opens an in-memory SQLite store closed at test end, for
// tests that exercise the production adapter.
func NewSQLiteStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()
	store, err := storage.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
