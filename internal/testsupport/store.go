package testsupport

import (
	"context"
	"testing"

	"gazette/internal/config"
	"gazette/internal/identity"
	"gazette/internal/store"
)

// MustOpenStore opens a people store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

// InsertPerson inserts a person record for tests using the provided store.
func InsertPerson(t testing.TB, st *store.Store, person identity.Person) *store.PersonRecord {
	t.Helper()

	rec, err := st.InsertPerson(context.Background(), person)
	if err != nil {
		t.Fatalf("store.InsertPerson: %v", err)
	}
	return rec
}
