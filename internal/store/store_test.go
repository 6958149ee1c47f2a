package store

import (
	"context"
	"path/filepath"
	"testing"

	"gazette/internal/identity"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenPath(filepath.Join(t.TempDir(), "people.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestInsertComputesSurnameKey(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec, err := s.InsertPerson(ctx, identity.Person{
		FirstName:    "John",
		LastName:     "Smith, Jr.",
		City:         "Boston",
		State:        "MA",
		PersonType:   identity.TypeInventor,
		PatentNumber: "7654321",
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if rec.SurnameKey != "smith" {
		t.Fatalf("expected surname key %q, got %q", "smith", rec.SurnameKey)
	}
	if rec.EnrichmentStatus != StatusPending {
		t.Fatalf("expected pending status, got %q", rec.EnrichmentStatus)
	}
}

func TestFetchBySurnameKeys(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, person := range []identity.Person{
		{FirstName: "John", LastName: "Smith"},
		{FirstName: "Jane", LastName: "Smith Sr"},
		{FirstName: "Alice", LastName: "Jones"},
	} {
		if _, err := s.InsertPerson(ctx, person); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	rows, err := s.FetchBySurnameKeys(ctx, []string{"smith", "", "  "})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 smith rows, got %d", len(rows))
	}
	for _, row := range rows {
		if row.SurnameKey != "smith" {
			t.Fatalf("unexpected row %+v", row)
		}
	}

	empty, err := s.FetchBySurnameKeys(ctx, nil)
	if err != nil {
		t.Fatalf("fetch empty: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no rows for empty key set, got %d", len(empty))
	}
}

func TestCountBySurname(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, person := range []identity.Person{
		{FirstName: "John", LastName: "Smith"},
		{FirstName: "Jane", LastName: "smith, jr."},
		{FirstName: "Alice", LastName: "Jones"},
	} {
		if _, err := s.InsertPerson(ctx, person); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	count, err := s.CountBySurname(ctx, "SMITH")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 smiths, got %d", count)
	}

	count, err = s.CountBySurname(ctx, "   ")
	if err != nil {
		t.Fatalf("count blank: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 for blank surname, got %d", count)
	}
}

func TestEnvelopeRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec, err := s.InsertPerson(ctx, identity.Person{FirstName: "John", LastName: "Smith"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	envelope, err := s.GetEnvelope(ctx, rec.ID)
	if err != nil {
		t.Fatalf("get envelope: %v", err)
	}
	if envelope != "" {
		t.Fatalf("expected empty envelope, got %q", envelope)
	}

	payload := `{"enriched_data":{"emails":["a@b.com"]}}`
	if err := s.UpdateEnvelope(ctx, rec.ID, payload); err != nil {
		t.Fatalf("update envelope: %v", err)
	}

	envelope, err = s.GetEnvelope(ctx, rec.ID)
	if err != nil {
		t.Fatalf("get envelope: %v", err)
	}
	if envelope != payload {
		t.Fatalf("envelope = %q, want %q", envelope, payload)
	}

	updated, err := s.GetByID(ctx, rec.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if updated.EnrichmentStatus != StatusEnriched {
		t.Fatalf("expected enriched status, got %q", updated.EnrichmentStatus)
	}

	enriched, err := s.ListEnriched(ctx)
	if err != nil {
		t.Fatalf("list enriched: %v", err)
	}
	if len(enriched) != 1 || enriched[0].ID != rec.ID {
		t.Fatalf("unexpected enriched rows: %+v", enriched)
	}
}

func TestUpdateEnvelopeUnknownID(t *testing.T) {
	s := openTestStore(t)
	if err := s.UpdateEnvelope(context.Background(), 999, "{}"); err == nil {
		t.Fatal("expected error updating unknown row")
	}
}

func TestHealthCounts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.InsertPerson(ctx, identity.Person{FirstName: "John", LastName: "Smith"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := s.InsertPerson(ctx, identity.Person{FirstName: "Jane", LastName: "Doe"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := s.UpdateEnvelope(ctx, first.ID, "{}"); err != nil {
		t.Fatalf("update envelope: %v", err)
	}

	summary, err := s.Health(ctx)
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if summary.Total != 2 || summary.Pending != 1 || summary.Enriched != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestPing(t *testing.T) {
	s := openTestStore(t)
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
	var closed *Store
	if err := closed.Ping(context.Background()); err == nil {
		t.Fatal("expected error for nil store")
	}
}
