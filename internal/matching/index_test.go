package matching

import (
	"testing"

	"gazette/internal/identity"
	"gazette/internal/store"
)

func TestBuildIndexBucketsBySurname(t *testing.T) {
	rows := []*store.PersonRecord{
		{ID: 1, LastName: "Smith"},
		{ID: 2, LastName: "Smith, Jr."},
		{ID: 3, LastName: "Jones"},
		{ID: 4, LastName: ""},
		{ID: 5, LastName: "nan"},
		nil,
	}

	index := BuildIndex(rows)
	if len(index) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(index))
	}

	smiths := index.Candidates("SMITH")
	if len(smiths) != 2 {
		t.Fatalf("expected 2 smiths, got %d", len(smiths))
	}
	if smiths[0].ID != 1 || smiths[1].ID != 2 {
		t.Fatalf("bucket order not preserved: %d, %d", smiths[0].ID, smiths[1].ID)
	}

	if got := index.Candidates("unknown"); got != nil {
		t.Fatalf("expected nil bucket for unseen surname, got %v", got)
	}
	if got := index.Candidates(""); got != nil {
		t.Fatalf("expected nil bucket for empty surname, got %v", got)
	}
}

func TestSurnameKeysDeduplicates(t *testing.T) {
	people := []identity.Person{
		{LastName: "Smith"},
		{LastName: "Smith, Jr."},
		{LastName: "Jones"},
		{LastName: ""},
		{LastName: "none"},
	}
	keys := SurnameKeys(people)
	want := []string{"smith", "jones"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}
}
