package identity

import (
	"fmt"
	"testing"
)

func TestDeduplicateKeepsFirstOccurrence(t *testing.T) {
	people := []Person{
		{FirstName: "John", LastName: "Smith", City: "Boston", State: "MA", PersonType: TypeInventor, PatentNumber: "1234567"},
		{FirstName: " john ", LastName: "SMITH", City: "boston", State: "ma", PersonType: TypeInventor, PatentNumber: "1234567"},
		{FirstName: "Jane", LastName: "Smith", City: "Boston", State: "MA", PersonType: TypeInventor, PatentNumber: "1234567"},
	}

	unique, report := Deduplicate(people)
	if len(unique) != 2 {
		t.Fatalf("expected 2 unique people, got %d", len(unique))
	}
	if unique[0].FirstName != "John" {
		t.Fatalf("expected first occurrence retained, got %q", unique[0].FirstName)
	}
	if unique[1].FirstName != "Jane" {
		t.Fatalf("expected order preserved, got %q", unique[1].FirstName)
	}
	if report.Count != 1 {
		t.Fatalf("expected 1 duplicate, got %d", report.Count)
	}
	if len(report.Examples) != 1 {
		t.Fatalf("expected 1 example, got %d", len(report.Examples))
	}
}

func TestDeduplicateDistinguishesPatentNumbers(t *testing.T) {
	people := []Person{
		{FirstName: "John", LastName: "Smith", PersonType: TypeInventor, PatentNumber: "1111111"},
		{FirstName: "John", LastName: "Smith", PersonType: TypeInventor, PatentNumber: "2222222"},
	}
	unique, report := Deduplicate(people)
	if len(unique) != 2 || report.Count != 0 {
		t.Fatalf("records on different patents are not duplicates: unique=%d dropped=%d", len(unique), report.Count)
	}
}

func TestDeduplicateIdempotent(t *testing.T) {
	people := []Person{
		{FirstName: "John", LastName: "Smith", PatentNumber: "1"},
		{FirstName: "John", LastName: "Smith", PatentNumber: "1"},
		{FirstName: "Jane", LastName: "Doe", PatentNumber: "2"},
	}
	once, _ := Deduplicate(people)
	twice, report := Deduplicate(once)
	if report.Count != 0 {
		t.Fatalf("second pass dropped %d records", report.Count)
	}
	if len(twice) != len(once) {
		t.Fatalf("second pass changed length: %d vs %d", len(twice), len(once))
	}
}

func TestDeduplicateCapsExamples(t *testing.T) {
	people := make([]Person, 0, 60)
	for i := 0; i < 30; i++ {
		person := Person{FirstName: "John", LastName: "Smith", PatentNumber: fmt.Sprintf("%d", i)}
		people = append(people, person, person)
	}
	_, report := Deduplicate(people)
	if report.Count != 30 {
		t.Fatalf("expected 30 duplicates, got %d", report.Count)
	}
	if len(report.Examples) != maxDuplicateExamples {
		t.Fatalf("expected examples capped at %d, got %d", maxDuplicateExamples, len(report.Examples))
	}
}
