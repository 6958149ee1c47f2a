package export_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"gazette/internal/export"
	"gazette/internal/identity"
	"gazette/internal/matching"
	"gazette/internal/runner"
)

func sampleReport() matching.Report {
	score := 85
	return matching.Report{
		Summary: matching.Summary{
			Sampled:          2,
			Confirmed:        1,
			BelowThreshold:   1,
			ConfirmationRate: 0.5,
		},
		Results: []matching.Result{
			{
				Person: identity.Person{
					FirstName:    "john",
					LastName:     "smith",
					City:         "austin",
					State:        "TX",
					PersonType:   identity.TypeInventor,
					PatentNumber: "11234567",
				},
				BestMatch: &matching.Candidate{
					ID:        7,
					FirstName: "john",
					LastName:  "smith",
				},
				BestScore:        90,
				MatchConfirmed:   true,
				SourceMatchScore: &score,
			},
			{
				Person:    identity.Person{FirstName: "jane", LastName: "doe"},
				BestScore: 10,
			},
		},
	}
}

func TestWriteMatchCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := export.WriteMatchCSV(&buf, sampleReport()); err != nil {
		t.Fatalf("WriteMatchCSV: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("read csv back: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "first_name" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	first := rows[1]
	if first[0] != "John" || first[1] != "Smith" {
		t.Fatalf("expected title-cased names, got %v", first[:2])
	}
	if first[7] != "7" || first[8] != "John Smith" {
		t.Fatalf("unexpected match columns: %v", first)
	}
	if first[9] != "90" || first[10] != "true" || first[11] != "85" {
		t.Fatalf("unexpected score columns: %v", first)
	}
	second := rows[2]
	if second[7] != "" || second[10] != "false" || second[11] != "" {
		t.Fatalf("expected empty match columns for unmatched person, got %v", second)
	}
}

func TestWriteMatchJSONRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := export.WriteMatchJSON(&buf, sampleReport()); err != nil {
		t.Fatalf("WriteMatchJSON: %v", err)
	}

	var decoded matching.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if decoded.Summary.Sampled != 2 || decoded.Summary.ConfirmationRate != 0.5 {
		t.Fatalf("unexpected summary: %+v", decoded.Summary)
	}
	if decoded.Results[0].BestMatch == nil || decoded.Results[0].BestMatch.ID != 7 {
		t.Fatalf("unexpected best match: %+v", decoded.Results[0])
	}
	if decoded.Results[0].SourceMatchScore == nil || *decoded.Results[0].SourceMatchScore != 85 {
		t.Fatal("expected source match score preserved")
	}
}

func TestWriteBackfillJSON(t *testing.T) {
	var buf bytes.Buffer
	summary := runner.Summary{Processed: 5, Updated: 3, Skipped: 1, Errors: 1}
	if err := export.WriteBackfillJSON(&buf, summary); err != nil {
		t.Fatalf("WriteBackfillJSON: %v", err)
	}
	var decoded runner.Summary
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if decoded != summary {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
}
