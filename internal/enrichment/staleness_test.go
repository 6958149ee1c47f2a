package enrichment

import "testing"

var testStaleFields = []string{"emails", "phone_numbers", "profiles", "education", "experience"}

func TestNeedsBackfill(t *testing.T) {
	checker := NewStaleChecker(testStaleFields)

	cases := []struct {
		name    string
		payload map[string]any
		want    bool
	}{
		{"empty payload", map[string]any{}, true},
		{"nil payload", nil, true},
		{"boolean presence flag", map[string]any{"emails": true}, true},
		{"boolean false flag", map[string]any{"profiles": false}, true},
		{"real list data", map[string]any{"emails": []any{"a@b.com"}}, false},
		{"unwatched boolean", map[string]any{"verified": true, "emails": []any{"a@b.com"}}, false},
		{"watched field absent", map[string]any{"full_name": "John Smith"}, false},
		{"mixed stale and fresh", map[string]any{"emails": []any{"a@b.com"}, "education": true}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := checker.NeedsBackfill(tc.payload); got != tc.want {
				t.Fatalf("NeedsBackfill(%v) = %v, want %v", tc.payload, got, tc.want)
			}
		})
	}
}

func TestStaleCheckerNormalizesFieldNames(t *testing.T) {
	checker := NewStaleChecker([]string{" Emails ", ""})
	if !checker.NeedsBackfill(map[string]any{"emails": true}) {
		t.Fatal("expected configured field to be matched case-insensitively")
	}
}
