package identity

import "testing"

func TestNormalizeTextHandlesPlaceholders(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace", "   \t ", ""},
		{"nan", "NaN", ""},
		{"none", "None", ""},
		{"null", "NULL", ""},
		{"plain", "  Boston ", "boston"},
		{"mixed case", "CamBridge", "cambridge"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeText(tc.input); got != tc.want {
				t.Fatalf("NormalizeText(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeFirstTakesFirstToken(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Mary Ann", "mary"},
		{"Mary", "mary"},
		{"  JOHN  PAUL ", "john"},
		{"", ""},
		{"nan", ""},
	}
	for _, tc := range cases {
		if got := NormalizeFirst(tc.input); got != tc.want {
			t.Errorf("NormalizeFirst(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeLastStripsGenerationalSuffixes(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Smith, Jr.", "smith"},
		{"Smith Jr.", "smith"},
		{"Smith jr", "smith"},
		{"Smith, Sr.", "smith"},
		{"Smith III", "smith"},
		{"Smith, II", "smith"},
		{"Smith IV", "smith"},
		{"Smith V", "smith"},
		{"Smith", "smith"},
		{"", ""},
		{"none", ""},
	}
	for _, tc := range cases {
		if got := NormalizeLast(tc.input); got != tc.want {
			t.Errorf("NormalizeLast(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeLastDoesNotStripInsideWords(t *testing.T) {
	// "ii" appears inside the surname but not as a trailing suffix token.
	cases := []struct {
		input string
		want  string
	}{
		{"Hawaii", "hawaii"},
		{"Shirrii", "shirrii"},
		{"Kaiser", "kaiser"},
	}
	for _, tc := range cases {
		if got := NormalizeLast(tc.input); got != tc.want {
			t.Errorf("NormalizeLast(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeLastAgreesAcrossSuffixForms(t *testing.T) {
	want := NormalizeLast("Smith")
	for _, variant := range []string{"Smith, Jr.", "Smith Jr", "smith, sr."} {
		if got := NormalizeLast(variant); got != want {
			t.Errorf("NormalizeLast(%q) = %q, want %q", variant, got, want)
		}
	}
}
