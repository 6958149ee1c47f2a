package identity

import "strings"

// maxDuplicateExamples caps the sample of dropped records kept for reporting.
const maxDuplicateExamples = 25

// duplicateKey is the composite identity used for exact deduplication. Two
// records sharing this key are the same extraction regardless of other field
// differences. A struct key gives value equality without separator-collision
// bugs that string concatenation would invite.
type duplicateKey struct {
	first        string
	last         string
	city         string
	state        string
	personType   string
	patentNumber string
}

func keyFor(p Person) duplicateKey {
	return duplicateKey{
		first:        foldKeyField(p.FirstName),
		last:         foldKeyField(p.LastName),
		city:         foldKeyField(p.City),
		state:        foldKeyField(p.State),
		personType:   foldKeyField(string(p.PersonType)),
		patentNumber: foldKeyField(p.PatentNumber),
	}
}

func foldKeyField(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// DuplicateReport summarizes what Deduplicate dropped.
type DuplicateReport struct {
	Count    int      `json:"count"`
	Examples []Person `json:"examples"`
}

// Deduplicate removes exact-duplicate records from a batch, keeping the first
// occurrence of each composite key and preserving input order. Running it on
// its own output is a no-op.
func Deduplicate(people []Person) ([]Person, DuplicateReport) {
	seen := make(map[duplicateKey]struct{}, len(people))
	unique := make([]Person, 0, len(people))
	var report DuplicateReport

	for _, person := range people {
		key := keyFor(person)
		if _, dup := seen[key]; dup {
			report.Count++
			if len(report.Examples) < maxDuplicateExamples {
				report.Examples = append(report.Examples, person)
			}
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, person)
	}

	return unique, report
}
