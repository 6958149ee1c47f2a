package matching

import (
	"gazette/internal/identity"
	"gazette/internal/store"
)

// Candidate is the JSON view of a matched store row.
type Candidate struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	PersonType   string `json:"person_type"`
	PatentNumber string `json:"patent_number"`
}

func candidateView(rec *store.PersonRecord) *Candidate {
	if rec == nil {
		return nil
	}
	return &Candidate{
		ID:           rec.ID,
		FirstName:    rec.FirstName,
		LastName:     rec.LastName,
		City:         rec.City,
		State:        rec.State,
		Country:      rec.Country,
		PersonType:   rec.PersonType,
		PatentNumber: rec.PatentNumber,
	}
}

// Result pairs one extracted person with their best-scoring store candidate.
// SourceMatchScore carries a prior confidence value from an earlier pass
// unmodified; it is never recomputed here.
type Result struct {
	Person           identity.Person `json:"person"`
	BestMatch        *Candidate      `json:"best_match"`
	BestScore        int             `json:"best_score"`
	MatchConfirmed   bool            `json:"match_confirmed"`
	SourceMatchScore *int            `json:"source_match_score,omitempty"`
}

// Summary aggregates one batch run.
type Summary struct {
	Sampled          int     `json:"sampled"`
	Confirmed        int     `json:"confirmed"`
	BelowThreshold   int     `json:"below_threshold"`
	ConfirmationRate float64 `json:"confirmation_rate"`
}

// Report is the full output of a match run, including what deduplication
// dropped before matching.
type Report struct {
	Summary         Summary                  `json:"summary"`
	DuplicatesFound identity.DuplicateReport `json:"duplicates_found"`
	Results         []Result                 `json:"results"`
}

// MatchBatch scores every person against their surname bucket and applies
// the auto-match threshold. The index is built once per batch. A strictly
// greater score replaces the running best, so ties keep the first-seen
// candidate. A record that cannot be scored simply yields best score 0; bad
// data never fails the batch.
func MatchBatch(people []identity.Person, rows []*store.PersonRecord, threshold int) ([]Result, Summary) {
	index := BuildIndex(rows)

	results := make([]Result, 0, len(people))
	summary := Summary{Sampled: len(people)}

	for _, person := range people {
		var best *store.PersonRecord
		bestScore := 0
		for _, candidate := range index.Candidates(person.LastName) {
			if score := Score(person, candidate); score > bestScore {
				best = candidate
				bestScore = score
			}
		}

		confirmed := best != nil && bestScore >= threshold
		if confirmed {
			summary.Confirmed++
		} else {
			summary.BelowThreshold++
		}

		results = append(results, Result{
			Person:           person,
			BestMatch:        candidateView(best),
			BestScore:        bestScore,
			MatchConfirmed:   confirmed,
			SourceMatchScore: person.MatchScore,
		})
	}

	if summary.Sampled > 0 {
		summary.ConfirmationRate = float64(summary.Confirmed) / float64(summary.Sampled)
	}

	return results, summary
}
