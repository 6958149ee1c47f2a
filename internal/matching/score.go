package matching

import (
	"gazette/internal/identity"
	"gazette/internal/store"
)

// Point values are a behavioral contract shared with the verification
// tooling; the auto-match threshold was calibrated against them.
const (
	scoreLastName     = 10
	scoreFirstExact   = 40
	scoreFirstInitial = 10
	scoreState        = 20
	scoreCity         = 20

	// MaxScore is the highest attainable match score.
	MaxScore = scoreLastName + scoreFirstExact + scoreState + scoreCity
)

// Score returns the integer confidence that target and candidate are the
// same person. Surname equality is a hard gate, not a weighted signal: when
// the normalized last names are empty or differ the score is 0 regardless of
// any other field.
func Score(target identity.Person, candidate *store.PersonRecord) int {
	if candidate == nil {
		return 0
	}

	targetLast := identity.NormalizeLast(target.LastName)
	candidateLast := identity.NormalizeLast(candidate.LastName)
	if targetLast == "" || targetLast != candidateLast {
		return 0
	}

	score := scoreLastName

	targetFirst := identity.NormalizeFirst(target.FirstName)
	candidateFirst := identity.NormalizeFirst(candidate.FirstName)
	if targetFirst != "" && candidateFirst != "" {
		switch {
		case targetFirst == candidateFirst:
			score += scoreFirstExact
		case targetFirst[0] == candidateFirst[0]:
			// Coarse first-letter credit; the threshold was tuned against
			// this exact rule, so it stays as-is.
			score += scoreFirstInitial
		}
	}

	targetState := identity.NormalizeText(target.State)
	candidateState := identity.NormalizeText(candidate.State)
	stateMatched := targetState != "" && targetState == candidateState
	if stateMatched {
		score += scoreState

		// City only corroborates within a matching state; city names recur
		// across states, so a city match alone is not evidence.
		targetCity := identity.NormalizeText(target.City)
		candidateCity := identity.NormalizeText(candidate.City)
		if targetCity != "" && targetCity == candidateCity {
			score += scoreCity
		}
	}

	return score
}
