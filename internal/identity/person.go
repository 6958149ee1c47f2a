package identity

import "strings"

// PersonType distinguishes the role a person held on a patent grant.
type PersonType string

const (
	TypeInventor PersonType = "inventor"
	TypeAssignee PersonType = "assignee"
)

// Person is one person extracted from a patent grant by an upstream source
// (XML parser or search API). It is immutable input to matching and
// enrichment; MatchScore, when present, is a prior confidence value from an
// earlier pass and is carried through unmodified.
type Person struct {
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	City         string     `json:"city"`
	State        string     `json:"state"`
	Country      string     `json:"country"`
	PersonType   PersonType `json:"person_type"`
	PatentNumber string     `json:"patent_number"`
	MatchScore   *int       `json:"match_score,omitempty"`
}

// DisplayName returns the raw name for presentation, falling back to
// whichever half is present.
func (p Person) DisplayName() string {
	first := strings.TrimSpace(p.FirstName)
	last := strings.TrimSpace(p.LastName)
	switch {
	case first != "" && last != "":
		return first + " " + last
	case last != "":
		return last
	default:
		return first
	}
}

// ParsePersonType converts a string into a known PersonType.
func ParsePersonType(value string) (PersonType, bool) {
	normalized := PersonType(strings.ToLower(strings.TrimSpace(value)))
	switch normalized {
	case TypeInventor, TypeAssignee:
		return normalized, true
	}
	return "", false
}
