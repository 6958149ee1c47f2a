package store

import (
	"strings"
	"time"

	"gazette/internal/identity"
)

// EnrichmentStatus tracks where a person sits in the enrichment lifecycle.
type EnrichmentStatus string

const (
	StatusPending  EnrichmentStatus = "pending"
	StatusEnriched EnrichmentStatus = "enriched"
	StatusFailed   EnrichmentStatus = "failed"
)

// PersonRecord is a row from the authoritative people table. The matcher
// treats it as read-only; its identifier is the stable key the backfill
// runner addresses envelopes by.
type PersonRecord struct {
	ID               int64
	FirstName        string
	LastName         string
	SurnameKey       string
	City             string
	State            string
	Country          string
	PersonType       string
	PatentNumber     string
	EnrichmentJSON   string
	EnrichmentStatus EnrichmentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Person converts the record back into the extracted-person shape used by
// the matching and export layers.
func (r *PersonRecord) Person() identity.Person {
	personType, _ := identity.ParsePersonType(r.PersonType)
	return identity.Person{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		City:         r.City,
		State:        r.State,
		Country:      r.Country,
		PersonType:   personType,
		PatentNumber: r.PatentNumber,
	}
}

// HasEnrichment reports whether an envelope has ever been written for the row.
func (r *PersonRecord) HasEnrichment() bool {
	return strings.TrimSpace(r.EnrichmentJSON) != ""
}

// HealthSummary describes aggregated people counts per lifecycle state.
type HealthSummary struct {
	Total    int
	Pending  int
	Enriched int
	Failed   int
}
