package matching

import (
	"gazette/internal/identity"
	"gazette/internal/store"
)

// Index buckets existing-store rows by normalized surname. Only rows sharing
// a bucket with a target person are ever scored against it, which bounds
// comparison cost to the batch size times the average bucket size.
type Index map[string][]*store.PersonRecord

// BuildIndex groups rows by their normalized surname. Rows whose normalized
// surname is empty are never matchable and are dropped. Insertion order is
// preserved within each bucket so first-seen tie-breaks stay reproducible.
func BuildIndex(rows []*store.PersonRecord) Index {
	index := make(Index, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		key := identity.NormalizeLast(row.LastName)
		if key == "" {
			continue
		}
		index[key] = append(index[key], row)
	}
	return index
}

// Candidates returns the bucket for a raw surname, or nil when unseen.
func (idx Index) Candidates(lastName string) []*store.PersonRecord {
	key := identity.NormalizeLast(lastName)
	if key == "" {
		return nil
	}
	return idx[key]
}

// SurnameKeys returns the normalized surnames present in a batch of people,
// deduplicated, in first-seen order. Callers use it to bound store reads to
// the surnames a batch can actually match.
func SurnameKeys(people []identity.Person) []string {
	seen := make(map[string]struct{}, len(people))
	keys := make([]string, 0, len(people))
	for _, person := range people {
		key := identity.NormalizeLast(person.LastName)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}
