package enrichment

import (
	"strings"

	"gazette/internal/store"
)

// BackfillExistingRecord fills the envelope's existing_record sub-object
// from a store row. It writes only when the current sub-object is empty or
// all-blank, and only when the row contributes at least one non-blank field;
// a no-op lookup must not mark a record as processed with empty data. A
// populated existing_record is never overwritten, even when the store later
// returns different values. Reports whether the envelope was modified.
func BackfillExistingRecord(envelope map[string]any, rec *store.PersonRecord) bool {
	if envelope == nil || rec == nil {
		return false
	}

	if current, ok := envelope[keyExistingRecord].(map[string]any); ok && hasAnyValue(current) {
		return false
	}

	fields := map[string]any{
		"id":            rec.ID,
		"first_name":    rec.FirstName,
		"last_name":     rec.LastName,
		"city":          rec.City,
		"state":         rec.State,
		"country":       rec.Country,
		"person_type":   rec.PersonType,
		"patent_number": rec.PatentNumber,
	}
	if !hasAnyBlankableValue(rec) {
		return false
	}

	envelope[keyExistingRecord] = fields
	return true
}

func hasAnyBlankableValue(rec *store.PersonRecord) bool {
	for _, value := range []string{
		rec.FirstName, rec.LastName, rec.City, rec.State,
		rec.Country, rec.PersonType, rec.PatentNumber,
	} {
		if strings.TrimSpace(value) != "" {
			return true
		}
	}
	return false
}

func hasAnyValue(object map[string]any) bool {
	for key, value := range object {
		if key == "id" {
			// The row id alone is bookkeeping, not data.
			continue
		}
		switch v := value.(type) {
		case nil:
			continue
		case string:
			if strings.TrimSpace(v) != "" {
				return true
			}
		default:
			return true
		}
	}
	return false
}
