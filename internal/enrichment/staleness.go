package enrichment

import "strings"

// StaleChecker applies the boolean-typed-field staleness heuristic. Certain
// provider responses degrade list and object fields into boolean presence
// flags; such payloads must never be treated as final data.
type StaleChecker struct {
	fields []string
}

// NewStaleChecker builds a checker over the configured field list.
func NewStaleChecker(fields []string) StaleChecker {
	normalized := make([]string, 0, len(fields))
	for _, field := range fields {
		if trimmed := strings.ToLower(strings.TrimSpace(field)); trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}
	return StaleChecker{fields: normalized}
}

// NeedsBackfill reports whether a provider payload must be refetched: either
// it holds no data at all, or one of the watched fields is typed as a
// boolean instead of a collection.
func (c StaleChecker) NeedsBackfill(payload map[string]any) bool {
	if len(payload) == 0 {
		return true
	}
	for _, field := range c.fields {
		value, present := payload[field]
		if !present {
			continue
		}
		if _, isBool := value.(bool); isBool {
			return true
		}
	}
	return false
}
