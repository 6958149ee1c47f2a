package enrichment

import (
	"encoding/json"
	"strings"
)

// Envelope keys shared between the two legacy shapes.
const (
	keyEnrichmentResult = "enrichment_result"
	keyEnrichedData     = "enriched_data"
	keyMetadata         = "enrichment_metadata"
	keyExistingRecord   = "existing_record"
)

// ParseEnvelope decodes a stored envelope blob. Missing or unparseable JSON
// degrades to an empty envelope so reconciliation writes fresh data instead
// of aborting.
func ParseEnvelope(raw string) map[string]any {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return map[string]any{}
	}
	var envelope map[string]any
	if err := json.Unmarshal([]byte(trimmed), &envelope); err != nil || envelope == nil {
		return map[string]any{}
	}
	return envelope
}

// EncodeEnvelope serializes an envelope for storage. Go's JSON encoder sorts
// map keys, so identical envelopes always encode byte-equivalently.
func EncodeEnvelope(envelope map[string]any) (string, error) {
	encoded, err := json.Marshal(envelope)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// ProviderPayload extracts the provider data sub-object from whichever
// envelope shape is present. Returns nil when neither shape holds one.
func ProviderPayload(envelope map[string]any) map[string]any {
	if result, ok := envelope[keyEnrichmentResult].(map[string]any); ok {
		if data, ok := result[keyEnrichedData].(map[string]any); ok {
			return data
		}
	}
	if data, ok := envelope[keyEnrichedData].(map[string]any); ok {
		return data
	}
	return nil
}

// usesNestedShape reports whether the envelope already carries the
// enrichment_result.enriched_data shape. The write path must preserve the
// shape it read, not normalize it.
func usesNestedShape(envelope map[string]any) bool {
	result, ok := envelope[keyEnrichmentResult].(map[string]any)
	if !ok {
		return false
	}
	_, ok = result[keyEnrichedData]
	return ok
}
