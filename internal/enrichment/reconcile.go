package enrichment

import "time"

// Method identifies which provider operation supplied a fresh payload.
type Method string

const (
	// MethodRetrieve is a people-data record retrieval by provider id.
	MethodRetrieve Method = "retrieve"
	// MethodLookup is a fresh identity lookup (people-data search or
	// directory scrape).
	MethodLookup Method = "lookup"
)

// Reconciler merges fresh provider payloads into stored envelopes.
type Reconciler struct {
	stale StaleChecker
	now   func() time.Time
}

// Option customizes a Reconciler.
type Option func(*Reconciler)

// WithClock overrides the provenance timestamp source (useful for tests).
func WithClock(now func() time.Time) Option {
	return func(r *Reconciler) {
		if now != nil {
			r.now = now
		}
	}
}

// NewReconciler builds a Reconciler using the configured stale-field list.
func NewReconciler(staleFields []string, opts ...Option) *Reconciler {
	r := &Reconciler{
		stale: NewStaleChecker(staleFields),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NeedsBackfill reports whether a payload is stale or empty.
func (r *Reconciler) NeedsBackfill(payload map[string]any) bool {
	return r.stale.NeedsBackfill(payload)
}

// Reconcile replaces the envelope's provider data sub-object wholesale with
// the fresh payload and records provenance. The write lands in whichever
// legacy shape the envelope already uses; an empty envelope gets the
// top-level shape. Keys the engine does not understand are left untouched,
// and repeating the call with the same payload produces an identical
// envelope.
func (r *Reconciler) Reconcile(envelope map[string]any, fresh map[string]any, method Method) map[string]any {
	if envelope == nil {
		envelope = map[string]any{}
	}

	if usesNestedShape(envelope) {
		result := envelope[keyEnrichmentResult].(map[string]any)
		result[keyEnrichedData] = fresh
	} else {
		envelope[keyEnrichedData] = fresh
	}

	metadata, ok := envelope[keyMetadata].(map[string]any)
	if !ok {
		metadata = map[string]any{}
		envelope[keyMetadata] = metadata
	}
	metadata["backfill_method"] = string(method)
	metadata["backfilled_at"] = r.now().UTC().Format(time.RFC3339)

	return envelope
}
