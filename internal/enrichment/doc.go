// Package enrichment reconciles stored enrichment envelopes with freshly
// fetched provider payloads.
//
// Provider payloads are opaque JSON objects; the only type inspection done
// here is the staleness heuristic, which flags payloads where a field that
// should hold a list or object arrives as a boolean presence flag. Envelopes
// come in two legacy shapes (enriched data nested under enrichment_result,
// or at the top level); reconciliation writes back in whichever shape it
// found and never unifies the two, since downstream readers depend on both.
//
// The provider sub-object is replaced wholesale, never merged field by
// field, so stale and fresh sibling fields cannot mix. Keys the engine does
// not understand are preserved untouched.
package enrichment
