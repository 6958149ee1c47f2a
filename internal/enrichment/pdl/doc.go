// Package pdl wraps the People Data Labs person API.
//
// Payloads are returned as untyped JSON objects; callers apply the
// enrichment package's staleness heuristic instead of validating a provider
// schema, since field sets change without notice.
package pdl
