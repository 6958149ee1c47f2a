// Package store persists the authoritative people table in SQLite.
//
// Rows hold the identity fields extracted from patent grants plus one
// enrichment envelope JSON blob per person. The matcher reads rows in
// batches (never per-person queries); the backfill runner reads and writes
// envelopes one record at a time keyed by row id.
//
// A surname_key column holds the normalized surname so candidate reads can
// be bounded to the surnames present in a batch.
package store
