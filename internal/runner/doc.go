// Package runner drives the enrichment backfill pass over the people store.
//
// A run walks every enriched record sequentially, decides whether its stored
// envelope is stale, fetches a fresh payload from the people-data provider
// (falling back to the public directory when configured), and persists the
// reconciled envelope. Individual record failures are counted and skipped so
// one bad envelope never aborts the batch. A file lock guarantees a single
// writer per database.
package runner
