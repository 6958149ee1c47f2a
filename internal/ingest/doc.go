// Package ingest loads people records from patent grant sources.
//
// Two entry points feed the people store: a streaming parser for full-text
// grant XML archives, and a JSON client for the patent search API. Both emit
// identity.Person values so downstream matching never cares where a record
// came from.
package ingest
