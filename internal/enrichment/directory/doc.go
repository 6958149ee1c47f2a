// Package directory scrapes a public people-directory site as the fallback
// enrichment provider.
//
// The scrape extracts phone numbers and location lines from the listing page
// and packages them as an untyped payload in the same shape contract the
// people-data provider uses, so reconciliation treats both providers
// identically.
package directory
