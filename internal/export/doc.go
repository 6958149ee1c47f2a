// Package export renders match reports and backfill summaries for files and
// downstream tooling. CSV output targets spreadsheet review of individual
// match decisions; JSON output preserves the full report structure.
package export
