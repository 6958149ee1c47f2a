// Package services defines shared utilities consumed by the matching and
// enrichment pipelines and their external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp people-store record IDs, stage names, and
//     correlation identifiers for logging and tracing.
//   - Structured error markers plus the Wrap helper that translate failures
//     into consistent enrichment statuses.
//
// Use these helpers when wiring new pipeline logic so operational behaviour
// (error handling, observability, retries) stays uniform across the engine.
package services
