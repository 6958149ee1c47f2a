// Package identity defines the person records extracted from patent grants
// and the deterministic normalization rules used to compare them.
//
// Key responsibilities:
//   - Canonical comparison forms for names and location strings, tolerant of
//     missing or placeholder values ("nan", "none", "null").
//   - Generational suffix stripping for surnames so "Smith, Jr." and "Smith"
//     bucket together.
//   - Exact-key deduplication of extracted batches before matching.
//
// Everything here is pure and allocation-light; the matching package builds
// its candidate index and scorer on top of these rules.
package identity
