// Package matching decides whether people extracted from patent grants are
// already present in the authoritative people store.
//
// The flow is: build a candidate index bucketed by normalized surname, score
// each person against only their own bucket, and keep the best-scoring
// candidate. Scoring is a fixed integer contract: surname equality is a hard
// gate worth 10, an exact first name adds 40 (first-initial agreement 10),
// state agreement adds 20, and city agreement adds a further 20 only when the
// state also agreed. A batch summary reports how many people cleared the
// configured auto-match threshold.
//
// Everything here is pure and synchronous; callers supply pre-fetched store
// rows so matching never issues per-person queries.
package matching
