// Package scryfall implements the card database client used for row
// identification.
//
// Two endpoints are wrapped: the batched collection lookup, which resolves up
// to 75 identifiers per call, and the full-text search endpoint used for
// collector-number and language-corrective queries. Every request passes
// through a shared rate limiter so the converter honours the published
// pacing guidance regardless of call site.
package scryfall
