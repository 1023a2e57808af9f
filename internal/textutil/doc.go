// Package textutil provides text processing utilities for header and name
// folding, edit distance, and filename sanitization.
//
// The primary use cases are:
//   - Folding column headers and card names into a canonical comparison form
//   - Computing Levenshtein distance for near-miss set code correction
//   - Sanitizing filenames and path segments for safe filesystem use
//
// Folding lowercases text, collapses whitespace runs, straightens typographic
// apostrophes, and strips combining diacritics so that vendor exports with
// inconsistent spellings compare equal.
package textutil
