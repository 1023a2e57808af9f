// Package detect scores header sets and file content against the format
// registry to decide which vendor export a file came from.
//
// Header detection is additive: a format is eligible only when every one of
// its required headers is present, then scores weight for each distinctive
// and shared header it recognizes, with a flat bonus once any distinctive
// header appears. The best eligible score wins if it clears the acceptance
// threshold; exact ties resolve toward the earlier registry entry, which
// keeps the generic fallback from shadowing specific formats.
package detect
