// Package cards defines the canonical row model shared by the parsing,
// identification, and export layers.
//
// A Row is one line of a vendor export after normalization: identity hints
// (name, set, collector number, catalog IDs), collection attributes
// (quantity, condition, language, finish), and bookkeeping the pipeline
// accumulates on the way through (warnings, set-code corrections, the
// evidence-based confidence tier).
package cards
