package lookup

import (
	"deckport/internal/cards"
	"deckport/internal/lookup/scryfall"
)

// Outcome is the resolution result for one input row.
type Outcome struct {
	Row   cards.Row
	Match *scryfall.Card

	Confidence cards.Confidence
	Method     cards.Method

	// ResolvedBySearch marks rows settled through the search endpoint
	// instead of a batched collection lookup.
	ResolvedBySearch bool

	// LanguageMismatch marks rows whose match was swapped for a printing in
	// the language the export declared.
	LanguageMismatch bool

	// OutputRow is the 1-based position in the exported file, assigned
	// during reconciliation. The output header occupies row 1.
	OutputRow int

	Err error
}

// Success reports whether the row resolved to a printing.
func (o *Outcome) Success() bool {
	return o.Err == nil && o.Match != nil
}

// DisplayName is the resolved card name when there is one, otherwise
// whatever name the export supplied.
func (o *Outcome) DisplayName() string {
	if o.Match != nil && o.Match.Name != "" {
		return o.Match.Name
	}
	return o.Row.Name
}

// HasWarnings reports whether the row accumulated any non-fatal notes.
func (o *Outcome) HasWarnings() bool {
	return len(o.Row.Warnings) > 0
}
