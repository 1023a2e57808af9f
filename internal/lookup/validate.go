package lookup

import (
	"fmt"

	"deckport/internal/cards"
	"deckport/internal/lookup/scryfall"
	"deckport/internal/textutil"
)

// nameMatches reports whether a row-supplied name refers to the card. Exports
// write multi-faced cards inconsistently, so the full name, each face name,
// and any printed (translated) names all count.
func nameMatches(name string, card *scryfall.Card) bool {
	want := textutil.FoldName(name)
	if want == "" {
		return false
	}
	if textutil.FoldName(card.Name) == want {
		return true
	}
	if card.PrintedName != "" && textutil.FoldName(card.PrintedName) == want {
		return true
	}
	for _, face := range card.CardFaces {
		if textutil.FoldName(face.Name) == want {
			return true
		}
		if face.PrintedName != "" && textutil.FoldName(face.PrintedName) == want {
			return true
		}
	}
	return false
}

// validate re-checks a claimed card against the fields the export actually
// supplied and returns an itemized list of mismatches. Only supplied fields
// count, compared under folding, and any disagreement rejects the card for
// this row: a printing whose name contradicts the export is wrong even when
// the set and collector number line up perfectly.
func validate(row *cards.Row, card *scryfall.Card) []string {
	var mismatches []string
	if row.Name != "" && !nameMatches(row.Name, card) {
		mismatches = append(mismatches, fmt.Sprintf("name %q resolved to %q", row.Name, card.Name))
	}
	if row.SetCode != "" && textutil.FoldSetCode(row.SetCode) != textutil.FoldSetCode(card.Set) {
		mismatches = append(mismatches, fmt.Sprintf("set %q resolved to %q", row.SetCode, card.Set))
	}
	if row.CollectorNumber != "" &&
		textutil.FoldCollectorNumber(row.CollectorNumber) != textutil.FoldCollectorNumber(card.CollectorNumber) {
		mismatches = append(mismatches, fmt.Sprintf("collector number %q resolved to %q",
			row.CollectorNumber, card.CollectorNumber))
	}
	return mismatches
}
