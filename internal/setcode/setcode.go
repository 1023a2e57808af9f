package setcode

import (
	"fmt"
	"strings"

	"deckport/internal/cards"
	"deckport/internal/textutil"
)

var (
	byCode = make(map[string]set, len(sets))
	byName = make(map[string]set, len(sets))
)

func init() {
	for _, s := range sets {
		byCode[s.code] = s
		byName[textutil.FoldName(s.name)] = s
	}
}

// Known reports whether the code is in the catalog.
func Known(code string) bool {
	_, ok := byCode[textutil.FoldSetCode(code)]
	return ok
}

// NameForCode returns the catalog name for a set code.
func NameForCode(code string) (string, bool) {
	s, ok := byCode[textutil.FoldSetCode(code)]
	return s.name, ok
}

// CodeForName resolves a full set name to its code under fold matching.
func CodeForName(name string) (string, bool) {
	s, ok := byName[textutil.FoldName(name)]
	return s.code, ok
}

// Correct repairs a near-miss set code. A code within edit distance one of a
// catalog entry resolves to that entry; when several entries qualify the most
// recently released one wins. Codes already in the catalog, and codes with no
// close neighbor, come back unchanged.
func Correct(code string) (string, bool) {
	folded := textutil.FoldSetCode(code)
	if folded == "" {
		return code, false
	}
	if _, ok := byCode[folded]; ok {
		return folded, false
	}

	best := set{}
	found := false
	for _, s := range sets {
		if textutil.EditDistance(folded, s.code) > 1 {
			continue
		}
		if !found || s.released > best.released {
			best = s
			found = true
		}
	}
	if !found {
		return code, false
	}
	return best.code, true
}

// Annotate fills in and repairs set information on normalized rows. Rows with
// only a set name gain the matching code; rows with an unrecognized code get
// a fuzzy correction, falling back to the set name when one is present.
func Annotate(rows []cards.Row) {
	for i := range rows {
		annotate(&rows[i])
	}
}

func annotate(row *cards.Row) {
	if row.SetCode == "" {
		if row.SetName == "" {
			return
		}
		code, ok := CodeForName(row.SetName)
		if !ok {
			row.AppendWarning(fmt.Sprintf("unknown set name %q, ignoring it for matching", row.SetName))
			return
		}
		row.SetCode = code
		return
	}

	folded := textutil.FoldSetCode(row.SetCode)
	if _, ok := byCode[folded]; ok {
		row.SetCode = folded
		return
	}

	if corrected, ok := Correct(row.SetCode); ok {
		applyCorrection(row, corrected)
		return
	}
	if row.SetName != "" {
		if code, ok := CodeForName(row.SetName); ok {
			applyCorrection(row, code)
			return
		}
	}
	// Leave unknown codes alone; sets newer than the catalog still resolve
	// through the lookup service.
	row.SetCode = folded
}

func applyCorrection(row *cards.Row, corrected string) {
	if strings.EqualFold(corrected, row.SetCode) {
		return
	}
	original := row.SetCode
	row.OriginalSetCode = original
	row.SetCode = corrected
	row.SetCodeCorrected = true
	row.AppendWarning(fmt.Sprintf("corrected set code %q to %q", original, corrected))
}
