package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quoteReplacer straightens typographic quotes and apostrophes that vendor
// exports use inconsistently.
var quoteReplacer = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", "\"",
	"”", "\"",
)

// diacriticStripper removes combining marks after canonical decomposition.
var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeHeader folds a column header into canonical form: byte order marks
// and surrounding whitespace removed, lowercased, and internal whitespace runs
// collapsed to single spaces. Underscores are preserved so that snake_case
// headers stay distinct from their spaced variants.
func NormalizeHeader(header string) string {
	header = strings.TrimPrefix(header, "\uFEFF")
	return collapseSpace(strings.ToLower(strings.TrimSpace(header)))
}

// FoldName folds a card name for identity comparison. Case, surrounding and
// repeated whitespace, typographic apostrophes, and combining diacritics are
// all erased so that "Lim-Dul's Vault" and "Lim-Dûl’s Vault" compare equal.
func FoldName(name string) string {
	name = quoteReplacer.Replace(strings.TrimSpace(name))
	if stripped, _, err := transform.String(diacriticStripper, name); err == nil {
		name = stripped
	}
	return collapseSpace(strings.ToLower(name))
}

// FoldSetCode folds a set code for comparison: trimmed and lowercased.
func FoldSetCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// FoldCollectorNumber folds a collector number for comparison. Vendor exports
// zero-pad numbers ("050" for "50"), so leading zeros are dropped unless the
// number is all zeros.
func FoldCollectorNumber(number string) string {
	number = strings.ToLower(strings.TrimSpace(number))
	trimmed := strings.TrimLeft(number, "0")
	if trimmed == "" && number != "" {
		return "0"
	}
	return trimmed
}

func collapseSpace(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
