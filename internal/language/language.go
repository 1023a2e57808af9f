package language

import "strings"

type entry struct {
	printed string   // Printed-language code used by the card database (e.g. "ja", "zhs")
	code3   string   // ISO 639-2 primary (3-letter)
	alt     string   // Common vendor alternate (e.g. "jp" for "ja")
	display string   // Human-readable name
	words   []string // Full word forms found in vendor exports
}

var languages = []entry{
	{"en", "eng", "", "English", []string{"english"}},
	{"es", "spa", "sp", "Spanish", []string{"spanish"}},
	{"fr", "fra", "fre", "French", []string{"french"}},
	{"de", "deu", "ger", "German", []string{"german"}},
	{"it", "ita", "", "Italian", []string{"italian"}},
	{"pt", "por", "", "Portuguese", []string{"portuguese", "portuguese (brazil)"}},
	{"ja", "jpn", "jp", "Japanese", []string{"japanese"}},
	{"ko", "kor", "kr", "Korean", []string{"korean"}},
	{"ru", "rus", "", "Russian", []string{"russian"}},
	{"zhs", "zho", "cs", "Simplified Chinese", []string{"chinese", "simplified chinese", "chinese simplified", "s-chinese"}},
	{"zht", "", "ct", "Traditional Chinese", []string{"traditional chinese", "chinese traditional", "t-chinese"}},
	{"he", "heb", "", "Hebrew", []string{"hebrew"}},
	{"la", "lat", "", "Latin", []string{"latin"}},
	{"grc", "", "", "Ancient Greek", []string{"ancient greek", "greek"}},
	{"ar", "ara", "", "Arabic", []string{"arabic"}},
	{"sa", "san", "", "Sanskrit", []string{"sanskrit"}},
	{"ph", "", "", "Phyrexian", []string{"phyrexian"}},
}

// Index maps built at init time.
var (
	byPrinted map[string]*entry
	byAlias   map[string]*entry
	byWord    map[string]*entry
)

func init() {
	byPrinted = make(map[string]*entry, len(languages))
	byAlias = make(map[string]*entry, len(languages)*2)
	byWord = make(map[string]*entry, len(languages)*2)
	for i := range languages {
		e := &languages[i]
		byPrinted[e.printed] = e
		if e.code3 != "" {
			byAlias[e.code3] = e
		}
		if e.alt != "" {
			byAlias[e.alt] = e
		}
		for _, w := range e.words {
			byWord[w] = e
		}
	}
}

func lookup(value string) *entry {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return nil
	}
	if e, ok := byPrinted[value]; ok {
		return e
	}
	if e, ok := byAlias[value]; ok {
		return e
	}
	if e, ok := byWord[value]; ok {
		return e
	}
	return nil
}

// Normalize converts any recognized language code or word to the card
// database's printed-language code ("jp" and "japanese" both become "ja").
// Returns empty string for unrecognized input.
func Normalize(value string) string {
	if e := lookup(value); e != nil {
		return e.printed
	}
	return ""
}

// Known reports whether the value maps to a recognized printed language.
func Known(value string) bool {
	return lookup(value) != nil
}

// Equivalent reports whether two language values name the same printed
// language. Values that fail to normalize on either side compare by simple
// case-insensitive equality, so unknown-but-identical spellings still match.
func Equivalent(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na != "" && nb != "" {
		return na == nb
	}
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// DisplayName returns a human-readable language name for any recognized value.
// Returns "Unknown" for empty input, or the uppercased value for unrecognized input.
func DisplayName(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Unknown"
	}
	if e := lookup(value); e != nil {
		return e.display
	}
	return strings.ToUpper(strings.TrimSpace(value))
}
