package cards

import "strings"

// Method records which identifier shape resolved a row.
type Method string

const (
	MethodScryfallID    Method = "scryfall_id"
	MethodMultiverseID  Method = "multiverse_id"
	MethodMTGOID        Method = "mtgo_id"
	MethodSetNumber     Method = "set_number"
	MethodNameSet       Method = "name_set"
	MethodNameOnly      Method = "name_only"
	MethodNameCollector Method = "name_collector"
	MethodFailed        Method = "failed"
)

const correctedSuffix = "_corrected"

// Corrected tags the method for rows whose set code was fuzzy-corrected
// before lookup.
func (m Method) Corrected() Method {
	if m == "" || m == MethodFailed || m.IsCorrected() {
		return m
	}
	return m + correctedSuffix
}

// IsCorrected reports whether the method carries the corrected tag.
func (m Method) IsCorrected() bool {
	return strings.HasSuffix(string(m), correctedSuffix)
}

// Base strips the corrected tag, if any.
func (m Method) Base() Method {
	return Method(strings.TrimSuffix(string(m), correctedSuffix))
}
