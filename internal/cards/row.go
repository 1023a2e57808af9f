package cards

import "strings"

// Row is one normalized line of a vendor export.
type Row struct {
	// SourceRow is the 1-based position in the input file; the header
	// occupies row 1, so data rows start at 2.
	SourceRow int

	Quantity        int
	Name            string
	SetCode         string
	SetName         string
	CollectorNumber string
	Language        string
	Foil            bool
	Etched          bool
	Condition       string
	PurchasePrice   string

	ScryfallID   string
	MultiverseID int64
	MTGOID       int64

	// Raw preserves the original cell values keyed by normalized header.
	Raw map[string]string

	// NeedsLookup marks rows carrying at least one usable identity hint.
	NeedsLookup bool

	// InitialConfidence is the evidence-based tier assigned during
	// normalization, before any network lookup.
	InitialConfidence Confidence

	// SetCodeCorrected records that SetCode was fuzzy-corrected;
	// OriginalSetCode preserves what the vendor export actually said.
	SetCodeCorrected bool
	OriginalSetCode  string

	Warnings []string
}

// AppendWarning records a non-fatal observation about the row.
func (r *Row) AppendWarning(msg string) {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return
	}
	r.Warnings = append(r.Warnings, msg)
}

// HasDirectID reports whether the row carries a catalog identifier that can
// resolve a printing without name matching.
func (r *Row) HasDirectID() bool {
	return r.ScryfallID != "" || r.MultiverseID > 0 || r.MTGOID > 0
}

// EvidenceConfidence derives the confidence tier from the identity hints the
// row actually carries: direct IDs rank exact, set plus collector number high,
// name plus set medium, bare name low.
func (r *Row) EvidenceConfidence() Confidence {
	switch {
	case r.HasDirectID():
		return ConfidenceExact
	case r.SetCode != "" && r.CollectorNumber != "":
		return ConfidenceHigh
	case r.Name != "" && (r.SetCode != "" || r.SetName != ""):
		return ConfidenceMedium
	case r.Name != "":
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}
