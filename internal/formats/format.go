package formats

// Field names a canonical row field a column can feed.
type Field int

const (
	FieldQuantity Field = iota
	FieldName
	FieldSetCode
	FieldSetName
	// FieldSetAny accepts either a set code or a full set name; the
	// normalizer classifies the value by shape.
	FieldSetAny
	FieldCollectorNumber
	FieldLanguage
	FieldFinish
	FieldCondition
	FieldPurchasePrice
	FieldScryfallID
	FieldMultiverseID
	FieldMTGOID
)

// FieldMapping binds one source column to a canonical field through an
// optional pure transform.
type FieldMapping struct {
	Field     Field
	Column    string // normalized header name
	Transform func(string) string
}

// Format describes one supported vendor export format.
type Format struct {
	ID   string
	Name string

	// Signature, when set, switches the format to content-signature
	// detection; header indicators are ignored for such formats.
	Signature string

	// Required headers gate eligibility: all must be present or the
	// format scores zero.
	Required []string
	// Strong headers are distinctive to this format.
	Strong []string
	// Common headers are shared across formats and contribute small weight.
	Common []string

	StrongWeight float64
	CommonWeight float64

	Mappings []FieldMapping
}

// IsSignature reports whether the format is detected by content signature
// rather than headers.
func (f Format) IsSignature() bool {
	return f.Signature != ""
}

// MappingFor returns the first mapping feeding the given field, if any.
func (f Format) MappingFor(field Field) (FieldMapping, bool) {
	for _, m := range f.Mappings {
		if m.Field == field {
			return m, true
		}
	}
	return FieldMapping{}, false
}
