package rowsource

// RawRow is one data row of an input file keyed by normalized header name.
type RawRow struct {
	// Number is the 1-based file row the data came from. The header row
	// occupies row 1, so data rows start at 2.
	Number int

	Values map[string]string
}

// Value returns the cell under the given normalized header, or "".
func (r RawRow) Value(header string) string {
	return r.Values[header]
}

// Document is a parsed input file reduced to headers and data rows.
type Document struct {
	// Headers holds the normalized header names in column order. When two
	// columns normalize to the same name the rightmost one wins.
	Headers []string

	Rows []RawRow

	// SignatureFormat carries the format ID implied by a content signature,
	// or "" when the file was parsed as plain tabular data.
	SignatureFormat string
}
