package rowsource

import (
	"encoding/csv"
	"errors"
	"io"

	"deckport/internal/services"
	"deckport/internal/textutil"
)

// ReadCSV parses comma-separated input. Vendor exports are sloppy about
// quoting and ragged rows, so the reader runs in its most forgiving mode.
func ReadCSV(r io.Reader) (*Document, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, services.Wrap(services.ErrValidation, "rowsource", "csv", "input file is empty", nil)
	}
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "rowsource", "csv", "failed to read header row", err)
	}

	doc := &Document{Headers: normalizeHeaders(headers)}
	for number := 2; ; number++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, services.Wrap(services.ErrValidation, "rowsource", "csv", "malformed record", err)
		}
		if row, ok := buildRow(doc.Headers, record, number); ok {
			doc.Rows = append(doc.Rows, row)
		}
	}
	return doc, nil
}

func normalizeHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	for i, h := range raw {
		headers[i] = textutil.NormalizeHeader(h)
	}
	return headers
}

// buildRow maps a record onto the headers by position. Rows whose every cell
// is blank are dropped; the file row numbering still advances past them.
func buildRow(headers, record []string, number int) (RawRow, bool) {
	values := make(map[string]string, len(headers))
	filled := false
	for i, header := range headers {
		if header == "" || i >= len(record) {
			continue
		}
		values[header] = record[i]
		if record[i] != "" {
			filled = true
		}
	}
	if !filled {
		return RawRow{}, false
	}
	return RawRow{Number: number, Values: values}, true
}
