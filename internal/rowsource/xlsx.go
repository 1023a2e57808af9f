package rowsource

import (
	"io"

	"github.com/xuri/excelize/v2"

	"deckport/internal/services"
)

// ReadXLSX parses the first worksheet of an Excel workbook. Collection
// managers export a single sheet; additional sheets are ignored.
func ReadXLSX(r io.Reader) (*Document, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "rowsource", "xlsx", "failed to open workbook", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, services.Wrap(services.ErrValidation, "rowsource", "xlsx", "workbook has no sheets", nil)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "rowsource", "xlsx", "failed to read sheet", err)
	}
	if len(rows) == 0 {
		return nil, services.Wrap(services.ErrValidation, "rowsource", "xlsx", "sheet has no header row", nil)
	}

	doc := &Document{Headers: normalizeHeaders(rows[0])}
	for i, record := range rows[1:] {
		if row, ok := buildRow(doc.Headers, record, i+2); ok {
			doc.Rows = append(doc.Rows, row)
		}
	}
	return doc, nil
}
