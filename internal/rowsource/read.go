package rowsource

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"deckport/internal/detect"
	"deckport/internal/services"
)

// ReadPath loads and parses an input file. Content signatures take priority
// over the file extension, so a .dek export renamed to .csv still parses as
// deck XML.
func ReadPath(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "rowsource", "read", "failed to read input file", err)
	}

	if format, ok := detect.Content(data); ok {
		switch format.ID {
		case "dek":
			return ReadDek(bytes.NewReader(data))
		default:
			return nil, services.Wrap(services.ErrValidation, "rowsource", "read", "unsupported signature format "+format.ID, nil)
		}
	}

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadXLSX(bytes.NewReader(data))
	}
	return ReadCSV(bytes.NewReader(data))
}
