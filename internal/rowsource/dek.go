package rowsource

import (
	"encoding/xml"
	"io"
	"strings"

	"deckport/internal/services"
)

// dekHeaders is the synthetic header row for the MTGO XML deck export, which
// carries its fields as attributes instead of columns.
var dekHeaders = []string{"catid", "quantity", "name", "sideboard"}

type dekFile struct {
	XMLName xml.Name  `xml:"Deck"`
	Cards   []dekCard `xml:"Cards"`
}

type dekCard struct {
	CatID     string `xml:"CatID,attr"`
	Quantity  string `xml:"Quantity,attr"`
	Name      string `xml:"Name,attr"`
	Sideboard string `xml:"Sideboard,attr"`
}

// ReadDek parses an MTGO .dek deck export. Row numbering follows the same
// convention as tabular inputs: the synthetic header occupies row 1 and the
// first Cards element becomes row 2.
func ReadDek(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "rowsource", "dek", "failed to read deck file", err)
	}

	var deck dekFile
	decoder := xml.NewDecoder(strings.NewReader(strings.TrimPrefix(string(data), "\uFEFF")))
	if err := decoder.Decode(&deck); err != nil {
		return nil, services.Wrap(services.ErrValidation, "rowsource", "dek", "malformed deck XML", err)
	}

	doc := &Document{
		Headers:         append([]string(nil), dekHeaders...),
		SignatureFormat: "dek",
	}
	for i, card := range deck.Cards {
		values := map[string]string{
			"catid":     card.CatID,
			"quantity":  card.Quantity,
			"name":      card.Name,
			"sideboard": card.Sideboard,
		}
		doc.Rows = append(doc.Rows, RawRow{Number: i + 2, Values: values})
	}
	return doc, nil
}
