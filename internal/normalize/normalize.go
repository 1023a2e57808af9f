package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"deckport/internal/cards"
	"deckport/internal/formats"
	"deckport/internal/language"
	"deckport/internal/rowsource"
)

// Rows normalizes every row of a parsed document under the given format.
func Rows(doc *rowsource.Document, format formats.Format) []cards.Row {
	rows := make([]cards.Row, 0, len(doc.Rows))
	for _, raw := range doc.Rows {
		rows = append(rows, Row(raw, format))
	}
	return rows
}

// Row maps one raw row onto the canonical shape. Mappings apply in format
// order and the first column producing a value wins; malformed identifiers
// and quantities demote to warnings instead of failing the row.
func Row(raw rowsource.RawRow, format formats.Format) cards.Row {
	row := cards.Row{
		SourceRow: raw.Number,
		Quantity:  1,
		Raw:       raw.Values,
	}

	quantitySet := false
	quantityJunk := ""
	for _, m := range format.Mappings {
		value := strings.TrimSpace(raw.Value(m.Column))
		if value == "" {
			continue
		}
		if m.Transform != nil {
			value = m.Transform(value)
			if value == "" {
				continue
			}
		}

		switch m.Field {
		case formats.FieldQuantity:
			if quantitySet {
				continue
			}
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				if quantityJunk == "" {
					quantityJunk = value
				}
				continue
			}
			row.Quantity = n
			quantitySet = true
		case formats.FieldName:
			if row.Name == "" {
				row.Name = value
			}
		case formats.FieldSetCode:
			if row.SetCode == "" {
				row.SetCode = value
			}
		case formats.FieldSetName:
			if row.SetName == "" {
				row.SetName = value
			}
		case formats.FieldSetAny:
			assignSetAny(&row, value)
		case formats.FieldCollectorNumber:
			if row.CollectorNumber == "" {
				row.CollectorNumber = value
			}
		case formats.FieldLanguage:
			if row.Language == "" {
				row.Language = normalizeLanguage(&row, value)
			}
		case formats.FieldFinish:
			switch value {
			case "foil":
				row.Foil = true
			case "etched":
				row.Etched = true
			}
		case formats.FieldCondition:
			if row.Condition == "" {
				row.Condition = value
			}
		case formats.FieldPurchasePrice:
			if row.PurchasePrice == "" {
				row.PurchasePrice = value
			}
		case formats.FieldScryfallID:
			if row.ScryfallID != "" {
				continue
			}
			// Some exports append a printing suffix after the 36-character
			// UUID; only the UUID identifies the card.
			if len(value) > 36 {
				value = value[:36]
			}
			id, err := uuid.Parse(value)
			if err != nil {
				row.AppendWarning(fmt.Sprintf("ignoring malformed scryfall id %q", value))
				continue
			}
			row.ScryfallID = id.String()
		case formats.FieldMultiverseID:
			if row.MultiverseID > 0 {
				continue
			}
			row.MultiverseID = parseNumericID(&row, "multiverse id", value)
		case formats.FieldMTGOID:
			if row.MTGOID > 0 {
				continue
			}
			row.MTGOID = parseNumericID(&row, "mtgo id", value)
		}
	}

	if !quantitySet && quantityJunk != "" {
		row.AppendWarning(fmt.Sprintf("unparseable quantity %q, defaulting to 1", quantityJunk))
	}

	row.InitialConfidence = row.EvidenceConfidence()
	row.NeedsLookup = row.InitialConfidence != cards.ConfidenceNone
	return row
}

// assignSetAny classifies an ambiguous set column by shape. Set codes are
// short and spaceless; anything else reads as a full set name.
func assignSetAny(row *cards.Row, value string) {
	if strings.Contains(value, " ") || len(value) > 6 {
		if row.SetName == "" {
			row.SetName = value
		}
		return
	}
	if row.SetCode == "" {
		row.SetCode = strings.ToLower(value)
	}
}

func normalizeLanguage(row *cards.Row, value string) string {
	if code := language.Normalize(value); code != "" {
		return code
	}
	row.AppendWarning(fmt.Sprintf("unrecognized language %q", value))
	return value
}

func parseNumericID(row *cards.Row, label, value string) int64 {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n <= 0 {
		row.AppendWarning(fmt.Sprintf("ignoring malformed %s %q", label, value))
		return 0
	}
	return n
}
