package formats

const (
	defaultStrongWeight = 0.35
	defaultCommonWeight = 0.05
)

// registry holds every supported format, most specific first. The generic
// fallback must stay last so score ties resolve toward specific formats.
var registry = []Format{
	{
		ID:        "dek",
		Name:      "MTGO .dek",
		Signature: "<Deck",
		Required:  []string{"catid", "quantity", "name"},
		Mappings: []FieldMapping{
			{Field: FieldMTGOID, Column: "catid"},
			{Field: FieldQuantity, Column: "quantity", Transform: quantityDigits},
			{Field: FieldName, Column: "name"},
		},
	},
	{
		ID:       "helvault",
		Name:     "Helvault",
		Required: []string{"name", "quantity", "set_code"},
		Strong:   []string{"oracle_id", "scryfall_id", "extras"},
		Common: []string{
			"name", "quantity", "set_code", "set_name", "collector_number",
			"language", "estimated_price",
		},
		StrongWeight: defaultStrongWeight,
		CommonWeight: defaultCommonWeight,
		Mappings: []FieldMapping{
			{Field: FieldName, Column: "name"},
			{Field: FieldQuantity, Column: "quantity", Transform: quantityDigits},
			{Field: FieldSetCode, Column: "set_code", Transform: lowered},
			{Field: FieldSetName, Column: "set_name"},
			{Field: FieldCollectorNumber, Column: "collector_number"},
			{Field: FieldLanguage, Column: "language"},
			{Field: FieldScryfallID, Column: "scryfall_id", Transform: lowered},
			{Field: FieldPurchasePrice, Column: "estimated_price", Transform: priceValue},
		},
	},
	{
		ID:       "manabox",
		Name:     "ManaBox",
		Required: []string{"name", "quantity"},
		Strong:   []string{"manabox id", "scryfall id"},
		Common: []string{
			"name", "quantity", "set code", "set name", "collector number",
			"foil", "rarity", "condition", "language", "purchase price",
			"misprint", "altered", "purchase price currency",
		},
		StrongWeight: defaultStrongWeight,
		CommonWeight: defaultCommonWeight,
		Mappings: []FieldMapping{
			{Field: FieldName, Column: "name"},
			{Field: FieldQuantity, Column: "quantity", Transform: quantityDigits},
			{Field: FieldSetCode, Column: "set code", Transform: lowered},
			{Field: FieldSetName, Column: "set name"},
			{Field: FieldCollectorNumber, Column: "collector number"},
			{Field: FieldFinish, Column: "foil", Transform: finishWord},
			{Field: FieldCondition, Column: "condition"},
			{Field: FieldLanguage, Column: "language"},
			{Field: FieldScryfallID, Column: "scryfall id", Transform: lowered},
			{Field: FieldPurchasePrice, Column: "purchase price", Transform: priceValue},
		},
	},
	{
		ID:       "archidekt",
		Name:     "Archidekt",
		Required: []string{"quantity", "name"},
		Strong:   []string{"scryfall id", "multiverse id", "edition code"},
		Common: []string{
			"quantity", "name", "finish", "condition", "language",
			"edition name", "collector number", "date added",
			"purchase price", "tags",
		},
		StrongWeight: defaultStrongWeight,
		CommonWeight: defaultCommonWeight,
		Mappings: []FieldMapping{
			{Field: FieldQuantity, Column: "quantity", Transform: quantityDigits},
			{Field: FieldName, Column: "name"},
			{Field: FieldFinish, Column: "finish", Transform: finishWord},
			{Field: FieldCondition, Column: "condition"},
			{Field: FieldLanguage, Column: "language"},
			{Field: FieldSetName, Column: "edition name"},
			{Field: FieldSetCode, Column: "edition code", Transform: lowered},
			{Field: FieldCollectorNumber, Column: "collector number"},
			{Field: FieldScryfallID, Column: "scryfall id", Transform: lowered},
			{Field: FieldMultiverseID, Column: "multiverse id"},
			{Field: FieldPurchasePrice, Column: "purchase price", Transform: priceValue},
		},
	},
	{
		ID:       "dragonshield",
		Name:     "Dragon Shield",
		Required: []string{"quantity", "card name", "set code"},
		Strong:   []string{"folder name", "trade quantity", "price bought"},
		Common: []string{
			"quantity", "card name", "set code", "set name", "card number",
			"condition", "printing", "language", "date bought",
		},
		StrongWeight: defaultStrongWeight,
		CommonWeight: defaultCommonWeight,
		Mappings: []FieldMapping{
			{Field: FieldQuantity, Column: "quantity", Transform: quantityDigits},
			{Field: FieldName, Column: "card name"},
			{Field: FieldSetCode, Column: "set code", Transform: lowered},
			{Field: FieldSetName, Column: "set name"},
			{Field: FieldCollectorNumber, Column: "card number"},
			{Field: FieldCondition, Column: "condition"},
			{Field: FieldFinish, Column: "printing", Transform: finishWord},
			{Field: FieldLanguage, Column: "language"},
			{Field: FieldPurchasePrice, Column: "price bought", Transform: priceValue},
		},
	},
	{
		ID:       "tcgplayer",
		Name:     "TCGplayer",
		Required: []string{"quantity", "name", "set"},
		Strong:   []string{"simple name", "product id", "sku"},
		Common: []string{
			"quantity", "name", "set", "card number", "set code", "printing",
			"condition", "rarity", "price", "price each",
		},
		StrongWeight: defaultStrongWeight,
		CommonWeight: defaultCommonWeight,
		Mappings: []FieldMapping{
			{Field: FieldQuantity, Column: "quantity", Transform: quantityDigits},
			{Field: FieldName, Column: "name"},
			{Field: FieldSetName, Column: "set"},
			{Field: FieldSetCode, Column: "set code", Transform: lowered},
			{Field: FieldCollectorNumber, Column: "card number"},
			{Field: FieldFinish, Column: "printing", Transform: finishWord},
			{Field: FieldCondition, Column: "condition"},
			{Field: FieldLanguage, Column: "language"},
			{Field: FieldPurchasePrice, Column: "price each", Transform: priceValue},
		},
	},
	{
		ID:       "mtggoldfish",
		Name:     "MTGGoldfish",
		Required: []string{"card", "quantity"},
		Strong:   []string{"set id"},
		Common: []string{
			"card", "quantity", "set name", "foil", "variation", "price",
		},
		StrongWeight: defaultStrongWeight,
		CommonWeight: defaultCommonWeight,
		Mappings: []FieldMapping{
			{Field: FieldName, Column: "card"},
			{Field: FieldSetCode, Column: "set id", Transform: lowered},
			{Field: FieldSetName, Column: "set name"},
			{Field: FieldQuantity, Column: "quantity", Transform: quantityDigits},
			{Field: FieldFinish, Column: "foil", Transform: finishWord},
			{Field: FieldPurchasePrice, Column: "price", Transform: priceValue},
		},
	},
	{
		ID:       "tappedout",
		Name:     "TappedOut",
		Required: []string{"qty", "name"},
		Strong:   []string{"printing"},
		Common: []string{
			"qty", "name", "foil", "alter", "signed", "condition", "language",
		},
		StrongWeight: defaultStrongWeight,
		CommonWeight: defaultCommonWeight,
		Mappings: []FieldMapping{
			{Field: FieldQuantity, Column: "qty", Transform: quantityDigits},
			{Field: FieldName, Column: "name"},
			{Field: FieldSetCode, Column: "printing", Transform: lowered},
			{Field: FieldFinish, Column: "foil", Transform: finishWord},
			{Field: FieldCondition, Column: "condition"},
			{Field: FieldLanguage, Column: "language"},
		},
	},
	{
		ID:       "deckbox",
		Name:     "Deckbox",
		Required: []string{"count", "name", "edition"},
		Strong:   []string{"tradelist count"},
		Common: []string{
			"count", "name", "edition", "condition", "language", "foil",
			"signed", "altered art", "card number", "my price", "tags",
		},
		StrongWeight: 0.40,
		CommonWeight: defaultCommonWeight,
		Mappings: []FieldMapping{
			{Field: FieldQuantity, Column: "count", Transform: quantityDigits},
			{Field: FieldName, Column: "name"},
			{Field: FieldSetName, Column: "edition"},
			{Field: FieldCollectorNumber, Column: "card number"},
			{Field: FieldCondition, Column: "condition"},
			{Field: FieldLanguage, Column: "language"},
			{Field: FieldFinish, Column: "foil", Transform: finishWord},
			{Field: FieldPurchasePrice, Column: "my price", Transform: priceValue},
		},
	},
	{
		ID:       "moxfield",
		Name:     "Moxfield",
		Required: []string{"count", "name", "edition"},
		Common: []string{
			"count", "name", "edition", "condition", "language", "foil",
			"tags", "last modified", "collector number", "alter", "proxy",
			"purchase price",
		},
		StrongWeight: defaultStrongWeight,
		CommonWeight: defaultCommonWeight,
		Mappings: []FieldMapping{
			{Field: FieldQuantity, Column: "count", Transform: quantityDigits},
			{Field: FieldName, Column: "name"},
			{Field: FieldSetCode, Column: "edition", Transform: lowered},
			{Field: FieldCollectorNumber, Column: "collector number"},
			{Field: FieldCondition, Column: "condition"},
			{Field: FieldLanguage, Column: "language"},
			{Field: FieldFinish, Column: "foil", Transform: finishWord},
			{Field: FieldPurchasePrice, Column: "purchase price", Transform: priceValue},
		},
	},
	{
		ID:       "generic",
		Name:     "Generic CSV",
		Required: []string{"name"},
		Common: []string{
			"name", "set", "set code", "set name", "quantity", "count",
			"qty", "collector number", "number", "language", "foil",
			"condition", "price",
		},
		StrongWeight: defaultStrongWeight,
		CommonWeight: 0.08,
		Mappings: []FieldMapping{
			{Field: FieldName, Column: "name"},
			{Field: FieldSetAny, Column: "set"},
			{Field: FieldSetCode, Column: "set code", Transform: lowered},
			{Field: FieldSetName, Column: "set name"},
			{Field: FieldQuantity, Column: "quantity", Transform: quantityDigits},
			{Field: FieldQuantity, Column: "count", Transform: quantityDigits},
			{Field: FieldQuantity, Column: "qty", Transform: quantityDigits},
			{Field: FieldCollectorNumber, Column: "collector number"},
			{Field: FieldCollectorNumber, Column: "number"},
			{Field: FieldLanguage, Column: "language"},
			{Field: FieldFinish, Column: "foil", Transform: finishWord},
			{Field: FieldCondition, Column: "condition"},
			{Field: FieldPurchasePrice, Column: "price", Transform: priceValue},
		},
	},
}

// Registry returns the supported formats in detection precedence order.
func Registry() []Format {
	out := make([]Format, len(registry))
	copy(out, registry)
	return out
}

// ByID looks up a format by its identifier.
func ByID(id string) (Format, bool) {
	for _, f := range registry {
		if f.ID == id {
			return f, true
		}
	}
	return Format{}, false
}

// IDs returns every registered format identifier in precedence order.
func IDs() []string {
	out := make([]string, 0, len(registry))
	for _, f := range registry {
		out = append(out, f.ID)
	}
	return out
}
