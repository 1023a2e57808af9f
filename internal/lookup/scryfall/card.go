package scryfall

// Card represents a single printing returned by the card database.
type Card struct {
	ID              string     `json:"id"`
	OracleID        string     `json:"oracle_id"`
	Name            string     `json:"name"`
	PrintedName     string     `json:"printed_name,omitempty"`
	Lang            string     `json:"lang"`
	ReleasedAt      string     `json:"released_at"`
	Layout          string     `json:"layout"`
	MultiverseIDs   []int64    `json:"multiverse_ids"`
	MTGOID          int64      `json:"mtgo_id,omitempty"`
	MTGOFoilID      int64      `json:"mtgo_foil_id,omitempty"`
	ArenaID         int64      `json:"arena_id,omitempty"`
	TCGPlayerID     int64      `json:"tcgplayer_id,omitempty"`
	CardmarketID    int64      `json:"cardmarket_id,omitempty"`
	Set             string     `json:"set"`
	SetName         string     `json:"set_name"`
	CollectorNumber string     `json:"collector_number"`
	Rarity          string     `json:"rarity"`
	Finishes        []string   `json:"finishes"`
	Prices          Prices     `json:"prices"`
	CardFaces       []CardFace `json:"card_faces,omitempty"`
}

// CardFace describes one face of a multi-faced printing.
type CardFace struct {
	Name        string `json:"name"`
	PrintedName string `json:"printed_name,omitempty"`
}

// Prices carries the market prices attached to a printing. Values arrive as
// decimal strings and may be empty when no market data exists.
type Prices struct {
	USD       string `json:"usd"`
	USDFoil   string `json:"usd_foil"`
	USDEtched string `json:"usd_etched"`
	EUR       string `json:"eur"`
	EURFoil   string `json:"eur_foil"`
	Tix       string `json:"tix"`
}

// FrontFaceName returns the name of the front face for multi-faced cards, or
// the full name otherwise.
func (c *Card) FrontFaceName() string {
	if len(c.CardFaces) > 0 && c.CardFaces[0].Name != "" {
		return c.CardFaces[0].Name
	}
	return c.Name
}

// HasMultiverseID reports whether the printing carries the given Gatherer
// multiverse identifier.
func (c *Card) HasMultiverseID(id int64) bool {
	for _, mv := range c.MultiverseIDs {
		if mv == id {
			return true
		}
	}
	return false
}

// HasMTGOID reports whether the printing matches the given MTGO catalog
// identifier, counting both the regular and foil variants.
func (c *Card) HasMTGOID(id int64) bool {
	return id != 0 && (c.MTGOID == id || c.MTGOFoilID == id)
}
