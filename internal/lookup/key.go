package lookup

import (
	"fmt"
	"strings"

	"deckport/internal/cards"
	"deckport/internal/lookup/scryfall"
	"deckport/internal/textutil"
)

// Kind orders identity evidence from strongest to weakest.
type Kind int

const (
	KindNone Kind = iota
	KindScryfallID
	KindMultiverse
	KindMTGO
	KindSetNumber
	KindNameSet
	KindName
)

// Key is the strongest identity evidence derived from one row. Rows deriving
// the same canonical key share a single catalog request.
type Key struct {
	Kind            Kind
	ScryfallID      string
	MultiverseID    int64
	MTGOID          int64
	SetCode         string
	CollectorNumber string
	Name            string
}

// Derive picks the strongest usable evidence a row carries. Set names never
// reach the catalog directly; unresolved ones already fell back to the name
// during set annotation.
func Derive(row cards.Row) Key {
	switch {
	case row.ScryfallID != "":
		return Key{Kind: KindScryfallID, ScryfallID: strings.ToLower(row.ScryfallID)}
	case row.MultiverseID > 0:
		return Key{Kind: KindMultiverse, MultiverseID: row.MultiverseID}
	case row.MTGOID > 0:
		return Key{Kind: KindMTGO, MTGOID: row.MTGOID}
	case row.SetCode != "" && row.CollectorNumber != "":
		return Key{
			Kind:            KindSetNumber,
			SetCode:         textutil.FoldSetCode(row.SetCode),
			CollectorNumber: strings.TrimSpace(row.CollectorNumber),
		}
	case row.Name != "" && row.SetCode != "":
		return Key{Kind: KindNameSet, Name: row.Name, SetCode: textutil.FoldSetCode(row.SetCode)}
	case row.Name != "":
		return Key{Kind: KindName, Name: row.Name}
	default:
		return Key{}
	}
}

// Canonical renders the key in a stable comparable form so rows pointing at
// the same printing collapse into one request.
func (k Key) Canonical() string {
	switch k.Kind {
	case KindScryfallID:
		return "id:" + k.ScryfallID
	case KindMultiverse:
		return fmt.Sprintf("mv:%d", k.MultiverseID)
	case KindMTGO:
		return fmt.Sprintf("mtgo:%d", k.MTGOID)
	case KindSetNumber:
		return "cn:" + k.SetCode + "/" + textutil.FoldCollectorNumber(k.CollectorNumber)
	case KindNameSet:
		return "ns:" + k.SetCode + "/" + textutil.FoldName(k.Name)
	case KindName:
		return "n:" + textutil.FoldName(k.Name)
	default:
		return ""
	}
}

// Identifier renders the key as a collection request identifier.
func (k Key) Identifier() scryfall.Identifier {
	switch k.Kind {
	case KindScryfallID:
		return scryfall.Identifier{ID: k.ScryfallID}
	case KindMultiverse:
		return scryfall.Identifier{MultiverseID: k.MultiverseID}
	case KindMTGO:
		return scryfall.Identifier{MTGOID: k.MTGOID}
	case KindSetNumber:
		return scryfall.Identifier{Set: k.SetCode, CollectorNumber: k.CollectorNumber}
	case KindNameSet:
		return scryfall.Identifier{Name: k.Name, Set: k.SetCode}
	case KindName:
		return scryfall.Identifier{Name: k.Name}
	default:
		return scryfall.Identifier{}
	}
}

// Matches reports whether a returned card satisfies this key's evidence. The
// collection endpoint does not echo request order, so claiming responses back
// to their keys goes through this predicate.
func (k Key) Matches(card *scryfall.Card) bool {
	if card == nil {
		return false
	}
	switch k.Kind {
	case KindScryfallID:
		return strings.EqualFold(card.ID, k.ScryfallID)
	case KindMultiverse:
		return card.HasMultiverseID(k.MultiverseID)
	case KindMTGO:
		return card.HasMTGOID(k.MTGOID)
	case KindSetNumber:
		return textutil.FoldSetCode(card.Set) == k.SetCode &&
			textutil.FoldCollectorNumber(card.CollectorNumber) == textutil.FoldCollectorNumber(k.CollectorNumber)
	case KindNameSet:
		return textutil.FoldSetCode(card.Set) == k.SetCode && nameMatches(k.Name, card)
	case KindName:
		return nameMatches(k.Name, card)
	default:
		return false
	}
}

// Method labels how a key resolves for reporting.
func (k Key) Method() cards.Method {
	switch k.Kind {
	case KindScryfallID:
		return cards.MethodScryfallID
	case KindMultiverse:
		return cards.MethodMultiverseID
	case KindMTGO:
		return cards.MethodMTGOID
	case KindSetNumber:
		return cards.MethodSetNumber
	case KindNameSet:
		return cards.MethodNameSet
	case KindName:
		return cards.MethodNameOnly
	default:
		return cards.MethodFailed
	}
}

// Confidence is the tier a successful resolution through this key earns.
func (k Key) Confidence() cards.Confidence {
	switch k.Kind {
	case KindScryfallID, KindMultiverse, KindMTGO:
		return cards.ConfidenceExact
	case KindSetNumber:
		return cards.ConfidenceHigh
	case KindNameSet:
		return cards.ConfidenceMedium
	case KindName:
		return cards.ConfidenceLow
	default:
		return cards.ConfidenceNone
	}
}

// Describe renders the key for error and log messages.
func (k Key) Describe() string {
	switch k.Kind {
	case KindScryfallID:
		return "scryfall id " + k.ScryfallID
	case KindMultiverse:
		return fmt.Sprintf("multiverse id %d", k.MultiverseID)
	case KindMTGO:
		return fmt.Sprintf("mtgo id %d", k.MTGOID)
	case KindSetNumber:
		return fmt.Sprintf("%s #%s", k.SetCode, k.CollectorNumber)
	case KindNameSet:
		return fmt.Sprintf("%q in %s", k.Name, k.SetCode)
	case KindName:
		return fmt.Sprintf("%q", k.Name)
	default:
		return "no identifier"
	}
}
