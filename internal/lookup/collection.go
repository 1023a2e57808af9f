package lookup

import (
	"context"
	"log/slog"
	"strings"

	"deckport/internal/cards"
	"deckport/internal/logging"
	"deckport/internal/lookup/scryfall"
	"deckport/internal/services"
)

// keyGroup gathers every outcome whose row derived the same canonical key,
// so duplicate rows cost one identifier instead of one each.
type keyGroup struct {
	key  Key
	outs []*Outcome
}

// collectionStage resolves all rows the search stage left open through
// batched collection lookups. A failed batch fails only its own rows.
func (r *Resolver) collectionStage(ctx context.Context, logger *slog.Logger, outcomes []Outcome, tracker *progressTracker) {
	var groups []*keyGroup
	index := make(map[string]*keyGroup)
	for i := range outcomes {
		o := &outcomes[i]
		if o.Match != nil || o.Err != nil {
			continue
		}
		key := Derive(o.Row)
		if key.Kind == KindNone {
			o.Err = services.Wrap(services.ErrNoIdentifier, "lookup", "derive", "row carries no usable identifier", nil)
			tracker.advance(1)
			continue
		}
		canonical := key.Canonical()
		group, ok := index[canonical]
		if !ok {
			group = &keyGroup{key: key}
			index[canonical] = group
			groups = append(groups, group)
		}
		group.outs = append(group.outs, o)
	}
	if len(groups) == 0 {
		return
	}
	logger.Debug("collection lookup starting",
		logging.Int("unique_keys", len(groups)),
		logging.Int("batch_size", r.batchSize))

	batch := 0
	for start := 0; start < len(groups); start += r.batchSize {
		end := min(start+r.batchSize, len(groups))
		batch++
		r.resolveBatch(ctx, logger, groups[start:end], batch, tracker)
	}
}

func (r *Resolver) resolveBatch(ctx context.Context, logger *slog.Logger, batch []*keyGroup, number int, tracker *progressTracker) {
	identifiers := make([]scryfall.Identifier, len(batch))
	for i, group := range batch {
		identifiers[i] = group.key.Identifier()
	}

	result, err := r.client.Collection(ctx, identifiers)
	if err != nil {
		logger.Warn("collection batch failed",
			logging.Int("batch", number),
			logging.Int("identifiers", len(identifiers)),
			logging.Error(err))
		failure := services.Wrap(services.ErrServiceUnavailable, "lookup", "collection", "catalog request failed", err)
		for _, group := range batch {
			failGroup(group, failure, tracker)
		}
		return
	}

	claims := claimRecords(result.Cards, batch)
	resolved := 0
	for _, group := range batch {
		card, ok := claims[group]
		if !ok {
			failGroup(group, services.Wrap(services.ErrNotFound, "lookup", "collection",
				"no printing matches "+group.key.Describe(), nil), tracker)
			continue
		}

		// Rows sharing a key validate independently: the card claimed for
		// the key can satisfy one sibling's supplied fields and contradict
		// another's.
		resolved++
		for _, o := range group.outs {
			if mismatches := validate(&o.Row, card); len(mismatches) > 0 {
				o.Err = services.Wrap(services.ErrValidation, "lookup", "validate",
					strings.Join(mismatches, "; "), nil)
				o.Method = cards.MethodFailed
				continue
			}
			o.Match = card
			o.Method = group.key.Method()
			o.Confidence = group.key.Confidence()
		}
		tracker.advance(len(group.outs))
	}
	logger.Debug("collection batch resolved",
		logging.Int("batch", number),
		logging.Int("identifiers", len(identifiers)),
		logging.Int("resolved", resolved),
		logging.Int("missing", len(batch)-resolved),
		logging.Int("reported_not_found", len(result.NotFound)))
}

func failGroup(group *keyGroup, err error, tracker *progressTracker) {
	for _, o := range group.outs {
		o.Err = err
		o.Method = cards.MethodFailed
	}
	tracker.advance(len(group.outs))
}

// claimRecords assigns each returned card to at most one key group. The
// collection endpoint answers in its own order, so claiming goes by content:
// for every card the strongest unclaimed key it satisfies wins, which keeps a
// card that happens to share a name with a weaker key from being stolen away
// from its exact identifier.
func claimRecords(pool []scryfall.Card, batch []*keyGroup) map[*keyGroup]*scryfall.Card {
	claims := make(map[*keyGroup]*scryfall.Card, len(batch))
	for i := range pool {
		card := &pool[i]
		var best *keyGroup
		for _, group := range batch {
			if _, taken := claims[group]; taken {
				continue
			}
			if !group.key.Matches(card) {
				continue
			}
			if best == nil || group.key.Kind < best.key.Kind {
				best = group
			}
		}
		if best != nil {
			claims[best] = card
		}
	}
	return claims
}
