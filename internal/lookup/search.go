package lookup

import (
	"context"
	"fmt"
	"log/slog"

	"deckport/internal/cards"
	"deckport/internal/logging"
	"deckport/internal/lookup/scryfall"
)

// searchEligible limits the collector-number search to rows that pin a name
// and number while naming no set and carrying no direct identifier. Anything
// stronger resolves more cheaply through the collection endpoint.
func searchEligible(row *cards.Row) bool {
	return row.Name != "" && row.CollectorNumber != "" &&
		row.SetCode == "" && !row.HasDirectID()
}

// searchStage tries to settle set-less name and collector number rows with a
// targeted search. Only an unambiguous single hit resolves the row; every
// other outcome demotes it to a plain name row for the collection stage, with
// a warning explaining why. The demotion clears the collector number so the
// later per-row validation does not hold the name fallback to a number the
// search already failed to pin down.
func (r *Resolver) searchStage(ctx context.Context, logger *slog.Logger, outcomes []Outcome, tracker *progressTracker) {
	for i := range outcomes {
		o := &outcomes[i]
		if !searchEligible(&o.Row) {
			continue
		}
		if ctx.Err() != nil {
			// The collection stage fails the remaining rows.
			return
		}

		matches, err := r.client.Search(ctx, o.Row.Name, scryfall.SearchOptions{
			CollectorNumber: o.Row.CollectorNumber,
		})
		switch {
		case err != nil:
			o.Row.AppendWarning(fmt.Sprintf("collector number search failed, matching by name instead: %v", err))
			logger.Warn("collector number search failed",
				logging.String("name", o.Row.Name),
				logging.String("collector_number", o.Row.CollectorNumber),
				logging.Int("row", o.Row.SourceRow),
				logging.Error(err))
			demoteToName(&o.Row)
		case len(matches) == 1:
			card := matches[0]
			o.Match = &card
			o.Method = cards.MethodNameCollector
			o.Confidence = cards.ConfidenceHigh
			o.ResolvedBySearch = true
			tracker.advance(1)
		case len(matches) == 0:
			o.Row.AppendWarning(fmt.Sprintf("no printing numbered %s matches %q, matching by name instead",
				o.Row.CollectorNumber, o.Row.Name))
			demoteToName(&o.Row)
		default:
			o.Row.AppendWarning(fmt.Sprintf("%d printings numbered %s match %q, matching by name instead",
				len(matches), o.Row.CollectorNumber, o.Row.Name))
			demoteToName(&o.Row)
		}
	}
}

func demoteToName(row *cards.Row) {
	row.CollectorNumber = ""
}
