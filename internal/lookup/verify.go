package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"deckport/internal/cards"
	"deckport/internal/language"
	"deckport/internal/logging"
	"deckport/internal/lookup/scryfall"
)

// verifyStage runs the secondary checks on collection-stage successes. Rows
// settled by the search stage already carry the exact printing their query
// described and are left alone.
//
// The language check compares the declared language against the matched
// printing. English-database matches for foreign-language rows are common
// because exports usually write English card names, so a true mismatch
// triggers one corrective search for the same printing in the declared
// language. Afterwards, rows whose set code was repaired before lookup get
// their method tagged and confidence demoted so the repair stays visible in
// the output.
func (r *Resolver) verifyStage(ctx context.Context, logger *slog.Logger, outcomes []Outcome) {
	for i := range outcomes {
		o := &outcomes[i]
		if !o.Success() || o.ResolvedBySearch {
			continue
		}

		r.verifyLanguage(ctx, logger, o)

		if o.Row.SetCodeCorrected {
			o.Method = o.Method.Corrected()
			o.Confidence = o.Confidence.Lower()
		}
	}
}

func (r *Resolver) verifyLanguage(ctx context.Context, logger *slog.Logger, o *Outcome) {
	declared := strings.TrimSpace(o.Row.Language)
	if declared == "" {
		return
	}
	if language.Equivalent(declared, o.Match.Lang) {
		return
	}
	code := language.Normalize(declared)
	if code == "" {
		// Unknown language values already carry a warning from
		// normalization; nothing to search for.
		return
	}
	if ctx.Err() != nil {
		return
	}
	r.correctLanguage(ctx, logger, o, code)
}

// correctLanguage swaps the match for the same set and collector number in
// the declared language. Only an unambiguous single hit swaps; anything else
// keeps the current match and explains itself in the warnings.
func (r *Resolver) correctLanguage(ctx context.Context, logger *slog.Logger, o *Outcome, code string) {
	matches, err := r.client.Search(ctx, "", scryfall.SearchOptions{
		Set:             o.Match.Set,
		CollectorNumber: o.Match.CollectorNumber,
		Language:        code,
	})
	display := language.DisplayName(code)
	switch {
	case err != nil:
		o.Row.AppendWarning(fmt.Sprintf("language check failed, keeping the %s printing: %v", o.Match.Lang, err))
		logger.Warn("language search failed",
			logging.String("card", o.DisplayName()),
			logging.String("language", code),
			logging.Int("row", o.Row.SourceRow),
			logging.Error(err))
	case len(matches) == 1:
		card := matches[0]
		o.Match = &card
		o.LanguageMismatch = true
		o.Confidence = o.Confidence.Max(cards.ConfidenceHigh)
		o.Row.AppendWarning(fmt.Sprintf("swapped to the %s printing to match the declared language", display))
	case len(matches) == 0:
		o.Row.AppendWarning(fmt.Sprintf("no %s printing of %s %s exists, keeping %s",
			display, o.Match.Set, o.Match.CollectorNumber, o.Match.Lang))
	default:
		o.Row.AppendWarning(fmt.Sprintf("%d %s printings of %s %s, keeping %s",
			len(matches), display, o.Match.Set, o.Match.CollectorNumber, o.Match.Lang))
	}
}
