package lookup

import (
	"context"
	"log/slog"

	"deckport/internal/cards"
	"deckport/internal/logging"
	"deckport/internal/lookup/scryfall"
)

// Resolver drives the staged resolution of rows against the card catalog.
type Resolver struct {
	client    scryfall.Service
	logger    *slog.Logger
	batchSize int
	progress  func(done, total int)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithBatchSize caps how many identifiers each collection request carries.
// Values above the service limit clamp to it.
func WithBatchSize(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.batchSize = n
		}
	}
}

// WithProgress registers a callback invoked with settled and total row
// counts as resolution advances.
func WithProgress(fn func(done, total int)) Option {
	return func(r *Resolver) { r.progress = fn }
}

// NewResolver builds a resolver around a catalog client.
func NewResolver(client scryfall.Service, logger *slog.Logger, opts ...Option) *Resolver {
	r := &Resolver{
		client:    client,
		logger:    logging.NewComponentLogger(logger, "lookup"),
		batchSize: scryfall.MaxCollectionIdentifiers,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.batchSize > scryfall.MaxCollectionIdentifiers {
		r.batchSize = scryfall.MaxCollectionIdentifiers
	}
	return r
}

// Resolve works through every row and returns one outcome per input row, in
// input order. Failures land on their own outcome; the slice always has
// len(rows) entries.
func (r *Resolver) Resolve(ctx context.Context, rows []cards.Row) []Outcome {
	logger := logging.WithContext(ctx, r.logger)

	outcomes := make([]Outcome, len(rows))
	for i, row := range rows {
		outcomes[i] = Outcome{Row: row, Method: cards.MethodFailed}
	}
	if len(outcomes) == 0 {
		return outcomes
	}

	tracker := &progressTracker{total: len(outcomes), report: r.progress}

	r.searchStage(ctx, logger, outcomes, tracker)
	r.collectionStage(ctx, logger, outcomes, tracker)
	r.verifyStage(ctx, logger, outcomes)

	resolved := 0
	for i := range outcomes {
		if outcomes[i].Success() {
			resolved++
		}
	}
	logger.Info("row resolution finished",
		logging.Int("rows", len(outcomes)),
		logging.Int("resolved", resolved),
		logging.Int("failed", len(outcomes)-resolved))
	return outcomes
}

type progressTracker struct {
	total  int
	done   int
	report func(done, total int)
}

// advance counts newly settled rows, successful or failed.
func (p *progressTracker) advance(n int) {
	if p == nil || n <= 0 {
		return
	}
	p.done += n
	if p.report != nil {
		p.report(p.done, p.total)
	}
}
