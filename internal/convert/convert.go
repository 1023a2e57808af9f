package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"deckport/internal/config"
	"deckport/internal/detect"
	"deckport/internal/export"
	"deckport/internal/formats"
	"deckport/internal/logging"
	"deckport/internal/lookup"
	"deckport/internal/lookup/scryfall"
	"deckport/internal/normalize"
	"deckport/internal/preflight"
	"deckport/internal/reconcile"
	"deckport/internal/rowsource"
	"deckport/internal/services"
	"deckport/internal/setcode"
	"deckport/internal/textutil"
)

// Stage completion percentages. Lookup interpolates between its bounds as
// batches settle; everything else advances in fixed steps.
const (
	percentParsed     = 10.0
	percentDetected   = 15.0
	percentNormalized = 20.0
	percentLookupEnd  = 90.0
	percentReconciled = 95.0
	percentDone       = 100.0
)

// Request names one conversion: the input file, where the canonical CSV
// should land, and an optional format override that skips auto-detection.
type Request struct {
	InputPath  string
	OutputPath string
	FormatID   string
}

// Report summarizes a finished conversion for rendering and logging.
type Report struct {
	RunID      string
	InputPath  string
	OutputPath string

	Format formats.Format
	// FormatSource records how the format was chosen: "flag", "signature",
	// or "headers". Score is only meaningful for header detection.
	FormatSource string
	Score        float64

	Rows     int
	Resolved int
	Warned   int
	Failed   int

	// StatusCounts keys match the export Status column; MethodCounts keys
	// are identification-method tags.
	StatusCounts map[string]int
	MethodCounts map[string]int

	Outcomes []lookup.Outcome
	Duration time.Duration
}

// Converter runs the full pipeline: preflight, parse, detect, normalize,
// set-code annotation, lookup, reconcile, export.
type Converter struct {
	cfg      *config.Config
	client   scryfall.Service
	logger   *slog.Logger
	progress func(percent float64, stage string)
}

// Option configures a Converter.
type Option func(*Converter)

// WithClient substitutes the card database client, primarily for tests.
func WithClient(client scryfall.Service) Option {
	return func(c *Converter) { c.client = client }
}

// WithProgress registers an advisory progress callback. Percentages are
// monotonically increasing within a run and never affect control flow.
func WithProgress(fn func(percent float64, stage string)) Option {
	return func(c *Converter) { c.progress = fn }
}

// New builds a Converter from configuration. Unless a client is injected, a
// rate-limited Scryfall client is constructed from the config's pacing and
// timeout settings.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Converter, error) {
	if cfg == nil {
		return nil, errors.New("convert requires configuration")
	}
	c := &Converter{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "convert"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		client, err := scryfall.New(
			cfg.Scryfall.BaseURL,
			cfg.Scryfall.UserAgent,
			scryfall.WithRequestDelay(cfg.RequestDelay()),
			scryfall.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout()}),
		)
		if err != nil {
			return nil, services.Wrap(services.ErrConfiguration, "convert", "client", "build card database client", err)
		}
		c.client = client
	}
	return c, nil
}

// Run converts one input file. Row-level failures are reported inside the
// returned Report, not as an error; the error return covers structural
// problems only (unreadable input, undetectable format, export failure).
func (c *Converter) Run(ctx context.Context, req Request) (*Report, error) {
	start := time.Now()
	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, c.logger)

	inputPath := strings.TrimSpace(req.InputPath)
	if inputPath == "" {
		return nil, services.Wrap(services.ErrConfiguration, "convert", "input", "no input file given", nil)
	}
	outputPath := strings.TrimSpace(req.OutputPath)
	if outputPath == "" {
		outputPath = DefaultOutputPath(c.cfg, inputPath)
	}

	if failures := preflight.Failures(preflight.RunAll(c.cfg, inputPath, outputPath)); len(failures) > 0 {
		return nil, services.Wrap(services.ErrConfiguration, "convert", "preflight", preflight.Describe(failures), nil)
	}

	logger.Info("conversion started",
		logging.String("input", inputPath),
		logging.String("output", outputPath))

	meter := &progressMeter{
		report:  c.progress,
		sampler: logging.NewProgressSampler(10),
		logger:  logger,
	}

	doc, err := rowsource.ReadPath(inputPath)
	if err != nil {
		return nil, err
	}
	meter.emit(percentParsed, "parse")

	format, source, score, err := selectFormat(req.FormatID, doc)
	if err != nil {
		return nil, err
	}
	logger.Info("format selected",
		logging.String("format", format.ID),
		logging.String("source", source),
		logging.Float64("score", score))
	meter.emit(percentDetected, "detect")

	rows := normalize.Rows(doc, format)
	setcode.Annotate(rows)
	meter.emit(percentNormalized, "normalize")

	resolver := lookup.NewResolver(c.client, c.logger,
		lookup.WithBatchSize(c.cfg.Scryfall.BatchSize),
		lookup.WithProgress(func(done, total int) {
			if total <= 0 {
				return
			}
			span := percentLookupEnd - percentNormalized
			meter.emit(percentNormalized+span*float64(done)/float64(total), "lookup")
		}))
	outcomes := resolver.Resolve(ctx, rows)

	reconcile.Order(outcomes)
	meter.emit(percentReconciled, "reconcile")

	if err := export.Write(outputPath, outcomes); err != nil {
		return nil, err
	}
	meter.emit(percentDone, "export")

	report := buildReport(runID, inputPath, outputPath, format, source, score, outcomes, time.Since(start))
	logger.Info("conversion finished",
		logging.String("format", format.ID),
		logging.Int("rows", report.Rows),
		logging.Int("resolved", report.Resolved),
		logging.Int("warned", report.Warned),
		logging.Int("failed", report.Failed),
		logging.Duration("duration", report.Duration))
	return report, nil
}

// DefaultOutputPath derives where the canonical CSV lands when the caller
// does not say: the configured output directory when one is set, otherwise
// next to the input file, named after the input's stem.
func DefaultOutputPath(cfg *config.Config, inputPath string) string {
	base := filepath.Base(inputPath)
	stem := textutil.SanitizeFileName(strings.TrimSuffix(base, filepath.Ext(base)))
	if stem == "" {
		stem = "deckport"
	}
	name := stem + "-converted.csv"
	if cfg != nil && strings.TrimSpace(cfg.Paths.OutputDir) != "" {
		return filepath.Join(cfg.Paths.OutputDir, name)
	}
	return filepath.Join(filepath.Dir(inputPath), name)
}

func selectFormat(formatID string, doc *rowsource.Document) (formats.Format, string, float64, error) {
	if formatID = strings.TrimSpace(formatID); formatID != "" {
		f, ok := formats.ByID(formatID)
		if !ok {
			msg := fmt.Sprintf("unknown format %q; known formats: %s", formatID, strings.Join(formats.IDs(), ", "))
			return formats.Format{}, "", 0, services.Wrap(services.ErrConfiguration, "convert", "format", msg, nil)
		}
		return f, "flag", 0, nil
	}
	if doc.SignatureFormat != "" {
		f, ok := formats.ByID(doc.SignatureFormat)
		if !ok {
			return formats.Format{}, "", 0, services.Wrap(services.ErrValidation, "convert", "format", "unregistered signature format "+doc.SignatureFormat, nil)
		}
		return f, "signature", 0, nil
	}
	candidate, err := detect.Headers(doc.Headers)
	if err != nil {
		return formats.Format{}, "", 0, err
	}
	return candidate.Format, "headers", candidate.Score, nil
}

func buildReport(runID, inputPath, outputPath string, format formats.Format, source string, score float64, outcomes []lookup.Outcome, duration time.Duration) *Report {
	report := &Report{
		RunID:        runID,
		InputPath:    inputPath,
		OutputPath:   outputPath,
		Format:       format,
		FormatSource: source,
		Score:        score,
		Rows:         len(outcomes),
		StatusCounts: make(map[string]int),
		MethodCounts: make(map[string]int),
		Outcomes:     outcomes,
		Duration:     duration,
	}
	for i := range outcomes {
		o := &outcomes[i]
		status := export.Status(o)
		report.StatusCounts[status]++
		report.MethodCounts[string(o.Method)]++
		switch {
		case !o.Success():
			report.Failed++
		case o.HasWarnings():
			report.Warned++
			report.Resolved++
		default:
			report.Resolved++
		}
	}
	return report
}

// progressMeter keeps emitted percentages monotonic and gates the matching
// log lines through a sampler so batch-by-batch progress stays readable.
type progressMeter struct {
	report  func(percent float64, stage string)
	sampler *logging.ProgressSampler
	logger  *slog.Logger
	last    float64
}

func (p *progressMeter) emit(percent float64, stage string) {
	if percent <= p.last {
		return
	}
	p.last = percent
	if p.report != nil {
		p.report(percent, stage)
	}
	if p.sampler.ShouldLog(percent, stage) {
		p.logger.Info("conversion progress",
			logging.Float64("percent", percent),
			logging.String("stage", stage))
	}
}
