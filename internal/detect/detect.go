package detect

import (
	"fmt"
	"strings"

	"deckport/internal/formats"
	"deckport/internal/services"
	"deckport/internal/textutil"
)

const (
	// Threshold is the minimum score a format must reach to be selected.
	Threshold = 0.50

	// strongBonus is added once when at least one distinctive header matches.
	strongBonus = 0.20

	// signatureWindow bounds how far into a file content signatures are sought.
	signatureWindow = 512
)

// Candidate is one format's score against a header set.
type Candidate struct {
	Format  formats.Format
	Score   float64
	Matched []string // indicator headers found in the input
	Missing []string // required headers absent from the input
}

// Eligible reports whether every required header was present.
func (c Candidate) Eligible() bool {
	return len(c.Missing) == 0
}

// ScoreAll scores every header-detected format against the given headers and
// returns the candidates in registry order. Headers are normalized before
// matching, so callers may pass them as they appear in the file.
func ScoreAll(headers []string) []Candidate {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		if normalized := textutil.NormalizeHeader(h); normalized != "" {
			present[normalized] = true
		}
	}

	var candidates []Candidate
	for _, f := range formats.Registry() {
		if f.IsSignature() {
			continue
		}
		candidates = append(candidates, score(f, present))
	}
	return candidates
}

func score(f formats.Format, present map[string]bool) Candidate {
	c := Candidate{Format: f}
	for _, h := range f.Required {
		if !present[h] {
			c.Missing = append(c.Missing, h)
		}
	}
	if !c.Eligible() {
		return c
	}

	strongHits := 0
	for _, h := range f.Strong {
		if present[h] {
			strongHits++
			c.Matched = append(c.Matched, h)
		}
	}
	commonHits := 0
	for _, h := range f.Common {
		if present[h] {
			commonHits++
			c.Matched = append(c.Matched, h)
		}
	}

	c.Score = float64(strongHits)*f.StrongWeight + float64(commonHits)*f.CommonWeight
	if strongHits > 0 {
		c.Score += strongBonus
	}
	return c
}

// Headers picks the best-scoring eligible format for a header set. The
// comparison is strict, so an exact tie keeps the earlier registry entry.
func Headers(headers []string) (Candidate, error) {
	var best Candidate
	found := false
	for _, c := range ScoreAll(headers) {
		if !c.Eligible() || c.Score < Threshold {
			continue
		}
		if !found || c.Score > best.Score {
			best = c
			found = true
		}
	}
	if !found {
		msg := fmt.Sprintf("no format matched %d headers; rerun with an explicit --format", len(headers))
		return Candidate{}, services.Wrap(services.ErrValidation, "detect", "headers", msg, nil)
	}
	return best, nil
}

// Content inspects raw file content for signature-detected formats such as
// the MTGO XML deck export. Only the leading window is examined.
func Content(data []byte) (formats.Format, bool) {
	window := data
	if len(window) > signatureWindow {
		window = window[:signatureWindow]
	}
	text := string(window)
	for _, f := range formats.Registry() {
		if !f.IsSignature() {
			continue
		}
		if strings.Contains(text, f.Signature) {
			return f, true
		}
	}
	return formats.Format{}, false
}
