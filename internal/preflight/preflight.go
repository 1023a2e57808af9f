package preflight

import (
	"strings"

	"deckport/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the checks a conversion depends on before any network
// call: the input file must exist and be readable, the directory receiving
// the output must be writable, and the catalog endpoint must be a usable
// URL. Failures here are setup problems, not row problems, so the caller
// reports them and stops instead of starting a doomed conversion.
func RunAll(cfg *config.Config, inputPath, outputPath string) []Result {
	results := []Result{
		CheckInputFile(inputPath),
		CheckOutputTarget(outputPath),
	}
	if cfg != nil {
		results = append(results, CheckServiceURL(cfg.Scryfall.BaseURL))
	}
	return results
}

// Failures filters a result set down to the checks that did not pass.
func Failures(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}

// Describe renders checks as a single diagnostic line.
func Describe(results []Result) string {
	parts := make([]string, 0, len(results))
	for _, r := range results {
		parts = append(parts, r.Name+": "+r.Detail)
	}
	return strings.Join(parts, "; ")
}
