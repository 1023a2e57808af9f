// Package reconcile fixes the order of resolved rows before export. The
// output leads with failures, follows with successes that carry warnings,
// and closes with clean rows, so the lines needing attention sit at the top
// of the file.
package reconcile

import (
	"sort"

	"deckport/internal/lookup"
	"deckport/internal/textutil"
)

const (
	bandFailed = iota
	bandWarned
	bandClean
)

func band(o *lookup.Outcome) int {
	switch {
	case !o.Success():
		return bandFailed
	case o.HasWarnings():
		return bandWarned
	default:
		return bandClean
	}
}

// Order sorts outcomes into their output order and assigns output row
// numbers, starting at 2 because the header occupies row 1. Within a band
// rows sort by folded display name; input order breaks remaining ties, so
// ordering an already ordered slice changes nothing.
func Order(outcomes []lookup.Outcome) {
	sort.SliceStable(outcomes, func(i, j int) bool {
		bi, bj := band(&outcomes[i]), band(&outcomes[j])
		if bi != bj {
			return bi < bj
		}
		return textutil.FoldName(outcomes[i].DisplayName()) < textutil.FoldName(outcomes[j].DisplayName())
	})
	for i := range outcomes {
		outcomes[i].OutputRow = i + 2
	}
}
