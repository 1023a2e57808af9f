package reconcile

import (
	"errors"
	"testing"

	"deckport/internal/cards"
	"deckport/internal/lookup"
	"deckport/internal/lookup/scryfall"
)

func success(name string, warnings ...string) lookup.Outcome {
	return lookup.Outcome{
		Row:   cards.Row{Name: name, Warnings: warnings},
		Match: &scryfall.Card{Name: name},
	}
}

func failure(name string) lookup.Outcome {
	return lookup.Outcome{
		Row: cards.Row{Name: name},
		Err: errors.New("no match"),
	}
}

func names(outcomes []lookup.Outcome) []string {
	out := make([]string, len(outcomes))
	for i := range outcomes {
		out[i] = outcomes[i].DisplayName()
	}
	return out
}

func TestOrderBandsAndAlphabetizes(t *testing.T) {
	outcomes := []lookup.Outcome{
		success("Zealous Conscripts"),
		failure("Banding Relic"),
		success("opt", "swapped printing"),
		success("Ancestral Vision"),
		failure("aether Mishap"),
		success("Llanowar Elves", "corrected set code"),
	}

	Order(outcomes)

	want := []string{
		"aether Mishap",      // failures first
		"Banding Relic",
		"Llanowar Elves",     // then successes with warnings
		"opt",
		"Ancestral Vision",   // then clean successes
		"Zealous Conscripts",
	}
	got := names(outcomes)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestOrderAssignsSequentialOutputRows(t *testing.T) {
	outcomes := []lookup.Outcome{
		success("B"),
		failure("C"),
		success("A"),
	}
	Order(outcomes)
	for i := range outcomes {
		if outcomes[i].OutputRow != i+2 {
			t.Fatalf("output row %d = %d, want %d", i, outcomes[i].OutputRow, i+2)
		}
	}
}

// Ordering twice must be a no-op so retried exports stay byte-identical.
func TestOrderIdempotent(t *testing.T) {
	outcomes := []lookup.Outcome{
		success("Opt"),
		failure("Ponder"),
		success("Opt", "set differs"),
		failure("Ponder"),
	}
	Order(outcomes)
	first := names(outcomes)
	rows := make([]int, len(outcomes))
	for i := range outcomes {
		rows[i] = outcomes[i].Row.SourceRow
	}

	Order(outcomes)
	for i, name := range names(outcomes) {
		if name != first[i] {
			t.Fatalf("second ordering moved %q", name)
		}
	}
	for i := range outcomes {
		if outcomes[i].Row.SourceRow != rows[i] {
			t.Fatal("second ordering reordered tied rows")
		}
	}
}

// The resolved card name, not the export's spelling, drives the sort.
func TestOrderUsesResolvedName(t *testing.T) {
	fixed := lookup.Outcome{
		Row:   cards.Row{Name: "optt"},
		Match: &scryfall.Card{Name: "Opt"},
	}
	outcomes := []lookup.Outcome{success("Ponder"), fixed}
	Order(outcomes)
	if outcomes[0].DisplayName() != "Opt" {
		t.Fatalf("order = %v", names(outcomes))
	}
}
