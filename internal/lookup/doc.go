// Package lookup resolves normalized rows against the Scryfall card catalog.
//
// Resolution runs in three stages. Rows carrying only a name and collector
// number try a targeted search first, since the pair pins down a printing
// only when the search returns exactly one card. Everything else funnels into
// batched collection lookups keyed by the strongest identity evidence each
// row carries; returned cards are claimed back to their keys by content
// because the service does not preserve request order, and every row sharing
// a key re-validates the claimed card against its own supplied fields. A
// final pass verifies collection matches: declared languages that disagree
// with the printing trigger one corrective search, and fuzzy-repaired set
// codes tag the method and demote confidence.
//
// Failures stay row-scoped throughout: a row without evidence, a miss, a
// validation conflict, or an unreachable batch marks its own rows failed and
// the rest of the file keeps going.
package lookup
