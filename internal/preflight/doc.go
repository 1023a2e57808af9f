// Package preflight validates the environment before a conversion run
// starts: the input file must be readable, the output directory writable,
// and the card database URL well formed. Checks return Result values
// rather than errors so callers can report every failure at once.
package preflight
