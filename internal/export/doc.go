// Package export writes reconciled conversion outcomes as the canonical
// CSV the rest of the toolchain consumes. One row per input row, resolved
// rows carrying the matched printing's data and failed rows echoing their
// original fields alongside a failure status.
package export
