// Package convert runs a full inventory conversion end to end: environment
// preflight, input parsing, format selection, row normalization, set-code
// annotation, catalog lookup, reconciliation, and CSV export. Row-level
// failures stay inside the report; only structural problems surface as
// errors.
package convert
