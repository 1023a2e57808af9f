// Package rowsource parses collection export files into a uniform tabular
// document. CSV and XLSX inputs keep their own header row; the MTGO XML deck
// export has none, so its parser synthesizes one, which keeps data rows
// starting at file row 2 across every input kind.
package rowsource
