// Package normalize turns raw parsed rows into canonical card rows by
// applying a format's column mappings. Malformed numeric fields never fail a
// row here; they demote to warnings so the lookup stages can still work with
// whatever identity evidence survives.
package normalize
