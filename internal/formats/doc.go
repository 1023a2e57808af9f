// Package formats defines the closed set of supported vendor export formats.
//
// Each format carries the header indicator sets the detector scores
// (required, strong, common), the weights those indicators contribute, and a
// static ordered list of field mappings: which column feeds which canonical
// row field, through which pure transform. Formats describing XML exports
// carry a content signature instead of header indicators.
//
// The registry order is meaningful: more specific formats come first and the
// generic fallback last, so score ties resolve toward the more specific
// format.
package formats
