// Package language provides unified language code normalization and mapping.
//
// All language-related conversions (printed-language codes, ISO 639-2
// aliases, vendor spellings, display names) are consolidated here so that
// row normalization and match validation agree on what counts as the same
// language.
package language
