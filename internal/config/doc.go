// Package config loads, normalizes, and validates deckport configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// SCRYFALL_BASE_URL. The Config type centralizes every knob the CLI needs,
// allowing output directories and card database settings to be discovered in
// one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
