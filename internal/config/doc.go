// Package config loads, normalizes, and validates lyricpro configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the LYRICPRO_TEMPLATE environment fallback for the
// default template. Obtain settings through Load so callers always see
// absolute paths and canonical log settings.
package config
