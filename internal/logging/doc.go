// Package logging assembles the slog loggers used by lyricpro.
//
// Console output is a compact single-line format; JSON output follows the
// same field names. Either goes to stderr, and every record can also be
// appended as JSON to a log file. Context helpers tag lines with the run
// identifier and pipeline stage. NewNop serves tests and wiring that must
// not fail.
package logging
