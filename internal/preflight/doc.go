// Package preflight provides readiness checks for the files and directories
// a conversion depends on.
//
// The CLI "lyricpro doctor" command runs RunAll and prints each Result. The
// template check loads the document and extracts its style, so a template
// that passes here will not fail a conversion with a missing-style error.
package preflight
