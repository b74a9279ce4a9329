// Package ident generates the identifiers attached to slides, actions, text
// elements, and cue groups.
//
// All of them share one namespace per conversion run. The Generator remembers
// every value it has issued plus any identifiers reserved from the template,
// and treats a repeat as a fatal collision rather than silently retrying.
package ident
