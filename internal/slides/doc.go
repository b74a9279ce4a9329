// Package slides builds slide records from parsed lyrics.
//
// Every record carries a single text element whose font, size, color,
// alignment, and bounds are copied from the template. Capitalization is
// always reset to none so lyrics display exactly as written. Identifiers for
// the cue, action, slide, and element come from one shared ident.Generator.
package slides
