// Package docwriter turns assembled cue groups into an output document.
//
// Merge splices generated cue groups and cues into the template, replacing
// only the body fields; every other template field is copied byte for byte.
// Serialize checks the result against the fields the presentation
// application requires, and Write stores it atomically under an advisory
// lock.
package docwriter
