// Package history keeps a local SQLite log of conversion runs.
//
// Each run, successful or not, appends one row carrying its paths, slide
// counts and failure kind. The CLI opens the store per invocation and lists
// recent rows with `lyricpro history`. Schema changes bump schemaVersion in
// schema.go; an older database must be deleted.
package history
