// Package prodoc reads and writes presentation documents at the wire level.
//
// Documents are protocol-buffer encoded rv.data records. Instead of generated
// bindings the package keeps each message as an ordered list of raw fields, so
// anything it does not understand is written back byte for byte. Typed helpers
// cover the handful of records the converter touches (UUID, Color, Rect,
// CueGroup); field numbers live in schema.go.
package prodoc
