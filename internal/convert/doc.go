// Package convert runs the lyrics-to-presentation pipeline end to end.
//
// Run parses the lyrics file, loads the template and extracts its style,
// builds and groups slides, merges them into the template body, validates the
// result and finally writes it atomically. Any failure returns the failure
// marker of the stage that produced it and leaves the output path untouched.
// PreviewFile stops after parsing.
package convert
