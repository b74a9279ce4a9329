// Package failure defines the error taxonomy shared by every conversion stage.
//
// Stages tag their errors with one of the sentinel markers through Wrap so the
// CLI can report a distinct exit code per failure class without inspecting
// messages. None of these errors are retried: each one aborts the conversion
// before any output reaches the target path.
package failure
