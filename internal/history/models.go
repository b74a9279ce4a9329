package history

import "time"

// Status is the outcome of one conversion run.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Entry is one row of the conversion log.
type Entry struct {
	ID           int64
	RunID        string
	InputPath    string
	TemplatePath string
	OutputPath   string
	Title        string
	Status       Status
	Groups       int
	Slides       int
	Bytes        int
	Duration     time.Duration
	ErrorKind    string
	ErrorMessage string
	CreatedAt    time.Time
}

// Succeeded reports whether the run wrote a document.
func (e Entry) Succeeded() bool {
	return e.Status == StatusSucceeded
}
