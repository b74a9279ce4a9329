package failure

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInputAccess          = errors.New("input access error")
	ErrMalformedInput       = errors.New("malformed input")
	ErrTemplateStyleMissing = errors.New("template style missing")
	ErrIdentifierCollision  = errors.New("identifier collision")
	ErrSerialization        = errors.New("serialization error")
	ErrOutputWrite          = errors.New("output write failure")
)

// Exit codes reported by the CLI for each failure marker.
const (
	ExitOK                  = 0
	ExitGeneral             = 1
	ExitInputAccess         = 2
	ExitMalformedInput      = 3
	ExitTemplateStyle       = 4
	ExitIdentifierCollision = 5
	ExitOutput              = 6
)

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker for later classification. The marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		if err == nil {
			return errors.New(detail)
		}
		return fmt.Errorf("%s: %w", detail, err)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// MalformedInputError reports a structural problem in the lyrics text.
// Line is 1-based; zero means the problem is not tied to a single line.
type MalformedInputError struct {
	Path   string
	Line   int
	Reason string
}

func (e *MalformedInputError) Error() string {
	var b strings.Builder
	b.WriteString(ErrMalformedInput.Error())
	b.WriteString(": ")
	if e.Path != "" {
		b.WriteString(e.Path)
		if e.Line > 0 {
			fmt.Fprintf(&b, ":%d", e.Line)
		}
		b.WriteString(": ")
	} else if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	b.WriteString(e.Reason)
	return b.String()
}

func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// ExitCode maps a conversion error onto the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInputAccess):
		return ExitInputAccess
	case errors.Is(err, ErrMalformedInput):
		return ExitMalformedInput
	case errors.Is(err, ErrTemplateStyleMissing):
		return ExitTemplateStyle
	case errors.Is(err, ErrIdentifierCollision):
		return ExitIdentifierCollision
	case errors.Is(err, ErrSerialization), errors.Is(err, ErrOutputWrite):
		return ExitOutput
	default:
		return ExitGeneral
	}
}

// Kind returns a short stable label for the error class, used in logs and
// the history table.
func Kind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInputAccess):
		return "input_access"
	case errors.Is(err, ErrMalformedInput):
		return "malformed_input"
	case errors.Is(err, ErrTemplateStyleMissing):
		return "template_style_missing"
	case errors.Is(err, ErrIdentifierCollision):
		return "identifier_collision"
	case errors.Is(err, ErrSerialization):
		return "serialization"
	case errors.Is(err, ErrOutputWrite):
		return "output_write"
	default:
		return "error"
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "conversion failure"
	}
	return strings.Join(parts, ": ")
}
