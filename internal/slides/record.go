package slides

import (
	"fmt"

	"lyricpro/internal/palette"
	"lyricpro/internal/style"
)

// Capitalization is the text transform applied when a slide is displayed.
type Capitalization int

const (
	CapitalizationNone Capitalization = iota
	CapitalizationAllCaps
	CapitalizationSmallCaps
	CapitalizationTitleCase
	CapitalizationStartCase
)

func (c Capitalization) String() string {
	switch c {
	case CapitalizationNone:
		return "none"
	case CapitalizationAllCaps:
		return "all_caps"
	case CapitalizationSmallCaps:
		return "small_caps"
	case CapitalizationTitleCase:
		return "title_case"
	case CapitalizationStartCase:
		return "start_case"
	default:
		return fmt.Sprintf("capitalization(%d)", int(c))
	}
}

// TextElement is a styled text box on a slide.
type TextElement struct {
	ID             string
	Name           string
	RTF            []byte
	Font           style.Font
	TextColor      palette.Color
	Alignment      style.Alignment
	Capitalization Capitalization
	Bounds         style.Rect
}

// Record is one generated slide. ID identifies the cue that shows the slide;
// ActionID and SlideID identify the nested action and base slide.
type Record struct {
	ID              string
	ActionID        string
	SlideID         string
	Section         string
	Lines           []string
	Elements        []TextElement
	BackgroundColor palette.Color
	DrawsBackground bool
	Hidden          bool
	Size            style.Size
}

// Text joins the slide lines with newlines, for display.
func (r Record) Text() string {
	switch len(r.Lines) {
	case 0:
		return ""
	case 1:
		return r.Lines[0]
	default:
		return r.Lines[0] + "\n" + r.Lines[1]
	}
}
