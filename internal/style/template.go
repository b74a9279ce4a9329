package style

import (
	"fmt"

	"lyricpro/internal/palette"
)

// Alignment is a paragraph alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
	AlignJustified
	AlignNatural
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	case AlignJustified:
		return "justified"
	case AlignNatural:
		return "natural"
	default:
		return fmt.Sprintf("alignment(%d)", int(a))
	}
}

// Font describes the typeface used for slide text.
type Font struct {
	Name   string
	Family string
	Face   string
	Size   float64
	Bold   bool
	Italic bool
}

// DisplayName prefers the family name, which is what the application shows.
func (f Font) DisplayName() string {
	if f.Family != "" {
		return f.Family
	}
	return f.Name
}

// Point, Size, and Rect describe element geometry in slide pixels.
type Point struct {
	X, Y float64
}

type Size struct {
	Width, Height float64
}

type Rect struct {
	Origin Point
	Size   Size
}

// Source records where in the template the style was found.
type Source struct {
	Cue         int
	CueName     string
	Element     int
	ElementName string
}

// Template holds the styling copied from a template document. It is built once
// per conversion and treated as read-only; the raw prototypes are only
// reachable through Prototypes, which returns copies.
type Template struct {
	Font            Font
	TextColor       palette.Color
	Alignment       Alignment
	Bounds          Rect
	SlideSize       Size
	BackgroundColor palette.Color
	DrawsBackground bool
	Source          Source

	proto Prototypes
}

// Prototypes are the encoded template records that generated slides are
// cloned from, so styling the converter does not model (stroke, shadow,
// margins, notes formatting) carries over unchanged.
type Prototypes struct {
	Cue               []byte
	Action            []byte
	PresentationSlide []byte
	Slide             []byte
	SlideElement      []byte
	Element           []byte
}

// Prototypes returns copies of the template records.
func (t *Template) Prototypes() Prototypes {
	return Prototypes{
		Cue:               clone(t.proto.Cue),
		Action:            clone(t.proto.Action),
		PresentationSlide: clone(t.proto.PresentationSlide),
		Slide:             clone(t.proto.Slide),
		SlideElement:      clone(t.proto.SlideElement),
		Element:           clone(t.proto.Element),
	}
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
