package style

import (
	"fmt"
	"os"
	"strings"

	"lyricpro/internal/failure"
	"lyricpro/internal/palette"
	"lyricpro/internal/prodoc"
)

// LoadFile reads a template document and extracts its style.
func LoadFile(path string) (prodoc.Presentation, *Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return prodoc.Presentation{}, nil, failure.Wrap(failure.ErrInputAccess, "template", "read template", path, err)
	}
	doc, err := prodoc.ParsePresentation(data)
	if err != nil {
		return prodoc.Presentation{}, nil, failure.Wrap(failure.ErrTemplateStyleMissing, "template", "decode template", path, err)
	}
	tmpl, err := Extract(doc)
	if err != nil {
		return prodoc.Presentation{}, nil, err
	}
	return doc, tmpl, nil
}

// Extract finds the first slide text element in doc that carries a font, a
// size, a text fill, and bounds, and copies its styling. Records that fail to
// decode are skipped. The document itself is never modified.
func Extract(doc prodoc.Presentation) (*Template, error) {
	cues, err := doc.Cues()
	if err != nil {
		return nil, failure.Wrap(failure.ErrTemplateStyleMissing, "template", "read cues", "", err)
	}
	if len(cues) == 0 {
		return nil, failure.Wrap(failure.ErrTemplateStyleMissing, "template", "", "template has no slides", nil)
	}

	for ci, cue := range cues {
		actions, err := cue.Messages(prodoc.CueActions)
		if err != nil {
			continue
		}
		for _, action := range actions {
			tmpl, ok := fromAction(cue, action)
			if !ok {
				continue
			}
			tmpl.Source.Cue = ci
			tmpl.Source.CueName = cue.String(prodoc.CueName)
			return &tmpl, nil
		}
	}
	return nil, failure.Wrap(failure.ErrTemplateStyleMissing, "template", "",
		fmt.Sprintf("none of %d slides has a styled text element", len(cues)), nil)
}

func fromAction(cue, action prodoc.Message) (Template, bool) {
	slideType, ok, err := action.Message(prodoc.ActionSlide)
	if !ok || err != nil {
		return Template{}, false
	}
	presSlide, ok, err := slideType.Message(prodoc.SlideTypePresentation)
	if !ok || err != nil {
		return Template{}, false
	}
	base, ok, err := presSlide.Message(prodoc.PresentationSlideBaseSlide)
	if !ok || err != nil {
		return Template{}, false
	}
	elements, err := base.Messages(prodoc.SlideElements)
	if err != nil {
		return Template{}, false
	}

	for ei, slideElement := range elements {
		element, ok, err := slideElement.Message(prodoc.SlideElementElement)
		if !ok || err != nil {
			continue
		}
		tmpl, ok := fromElement(element)
		if !ok {
			continue
		}
		tmpl.Source.Element = ei
		tmpl.Source.ElementName = element.String(prodoc.ElementName)

		if size, ok, err := base.Message(prodoc.SlideSize); ok && err == nil {
			tmpl.SlideSize = Size(prodoc.DecodeSize(size))
		}
		if bg, ok, err := base.Message(prodoc.SlideBackgroundColor); ok && err == nil {
			tmpl.BackgroundColor = fromWire(prodoc.DecodeColor(bg), "background")
		}
		tmpl.DrawsBackground = base.Bool(prodoc.SlideDrawsBackgroundColor)

		tmpl.proto = Prototypes{
			Cue:               cue.Marshal(),
			Action:            action.Marshal(),
			PresentationSlide: presSlide.Marshal(),
			Slide:             base.Marshal(),
			SlideElement:      slideElement.Marshal(),
			Element:           element.Marshal(),
		}
		return tmpl, true
	}
	return Template{}, false
}

func fromElement(element prodoc.Message) (Template, bool) {
	text, ok, err := element.Message(prodoc.ElementText)
	if !ok || err != nil {
		return Template{}, false
	}
	attrs, ok, err := text.Message(prodoc.TextAttributes)
	if !ok || err != nil {
		return Template{}, false
	}
	font, ok, err := attrs.Message(prodoc.AttributesFont)
	if !ok || err != nil {
		return Template{}, false
	}
	size, _ := font.Float64(prodoc.FontSize)
	f := Font{
		Name:   strings.TrimSpace(font.String(prodoc.FontName)),
		Family: strings.TrimSpace(font.String(prodoc.FontFamily)),
		Face:   strings.TrimSpace(font.String(prodoc.FontFace)),
		Size:   size,
		Bold:   font.Bool(prodoc.FontBold),
		Italic: font.Bool(prodoc.FontItalic),
	}
	if (f.Name == "" && f.Family == "") || f.Size <= 0 {
		return Template{}, false
	}

	fill, ok, err := attrs.Message(prodoc.AttributesTextSolidFill)
	if !ok || err != nil {
		return Template{}, false
	}
	boundsMsg, ok, err := element.Message(prodoc.ElementBounds)
	if !ok || err != nil {
		return Template{}, false
	}
	bounds, err := prodoc.DecodeRect(boundsMsg)
	if err != nil || bounds.Size.Width <= 0 || bounds.Size.Height <= 0 {
		return Template{}, false
	}

	var alignment Alignment
	if para, ok, err := attrs.Message(prodoc.AttributesParagraphStyle); ok && err == nil {
		v, _ := para.Varint(prodoc.ParagraphStyleAlignment)
		alignment = Alignment(v)
	}

	return Template{
		Font:      f,
		TextColor: fromWire(prodoc.DecodeColor(fill), "text"),
		Alignment: alignment,
		Bounds: Rect{
			Origin: Point(bounds.Origin),
			Size:   Size(bounds.Size),
		},
	}, true
}

func fromWire(c prodoc.Color, name string) palette.Color {
	return palette.Color{Name: name, Red: c.Red, Green: c.Green, Blue: c.Blue, Alpha: c.Alpha}
}
