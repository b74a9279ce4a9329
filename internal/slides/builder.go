package slides

import (
	"fmt"

	"lyricpro/internal/failure"
	"lyricpro/internal/ident"
	"lyricpro/internal/lyrics"
	"lyricpro/internal/style"
)

// Builder turns lyric slides into slide records styled after a template.
type Builder struct {
	tmpl *style.Template
	ids  *ident.Generator
}

// NewBuilder returns a Builder that copies styling from tmpl and draws every
// identifier from ids.
func NewBuilder(tmpl *style.Template, ids *ident.Generator) *Builder {
	return &Builder{tmpl: tmpl, ids: ids}
}

// Build creates the record for one slide of section.
func (b *Builder) Build(section string, s lyrics.Slide) (Record, error) {
	if len(s.Lines) == 0 || len(s.Lines) > lyrics.LinesPerSlide {
		return Record{}, failure.Wrap(failure.ErrMalformedInput, "build", "slide",
			fmt.Sprintf("section %q: slide at line %d has %d lines", section, s.Line, len(s.Lines)), nil)
	}

	var rec Record
	for _, dst := range []*string{&rec.ID, &rec.ActionID, &rec.SlideID} {
		id, err := b.ids.Next()
		if err != nil {
			return Record{}, err
		}
		*dst = id
	}
	elementID, err := b.ids.Next()
	if err != nil {
		return Record{}, err
	}

	t := b.tmpl
	lines := append([]string(nil), s.Lines...)
	rec.Section = section
	rec.Lines = lines
	rec.BackgroundColor = t.BackgroundColor
	rec.DrawsBackground = t.DrawsBackground
	rec.Size = t.SlideSize
	rec.Elements = []TextElement{{
		ID:             elementID,
		Name:           elementName(t),
		RTF:            EncodeRTF(lines, t),
		Font:           t.Font,
		TextColor:      t.TextColor,
		Alignment:      t.Alignment,
		Capitalization: CapitalizationNone,
		Bounds:         t.Bounds,
	}}
	return rec, nil
}

func elementName(t *style.Template) string {
	if t.Source.ElementName != "" {
		return t.Source.ElementName
	}
	return "Lyrics"
}
