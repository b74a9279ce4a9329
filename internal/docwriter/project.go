package docwriter

import (
	"google.golang.org/protobuf/encoding/protowire"

	"lyricpro/internal/failure"
	"lyricpro/internal/palette"
	"lyricpro/internal/prodoc"
	"lyricpro/internal/slides"
	"lyricpro/internal/style"
)

// projectCue encodes rec as an rv.data.Cue holding one presentation-slide
// action.
func (p prototypes) projectCue(rec slides.Record) (prodoc.Message, error) {
	slide, err := p.projectSlide(rec)
	if err != nil {
		return prodoc.Message{}, err
	}
	presSlide := p.presSlide.SetMessage(prodoc.PresentationSlideBaseSlide, slide)
	action := p.action.
		Remove(prodoc.ActionName).
		SetMessage(prodoc.ActionUUID, prodoc.EncodeUUID(rec.ActionID)).
		SetBool(prodoc.ActionIsEnabled, true).
		SetVarint(prodoc.ActionType, prodoc.ActionTypePresentationSlide).
		SetMessage(prodoc.ActionSlide, prodoc.Message{}.SetMessage(prodoc.SlideTypePresentation, presSlide))

	cue := p.cue.
		Remove(prodoc.CueName, prodoc.CueActions).
		SetMessage(prodoc.CueUUID, prodoc.EncodeUUID(rec.ID)).
		SetMessage(prodoc.CueCompletionTargetUUID, prodoc.EncodeUUID(zeroUUID)).
		SetMessage(prodoc.CueCompletionActionUUID, prodoc.EncodeUUID(zeroUUID)).
		SetBool(prodoc.CueIsEnabled, true)
	return insertRepeated(cue, prodoc.CueActions, action), nil
}

func (p prototypes) projectSlide(rec slides.Record) (prodoc.Message, error) {
	base := p.slide.
		Remove(prodoc.SlideElements, prodoc.SlideElementBuildOrder).
		SetBool(prodoc.SlideDrawsBackgroundColor, rec.DrawsBackground).
		SetMessage(prodoc.SlideBackgroundColor, prodoc.EncodeColor(wireColor(rec.BackgroundColor))).
		SetMessage(prodoc.SlideSize, prodoc.EncodeSize(prodoc.Size(rec.Size))).
		SetMessage(prodoc.SlideUUID, prodoc.EncodeUUID(rec.SlideID))

	elements := make([]prodoc.Message, 0, len(rec.Elements))
	for _, el := range rec.Elements {
		element, err := p.projectElement(el, rec.Hidden)
		if err != nil {
			return prodoc.Message{}, err
		}
		elements = append(elements, p.slideElement.SetMessage(prodoc.SlideElementElement, element))
	}
	return insertRepeated(base, prodoc.SlideElements, elements...), nil
}

func (p prototypes) projectElement(el slides.TextElement, hidden bool) (prodoc.Message, error) {
	text, _, err := p.element.Message(prodoc.ElementText)
	if err != nil {
		return prodoc.Message{}, failure.Wrap(failure.ErrSerialization, "merge", "element text", el.Name, err)
	}
	attrs, _, err := text.Message(prodoc.TextAttributes)
	if err != nil {
		return prodoc.Message{}, failure.Wrap(failure.ErrSerialization, "merge", "text attributes", el.Name, err)
	}
	font, _, err := attrs.Message(prodoc.AttributesFont)
	if err != nil {
		return prodoc.Message{}, failure.Wrap(failure.ErrSerialization, "merge", "font", el.Name, err)
	}
	para, _, err := attrs.Message(prodoc.AttributesParagraphStyle)
	if err != nil {
		return prodoc.Message{}, failure.Wrap(failure.ErrSerialization, "merge", "paragraph style", el.Name, err)
	}

	font = font.
		SetString(prodoc.FontName, el.Font.Name).
		SetFloat64(prodoc.FontSize, el.Font.Size).
		SetBool(prodoc.FontItalic, el.Font.Italic).
		SetBool(prodoc.FontBold, el.Font.Bold).
		SetString(prodoc.FontFamily, el.Font.Family).
		SetString(prodoc.FontFace, el.Font.Face)
	para = para.SetVarint(prodoc.ParagraphStyleAlignment, uint64(el.Alignment))
	attrs = attrs.
		SetMessage(prodoc.AttributesFont, font).
		SetVarint(prodoc.AttributesCapitalization, uint64(el.Capitalization)).
		SetMessage(prodoc.AttributesParagraphStyle, para).
		SetMessage(prodoc.AttributesTextSolidFill, prodoc.EncodeColor(wireColor(el.TextColor)))
	text = text.
		SetMessage(prodoc.TextAttributes, attrs).
		SetBytes(prodoc.TextRTFData, el.RTF)

	return p.element.
		SetMessage(prodoc.ElementUUID, prodoc.EncodeUUID(el.ID)).
		SetString(prodoc.ElementName, el.Name).
		SetMessage(prodoc.ElementBounds, prodoc.EncodeRect(wireRect(el.Bounds))).
		SetBool(prodoc.ElementHidden, hidden).
		SetMessage(prodoc.ElementText, text), nil
}

// insertRepeated places values as repeated field num, in field-number order
// relative to the rest of m. m must not already contain num.
func insertRepeated(m prodoc.Message, num protowire.Number, values ...prodoc.Message) prodoc.Message {
	var before, after []prodoc.Field
	for _, f := range m.Fields() {
		if f.Num < num {
			before = append(before, f)
		} else {
			after = append(after, f)
		}
	}
	out := prodoc.Message{}.Append(before...)
	for _, v := range values {
		out = out.Append(prodoc.MessageField(num, v))
	}
	return out.Append(after...)
}

func wireColor(c palette.Color) prodoc.Color {
	return prodoc.Color{Red: c.Red, Green: c.Green, Blue: c.Blue, Alpha: c.Alpha}
}

func wireRect(r style.Rect) prodoc.Rect {
	return prodoc.Rect{Origin: prodoc.Point(r.Origin), Size: prodoc.Size(r.Size)}
}
