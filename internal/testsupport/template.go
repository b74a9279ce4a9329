package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"

	"lyricpro/internal/prodoc"
)

// Defaults used by NewTemplate.
const (
	TemplateUUID        = "5E1C7A0B-6F7C-4C38-9A52-0D9E3B0C11AA"
	TemplateName        = "Lyrics Template"
	TemplateArrangement = "A7A1D0C2-2B6D-4B0E-8A55-6C2E1F3D4B10"
	TemplateFontName    = "HelveticaNeue-Bold"
	TemplateFontFamily  = "Helvetica Neue"
	TemplateFontSize    = 72.0
	TemplateCueUUID     = "0C0A3B1E-4D41-4F6B-B2F4-6E0D5A3C7710"
	TemplateGroupUUID   = "9B3E1F22-0A7C-4B1D-8C9E-1D2F3A4B5C60"
)

// Field numbers of records the fixture writes that the converter itself never
// touches. They must survive a conversion byte for byte.
const (
	presentationCategory protowire.Number = 6
	presentationCCLI     protowire.Number = 15
	elementShadow        protowire.Number = 11
	textMargins          protowire.Number = 7
)

// TemplateSpec describes a synthetic template document.
type TemplateSpec struct {
	UUID        string
	Name        string
	Version     prodoc.Version
	FontName    string
	FontFamily  string
	FontSize    float64
	TextColor   prodoc.Color
	Alignment   uint64
	Bounds      prodoc.Rect
	SlideSize   prodoc.Size
	Background  prodoc.Color
	Unstyled    bool
	LeadingBare bool
}

// TemplateOption customizes a TemplateSpec.
type TemplateOption func(*TemplateSpec)

// WithoutStyle produces a template whose only text element has no font.
func WithoutStyle() TemplateOption {
	return func(s *TemplateSpec) {
		s.Unstyled = true
	}
}

// WithLeadingBareElement puts an element without text ahead of the styled one.
func WithLeadingBareElement() TemplateOption {
	return func(s *TemplateSpec) {
		s.LeadingBare = true
	}
}

// WithFont overrides the font of the styled element.
func WithFont(name, family string, size float64) TemplateOption {
	return func(s *TemplateSpec) {
		s.FontName = name
		s.FontFamily = family
		s.FontSize = size
	}
}

// WithAlignment overrides the paragraph alignment.
func WithAlignment(alignment uint64) TemplateOption {
	return func(s *TemplateSpec) {
		s.Alignment = alignment
	}
}

// WithVersion overrides the recorded application version.
func WithVersion(v prodoc.Version) TemplateOption {
	return func(s *TemplateSpec) {
		s.Version = v
	}
}

// DefaultTemplateSpec returns the TemplateSpec NewTemplate starts from.
func DefaultTemplateSpec() TemplateSpec {
	return TemplateSpec{
		UUID:       TemplateUUID,
		Name:       TemplateName,
		Version:    prodoc.Version{Major: 7, Minor: 16, Patch: 2, Build: "118489347"},
		FontName:   TemplateFontName,
		FontFamily: TemplateFontFamily,
		FontSize:   TemplateFontSize,
		TextColor:  prodoc.Color{Red: 1, Green: 1, Blue: 1, Alpha: 1},
		Alignment:  prodoc.AlignmentCenter,
		Bounds: prodoc.Rect{
			Origin: prodoc.Point{X: 60, Y: 600},
			Size:   prodoc.Size{Width: 1800, Height: 420},
		},
		SlideSize:  prodoc.Size{Width: 1920, Height: 1080},
		Background: prodoc.Color{Alpha: 1},
	}
}

// NewTemplate encodes a template document with one styled slide, an
// arrangement, and a few fields the converter has no reason to read.
func NewTemplate(opts ...TemplateOption) []byte {
	spec := DefaultTemplateSpec()
	for _, opt := range opts {
		opt(&spec)
	}
	return BuildTemplate(spec)
}

// BuildTemplate encodes spec.
func BuildTemplate(spec TemplateSpec) []byte {
	info := prodoc.Message{}.
		SetVarint(prodoc.ApplicationInfoPlatform, 2).
		SetVarint(prodoc.ApplicationInfoApplication, 1).
		SetMessage(prodoc.ApplicationInfoApplicationVersion, prodoc.EncodeVersion(spec.Version))

	arrangement := prodoc.Message{}.
		SetMessage(prodoc.ArrangementUUID, prodoc.EncodeUUID(TemplateArrangement)).
		SetString(prodoc.ArrangementName, "Default").
		Append(prodoc.MessageField(prodoc.ArrangementGroupIdentifiers, prodoc.EncodeUUID(TemplateGroupUUID)))

	group := prodoc.EncodeCueGroup(prodoc.CueGroup{
		Group: prodoc.Group{
			UUID:     TemplateGroupUUID,
			Name:     "Template",
			Color:    prodoc.Color{Red: 0.5, Green: 0.5, Blue: 0.5, Alpha: 1},
			HasColor: true,
		},
		CueIDs: []string{TemplateCueUUID},
	})

	doc := prodoc.Message{}.
		SetMessage(prodoc.PresentationApplicationInfo, info).
		SetMessage(prodoc.PresentationUUID, prodoc.EncodeUUID(spec.UUID)).
		SetString(prodoc.PresentationName, spec.Name).
		Append(prodoc.BytesField(presentationCategory, []byte("Song"))).
		SetMessage(prodoc.PresentationSelectedArrangement, prodoc.EncodeUUID(TemplateArrangement)).
		Append(prodoc.MessageField(prodoc.PresentationArrangements, arrangement)).
		Append(prodoc.MessageField(prodoc.PresentationCueGroups, group)).
		Append(prodoc.MessageField(prodoc.PresentationCues, templateCue(spec))).
		Append(prodoc.BytesField(presentationCCLI, []byte("ccli:0000000")))
	return doc.Marshal()
}

func templateCue(spec TemplateSpec) prodoc.Message {
	slide := prodoc.Message{}
	if spec.LeadingBare {
		bare := prodoc.Message{}.
			SetMessage(prodoc.ElementUUID, prodoc.EncodeUUID("1F00D0E1-0000-4000-8000-00000000B4E0")).
			SetString(prodoc.ElementName, "Logo").
			SetMessage(prodoc.ElementBounds, prodoc.EncodeRect(prodoc.Rect{Size: prodoc.Size{Width: 200, Height: 200}}))
		slide = slide.Append(prodoc.MessageField(prodoc.SlideElements,
			prodoc.Message{}.SetMessage(prodoc.SlideElementElement, bare)))
	}
	slide = slide.
		Append(prodoc.MessageField(prodoc.SlideElements,
			prodoc.Message{}.SetMessage(prodoc.SlideElementElement, templateElement(spec)))).
		SetBool(prodoc.SlideDrawsBackgroundColor, true).
		SetMessage(prodoc.SlideBackgroundColor, prodoc.EncodeColor(spec.Background)).
		SetMessage(prodoc.SlideSize, prodoc.EncodeSize(spec.SlideSize)).
		SetMessage(prodoc.SlideUUID, prodoc.EncodeUUID("3D2C1B0A-9F8E-4D7C-8B6A-5E4F3A2B1C0D"))

	presSlide := prodoc.Message{}.
		SetMessage(prodoc.PresentationSlideBaseSlide, slide).
		SetBytes(prodoc.PresentationSlideNotes, []byte("{\\rtf1 notes}"))
	action := prodoc.Message{}.
		SetMessage(prodoc.ActionUUID, prodoc.EncodeUUID("6A5B4C3D-2E1F-4A0B-9C8D-7E6F5A4B3C2D")).
		SetBool(prodoc.ActionIsEnabled, true).
		SetVarint(prodoc.ActionType, prodoc.ActionTypePresentationSlide).
		SetMessage(prodoc.ActionSlide, prodoc.Message{}.SetMessage(prodoc.SlideTypePresentation, presSlide))

	return prodoc.Message{}.
		SetMessage(prodoc.CueUUID, prodoc.EncodeUUID(TemplateCueUUID)).
		SetString(prodoc.CueName, "Template Slide").
		Append(prodoc.MessageField(prodoc.CueActions, action)).
		SetBool(prodoc.CueIsEnabled, true)
}

func templateElement(spec TemplateSpec) prodoc.Message {
	attrs := prodoc.Message{}
	if !spec.Unstyled {
		font := prodoc.Message{}.
			SetString(prodoc.FontName, spec.FontName).
			SetFloat64(prodoc.FontSize, spec.FontSize).
			SetBool(prodoc.FontBold, true).
			SetString(prodoc.FontFamily, spec.FontFamily).
			SetString(prodoc.FontFace, "Bold")
		attrs = attrs.SetMessage(prodoc.AttributesFont, font)
	}
	attrs = attrs.
		SetVarint(prodoc.AttributesCapitalization, prodoc.CapitalizationAllCaps).
		SetMessage(prodoc.AttributesParagraphStyle, prodoc.Message{}.SetVarint(prodoc.ParagraphStyleAlignment, spec.Alignment)).
		SetMessage(prodoc.AttributesTextSolidFill, prodoc.EncodeColor(spec.TextColor))

	text := prodoc.Message{}.
		SetMessage(prodoc.TextAttributes, attrs).
		SetBytes(prodoc.TextRTFData, []byte(`{\rtf0\ansi Template}`)).
		SetVarint(prodoc.TextVerticalAlignment, 1).
		Append(prodoc.BytesField(textMargins, []byte{0x09, 0, 0, 0, 0, 0, 0, 0x34, 0x40}))

	return prodoc.Message{}.
		SetMessage(prodoc.ElementUUID, prodoc.EncodeUUID("7B6A5C4D-3E2F-4B1A-8C9D-0E1F2A3B4C5D")).
		SetString(prodoc.ElementName, "Lyrics").
		SetMessage(prodoc.ElementBounds, prodoc.EncodeRect(spec.Bounds)).
		SetFloat64(prodoc.ElementOpacity, 1).
		Append(prodoc.BytesField(elementShadow, []byte("shadow"))).
		SetMessage(prodoc.ElementText, text)
}

// WriteTemplate writes a synthetic template into dir and returns its path.
func WriteTemplate(t testing.TB, dir string, opts ...TemplateOption) string {
	t.Helper()

	path := filepath.Join(dir, "template.pro")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, NewTemplate(opts...), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	return path
}

// WriteLyrics writes a lyrics text file into dir and returns its path.
func WriteLyrics(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
