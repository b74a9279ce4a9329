package slides_test

import (
	"errors"
	"strings"
	"testing"

	"lyricpro/internal/failure"
	"lyricpro/internal/ident"
	"lyricpro/internal/lyrics"
	"lyricpro/internal/palette"
	"lyricpro/internal/slides"
	"lyricpro/internal/style"
)

func testTemplate() *style.Template {
	return &style.Template{
		Font:            style.Font{Name: "HelveticaNeue-Bold", Family: "Helvetica Neue", Size: 72, Bold: true},
		TextColor:       palette.Color{Red: 1, Green: 1, Blue: 1, Alpha: 1},
		Alignment:       style.AlignCenter,
		Bounds:          style.Rect{Origin: style.Point{X: 60, Y: 600}, Size: style.Size{Width: 1800, Height: 420}},
		SlideSize:       style.Size{Width: 1920, Height: 1080},
		BackgroundColor: palette.Color{Alpha: 1},
		DrawsBackground: true,
		Source:          style.Source{ElementName: "Lyrics"},
	}
}

func TestBuildCopiesTemplateStyle(t *testing.T) {
	tmpl := testTemplate()
	b := slides.NewBuilder(tmpl, ident.New(ident.WithSource(ident.Seeded("build"))))

	rec, err := b.Build("Verse 1", lyrics.Slide{Lines: []string{"Amazing grace how sweet the sound", "That saved a wretch like me"}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if rec.Section != "Verse 1" || len(rec.Lines) != 2 {
		t.Fatalf("unexpected record %+v", rec)
	}
	if len(rec.Elements) != 1 {
		t.Fatalf("expected one text element, got %d", len(rec.Elements))
	}
	el := rec.Elements[0]
	if el.Font != tmpl.Font || el.TextColor != tmpl.TextColor || el.Alignment != tmpl.Alignment || el.Bounds != tmpl.Bounds {
		t.Fatalf("element style differs from template: %+v", el)
	}
	if el.Capitalization != slides.CapitalizationNone {
		t.Fatalf("expected capitalization none, got %s", el.Capitalization)
	}
	if rec.Size != tmpl.SlideSize || !rec.DrawsBackground || rec.Hidden {
		t.Fatalf("unexpected slide attributes %+v", rec)
	}

	ids := map[string]bool{}
	for _, id := range []string{rec.ID, rec.ActionID, rec.SlideID, el.ID} {
		if id == "" || ids[id] {
			t.Fatalf("identifiers not unique: %q", id)
		}
		ids[id] = true
	}

	rtf := string(el.RTF)
	if !strings.Contains(rtf, `Amazing grace how sweet the sound\par That saved a wretch like me}`) {
		t.Fatalf("lines not joined with paragraph break: %s", rtf)
	}
	if strings.Contains(rtf, "\n") {
		t.Fatal("rtf payload contains a literal newline")
	}
}

func TestBuildOneLineSlide(t *testing.T) {
	b := slides.NewBuilder(testTemplate(), ident.New())
	rec, err := b.Build("Chorus", lyrics.Slide{Lines: []string{"Alone"}})
	if err != nil {
		t.Fatal(err)
	}
	if rec.Text() != "Alone" || strings.Contains(string(rec.Elements[0].RTF), `\par `) {
		t.Fatalf("unexpected one-line slide %q", rec.Elements[0].RTF)
	}
}

func TestBuildRejectsEmptySlide(t *testing.T) {
	b := slides.NewBuilder(testTemplate(), ident.New())
	_, err := b.Build("Verse", lyrics.Slide{})
	if !errors.Is(err, failure.ErrMalformedInput) {
		t.Fatalf("expected malformed input, got %v", err)
	}
}

func TestBuildReportsIdentifierCollision(t *testing.T) {
	constant := func() (string, error) { return "SAME", nil }
	b := slides.NewBuilder(testTemplate(), ident.New(ident.WithSource(constant)))
	_, err := b.Build("Verse", lyrics.Slide{Lines: []string{"a", "b"}})
	if !errors.Is(err, failure.ErrIdentifierCollision) {
		t.Fatalf("expected identifier collision, got %v", err)
	}
}

func TestBuildDoesNotAliasInputLines(t *testing.T) {
	b := slides.NewBuilder(testTemplate(), ident.New())
	in := lyrics.Slide{Lines: []string{"one", "two"}}
	rec, err := b.Build("Verse", in)
	if err != nil {
		t.Fatal(err)
	}
	in.Lines[0] = "changed"
	if rec.Lines[0] != "one" {
		t.Fatal("record shares the input slice")
	}
}
