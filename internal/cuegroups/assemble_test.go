package cuegroups_test

import (
	"errors"
	"strings"
	"testing"

	"lyricpro/internal/cuegroups"
	"lyricpro/internal/failure"
	"lyricpro/internal/ident"
	"lyricpro/internal/lyrics"
	"lyricpro/internal/palette"
	"lyricpro/internal/slides"
	"lyricpro/internal/style"
)

func parse(t *testing.T, text string) *lyrics.Song {
	t.Helper()
	song, err := lyrics.Parse(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return song
}

func template() *style.Template {
	return &style.Template{
		Font:      style.Font{Name: "Arial", Size: 60},
		TextColor: palette.Color{Red: 1, Green: 1, Blue: 1, Alpha: 1},
		Bounds:    style.Rect{Size: style.Size{Width: 1920, Height: 540}},
	}
}

func TestAssembleKeepsOrderAndRepeats(t *testing.T) {
	song := parse(t, `# Song Title: Test
[Verse 1]
a
b
c
[Chorus]
d
e
[Verse 1]
f
[Bridge]
`)
	ids := ident.New(ident.WithSource(ident.Seeded("assemble")))
	groups, err := cuegroups.Assemble(song, slides.NewBuilder(template(), ids), ids)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	wantNames := []string{"Verse 1", "Chorus", "Verse 1"}
	wantSlides := []int{2, 1, 1}
	if len(groups) != len(wantNames) {
		t.Fatalf("expected %d groups, got %d", len(wantNames), len(groups))
	}
	for i, g := range groups {
		if g.Name != wantNames[i] || len(g.Slides) != wantSlides[i] {
			t.Fatalf("group %d = %q with %d slides", i, g.Name, len(g.Slides))
		}
		if g.Color != palette.ForLabel(g.Name) {
			t.Fatalf("group %q has color %+v", g.Name, g.Color)
		}
	}
	if groups[0].ID == groups[2].ID || groups[0].AppGroupID == groups[2].AppGroupID {
		t.Fatal("repeated sections share identifiers")
	}
	if groups[0].Color != groups[2].Color {
		t.Fatal("repeated sections differ in color")
	}
	if got := cuegroups.SlideCount(groups); got != 4 {
		t.Fatalf("SlideCount = %d", got)
	}
	if groups[0].Slides[1].Text() != "c" {
		t.Fatalf("unexpected trailing slide %q", groups[0].Slides[1].Text())
	}
}

func TestAssembleIdentifiersAreUnique(t *testing.T) {
	song := parse(t, "[Verse]\n1\n2\n3\n4\n[Chorus]\n5\n6\n7\n")
	ids := ident.New()
	ids.Reserve("TEMPLATE-UUID")
	groups, err := cuegroups.Assemble(song, slides.NewBuilder(template(), ids), ids)
	if err != nil {
		t.Fatal(err)
	}
	seen := map[string]bool{"TEMPLATE-UUID": true}
	check := func(id string) {
		if id == "" || seen[id] {
			t.Fatalf("duplicate or empty identifier %q", id)
		}
		seen[id] = true
	}
	for _, g := range groups {
		check(g.ID)
		check(g.AppGroupID)
		for _, s := range g.Slides {
			check(s.ID)
			check(s.ActionID)
			check(s.SlideID)
			for _, el := range s.Elements {
				check(el.ID)
			}
		}
	}
	if ids.Issued() != len(seen)-1 {
		t.Fatalf("issued %d identifiers, saw %d", ids.Issued(), len(seen)-1)
	}
}

func TestAssemblePropagatesCollision(t *testing.T) {
	song := parse(t, "[Verse]\na\n")
	ids := ident.New(ident.WithSource(func() (string, error) { return "FIXED", nil }))
	_, err := cuegroups.Assemble(song, slides.NewBuilder(template(), ids), ids)
	if !errors.Is(err, failure.ErrIdentifierCollision) {
		t.Fatalf("expected identifier collision, got %v", err)
	}
}
