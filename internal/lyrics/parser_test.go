package lyrics

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/text/encoding/unicode"

	"lyricpro/internal/failure"
)

const amazingGrace = `# Song Title: Amazing Grace

[Verse 1]
Amazing grace how sweet the sound
That saved a wretch like me

I once was lost but now am found
Was blind but now I see

[Chorus]
My chains are gone
I've been set free
`

func TestParseAmazingGrace(t *testing.T) {
	song, err := Parse(strings.NewReader(amazingGrace))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !song.HasTitle || song.Title != "Amazing Grace" {
		t.Fatalf("unexpected title %q", song.Title)
	}
	if len(song.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(song.Sections))
	}
	verse, chorus := song.Sections[0], song.Sections[1]
	if verse.Label != "Verse 1" || verse.Line != 3 {
		t.Fatalf("unexpected verse header %+v", verse)
	}
	if len(verse.Slides) != 2 || len(chorus.Slides) != 1 {
		t.Fatalf("unexpected slide counts %d/%d", len(verse.Slides), len(chorus.Slides))
	}
	want := []string{"I once was lost but now am found", "Was blind but now I see"}
	if !reflect.DeepEqual(verse.Slides[1].Lines, want) {
		t.Fatalf("got %q want %q", verse.Slides[1].Lines, want)
	}
	if verse.Slides[1].Line != 7 {
		t.Fatalf("expected second slide at line 7, got %d", verse.Slides[1].Line)
	}

	stats := song.Stats()
	if stats.Sections != 2 || stats.Slides != 3 || stats.Lines != 6 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestParseIsIdempotent(t *testing.T) {
	first, err := Parse(strings.NewReader(amazingGrace))
	if err != nil {
		t.Fatal(err)
	}
	second, err := Parse(strings.NewReader(amazingGrace))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical parse results")
	}
}

func TestParsePairsLinesAndKeepsOddTrailingLine(t *testing.T) {
	tests := []struct {
		name       string
		lines      int
		wantSlides int
		wantLast   int
	}{
		{"even", 4, 2, 2},
		{"odd", 5, 3, 1},
		{"single", 1, 1, 1},
		{"blank separated odd", 3, 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			b.WriteString("[Verse]\n")
			for i := 0; i < tt.lines; i++ {
				b.WriteString("line ")
				b.WriteString(strings.Repeat("x", i+1))
				b.WriteString("\n\n")
			}
			song, err := Parse(strings.NewReader(b.String()))
			if err != nil {
				t.Fatal(err)
			}
			slides := song.Sections[0].Slides
			if len(slides) != tt.wantSlides {
				t.Fatalf("expected %d slides, got %d", tt.wantSlides, len(slides))
			}
			if got := len(slides[len(slides)-1].Lines); got != tt.wantLast {
				t.Fatalf("expected last slide with %d lines, got %d", tt.wantLast, got)
			}
			if song.Stats().Lines != tt.lines {
				t.Fatalf("lost lines: %d of %d", song.Stats().Lines, tt.lines)
			}
		})
	}
}

func TestParsePreservesCase(t *testing.T) {
	input := "[bridge]\n   HOLY, holy   Holy  \nlOrD gOd\n"
	song, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	got := song.Sections[0].Slides[0]
	if got.Text(0) != "HOLY, holy   Holy" || got.Text(1) != "lOrD gOd" || got.Text(2) != "" {
		t.Fatalf("unexpected text %q", got.Lines)
	}
	if song.Sections[0].Label != "bridge" {
		t.Fatalf("label case changed: %q", song.Sections[0].Label)
	}
}

func TestParseTitleFirstOccurrenceWins(t *testing.T) {
	input := "# Song Title: First\n# song title: Second\n[Verse]\n# Song Title: Third\na\nb\n"
	song, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if song.Title != "First" {
		t.Fatalf("expected first title, got %q", song.Title)
	}
	if song.Stats().Lines != 2 {
		t.Fatalf("title lines must not become lyrics: %+v", song.Sections[0].Slides)
	}
}

func TestParseWithoutTitleUsesFallback(t *testing.T) {
	song, err := Parse(strings.NewReader("# arranged for evening service\n[Verse]\na\n"))
	if err != nil {
		t.Fatal(err)
	}
	if song.HasTitle {
		t.Fatal("expected no title")
	}
	if song.DisplayTitle("hymn") != "hymn" {
		t.Fatalf("unexpected display title %q", song.DisplayTitle("hymn"))
	}
}

func TestParseKeepsRepeatedAndEmptySections(t *testing.T) {
	input := "[Verse]\na\nb\n[Interlude]\n\n[Verse]\nc\nd\n"
	song, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(song.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(song.Sections))
	}
	if song.Sections[0].Label != song.Sections[2].Label {
		t.Fatal("expected both verse sections to stay distinct")
	}
	if stats := song.Stats(); stats.EmptySections != 1 {
		t.Fatalf("expected one empty section, got %+v", stats)
	}
}

func TestParseMalformedInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{"lyrics before section", "# Song Title: X\n\nAmazing grace\n[Verse]\na\n", 3},
		{"empty label", "[Verse]\na\n[ ]\nb\n", 3},
		{"no sections", "# Song Title: X\n", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if !errors.Is(err, failure.ErrMalformedInput) {
				t.Fatalf("expected malformed input, got %v", err)
			}
			var malformed *failure.MalformedInputError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected *MalformedInputError, got %T", err)
			}
			if malformed.Line != tt.wantLine {
				t.Fatalf("expected line %d, got %d", tt.wantLine, malformed.Line)
			}
		})
	}
}

func TestParseHandlesBOMAndCRLF(t *testing.T) {
	input := "\ufeff# Song Title: Grace\r\n[Verse]\r\nA\r\nB\r\n"
	song, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if song.Title != "Grace" || song.Sections[0].Slides[0].Text(1) != "B" {
		t.Fatalf("unexpected parse %+v", song)
	}
}

func TestParseUTF16WithBOM(t *testing.T) {
	encoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	encoded, err := encoder.String("[Refrain]\nGloria in excélsis\nDeo\n")
	if err != nil {
		t.Fatal(err)
	}
	song, err := Parse(strings.NewReader(encoded))
	if err != nil {
		t.Fatal(err)
	}
	if got := song.Sections[0].Slides[0].Text(0); got != "Gloria in excélsis" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "song.txt")
	if err := os.WriteFile(path, []byte("lyrics first\n[Verse]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := ParseFile(path)
	var malformed *failure.MalformedInputError
	if !errors.As(err, &malformed) || malformed.Path != path {
		t.Fatalf("expected malformed error carrying the path, got %v", err)
	}

	_, err = ParseFile(filepath.Join(dir, "missing.txt"))
	if !errors.Is(err, failure.ErrInputAccess) {
		t.Fatalf("expected input access error, got %v", err)
	}
}
