package lyrics

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"lyricpro/internal/failure"
)

// LinesPerSlide is the number of lyric lines shown on one slide.
const LinesPerSlide = 2

var titlePattern = regexp.MustCompile(`(?i)^#\s*song\s+title\s*:\s*(.*)$`)

// ParseFile reads and parses the lyrics file at path.
func ParseFile(path string) (*Song, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, failure.Wrap(failure.ErrInputAccess, "parse", "open input", path, err)
	}
	defer file.Close()

	song, err := parse(file, path)
	if err != nil {
		return nil, err
	}
	return song, nil
}

// Parse reads lyrics text from r.
//
// The format is a "# Song Title: ..." line, "[Label]" section headers, and
// lyric lines. Non-blank lines inside a section are paired in order to form
// slides; a trailing odd line becomes a one-line slide. Blank lines carry no
// meaning. Only the first title line counts; later ones are skipped.
func Parse(r io.Reader) (*Song, error) {
	return parse(r, "")
}

func parse(r io.Reader, path string) (*Song, error) {
	data, err := decode(r)
	if err != nil {
		return nil, failure.Wrap(failure.ErrInputAccess, "parse", "read input", path, err)
	}

	song := &Song{}
	var pending []string
	pendingLine := 0
	current := -1

	flush := func() {
		if len(pending) == 0 || current < 0 {
			return
		}
		song.Sections[current].Slides = append(song.Sections[current].Slides, Slide{
			Lines: pending,
			Line:  pendingLine,
		})
		pending = nil
		pendingLine = 0
	}

	for i, raw := range strings.Split(data, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := titlePattern.FindStringSubmatch(line); m != nil {
			if title := strings.TrimSpace(m[1]); title != "" && !song.HasTitle {
				song.Title = title
				song.HasTitle = true
			}
			continue
		}

		if label, ok := sectionLabel(line); ok {
			if label == "" {
				return nil, &failure.MalformedInputError{Path: path, Line: lineNo, Reason: "section header has an empty label"}
			}
			flush()
			song.Sections = append(song.Sections, Section{Label: label, Line: lineNo})
			current = len(song.Sections) - 1
			continue
		}

		if current < 0 {
			if strings.HasPrefix(line, "#") {
				continue
			}
			return nil, &failure.MalformedInputError{
				Path:   path,
				Line:   lineNo,
				Reason: fmt.Sprintf("lyric line %q appears before the first [section] header", line),
			}
		}

		if len(pending) == 0 {
			pendingLine = lineNo
		}
		pending = append(pending, line)
		if len(pending) == LinesPerSlide {
			flush()
		}
	}
	flush()

	if len(song.Sections) == 0 {
		return nil, &failure.MalformedInputError{Path: path, Reason: "no [section] headers found"}
	}
	return song, nil
}

func sectionLabel(line string) (string, bool) {
	if len(line) < 2 || line[0] != '[' || line[len(line)-1] != ']' {
		return "", false
	}
	return strings.TrimSpace(line[1 : len(line)-1]), true
}

// decode accepts UTF-8 with or without a byte order mark, and UTF-16 with a
// byte order mark, and normalizes line endings to "\n".
func decode(r io.Reader) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	raw, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return "", err
	}
	raw = bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))
	raw = bytes.ReplaceAll(raw, []byte("\r"), []byte("\n"))
	return string(raw), nil
}
