package lyrics

// Song is the parsed form of a lyrics file.
type Song struct {
	Title    string
	HasTitle bool
	Sections []Section
}

// Section is a labelled run of slides, such as "Verse 1" or "Chorus".
type Section struct {
	Label string
	// Line is the 1-based line of the section header.
	Line   int
	Slides []Slide
}

// Slide holds one or two lyric lines exactly as they appeared, trimmed.
type Slide struct {
	Lines []string
	// Line is the 1-based line of the slide's first lyric line.
	Line int
}

// Text returns line i of the slide, or "" when the slide is shorter.
func (s Slide) Text(i int) string {
	if i < 0 || i >= len(s.Lines) {
		return ""
	}
	return s.Lines[i]
}

// Stats summarizes a parsed song.
type Stats struct {
	Sections      int
	EmptySections int
	Slides        int
	Lines         int
}

// Stats counts sections, slides, and lyric lines.
func (s *Song) Stats() Stats {
	var st Stats
	if s == nil {
		return st
	}
	st.Sections = len(s.Sections)
	for _, sec := range s.Sections {
		if len(sec.Slides) == 0 {
			st.EmptySections++
		}
		st.Slides += len(sec.Slides)
		for _, sl := range sec.Slides {
			st.Lines += len(sl.Lines)
		}
	}
	return st
}

// DisplayTitle returns the song title, or fallback when the file had none.
func (s *Song) DisplayTitle(fallback string) string {
	if s != nil && s.HasTitle {
		return s.Title
	}
	return fallback
}
