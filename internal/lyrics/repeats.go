package lyrics

import "lyricpro/internal/textutil"

// RepeatThreshold is the cosine similarity above which two sections are
// treated as the same lyrics.
const RepeatThreshold = 0.9

// Repeat notes that section Section sings the same lyrics as the earlier
// section Of (both indexes into Song.Sections).
type Repeat struct {
	Section    int
	Of         int
	Similarity float64
}

// FindRepeats reports sections whose lyrics match an earlier section, such as
// a chorus written out again. Each section points at the first match.
func FindRepeats(song *Song) []Repeat {
	if song == nil {
		return nil
	}
	prints := make([]*textutil.Fingerprint, len(song.Sections))
	for i, sec := range song.Sections {
		var lines []string
		for _, sl := range sec.Slides {
			lines = append(lines, sl.Lines...)
		}
		prints[i] = textutil.NewFingerprint(lines...)
	}

	var repeats []Repeat
	for i := range prints {
		if prints[i] == nil {
			continue
		}
		for j := 0; j < i; j++ {
			if sim := prints[j].Similarity(prints[i]); sim >= RepeatThreshold {
				repeats = append(repeats, Repeat{Section: i, Of: j, Similarity: sim})
				break
			}
		}
	}
	return repeats
}
