package textutil

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// minWordLength drops short function words ("a", "is") that make unrelated
// lines look alike.
const minWordLength = 3

var folder = cases.Fold()

// Fingerprint is a word-count vector over one or more lyric lines.
type Fingerprint struct {
	counts map[string]int
	norm   float64
}

// NewFingerprint counts the words of lines. It returns nil when no line
// contributes a word.
func NewFingerprint(lines ...string) *Fingerprint {
	counts := make(map[string]int)
	for _, line := range lines {
		for _, w := range Words(line) {
			counts[w]++
		}
	}
	if len(counts) == 0 {
		return nil
	}
	var sum float64
	for _, n := range counts {
		sum += float64(n * n)
	}
	return &Fingerprint{counts: counts, norm: math.Sqrt(sum)}
}

// Words case-folds line and splits it into words of letters, digits, and
// inner apostrophes ("don't" stays one word). Words shorter than three runes
// are dropped.
func Words(line string) []string {
	fields := strings.FieldsFunc(folder.String(line), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsMark(r) && r != '\'' && r != '’'
	})
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "'’")
		if len([]rune(f)) >= minWordLength {
			words = append(words, f)
		}
	}
	return words
}

// Distinct reports how many different words were counted.
func (f *Fingerprint) Distinct() int {
	if f == nil {
		return 0
	}
	return len(f.counts)
}

// Similarity is the cosine of the angle between f and other: 1 for the same
// word mix, 0 when they share no word or either is nil.
func (f *Fingerprint) Similarity(other *Fingerprint) float64 {
	if f == nil || other == nil {
		return 0
	}
	small, large := f, other
	if len(large.counts) < len(small.counts) {
		small, large = large, small
	}
	var dot int
	for w, n := range small.counts {
		dot += n * large.counts[w]
	}
	if dot == 0 {
		return 0
	}
	return float64(dot) / (f.norm * other.norm)
}
