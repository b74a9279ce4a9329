package palette

import (
	"strings"

	"golang.org/x/text/cases"
)

// Color is an RGBA value in the 0..1 range with a display name.
type Color struct {
	Name                    string
	Red, Green, Blue, Alpha float32
}

// Rule maps a keyword found in a section label to a color.
type Rule struct {
	Keyword string
	Color   Color
}

var (
	Blue   = Color{Name: "blue", Red: 0, Green: 0.466666669, Blue: 0.8, Alpha: 1}
	Pink   = Color{Name: "red/pink", Red: 0.8, Green: 0, Blue: 0.305882365, Alpha: 1}
	Purple = Color{Name: "purple", Red: 0.4627451, Green: 0, Blue: 0.8, Alpha: 1}
	Green  = Color{Name: "green", Red: 0, Green: 0.8, Blue: 0.4, Alpha: 1}
	Orange = Color{Name: "orange", Red: 0.8, Green: 0.4, Blue: 0, Alpha: 1}
	Gray   = Color{Name: "gray", Red: 0.5, Green: 0.5, Blue: 0.5, Alpha: 1}
)

// rules are checked in order and the first keyword contained in the label
// wins, so "Intro Verse" is blue.
var rules = []Rule{
	{Keyword: "verse", Color: Blue},
	{Keyword: "chorus", Color: Pink},
	{Keyword: "bridge", Color: Purple},
	{Keyword: "intro", Color: Green},
	{Keyword: "outro", Color: Orange},
	{Keyword: "ending", Color: Orange},
}

// ForLabel returns the color for a section label. Matching is a
// case-insensitive substring test against the rule table in order; labels
// that match nothing are gray.
func ForLabel(label string) Color {
	c, _ := Match(label)
	return c
}

// Match is ForLabel that also reports the keyword that matched, or "" for
// the fallback.
func Match(label string) (Color, string) {
	folded := cases.Fold().String(strings.TrimSpace(label))
	for _, r := range rules {
		if strings.Contains(folded, r.Keyword) {
			return r.Color, r.Keyword
		}
	}
	return Gray, ""
}

// Table returns a copy of the ordered rule table.
func Table() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}
