package textutil

import (
	"strings"
	"unicode"
)

// fileNameReplacer replaces filesystem-unsafe characters with safe alternatives.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName turns a song title into a file name. Slashes, backslashes,
// colons, and asterisks become dashes; other unsafe characters and control
// characters are removed; runs of whitespace collapse to one space. Leading
// and trailing dots are dropped so the result is never hidden or relative.
func SanitizeFileName(name string) string {
	name = fileNameReplacer.Replace(name)
	name = strings.Join(strings.Fields(name), " ")
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	return strings.Trim(name, ". ")
}
