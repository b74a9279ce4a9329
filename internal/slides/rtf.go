package slides

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"lyricpro/internal/palette"
	"lyricpro/internal/style"
)

// twipsPerPoint converts slide points to RTF paper units.
const twipsPerPoint = 20

// EncodeRTF renders lines as the rich-text payload of a slide text element.
// Lines are separated by the \par control word; the font, size, color, and
// alignment come from t.
func EncodeRTF(lines []string, t *style.Template) []byte {
	var b strings.Builder
	b.WriteString(`{\rtf0\ansi\ansicpg1252{\fonttbl\f0\fnil `)
	b.WriteString(escapeRTF(rtfFontName(t.Font)))
	b.WriteString(`;}{\colortbl;`)
	writeColor(&b, t.TextColor)
	b.WriteString(`;}{\*\expandedcolortbl;`)
	writeExpandedColor(&b, t.TextColor)
	b.WriteString(`;}{\*\listtable}{\*\listoverridetable}\uc1`)
	fmt.Fprintf(&b, `\paperw%d\margl0\margr0\margt0\margb0`, int(math.Round(t.Bounds.Size.Width*twipsPerPoint)))
	fmt.Fprintf(&b, `\pard\li0\fi0\ri0%s\sb0\sa0\sl240\slmult1\slleading0`, alignmentWord(t.Alignment))
	fmt.Fprintf(&b, `\f0%s%s\ul0\strike0\fs%d\expnd0\expndtw0`,
		toggle(`\b`, t.Font.Bold), toggle(`\i`, t.Font.Italic), int(math.Round(t.Font.Size*2)))
	b.WriteString(`\CocoaLigature1\cf1\strokewidth0\strokec1\nosupersub\ulc0 `)
	for i, line := range lines {
		if i > 0 {
			b.WriteString(`\par `)
		}
		b.WriteString(escapeRTF(line))
	}
	b.WriteString("}")
	return []byte(b.String())
}

func rtfFontName(f style.Font) string {
	if f.Name != "" {
		return f.Name
	}
	return f.Family
}

func alignmentWord(a style.Alignment) string {
	switch a {
	case style.AlignRight:
		return `\qr`
	case style.AlignCenter:
		return `\qc`
	case style.AlignJustified:
		return `\qj`
	default:
		return `\ql`
	}
}

func toggle(word string, on bool) string {
	if on {
		return word
	}
	return word + "0"
}

func writeColor(b *strings.Builder, c palette.Color) {
	fmt.Fprintf(b, `\red%d\green%d\blue%d`, channel(c.Red, 255), channel(c.Green, 255), channel(c.Blue, 255))
}

func writeExpandedColor(b *strings.Builder, c palette.Color) {
	fmt.Fprintf(b, `\csgenericrgb\c%d\c%d\c%d\c%d`,
		channel(c.Red, 100000), channel(c.Green, 100000), channel(c.Blue, 100000), channel(c.Alpha, 100000))
}

func channel(v float32, scale float64) int {
	f := math.Round(float64(v) * scale)
	switch {
	case f < 0 || math.IsNaN(f):
		return 0
	case f > scale:
		return int(scale)
	default:
		return int(f)
	}
}

// escapeRTF escapes RTF syntax characters and encodes non-ASCII runes as
// \uN followed by a one-byte fallback (\uc1): the Windows-1252 byte when the
// rune has one, otherwise '?'.
func escapeRTF(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\\' || r == '{' || r == '}':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\t':
			b.WriteString(`\tab `)
		case r < 0x20 || r == 0x7f:
		case r < 0x80:
			b.WriteRune(r)
		case r > 0xffff:
			hi, lo := surrogates(r)
			fmt.Fprintf(&b, `\u%d?\u%d?`, int16(hi), int16(lo))
		default:
			fmt.Fprintf(&b, `\u%d`, int16(uint16(r)))
			if c, ok := charmap.Windows1252.EncodeRune(r); ok {
				fmt.Fprintf(&b, `\'%02x`, c)
			} else {
				b.WriteByte('?')
			}
		}
	}
	return b.String()
}

func surrogates(r rune) (uint16, uint16) {
	r -= 0x10000
	return uint16(0xd800 + (r>>10)&0x3ff), uint16(0xdc00 + r&0x3ff)
}
