package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"lyricpro/internal/palette"
)

type checkState int

const (
	stateInfo checkState = iota
	statePass
	stateFail
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
)

var checkStyles = map[checkState]struct{ mark, color string }{
	stateInfo: {"--", "\x1b[36m"},
	statePass: {"ok", "\x1b[32m"},
	stateFail: {"FAIL", "\x1b[31m"},
}

const checkLabelWidth = 16

// checkLine renders one doctor row: "  ok    Template          detail".
func checkLine(label string, state checkState, detail string, colorize bool) string {
	style := checkStyles[state]
	mark := fmt.Sprintf("%-4s", style.mark)
	if colorize {
		mark = style.color + mark + ansiReset
	}
	line := fmt.Sprintf("  %s  %-*s %s", mark, checkLabelWidth, label, detail)
	return strings.TrimRight(line, " ")
}

// heading renders a title with an underline of the same width.
func heading(title string, colorize bool) string {
	title = strings.TrimSpace(title)
	rule := strings.Repeat("=", len([]rune(title)))
	if colorize {
		title = ansiBold + title + ansiReset
	}
	return title + "\n" + rule
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// swatch renders c as "0.80 0.00 0.31 1.00", preceded by a block of the
// color itself on a terminal.
func swatch(c palette.Color, colorize bool) string {
	values := fmt.Sprintf("%.2f %.2f %.2f %.2f", c.Red, c.Green, c.Blue, c.Alpha)
	if !colorize {
		return values
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  %s %s", to8bit(c.Red), to8bit(c.Green), to8bit(c.Blue), ansiReset, values)
}

func to8bit(v float32) int {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return int(v*255 + 0.5)
}
