package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"lyricpro/internal/convert"
	"lyricpro/internal/palette"
)

type parseOutput struct {
	Title    string         `json:"title"`
	HasTitle bool           `json:"has_title"`
	Sections []parseSection `json:"sections"`
	Stats    parseStats     `json:"stats"`
	Repeats  []parseRepeat  `json:"repeats,omitempty"`
}

type parseSection struct {
	Label  string     `json:"label"`
	Line   int        `json:"line"`
	Color  string     `json:"color"`
	Slides [][]string `json:"slides"`
}

type parseStats struct {
	Sections      int `json:"sections"`
	EmptySections int `json:"empty_sections"`
	Slides        int `json:"slides"`
	Lines         int `json:"lines"`
}

type parseRepeat struct {
	Section    int     `json:"section"`
	Of         int     `json:"of"`
	Similarity float64 `json:"similarity"`
}

func newParseCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:         "parse <input.txt>",
		Short:       "Show how a lyrics file splits into sections and slides",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			preview, err := convert.PreviewFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			view := parseOutput{
				Title:    preview.Title,
				HasTitle: preview.Song.HasTitle,
				Stats: parseStats{
					Sections:      preview.Stats.Sections,
					EmptySections: preview.Stats.EmptySections,
					Slides:        preview.Stats.Slides,
					Lines:         preview.Stats.Lines,
				},
			}
			for _, sec := range preview.Song.Sections {
				ps := parseSection{
					Label:  sec.Label,
					Line:   sec.Line,
					Color:  palette.ForLabel(sec.Label).Name,
					Slides: make([][]string, 0, len(sec.Slides)),
				}
				for _, sl := range sec.Slides {
					ps.Slides = append(ps.Slides, append([]string(nil), sl.Lines...))
				}
				view.Sections = append(view.Sections, ps)
			}
			for _, r := range preview.Repeats {
				view.Repeats = append(view.Repeats, parseRepeat{Section: r.Section, Of: r.Of, Similarity: r.Similarity})
			}

			if jsonOutput {
				return writeJSON(cmd, view)
			}
			return printParse(cmd, view)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func printParse(cmd *cobra.Command, view parseOutput) error {
	out := cmd.OutOrStdout()
	title := view.Title
	if !view.HasTitle {
		title += " (from file name)"
	}
	fmt.Fprintf(out, "Title: %s\n", title)

	tbl := newTextTable("#", "Section", "Color", "Slide", "Text").alignRight(0, 3)
	for i, sec := range view.Sections {
		if len(sec.Slides) == 0 {
			tbl.add(strconv.Itoa(i+1), sec.Label, sec.Color, "-", "(empty, skipped)")
			continue
		}
		for j, lines := range sec.Slides {
			label, color := "", ""
			if j == 0 {
				label, color = sec.Label, sec.Color
			}
			tbl.add(strconv.Itoa(i+1), label, color, strconv.Itoa(j+1), strings.Join(lines, " / "))
		}
	}
	fmt.Fprintln(out, tbl)
	fmt.Fprintf(out, "%d sections (%d empty), %d slides, %d lines\n",
		view.Stats.Sections, view.Stats.EmptySections, view.Stats.Slides, view.Stats.Lines)
	for _, r := range view.Repeats {
		fmt.Fprintf(out, "Section %d %q repeats section %d %q (similarity %.2f)\n",
			r.Section+1, view.Sections[r.Section].Label, r.Of+1, view.Sections[r.Of].Label, r.Similarity)
	}
	return nil
}
