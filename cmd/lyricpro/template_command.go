package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lyricpro/internal/palette"
	"lyricpro/internal/style"
)

type templateOutput struct {
	Path            string     `json:"path"`
	Name            string     `json:"name"`
	UUID            string     `json:"uuid"`
	Version         string     `json:"application_version,omitempty"`
	FontName        string     `json:"font_name"`
	FontFamily      string     `json:"font_family"`
	FontFace        string     `json:"font_face,omitempty"`
	FontSize        float64    `json:"font_size"`
	Bold            bool       `json:"bold"`
	Italic          bool       `json:"italic"`
	TextColor       [4]float32 `json:"text_color"`
	Alignment       string     `json:"alignment"`
	Bounds          [4]float64 `json:"bounds"`
	SlideSize       [2]float64 `json:"slide_size"`
	BackgroundColor [4]float32 `json:"background_color"`
	DrawsBackground bool       `json:"draws_background"`
	SourceCue       int        `json:"source_cue"`
	SourceElement   string     `json:"source_element,omitempty"`
}

func newTemplateCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "template [template.pro]",
		Short: "Show the style a template document contributes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := cfg.Paths.Template
			if len(args) > 0 {
				path = args[0]
			}
			if strings.TrimSpace(path) == "" {
				return errNoTemplate
			}

			doc, tmpl, err := style.LoadFile(path)
			if err != nil {
				return err
			}

			view := templateOutput{
				Path:            path,
				Name:            doc.Name(),
				UUID:            doc.UUID(),
				FontName:        tmpl.Font.Name,
				FontFamily:      tmpl.Font.Family,
				FontFace:        tmpl.Font.Face,
				FontSize:        tmpl.Font.Size,
				Bold:            tmpl.Font.Bold,
				Italic:          tmpl.Font.Italic,
				TextColor:       rgba(tmpl.TextColor),
				Alignment:       tmpl.Alignment.String(),
				Bounds:          [4]float64{tmpl.Bounds.Origin.X, tmpl.Bounds.Origin.Y, tmpl.Bounds.Size.Width, tmpl.Bounds.Size.Height},
				SlideSize:       [2]float64{tmpl.SlideSize.Width, tmpl.SlideSize.Height},
				BackgroundColor: rgba(tmpl.BackgroundColor),
				DrawsBackground: tmpl.DrawsBackground,
				SourceCue:       tmpl.Source.Cue,
				SourceElement:   tmpl.Source.ElementName,
			}
			if version, ok, err := doc.ApplicationVersion(); err == nil && ok {
				view.Version = version.String()
			}

			if jsonOutput {
				return writeJSON(cmd, view)
			}

			colorize := isTerminal(cmd.OutOrStdout())
			rows := [][]string{
				{"Document", fmt.Sprintf("%s (%s)", view.Name, view.UUID)},
				{"Application", valueOrDash(view.Version)},
				{"Font", tmpl.Font.DisplayName()},
				{"Family", view.FontFamily},
				{"Size", fmt.Sprintf("%g", view.FontSize)},
				{"Bold / Italic", yesNo(view.Bold) + " / " + yesNo(view.Italic)},
				{"Text color", swatch(tmpl.TextColor, colorize)},
				{"Alignment", view.Alignment},
				{"Bounds", fmt.Sprintf("x=%g y=%g %gx%g", view.Bounds[0], view.Bounds[1], view.Bounds[2], view.Bounds[3])},
				{"Slide size", fmt.Sprintf("%gx%g", view.SlideSize[0], view.SlideSize[1])},
				{"Background", fmt.Sprintf("%s (drawn: %s)", swatch(tmpl.BackgroundColor, colorize), yesNo(view.DrawsBackground))},
				{"Styled from", fmt.Sprintf("cue %d, element %s", view.SourceCue+1, valueOrDash(view.SourceElement))},
			}
			tbl := newTextTable("Property", "Value")
			for _, row := range rows {
				tbl.add(row...)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func rgba(c palette.Color) [4]float32 {
	return [4]float32{c.Red, c.Green, c.Blue, c.Alpha}
}

func valueOrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
