package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lyricpro/internal/palette"
)

func newPaletteCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "palette [label]",
		Short:       "List section colors, or resolve the color for one label",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			colorize := isTerminal(out)
			if len(args) == 1 {
				color, keyword := palette.Match(args[0])
				match := fmt.Sprintf("matched %q", keyword)
				if keyword == "" {
					match = "no keyword matched"
				}
				fmt.Fprintf(out, "%s: %s (%s) %s\n", strings.TrimSpace(args[0]), color.Name,
					swatch(color, colorize), match)
				return nil
			}

			tbl := newTextTable("Label contains", "Color", "RGBA")
			for _, r := range palette.Table() {
				tbl.add(r.Keyword, r.Color.Name, swatch(r.Color, colorize))
			}
			tbl.add("(anything else)", palette.Gray.Name, swatch(palette.Gray, colorize))
			fmt.Fprintln(out, tbl)
			fmt.Fprintln(out, "Matching is case-insensitive; the first row that matches wins.")
			return nil
		},
	}
}
