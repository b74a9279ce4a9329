package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lyricpro/internal/convert"
	"lyricpro/internal/ident"
)

type convertOutput struct {
	RunID       string  `json:"run_id"`
	Title       string  `json:"title"`
	OutputPath  string  `json:"output_path"`
	Groups      int     `json:"groups"`
	Slides      int     `json:"slides"`
	Identifiers int     `json:"identifiers"`
	Bytes       int     `json:"bytes"`
	DurationMS  float64 `json:"duration_ms"`
}

var errNoTemplate = errors.New("no template given: pass one after the input file, set paths.template, or export LYRICPRO_TEMPLATE")

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var retitle bool
	var nameFromTitle bool
	var jsonOutput bool
	var seed string

	cmd := &cobra.Command{
		Use:   "convert <input.txt> [template.pro] [output.pro]",
		Short: "Convert a lyrics file into a presentation document",
		Long: `Convert a plain-text lyrics file into a presentation document.

The template supplies font, color, alignment, bounds and every other slide
attribute; only the slides and their groups are replaced. When the template
argument is omitted the configured template is used. When the output argument
is omitted the document is written next to the input (or into output.dir)
with the configured extension.`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			req := convert.Request{
				InputPath:     args[0],
				TemplatePath:  cfg.Paths.Template,
				Retitle:       retitle || cfg.Output.Retitle,
				NameFromTitle: nameFromTitle || cfg.Output.NameFromTitle,
			}
			if len(args) > 1 {
				req.TemplatePath = args[1]
			}
			if len(args) > 2 {
				req.OutputPath = args[2]
			}
			if strings.TrimSpace(req.TemplatePath) == "" {
				return errNoTemplate
			}

			opts, done, err := ctx.conversionOptions(cmd.ErrOrStderr(), req.NameFromTitle)
			if err != nil {
				return err
			}
			defer done()
			if seed = strings.TrimSpace(seed); seed != "" {
				opts = append(opts, convert.WithIdentSource(ident.Seeded(seed)))
			}

			result, err := convert.Run(cmd.Context(), req, opts...)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, convertOutput{
					RunID:       result.RunID,
					Title:       result.Title,
					OutputPath:  result.OutputPath,
					Groups:      result.Groups,
					Slides:      result.Slides,
					Identifiers: result.Identifiers,
					Bytes:       result.Bytes,
					DurationMS:  float64(result.Duration.Microseconds()) / 1000,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", result.OutputPath)
			fmt.Fprintf(cmd.OutOrStdout(), "  %q: %d groups, %d slides, %d bytes\n",
				result.Title, result.Groups, result.Slides, result.Bytes)
			return nil
		},
	}

	cmd.Flags().BoolVar(&retitle, "retitle", false, "Rename the presentation after the song title")
	cmd.Flags().BoolVar(&nameFromTitle, "name-from-title", false, "Name the output file after the song title")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&seed, "seed", "", "Derive identifiers from this seed for reproducible output")
	return cmd
}
