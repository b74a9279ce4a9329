package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"lyricpro/internal/convert"
	"lyricpro/internal/failure"
	"lyricpro/internal/ident"
)

type batchItem struct {
	Input      string `json:"input"`
	OutputPath string `json:"output_path,omitempty"`
	Title      string `json:"title,omitempty"`
	Slides     int    `json:"slides,omitempty"`
	Error      string `json:"error,omitempty"`
	ErrorKind  string `json:"error_kind,omitempty"`
}

type batchOutput struct {
	Converted int         `json:"converted"`
	Failed    int         `json:"failed"`
	Items     []batchItem `json:"items"`
}

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var templatePath string
	var jobs int
	var retitle bool
	var nameFromTitle bool
	var jsonOutput bool
	var seed string

	cmd := &cobra.Command{
		Use:   "batch <input.txt>...",
		Short: "Convert several lyrics files with one template",
		Long: `Convert several lyrics files concurrently. Each document is written next to
its input (or into output.dir). A failed file does not stop the others; the
command exits with the status of the first failure.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if strings.TrimSpace(templatePath) == "" {
				templatePath = cfg.Paths.Template
			}
			if strings.TrimSpace(templatePath) == "" {
				return errNoTemplate
			}

			byTitle := nameFromTitle || cfg.Output.NameFromTitle
			shared, done, err := ctx.conversionOptions(cmd.ErrOrStderr(), byTitle)
			if err != nil {
				return err
			}
			defer done()
			shared = append(shared, convert.WithTemplateCache(convert.NewTemplateCache()))

			seed = strings.TrimSpace(seed)
			batch := make([]convert.Job, 0, len(args))
			for _, input := range args {
				job := convert.Job{Request: convert.Request{
					InputPath:     input,
					TemplatePath:  templatePath,
					Retitle:       retitle || cfg.Output.Retitle,
					NameFromTitle: byTitle,
				}}
				if seed != "" {
					job.Options = []convert.Option{convert.WithIdentSource(ident.Seeded(seed + ":" + input))}
				}
				batch = append(batch, job)
			}

			outcomes := convert.RunBatch(cmd.Context(), batch, jobs, shared...)
			summary := summarizeBatch(outcomes)

			if jsonOutput {
				if err := writeJSON(cmd, summary); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				for _, item := range summary.Items {
					if item.Error != "" {
						fmt.Fprintf(out, "FAIL %s: %s\n", item.Input, item.Error)
						continue
					}
					fmt.Fprintf(out, "ok   %s -> %s (%d slides)\n", item.Input, item.OutputPath, item.Slides)
				}
				fmt.Fprintf(out, "%d converted, %d failed\n", summary.Converted, summary.Failed)
			}
			return firstBatchError(outcomes)
		},
	}

	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "Template document (defaults to paths.template)")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "Maximum concurrent conversions")
	cmd.Flags().BoolVar(&retitle, "retitle", false, "Rename each presentation after its song title")
	cmd.Flags().BoolVar(&nameFromTitle, "name-from-title", false, "Name output files after song titles")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&seed, "seed", "", "Derive identifiers from this seed and each input path")
	return cmd
}

func summarizeBatch(outcomes []convert.Outcome) batchOutput {
	summary := batchOutput{Items: make([]batchItem, 0, len(outcomes))}
	for _, o := range outcomes {
		item := batchItem{Input: o.Request.InputPath}
		if o.Err != nil {
			item.Error = o.Err.Error()
			item.ErrorKind = failure.Kind(o.Err)
			summary.Failed++
		} else {
			item.OutputPath = o.Result.OutputPath
			item.Title = o.Result.Title
			item.Slides = o.Result.Slides
			summary.Converted++
		}
		summary.Items = append(summary.Items, item)
	}
	return summary
}

func firstBatchError(outcomes []convert.Outcome) error {
	for _, o := range outcomes {
		if o.Err != nil {
			return fmt.Errorf("%d of %d conversions failed: %w", convert.Failed(outcomes), len(outcomes), o.Err)
		}
	}
	return nil
}
