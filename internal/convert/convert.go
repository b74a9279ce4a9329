package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"lyricpro/internal/cuegroups"
	"lyricpro/internal/docwriter"
	"lyricpro/internal/failure"
	"lyricpro/internal/history"
	"lyricpro/internal/ident"
	"lyricpro/internal/logging"
	"lyricpro/internal/lyrics"
	"lyricpro/internal/prodoc"
	"lyricpro/internal/slides"
	"lyricpro/internal/style"
	"lyricpro/internal/textutil"
)

// OutputExtension is appended to derived output names.
const OutputExtension = ".pro"

// Request names the files of one conversion.
type Request struct {
	InputPath    string
	TemplatePath string
	// OutputPath may be empty; it is then derived from the input path.
	OutputPath string
	// Retitle renames the document after the song title.
	Retitle bool
	// NameFromTitle names a derived output file after the song title.
	NameFromTitle bool
}

// Result summarizes a successful conversion.
type Result struct {
	RunID       string
	Title       string
	OutputPath  string
	Groups      int
	Slides      int
	// Identifiers counts the UUIDs generated for groups and slides.
	Identifiers int
	Bytes       int
	Duration    time.Duration
}

type runner struct {
	logger   *slog.Logger
	recorder Recorder
	source   ident.Source
	namer    OutputNamer
	cache    *TemplateCache
	claims   *OutputClaims
	lockDir  string
	now      func() time.Time
}

func newRunner(opts []Option) *runner {
	r := &runner{
		logger: logging.NewNop(),
		source: ident.Random,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run converts req.InputPath into a presentation document styled after
// req.TemplatePath. Stages run in order (parse, template, build, merge,
// serialize, write); the output file is touched only after every earlier
// stage has succeeded.
func Run(ctx context.Context, req Request, opts ...Option) (*Result, error) {
	r := newRunner(opts)
	started := r.now()

	runID, err := ident.Random()
	if err != nil {
		return nil, fmt.Errorf("generate run id: %w", err)
	}
	ctx = logging.WithRunID(ctx, runID)
	base := logging.NewComponentLogger(r.logger, "convert")
	logger := logging.WithContext(ctx, base)

	result := &Result{RunID: runID}
	err = r.run(ctx, base, req, result)
	result.Duration = r.now().Sub(started)

	r.record(ctx, logger, req, result, err)
	if err != nil {
		logger.Error("conversion failed",
			logging.String(logging.FieldInput, req.InputPath),
			logging.Error(err),
		)
		return nil, err
	}
	logger.Info("conversion complete",
		logging.String(logging.FieldOutput, result.OutputPath),
		logging.Counts(result.Groups, result.Slides, result.Bytes),
		logging.Duration("duration", result.Duration),
	)
	return result, nil
}

// run executes the stages; logger carries no context fields, each stage adds
// its own.
func (r *runner) run(ctx context.Context, logger *slog.Logger, req Request, result *Result) error {
	if strings.TrimSpace(req.InputPath) == "" {
		return failure.Wrap(failure.ErrInputAccess, "parse", "", "input path is required", nil)
	}
	if strings.TrimSpace(req.TemplatePath) == "" {
		return failure.Wrap(failure.ErrInputAccess, "template", "", "template path is required", nil)
	}

	var song *lyrics.Song
	if err := r.stage(ctx, logger, "parse", func() error {
		var err error
		song, err = lyrics.ParseFile(req.InputPath)
		return err
	}); err != nil {
		return err
	}
	stem := strings.TrimSuffix(filepath.Base(req.InputPath), filepath.Ext(req.InputPath))
	result.Title = song.DisplayTitle(stem)

	var (
		doc  prodoc.Presentation
		tmpl *style.Template
	)
	if err := r.stage(ctx, logger, "template", func() error {
		var err error
		doc, tmpl, err = r.loadTemplate(req.TemplatePath)
		return err
	}); err != nil {
		return err
	}

	var groups []cuegroups.Group
	if err := r.stage(ctx, logger, "build", func() error {
		reserved, err := doc.ReservedIdentifiers()
		if err != nil {
			return failure.Wrap(failure.ErrTemplateStyleMissing, "build", "reserve identifiers", req.TemplatePath, err)
		}
		ids := ident.New(ident.WithSource(r.source))
		ids.Reserve(reserved...)
		groups, err = cuegroups.Assemble(song, slides.NewBuilder(tmpl, ids), ids)
		result.Identifiers = ids.Issued()
		return err
	}); err != nil {
		return err
	}
	result.Groups = len(groups)
	result.Slides = cuegroups.SlideCount(groups)

	var merged prodoc.Presentation
	if err := r.stage(ctx, logger, "merge", func() error {
		var err error
		merged, err = docwriter.Merge(doc, tmpl, groups, docwriter.MergeOptions{
			Retitle: req.Retitle,
			Title:   result.Title,
		})
		return err
	}); err != nil {
		return err
	}

	var data []byte
	if err := r.stage(ctx, logger, "serialize", func() error {
		var err error
		data, err = docwriter.Serialize(merged)
		return err
	}); err != nil {
		return err
	}

	output := strings.TrimSpace(req.OutputPath)
	if output == "" {
		if req.NameFromTitle {
			output = r.outputPath(req.InputPath, result.Title)
		} else {
			output = r.outputPath(req.InputPath, "")
		}
	}
	if err := checkOutputPath(output, req); err != nil {
		return err
	}

	if r.claims != nil {
		if err := r.claims.claim(output, req.InputPath); err != nil {
			return err
		}
	}
	r.warnOverwrite(ctx, logger, output, req.InputPath)

	if err := r.stage(ctx, logger, "write", func() error {
		return docwriter.Write(ctx, output, data, r.lockDir)
	}); err != nil {
		if r.claims != nil {
			r.claims.release(output)
		}
		return err
	}
	result.OutputPath = output
	result.Bytes = len(data)
	return nil
}

// stage runs fn with stage-scoped logging. Cancellation is honoured between
// stages.
func (r *runner) stage(ctx context.Context, logger *slog.Logger, name string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return failure.Wrap(nil, name, "", "cancelled", err)
	}
	stageLogger := logging.WithContext(logging.WithStage(ctx, name), logger)
	stageLogger.Debug("stage started")
	started := r.now()
	if err := fn(); err != nil {
		stageLogger.Debug("stage failed", logging.Error(err))
		return err
	}
	stageLogger.Debug("stage completed", logging.Duration("duration", r.now().Sub(started)))
	return nil
}

func (r *runner) loadTemplate(path string) (prodoc.Presentation, *style.Template, error) {
	if r.cache != nil {
		return r.cache.Load(path)
	}
	return style.LoadFile(path)
}

func (r *runner) outputPath(input, title string) string {
	if r.namer != nil {
		return r.namer(input, title)
	}
	return DefaultOutputPath(input, title)
}

// warnOverwrite logs when output was last written from a different input.
// Lookup failures are ignored.
func (r *runner) warnOverwrite(ctx context.Context, logger *slog.Logger, output, input string) {
	lookup, ok := r.recorder.(OutputHistory)
	if !ok {
		return
	}
	last, err := lookup.LastForOutput(ctx, absPath(output))
	if err != nil || last == nil || last.InputPath == absPath(input) {
		return
	}
	logging.WithContext(ctx, logger).Warn("replacing document converted from another input",
		logging.String(logging.FieldOutput, output),
		logging.String("previous_input", last.InputPath),
		logging.String("previous_run_id", last.RunID),
	)
}

func (r *runner) record(ctx context.Context, logger *slog.Logger, req Request, result *Result, runErr error) {
	if r.recorder == nil {
		return
	}
	entry := history.Entry{
		RunID:        result.RunID,
		InputPath:    absPath(req.InputPath),
		TemplatePath: absPath(req.TemplatePath),
		OutputPath:   absPath(result.OutputPath),
		Title:        result.Title,
		Status:       history.StatusSucceeded,
		Groups:       result.Groups,
		Slides:       result.Slides,
		Bytes:        result.Bytes,
		Duration:     result.Duration,
		CreatedAt:    r.now(),
	}
	if runErr != nil {
		entry.Status = history.StatusFailed
		entry.ErrorKind = failure.Kind(runErr)
		entry.ErrorMessage = runErr.Error()
	}
	// A cancelled run still gets its row.
	recordCtx := context.WithoutCancel(ctx)
	if _, err := r.recorder.Record(recordCtx, entry); err != nil {
		logger.Warn("history record failed", logging.Error(err))
	}
}

// DefaultOutputPath places the document next to input: the input name with
// its extension replaced, or the sanitized title when one is given.
func DefaultOutputPath(input, title string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	if name := textutil.SanitizeFileName(title); name != "" {
		base = name
	}
	return filepath.Join(filepath.Dir(input), base+OutputExtension)
}

var errOutputIsSource = errors.New("output path would overwrite a source file")

func checkOutputPath(output string, req Request) error {
	out := absPath(output)
	for _, src := range []string{req.InputPath, req.TemplatePath} {
		if out == absPath(src) {
			return failure.Wrap(failure.ErrOutputWrite, "write", "check output", output, errOutputIsSource)
		}
	}
	return nil
}

func absPath(path string) string {
	if strings.TrimSpace(path) == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
