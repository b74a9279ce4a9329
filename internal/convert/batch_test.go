package convert_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"lyricpro/internal/convert"
	"lyricpro/internal/failure"
	"lyricpro/internal/ident"
	"lyricpro/internal/testsupport"
)

func TestRunBatchKeepsOrderAndIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	template := testsupport.WriteTemplate(t, dir)
	first := testsupport.WriteLyrics(t, dir, "first.txt", amazingGrace)
	broken := testsupport.WriteLyrics(t, dir, "broken.txt", "no section header here\n")
	second := testsupport.WriteLyrics(t, dir, "second.txt", "[Chorus]\nHallelujah\n")

	var jobs []convert.Job
	for _, input := range []string{first, broken, second} {
		jobs = append(jobs, convert.Job{
			Request: convert.Request{InputPath: input, TemplatePath: template},
			Options: []convert.Option{convert.WithIdentSource(ident.Seeded(input))},
		})
	}
	cache := convert.NewTemplateCache()
	outcomes := convert.RunBatch(context.Background(), jobs, 2, convert.WithTemplateCache(cache))

	if len(outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
	}
	for i, o := range outcomes {
		if o.Request.InputPath != jobs[i].Request.InputPath {
			t.Fatalf("outcome %d is for %q", i, o.Request.InputPath)
		}
	}
	if outcomes[0].Err != nil || outcomes[2].Err != nil {
		t.Fatalf("unexpected errors: %v, %v", outcomes[0].Err, outcomes[2].Err)
	}
	if !errors.Is(outcomes[1].Err, failure.ErrMalformedInput) {
		t.Fatalf("expected malformed input, got %v", outcomes[1].Err)
	}
	if got := convert.Failed(outcomes); got != 1 {
		t.Fatalf("Failed = %d, want 1", got)
	}
	for _, name := range []string{"first.pro", "second.pro"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "broken.pro")); !os.IsNotExist(err) {
		t.Fatalf("broken input produced output: %v", err)
	}
	if cache.Len() != 1 {
		t.Fatalf("expected one cached template, got %d", cache.Len())
	}
}

func TestRunBatchEmpty(t *testing.T) {
	if got := convert.RunBatch(context.Background(), nil, 4); len(got) != 0 {
		t.Fatalf("expected no outcomes, got %d", len(got))
	}
}

func TestTemplateCacheReloadsChangedFile(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteTemplate(t, dir)
	cache := convert.NewTemplateCache()

	_, first, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	_, again, err := cache.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if first != again {
		t.Fatal("expected the cached template on the second load")
	}

	testsupport.WriteTemplate(t, dir, testsupport.WithFont("Georgia-BoldItalicExtended", "Georgia", 48))
	_, changed, err := cache.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if changed.Font.Size != 48 {
		t.Fatalf("expected reloaded template, font size %v", changed.Font.Size)
	}
	if cache.Len() != 2 {
		t.Fatalf("expected two cache entries, got %d", cache.Len())
	}
}

func TestTemplateCacheMissingFile(t *testing.T) {
	cache := convert.NewTemplateCache()
	_, _, err := cache.Load(filepath.Join(t.TempDir(), "missing.pro"))
	if !errors.Is(err, failure.ErrInputAccess) {
		t.Fatalf("expected input access error, got %v", err)
	}
}

func TestRunBatchRefusesSharedOutputPath(t *testing.T) {
	dir := t.TempDir()
	template := testsupport.WriteTemplate(t, dir)
	a := testsupport.WriteLyrics(t, filepath.Join(dir, "a"), "song.txt", amazingGrace)
	b := testsupport.WriteLyrics(t, filepath.Join(dir, "b"), "song.txt", "[Chorus]\nHallelujah\n")
	outDir := filepath.Join(dir, "out")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatal(err)
	}
	intoOut := func(_, _ string) string {
		return filepath.Join(outDir, "song.pro")
	}

	var jobs []convert.Job
	for _, input := range []string{a, b, a} {
		jobs = append(jobs, convert.Job{
			Request: convert.Request{InputPath: input, TemplatePath: template},
			Options: []convert.Option{convert.WithIdentSource(ident.Seeded(input))},
		})
	}
	outcomes := convert.RunBatch(context.Background(), jobs, 3,
		convert.WithOutputNamer(intoOut),
		convert.WithLockDir(filepath.Join(dir, "locks")),
	)

	var written *convert.Result
	for _, o := range outcomes {
		if o.Err == nil {
			if written != nil {
				t.Fatalf("both %s and another job wrote %s", o.Request.InputPath, o.Result.OutputPath)
			}
			written = o.Result
			continue
		}
		if !errors.Is(o.Err, failure.ErrOutputWrite) {
			t.Fatalf("expected output write error for %s, got %v", o.Request.InputPath, o.Err)
		}
	}
	if written == nil {
		t.Fatal("expected one job to write the shared output")
	}
	if got := convert.Failed(outcomes); got != 2 {
		t.Fatalf("Failed = %d, want 2", got)
	}
	data, err := os.ReadFile(written.OutputPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != written.Bytes {
		t.Fatalf("output holds %d bytes, winning job wrote %d", len(data), written.Bytes)
	}
}
