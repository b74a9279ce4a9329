package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"lyricpro/internal/failure"
	"lyricpro/internal/prodoc"
	"lyricpro/internal/testsupport"
)

func TestConvertUsesConfiguredTemplate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"convert", env.input}, env.configPath)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	target := filepath.Join(env.baseDir, "amazing.pro")
	requireContains(t, out, "Wrote "+target)
	requireContains(t, out, "2 groups, 3 slides")

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	doc, err := prodoc.ParsePresentation(data)
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if doc.Name() != testsupport.TemplateName {
		t.Fatalf("unexpected document name %q", doc.Name())
	}
}

func TestConvertExplicitArgumentsAndJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	template := testsupport.WriteTemplate(t, t.TempDir(), testsupport.WithFont("Georgia", "Georgia", 64))
	target := filepath.Join(t.TempDir(), "custom.pro")

	out, _, err := runCLI(t, []string{"convert", "--json", "--retitle", "--seed", "fixed", env.input, template, target}, env.configPath)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	var payload convertOutput
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode json: %v (%q)", err, out)
	}
	if payload.OutputPath != target || payload.Title != "Amazing Grace" || payload.Slides != 3 || payload.Identifiers < payload.Groups+payload.Slides {
		t.Fatalf("unexpected payload %+v", payload)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := prodoc.ParsePresentation(data)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Name() != "Amazing Grace" {
		t.Fatalf("expected retitled document, got %q", doc.Name())
	}
}

func TestConvertNameFromTitleIntoOutputDir(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithOutputDir())

	if _, _, err := runCLI(t, []string{"convert", "--name-from-title", env.input}, env.configPath); err != nil {
		t.Fatalf("convert: %v", err)
	}
	if _, err := os.Stat(filepath.Join(env.cfg.Output.Dir, "Amazing Grace.pro")); err != nil {
		t.Fatalf("expected titled output in output dir: %v", err)
	}
}

func TestConvertWithoutTemplate(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.Paths.Template = ""
	writeTestConfig(t, env.configPath, env.cfg)

	_, _, err := runCLI(t, []string{"convert", env.input}, env.configPath)
	if !errors.Is(err, errNoTemplate) {
		t.Fatalf("expected errNoTemplate, got %v", err)
	}
	if code := exitCode(err); code != failure.ExitGeneral {
		t.Fatalf("exit code %d, want %d", code, failure.ExitGeneral)
	}
}

func TestConvertFailureExitCodes(t *testing.T) {
	env := setupCLITestEnv(t)
	bad := testsupport.WriteLyrics(t, env.baseDir, "bad.txt", "no header here\n")
	unstyled := filepath.Join(env.baseDir, "unstyled.pro")
	if err := os.WriteFile(unstyled, testsupport.NewTemplate(testsupport.WithoutStyle()), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"missing input", []string{"convert", filepath.Join(env.baseDir, "missing.txt")}, failure.ExitInputAccess},
		{"malformed input", []string{"convert", bad}, failure.ExitMalformedInput},
		{"unstyled template", []string{"convert", env.input, unstyled}, failure.ExitTemplateStyle},
		{"unwritable output", []string{"convert", env.input, env.cfg.Paths.Template, filepath.Join(env.baseDir, "no", "dir.pro")}, failure.ExitOutput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, tt.args, env.configPath)
			if err == nil {
				t.Fatal("expected error")
			}
			if code := exitCode(err); code != tt.code {
				t.Fatalf("exit code %d, want %d (%v)", code, tt.code, err)
			}
		})
	}
}

func TestConvertRecordsHistory(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"convert", env.input}, env.configPath); err != nil {
		t.Fatalf("convert: %v", err)
	}
	out, _, err := runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "Amazing Grace")
	requireContains(t, out, "amazing.pro")

	out, _, err = runCLI(t, []string{"history", "--json", "--limit", "1"}, env.configPath)
	if err != nil {
		t.Fatalf("history --json: %v", err)
	}
	var entries []historyOutput
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if len(entries) != 1 || entries[0].Status != "succeeded" || entries[0].Slides != 3 {
		t.Fatalf("unexpected history %+v", entries)
	}
}

func TestHistoryDisabled(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithoutHistory())
	out, _, err := runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "History is disabled")
}
