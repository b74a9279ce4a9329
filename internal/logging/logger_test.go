package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lyricpro/internal/config"
	"lyricpro/internal/failure"
	"lyricpro/internal/logging"
)

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "convert").Info("wrote document",
		logging.String(logging.FieldOutput, "My Song.pro"),
		logging.Int("slides", 12),
	)
	logger.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "INFO  convert: wrote document") {
		t.Fatalf("missing level/component/message in %q", out)
	}
	if !strings.Contains(out, `output="My Song.pro"`) || !strings.Contains(out, "slides=12") {
		t.Fatalf("missing fields in %q", out)
	}
	if strings.Contains(out, "component=") {
		t.Fatalf("component should be promoted, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at info level: %q", out)
	}
}

func TestConsolePromotesStageAndShortensRunID(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}
	ctx := logging.WithStage(logging.WithRunID(context.Background(), "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed"), "parse")
	logging.WithContext(ctx, logging.NewComponentLogger(logger, "convert")).Debug("stage completed")

	out := buf.String()
	if !strings.Contains(out, "DEBUG convert[parse]: stage completed run=1b9d6bcd\n") {
		t.Fatalf("unexpected console line %q", out)
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("skipped")
	logger.Warn("template fallback", logging.String(logging.FieldTemplate, "/tmp/t.pro"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if entry["level"] != "warn" || entry["msg"] != "template fallback" || entry["template"] != "/tmp/t.pro" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key in %v", entry)
	}
}

func TestJSONDurationsAndCounts(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("conversion complete",
		logging.Counts(2, 3, 512),
		logging.Duration("duration", 1500*time.Microsecond),
	)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode json: %v (%q)", err, buf.String())
	}
	if entry["duration_ms"] != 1.5 {
		t.Fatalf("expected duration_ms 1.5, got %v", entry["duration_ms"])
	}
	if entry["slides"] != float64(3) || entry["bytes"] != float64(512) {
		t.Fatalf("expected inline counts, got %v", entry)
	}
	if _, ok := entry["duration"]; ok {
		t.Fatalf("raw duration key should be replaced: %v", entry)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(t.TempDir(), "logs")

	var console bytes.Buffer
	logger, err := logging.NewFromConfig(&cfg, &console)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("converted", logging.String(logging.FieldInput, "song.txt"))
	logger.Debug("stage completed", logging.String(logging.FieldStage, "parse"))

	if !strings.Contains(console.String(), "converted") {
		t.Fatalf("expected console output, got %q", console.String())
	}
	data, err := os.ReadFile(filepath.Join(cfg.Paths.LogDir, logging.LogFileName))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"input":"song.txt"`) {
		t.Fatalf("expected json record in log file, got %q", data)
	}
	if !strings.Contains(string(data), `"stage":"parse"`) {
		t.Fatalf("expected debug record in log file, got %q", data)
	}
	if strings.Contains(console.String(), "stage completed") {
		t.Fatalf("debug record leaked to console: %q", console.String())
	}
}

func TestWithContextAddsRunFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}
	ctx := logging.WithStage(logging.WithRunID(context.Background(), "run-1"), "parse")
	logging.WithContext(ctx, logger).Info("parsed")

	out := buf.String()
	if !strings.Contains(out, `"run_id":"run-1"`) || !strings.Contains(out, `"stage":"parse"`) {
		t.Fatalf("expected context fields, got %q", out)
	}
	if _, ok := logging.RunIDFromContext(context.Background()); ok {
		t.Fatal("expected no run id on bare context")
	}
}

func TestErrorAttrIncludesKind(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}
	cause := failure.Wrap(failure.ErrTemplateStyleMissing, "template", "extract", "no styled text", errors.New("empty"))
	logger.Error("conversion failed", logging.Error(cause))

	if !strings.Contains(buf.String(), `"error_kind":"`+failure.Kind(cause)+`"`) {
		t.Fatalf("expected error kind, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]string{
		"debug":   "DEBUG",
		" WARN ":  "WARN",
		"warning": "WARN",
		"error":   "ERROR",
		"":        "INFO",
		"bogus":   "INFO",
	}
	for in, want := range tests {
		if got := logging.ParseLevel(in).String(); got != want {
			t.Errorf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
