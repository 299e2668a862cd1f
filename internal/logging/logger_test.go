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

	"captioner/internal/config"
	"captioner/internal/logging"
)

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(t.TempDir(), "logs")

	logger, closeLog, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("formatted transcript", logging.Int("captions", 3))

	logPath := filepath.Join(cfg.Paths.LogDir, logging.LogFileName)
	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "formatted transcript") || !strings.Contains(string(content), "captions: 3") {
		t.Fatalf("unexpected log content %q", content)
	}

	if err := closeLog(); err != nil {
		t.Fatalf("close log: %v", err)
	}
	if err := closeLog(); err != nil {
		t.Fatalf("second close should be a no-op, got %v", err)
	}
	logger.Info("after close")
	after, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if string(after) != string(content) {
		t.Fatalf("closed log file still written: %q", after)
	}
}

func TestConsoleLoggerLayout(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := logging.WithJob(logging.WithRunID(context.Background(), "run-1"), "talk.json", "cid-1")
	jobLogger := logging.WithContext(ctx, logging.NewComponentLogger(logger, "batch"))
	jobLogger.Info("job complete", logging.String("output", "talk.srt"))
	jobLogger.Debug("hidden at info level")

	out := buf.String()
	if !strings.Contains(out, "INFO [batch] talk.json – job complete") {
		t.Fatalf("unexpected header in %q", out)
	}
	if !strings.Contains(out, "output: talk.srt") || !strings.Contains(out, "correlation_id: cid-1") {
		t.Fatalf("expected fields in %q", out)
	}
	if strings.Contains(out, "run_id") {
		t.Fatalf("run id should be omitted from info lines: %q", out)
	}
	if strings.Contains(out, "hidden at info level") {
		t.Fatalf("debug record leaked: %q", out)
	}
	if strings.Contains(out, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", out)
	}
}

func TestJSONLoggerKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Format: "json", Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.WarnWithContext(logger, "segment skipped", "invalid_segment", logging.Error(errors.New("boom")))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode json log: %v (%q)", err, buf.String())
	}
	for _, key := range []string{"ts", "level", "msg", "event_type", "error_hint", "impact", "error"} {
		if _, ok := record[key]; !ok {
			t.Fatalf("expected key %q in %v", key, record)
		}
	}
	if record["level"] != "warn" || record["event_type"] != "invalid_segment" {
		t.Fatalf("unexpected record %v", record)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, _, err := logging.New(logging.Options{Format: "xml", Writer: &bytes.Buffer{}}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), 12) {
		t.Fatal("nop logger should not be enabled")
	}
}

func TestConsoleLoggerFormatsSeconds(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("segment", logging.Float64("start", 2), logging.Float64("end", 3.14159), logging.String("text", "two words"))

	out := buf.String()
	for _, want := range []string{"start: 2\n", "end: 3.142\n", `text: "two words"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}
