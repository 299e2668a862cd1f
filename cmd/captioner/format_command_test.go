package main

import (
	"errors"
	"path/filepath"
	"testing"

	"captioner/internal/captions"
	"captioner/internal/testsupport"
)

func TestFormatCommandWritesSRT(t *testing.T) {
	env := setupCLITestEnv(t)
	src := testsupport.WriteTranscript(t, env.inputDir, "lecture.json", "ar-SA",
		captions.Segment{Start: 0, End: 4, Text: "First point. Second point."},
		captions.Segment{Start: 4, End: 6.5, Text: "Done"},
	)

	out, _, err := runCLI(t, []string{"format", src}, env.configPath)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	target := filepath.Join(env.outputDir, "lecture.ar.srt")
	requireContains(t, out, "Wrote captions: "+target)
	requireContains(t, out, "captions: 3")

	want := "1\n00:00:00,000 --> 00:00:02,000\nFirst point.\n\n" +
		"2\n00:00:02,000 --> 00:00:04,000\nSecond point.\n\n" +
		"3\n00:00:04,000 --> 00:00:06,500\nDone\n\n"
	if got := testsupport.ReadFile(t, target); got != want {
		t.Fatalf("srt content mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestFormatCommandStdout(t *testing.T) {
	env := setupCLITestEnv(t)
	src := testsupport.WriteTranscript(t, env.inputDir, "clip.json", "en",
		captions.Segment{Start: 3600, End: 3601.25, Text: "Late."},
	)

	out, _, err := runCLI(t, []string{"format", "--stdout", src}, env.configPath)
	if err != nil {
		t.Fatalf("format --stdout: %v", err)
	}
	if want := "1\n01:00:00,000 --> 01:00:01,250\nLate.\n\n"; out != want {
		t.Fatalf("stdout = %q, want %q", out, want)
	}
}

func TestFormatCommandTextAndLanguageOverride(t *testing.T) {
	env := setupCLITestEnv(t)
	src := testsupport.WriteTranscript(t, env.inputDir, "memo.json", "",
		captions.Segment{Start: 0, End: 1, Text: "مرحبا"},
		captions.Segment{Start: 1, End: 2, Text: " بالعالم."},
	)

	out, _, err := runCLI(t, []string{"format", "--text", "--language", "Arabic (ar-SA)", "-o", env.outputDir, src}, env.configPath)
	if err != nil {
		t.Fatalf("format --text: %v", err)
	}
	target := filepath.Join(env.outputDir, "memo.ar.txt")
	requireContains(t, out, "Wrote transcript: "+target)
	if got := testsupport.ReadFile(t, target); got != "مرحبا بالعالم.\n" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestFormatCommandRejectsInvalidSegment(t *testing.T) {
	env := setupCLITestEnv(t)
	src := testsupport.WriteTranscript(t, env.inputDir, "broken.json", "en",
		captions.Segment{Start: 5, End: 2, Text: "Backwards."},
	)

	_, _, err := runCLI(t, []string{"format", src}, env.configPath)
	var invalid *captions.InvalidSegmentError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidSegmentError, got %v", err)
	}
	if invalid.Position != 0 || invalid.Start != 5 || invalid.End != 2 {
		t.Fatalf("unexpected error fields %+v", invalid)
	}
}

func TestFormatCommandRequiresExistingSource(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{"format", filepath.Join(env.inputDir, "missing.json")}, env.configPath)
	if err == nil {
		t.Fatal("expected error for missing source")
	}
	requireContains(t, err.Error(), "not found")

	if _, _, err := runCLI(t, []string{"format"}, env.configPath); err == nil {
		t.Fatal("expected argument error")
	}
}

func TestFormatCommandRejectsBadLogLevel(t *testing.T) {
	env := setupCLITestEnv(t)
	src := testsupport.WriteTranscript(t, env.inputDir, "a.json", "en", captions.Segment{Start: 0, End: 1, Text: "A."})
	_, _, err := runCLI(t, []string{"--log-level", "loud", "format", src}, env.configPath)
	if err == nil {
		t.Fatal("expected log level validation error")
	}
	requireContains(t, err.Error(), "logging.level")
}
