package main

import (
	"testing"

	"captioner/internal/captions"
	"captioner/internal/testsupport"
)

func TestInspectCommandSRT(t *testing.T) {
	env := setupCLITestEnv(t)
	srt := testsupport.WriteFile(t, env.inputDir, "talk.srt",
		"1\n00:00:00,000 --> 00:00:01,500\nHello there.\n\n2\n00:00:01,500 --> 00:00:03,000\nGoodbye.\n\n")

	out, _, err := runCLI(t, []string{"inspect", srt}, env.configPath)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	requireContains(t, out, "Hello there.")
	requireContains(t, out, "00:00:01,500")
	requireContains(t, out, "2 captions spanning 00:00:00,000 --> 00:00:03,000")
}

func TestInspectCommandTranscript(t *testing.T) {
	env := setupCLITestEnv(t)
	src := testsupport.WriteTranscript(t, env.inputDir, "talk.json", "en",
		captions.Segment{Start: 10, End: 13, Text: "A. B. C."},
	)

	out, _, err := runCLI(t, []string{"inspect", src}, env.configPath)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	requireContains(t, out, "3 captions spanning 00:00:10,000 --> 00:00:13,000")
}
