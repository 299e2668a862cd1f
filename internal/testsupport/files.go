package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"captioner/internal/captions"
)

// WriteFile writes content under dir and returns the path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteTranscript writes a Whisper-style JSON transcript and returns its path.
func WriteTranscript(t testing.TB, dir, name, lang string, segments ...captions.Segment) string {
	t.Helper()
	payload := struct {
		Language string             `json:"language,omitempty"`
		Segments []captions.Segment `json:"segments"`
	}{Language: lang, Segments: segments}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		t.Fatalf("marshal transcript: %v", err)
	}
	return WriteFile(t, dir, name, string(data))
}

// ReadFile returns the content at path or fails the test.
func ReadFile(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
