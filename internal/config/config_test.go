package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"captioner/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != filepath.Join(tempHome, ".config", "captioner", "config.toml") {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".local", "share", "captioner", "logs"); cfg.Paths.LogDir != want {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, want)
	}
	if cfg.Paths.OutputDir != "" {
		t.Fatalf("expected empty output dir, got %q", cfg.Paths.OutputDir)
	}
	if cfg.Transcription.Language != "en-US" {
		t.Fatalf("unexpected language %q", cfg.Transcription.Language)
	}
	if cfg.Captions.OutputFormat != config.OutputSRT || cfg.TextOutput() {
		t.Fatalf("expected srt output by default, got %q", cfg.Captions.OutputFormat)
	}
	if cfg.CaptionOptions().KeepEmpty {
		t.Fatal("expected empty sentences to be dropped by default")
	}
	if cfg.Batch.Workers < 1 {
		t.Fatalf("expected positive worker count, got %d", cfg.Batch.Workers)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoadFromFileNormalizesValues(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(t.TempDir(), "captioner.toml")
	content := `
[paths]
output_dir = "~/captions"
log_dir = ""

[transcription]
language = "Arabic (ar-SA)"

[captions]
output_format = "TXT"
keep_empty_sentences = true

[batch]
workers = 0

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected config at %s, got %s (exists=%v)", path, resolved, exists)
	}
	if cfg.Paths.OutputDir != filepath.Join(tempHome, "captions") {
		t.Fatalf("unexpected output dir %q", cfg.Paths.OutputDir)
	}
	if cfg.Paths.LogDir != "" {
		t.Fatalf("expected file logging disabled, got %q", cfg.Paths.LogDir)
	}
	if cfg.Transcription.Language != "ar-SA" {
		t.Fatalf("unexpected language %q", cfg.Transcription.Language)
	}
	if !cfg.TextOutput() || !cfg.CaptionOptions().KeepEmpty {
		t.Fatalf("unexpected caption settings: %+v", cfg.Captions)
	}
	if cfg.Batch.Workers < 1 {
		t.Fatalf("expected workers to default, got %d", cfg.Batch.Workers)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CAPTIONER_LANGUAGE", "arabic")
	t.Setenv("CAPTIONER_LOG_LEVEL", "WARN")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Transcription.Language != "ar-SA" {
		t.Fatalf("expected language from env, got %q", cfg.Transcription.Language)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected level from env, got %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	tests := map[string]string{
		"unknown language": "[transcription]\nlanguage = \"not a language!\"\n",
		"bad format":       "[captions]\noutput_format = \"vtt\"\n",
		"too many workers": "[batch]\nworkers = 1000\n",
		"bad level":        "[logging]\nlevel = \"loud\"\n",
		"bad log format":   "[logging]\nformat = \"xml\"\n",
		"unknown key":      "[captions]\nmax_chars = 42\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatal("expected Load to fail")
			}
		})
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	var decoded config.Config
	if err := toml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("sample is not valid toml: %v", err)
	}
	if !strings.Contains(string(data), "keep_empty_sentences") {
		t.Fatal("sample config should document keep_empty_sentences")
	}
	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
}

func TestEnsureDirectories(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(root, "logs")
	cfg.Paths.OutputDir = filepath.Join(root, "out")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, dir := range []string{cfg.Paths.LogDir, cfg.Paths.OutputDir} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s", dir)
		}
	}
}
