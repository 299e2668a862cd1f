package testsupport

import (
	"path/filepath"
	"testing"

	"captioner/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.OutputDir = filepath.Join(base, "out")
	cfgVal.Paths.LogDir = ""
	cfgVal.Batch.Workers = 2

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithLanguage sets the default transcription language.
func WithLanguage(tag string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Transcription.Language = tag
	}
}

// WithTextOutput switches the config to plain-transcript output.
func WithTextOutput() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Captions.OutputFormat = config.OutputText
	}
}

// WithKeepEmptySentences keeps empty sentences as captions.
func WithKeepEmptySentences() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Captions.KeepEmptySentences = true
	}
}

// WithOutputDir overrides the output directory; empty writes next to sources.
func WithOutputDir(dir string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.OutputDir = dir
	}
}
