package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"captioner/internal/captions"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	// OutputDir receives generated files. Empty writes next to each transcript.
	OutputDir string `toml:"output_dir"`
	// LogDir receives captioner.log. Empty disables file logging.
	LogDir string `toml:"log_dir"`
}

// Transcription describes the transcripts being formatted.
type Transcription struct {
	// Language is the default language when a transcript does not declare one.
	Language string `toml:"language"`
}

// Captions contains caption rendering options.
type Captions struct {
	KeepEmptySentences bool   `toml:"keep_empty_sentences"`
	OutputFormat       string `toml:"output_format"`
}

// Batch contains configuration for multi-transcript runs.
type Batch struct {
	Workers int `toml:"workers"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for captioner.
type Config struct {
	Paths         Paths         `toml:"paths"`
	Transcription Transcription `toml:"transcription"`
	Captions      Captions      `toml:"captions"`
	Batch         Batch         `toml:"batch"`
	Logging       Logging       `toml:"logging"`
}

// Load resolves the config file (see resolveConfigPath), decodes it over the
// defaults, then normalizes and validates the result. It returns the path it
// looked at and whether that file existed; a missing file is not an error.
func Load(path string) (*Config, string, bool, error) {
	resolved, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	cfg := Default()
	if exists {
		data, err := os.ReadFile(resolved)
		if err != nil {
			return nil, "", false, fmt.Errorf("read config: %w", err)
		}
		if err := decode(data, &cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolved, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolved, exists, nil
}

// decode rejects keys that do not map to a field so typos surface early.
func decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// CaptionOptions returns the formatter options selected by the config.
func (c *Config) CaptionOptions() captions.Options {
	return captions.Options{KeepEmpty: c.Captions.KeepEmptySentences}
}

// TextOutput reports whether plain transcripts are produced instead of SRT.
func (c *Config) TextOutput() bool {
	return c.Captions.OutputFormat == OutputText
}

// CreateSample writes the annotated sample configuration to path.
func CreateSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
