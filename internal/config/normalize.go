package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"captioner/internal/language"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeTranscription(); err != nil {
		return err
	}
	c.normalizeCaptions()
	c.normalizeBatch()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.OutputDir, err = expandPath(strings.TrimSpace(c.Paths.OutputDir)); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeTranscription() error {
	if value, ok := os.LookupEnv("CAPTIONER_LANGUAGE"); ok && strings.TrimSpace(value) != "" {
		c.Transcription.Language = value
	}
	c.Transcription.Language = strings.TrimSpace(c.Transcription.Language)
	if c.Transcription.Language == "" {
		c.Transcription.Language = defaultLanguage
	}
	sel, err := language.Resolve(c.Transcription.Language)
	if err != nil {
		return fmt.Errorf("transcription.language: %w", err)
	}
	c.Transcription.Language = sel.String()
	return nil
}

func (c *Config) normalizeCaptions() {
	c.Captions.OutputFormat = strings.ToLower(strings.TrimSpace(c.Captions.OutputFormat))
	switch c.Captions.OutputFormat {
	case "", "subrip":
		c.Captions.OutputFormat = OutputSRT
	case "txt", "plain":
		c.Captions.OutputFormat = OutputText
	}
}

func (c *Config) normalizeBatch() {
	if c.Batch.Workers <= 0 {
		c.Batch.Workers = min(runtime.NumCPU(), defaultBatchWorkers)
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if value, ok := os.LookupEnv("CAPTIONER_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
