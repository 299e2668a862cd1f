package config

import (
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCaptions(); err != nil {
		return err
	}
	if err := c.validateBatch(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateCaptions() error {
	switch c.Captions.OutputFormat {
	case OutputSRT, OutputText:
		return nil
	default:
		return fmt.Errorf("captions.output_format must be %q or %q, got %q", OutputSRT, OutputText, c.Captions.OutputFormat)
	}
}

func (c *Config) validateBatch() error {
	if c.Batch.Workers < 1 || c.Batch.Workers > maxBatchWorkers {
		return fmt.Errorf("batch.workers must be between 1 and %d, got %d", maxBatchWorkers, c.Batch.Workers)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
}
