package config

const (
	defaultConfigPath   = "~/.config/captioner/config.toml"
	defaultProjectFile  = "captioner.toml"
	defaultLogDir       = "~/.local/share/captioner/logs"
	defaultLanguage     = "en-US"
	defaultOutputFormat = OutputSRT
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultBatchWorkers = 4
	maxBatchWorkers     = 64
)

// Output formats understood by captions.output_format.
const (
	OutputSRT  = "srt"
	OutputText = "text"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Transcription: Transcription{
			Language: defaultLanguage,
		},
		Captions: Captions{
			OutputFormat: defaultOutputFormat,
		},
		Batch: Batch{
			Workers: defaultBatchWorkers,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
