package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"captioner/internal/config"
)

// LogFileName is the file NewFromConfig appends to inside paths.log_dir.
const LogFileName = "captioner.log"

// Options describes logger construction parameters.
type Options struct {
	Level  string // debug, info, warn, error; default info
	Format string // console or json; default console
	// OutputPaths lists "stdout", "stderr" or file paths. Default stderr.
	OutputPaths []string
	// Writer, when set, replaces OutputPaths.
	Writer io.Writer
}

// CloseFunc releases log files opened for a logger. It is safe to call more
// than once.
type CloseFunc func() error

// New constructs a slog logger using the provided options. The returned
// CloseFunc closes any log files opened for OutputPaths; callers defer it.
func New(opts Options) (*slog.Logger, CloseFunc, error) {
	levelVar := new(slog.LevelVar)
	levelVar.Set(parseLevel(opts.Level))
	addSource := levelVar.Level() <= slog.LevelDebug

	var newHandler func(io.Writer, *slog.LevelVar, bool) slog.Handler
	switch format := strings.ToLower(strings.TrimSpace(opts.Format)); format {
	case "json":
		newHandler = newJSONHandler
	case "", "console":
		newHandler = newPrettyHandler
	default:
		return nil, nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	out, closeFn := opts.Writer, CloseFunc(func() error { return nil })
	if out == nil {
		var err error
		if out, closeFn, err = openWriters(opts.OutputPaths); err != nil {
			return nil, nil, err
		}
	}
	return slog.New(newHandler(out, levelVar, addSource)), closeFn, nil
}

// NewFromConfig builds the CLI logger from the [logging] section. Records go
// to stderr and, when paths.log_dir is set, are appended to LogFileName.
func NewFromConfig(cfg *config.Config) (*slog.Logger, CloseFunc, error) {
	if cfg == nil {
		return New(Options{})
	}
	outputs := []string{"stderr"}
	if cfg.Paths.LogDir != "" {
		outputs = append(outputs, filepath.Join(cfg.Paths.LogDir, LogFileName))
	}
	return New(Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: outputs,
	})
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func openWriters(paths []string) (io.Writer, CloseFunc, error) {
	seen := make(map[string]bool, len(paths))
	var writers []io.Writer
	var files []*os.File
	closeFiles := func() error {
		var errs []error
		for _, file := range files {
			if err := file.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
	for _, path := range paths {
		path = strings.TrimSpace(path)
		if path == "" || seen[path] {
			continue
		}
		seen[path] = true

		switch path {
		case "stdout":
			writers = append(writers, os.Stdout)
		case "stderr":
			writers = append(writers, os.Stderr)
		default:
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				_ = closeFiles()
				return nil, nil, fmt.Errorf("ensure log directory: %w", err)
			}
			file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				_ = closeFiles()
				return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
			}
			files = append(files, file)
			writers = append(writers, file)
		}
	}

	switch len(writers) {
	case 0:
		return os.Stderr, closeFiles, nil
	case 1:
		return writers[0], closeFiles, nil
	default:
		return io.MultiWriter(writers...), closeFiles, nil
	}
}

// newJSONHandler renames slog's default keys to ts/level/msg and renders the
// time as UTC RFC 3339.
func newJSONHandler(w io.Writer, lvl *slog.LevelVar, addSource bool) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: addSource,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return attr
			}
			switch attr.Key {
			case slog.TimeKey:
				return slog.String("ts", attr.Value.Time().UTC().Format(time.RFC3339))
			case slog.LevelKey:
				return slog.String("level", strings.ToLower(attr.Value.String()))
			case slog.MessageKey:
				attr.Key = "msg"
			case slog.SourceKey:
				if src, ok := attr.Value.Any().(*slog.Source); ok && src != nil {
					return slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", filepath.Base(src.File), src.Line))
				}
			}
			return attr
		},
	})
}
