package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

const ansiReset = "\x1b[0m"

var levelColors = map[string]string{
	"ERROR": "\x1b[31m",
	"WARN":  "\x1b[33m",
	"INFO":  "\x1b[34m",
	"DEBUG": "\x1b[90m",
}

// consoleHandler writes one header line per record followed by an indented
// field list:
//
//	2026-01-02 15:04:05.000 INFO [batch] talk.json – job complete
//	    - output: talk.en.srt
type consoleHandler struct {
	mu        *sync.Mutex
	out       io.Writer
	level     *slog.LevelVar
	attrs     []slog.Attr
	groups    []string
	addSource bool
	colorize  bool
}

func newPrettyHandler(w io.Writer, lvl *slog.LevelVar, addSource bool) slog.Handler {
	return &consoleHandler{
		mu:        &sync.Mutex{},
		out:       w,
		level:     lvl,
		addSource: addSource,
		colorize:  shouldColorize(w),
	}
}

// shouldColorize reports whether w is an interactive terminal.
func shouldColorize(w io.Writer) bool {
	if _, disabled := os.LookupEnv("NO_COLOR"); disabled {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	if !h.Enabled(context.Background(), record.Level) {
		return nil
	}

	var fields fieldList
	fields.addAll(h.groups, h.attrs)
	record.Attrs(func(attr slog.Attr) bool {
		fields.add(h.groups, attr)
		return true
	})

	var component, job string
	body := make([]field, 0, len(fields.items))
	for _, f := range fields.items {
		switch {
		case f.key == FieldComponent:
			component = attrString(f.value)
		case f.key == FieldJob:
			job = attrString(f.value)
		case f.key == FieldRunID && record.Level >= slog.LevelInfo:
			// shown at debug only
		default:
			body = append(body, f)
		}
	}

	var buf bytes.Buffer
	h.writeHeader(&buf, record, component, job)
	for _, f := range body {
		fmt.Fprintf(&buf, "    - %s: %s\n", f.key, formatValue(f.value))
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf.Bytes())
	return err
}

func (h *consoleHandler) writeHeader(buf *bytes.Buffer, record slog.Record, component, job string) {
	ts := record.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	buf.WriteString(formatTimestamp(ts))
	buf.WriteByte(' ')

	label := levelLabel(record.Level)
	if h.colorize {
		label = levelColors[label] + label + ansiReset
	}
	buf.WriteString(label)

	if component != "" {
		fmt.Fprintf(buf, " [%s]", component)
	}
	if job != "" {
		buf.WriteString(" " + job)
	}
	message := strings.TrimSpace(record.Message)
	if message == "" {
		message = "(no message)"
	}
	buf.WriteString(" – " + message)

	if h.addSource && record.PC != 0 {
		if src := record.Source(); src != nil {
			fmt.Fprintf(buf, " [%s:%d]", filepath.Base(src.File), src.Line)
		}
	}
	buf.WriteByte('\n')
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(slices.Clone(h.attrs), attrs...)
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.groups = append(slices.Clone(h.groups), name)
	return &clone
}

type field struct {
	key   string
	value slog.Value
}

// fieldList flattens groups into dotted keys. A repeated key keeps its first
// position and its last value.
type fieldList struct {
	items []field
	index map[string]int
}

func (l *fieldList) addAll(prefix []string, attrs []slog.Attr) {
	for _, attr := range attrs {
		l.add(prefix, attr)
	}
}

func (l *fieldList) add(prefix []string, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	attr.Value = attr.Value.Resolve()
	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			prefix = append(slices.Clone(prefix), attr.Key)
		}
		l.addAll(prefix, attr.Value.Group())
		return
	}
	if attr.Key == "" {
		return
	}
	key := strings.Join(append(slices.Clone(prefix), attr.Key), ".")
	if l.index == nil {
		l.index = make(map[string]int)
	}
	if pos, ok := l.index[key]; ok {
		l.items[pos].value = attr.Value
		return
	}
	l.index[key] = len(l.items)
	l.items = append(l.items, field{key: key, value: attr.Value})
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
