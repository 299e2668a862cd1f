package transcript

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"captioner/internal/captions"
)

var (
	// ErrUnsupportedFormat is returned for input formats Load cannot read.
	ErrUnsupportedFormat = errors.New("unsupported transcript format")
	// ErrNoSegments is returned when a transcript carries no segments at all.
	ErrNoSegments = errors.New("transcript has no segments")
)

// Format identifies a transcript encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// Transcript is the engine output handed to the caption formatter.
type Transcript struct {
	Language string             `json:"language,omitempty" yaml:"language,omitempty"`
	Segments []captions.Segment `json:"segments" yaml:"segments"`
}

// Timed reports whether any segment carries timing information.
func (t Transcript) Timed() bool {
	for _, seg := range t.Segments {
		if seg.End > 0 {
			return true
		}
	}
	return false
}

// Duration returns the end of the last-ending segment in seconds.
func (t Transcript) Duration() float64 {
	var last float64
	for _, seg := range t.Segments {
		last = max(last, seg.End)
	}
	return last
}

// Validate returns the first invalid segment as *captions.InvalidSegmentError.
func (t Transcript) Validate() error {
	if len(t.Segments) == 0 {
		return ErrNoSegments
	}
	_, err := captions.Formatter{}.Captions(t.Segments)
	return err
}

// FormatForPath maps a file extension to a transcript format.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads a transcript file, picking the decoder from its extension.
func Load(path string) (Transcript, error) {
	if strings.TrimSpace(path) == "" {
		return Transcript{}, os.ErrNotExist
	}
	format, err := FormatForPath(path)
	if err != nil {
		return Transcript{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return Transcript{}, err
	}
	defer file.Close()

	tr, err := Decode(file, format)
	if err != nil {
		return Transcript{}, fmt.Errorf("load transcript %s: %w", filepath.Base(path), err)
	}
	return tr, nil
}

// Decode reads a transcript of the given format from r.
func Decode(r io.Reader, format Format) (Transcript, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Transcript{}, fmt.Errorf("read transcript: %w", err)
	}
	var tr Transcript
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &tr); err != nil {
			return Transcript{}, fmt.Errorf("parse json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &tr); err != nil {
			return Transcript{}, fmt.Errorf("parse yaml: %w", err)
		}
	case FormatText:
		text := strings.TrimSpace(string(bytes.TrimPrefix(data, []byte("\ufeff"))))
		tr.Segments = []captions.Segment{{Text: text}}
	default:
		return Transcript{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	tr.Language = strings.TrimSpace(tr.Language)
	return tr, nil
}
