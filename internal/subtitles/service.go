package subtitles

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"captioner/internal/captions"
	"captioner/internal/config"
	"captioner/internal/fileutil"
	"captioner/internal/language"
	"captioner/internal/logging"
	"captioner/internal/transcript"
)

// Output formats.
const (
	FormatSRT  = "srt"
	FormatText = "text"
)

// GenerateRequest describes the inputs for one transcript.
type GenerateRequest struct {
	SourcePath string
	// OutputDir overrides paths.output_dir; empty falls back to it, then to
	// the source directory.
	OutputDir string
	// Language overrides the transcript's declared language.
	Language string
	// Text requests a plain transcript instead of SRT captions.
	Text bool
	// DryRun renders the content without writing a file.
	DryRun bool
}

// GenerateResult reports the rendered artifact and summary stats.
type GenerateResult struct {
	OutputPath   string // empty on dry runs
	Format       string
	Language     language.Selection
	SegmentCount int
	CaptionCount int
	Duration     time.Duration
	Content      string
}

// Service renders transcripts into caption or text artifacts.
type Service struct {
	config    *config.Config
	logger    *slog.Logger
	formatter captions.Formatter
}

// NewService constructs a Service. A nil config uses repository defaults.
func NewService(cfg *config.Config, logger *slog.Logger) *Service {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	return &Service{
		config:    cfg,
		logger:    logging.NewComponentLogger(logger, "subtitles"),
		formatter: captions.NewFormatter(cfg.CaptionOptions()),
	}
}

// plan is what Generate settles on before rendering anything.
type plan struct {
	source     string
	transcript transcript.Transcript
	language   language.Selection
	format     string
	untimed    bool   // captions were wanted but the transcript has no timing
	outputPath string // where the artifact goes unless DryRun is set
}

// OutputPath reports where Generate would write req's artifact, without
// rendering or writing anything. Batch callers use it to spot jobs that would
// overwrite each other.
func (s *Service) OutputPath(req GenerateRequest) (string, error) {
	p, err := s.plan(logging.NewNop(), req)
	if err != nil {
		return "", err
	}
	return p.outputPath, nil
}

func (s *Service) plan(logger *slog.Logger, req GenerateRequest) (plan, error) {
	source := strings.TrimSpace(req.SourcePath)
	if source == "" {
		return plan{}, errors.New("source path is required")
	}
	tr, err := transcript.Load(source)
	if err != nil {
		return plan{}, err
	}
	if len(tr.Segments) == 0 {
		return plan{}, fmt.Errorf("%s: %w", filepath.Base(source), transcript.ErrNoSegments)
	}
	sel, err := s.resolveLanguage(logger, req.Language, tr.Language)
	if err != nil {
		return plan{}, err
	}

	p := plan{source: source, transcript: tr, language: sel, format: FormatSRT}
	wantText := req.Text || s.config.TextOutput()
	if !wantText && !tr.Timed() {
		p.untimed = true
		wantText = true
	}
	ext := "srt"
	if wantText {
		p.format = FormatText
		ext = "txt"
	}

	outDir := strings.TrimSpace(req.OutputDir)
	if outDir == "" {
		outDir = s.config.Paths.OutputDir
	}
	p.outputPath = fileutil.OutputPath(outDir, source, sel.Base, ext)
	if abs, err := filepath.Abs(p.outputPath); err == nil {
		p.outputPath = abs
	}
	return p, nil
}

// Generate renders req.SourcePath and, unless DryRun is set, writes the result.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	logger := logging.WithContext(ctx, s.logger)
	p, err := s.plan(logger, req)
	if err != nil {
		return GenerateResult{}, err
	}
	source, tr, sel := p.source, p.transcript, p.language

	result := GenerateResult{
		Format:       p.format,
		Language:     sel,
		SegmentCount: len(tr.Segments),
		Duration:     time.Duration(tr.Duration() * float64(time.Second)),
	}
	if p.untimed {
		logging.WarnWithContext(logger, "transcript has no timing; writing plain text", "untimed_transcript",
			logging.String("source", source),
			logging.String(logging.FieldErrorHint, "use an engine that reports segment timestamps for captions"),
			logging.String(logging.FieldImpact, "no .srt file is produced for this transcript"),
		)
	}

	if p.format == FormatText {
		result.Content = strings.TrimSpace(captions.FlattenTranscript(tr.Segments)) + "\n"
	} else {
		caps, err := s.formatter.Captions(tr.Segments)
		if err != nil {
			return GenerateResult{}, fmt.Errorf("%s: %w", filepath.Base(source), err)
		}
		var b strings.Builder
		if err := captions.WriteDocument(&b, caps); err != nil {
			return GenerateResult{}, fmt.Errorf("render captions: %w", err)
		}
		result.CaptionCount = len(caps)
		result.Content = b.String()
	}

	if req.DryRun {
		return result, nil
	}

	result.OutputPath = p.outputPath
	if sameFile(result.OutputPath, source) {
		return GenerateResult{}, fmt.Errorf("output %s would overwrite its source", result.OutputPath)
	}
	if err := fileutil.WriteFileAtomic(ctx, result.OutputPath, []byte(result.Content), 0o644); err != nil {
		return GenerateResult{}, fmt.Errorf("write %s: %w", result.OutputPath, err)
	}

	logger.Info("subtitle generated",
		logging.String("output", result.OutputPath),
		logging.String("format", result.Format),
		logging.String("language", sel.String()),
		logging.Int("segments", result.SegmentCount),
		logging.Int("captions", result.CaptionCount),
	)
	return result, nil
}

func (s *Service) resolveLanguage(logger *slog.Logger, override, declared string) (language.Selection, error) {
	if strings.TrimSpace(override) != "" {
		sel, err := language.Resolve(override)
		if err != nil {
			return language.Selection{}, fmt.Errorf("language: %w", err)
		}
		return sel, nil
	}
	if strings.TrimSpace(declared) != "" {
		sel, err := language.Resolve(declared)
		if err == nil {
			return sel, nil
		}
		logging.WarnWithContext(logger, "transcript language not recognized; using configured default", "transcript_language_unknown",
			logging.String("declared", declared),
			logging.String("fallback", s.config.Transcription.Language),
			logging.String(logging.FieldImpact, "output file is named with the default language"),
		)
	}
	sel, err := language.Resolve(s.config.Transcription.Language)
	if err != nil {
		return language.Selection{}, fmt.Errorf("transcription.language: %w", err)
	}
	return sel, nil
}

// LoadCaptions reads captions from an SRT file, or formats them from a
// transcript file, for inspection.
func (s *Service) LoadCaptions(path string) ([]captions.Caption, error) {
	if strings.EqualFold(filepath.Ext(path), ".srt") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read srt: %w", err)
		}
		return captions.ParseDocument(string(data))
	}
	tr, err := transcript.Load(path)
	if err != nil {
		return nil, err
	}
	return s.formatter.Captions(tr.Segments)
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}
