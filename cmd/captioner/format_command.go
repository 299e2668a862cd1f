package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"captioner/internal/subtitles"
)

func newFormatCommand(ctx *commandContext) *cobra.Command {
	var outputDir string
	var languageFlag string
	var textOutput bool
	var keepEmpty bool
	var toStdout bool

	cmd := &cobra.Command{
		Use:   "format <transcript>",
		Short: "Format a transcript (.json, .yaml, .txt) into an SRT caption file",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("provide the path to a transcript file. Example: captioner format talk.json\nRun captioner format --help for more details")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := resolveSource(args[0])
			if err != nil {
				return err
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if keepEmpty {
				override := *cfg
				override.Captions.KeepEmptySentences = true
				cfg = &override
			}
			logger, closeLog, err := ctx.logger()
			if err != nil {
				return err
			}
			defer closeLog()

			service := subtitles.NewService(cfg, logger)
			result, err := service.Generate(cmd.Context(), subtitles.GenerateRequest{
				SourcePath: source,
				OutputDir:  outputDir,
				Language:   languageFlag,
				Text:       textOutput,
				DryRun:     toStdout,
			})
			if err != nil {
				return fmt.Errorf("format %s: %w", filepath.Base(source), err)
			}

			out := cmd.OutOrStdout()
			if toStdout {
				fmt.Fprint(out, result.Content)
				return nil
			}
			if result.Format == subtitles.FormatText {
				fmt.Fprintf(out, "Wrote transcript: %s (language: %s, segments: %d)\n",
					result.OutputPath, result.Language, result.SegmentCount)
				return nil
			}
			fmt.Fprintf(out, "Wrote captions: %s (language: %s, segments: %d, captions: %d, duration: %s)\n",
				result.OutputPath, result.Language, result.SegmentCount, result.CaptionCount, result.Duration.Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default: paths.output_dir, else alongside the transcript)")
	cmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Language override, e.g. ar-SA or \"Arabic (ar-SA)\"")
	cmd.Flags().BoolVar(&textOutput, "text", false, "Write the plain transcript instead of captions")
	cmd.Flags().BoolVar(&keepEmpty, "keep-empty", false, "Keep empty sentences as zero-text captions")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the result instead of writing a file")

	return cmd
}

func resolveSource(arg string) (string, error) {
	source := strings.TrimSpace(arg)
	if source == "" {
		return "", fmt.Errorf("source file path is required")
	}
	source, _ = filepath.Abs(source)
	info, err := os.Stat(source)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("source file %q not found", source)
		}
		return "", fmt.Errorf("stat source: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("source path %q is a directory", source)
	}
	return source, nil
}
