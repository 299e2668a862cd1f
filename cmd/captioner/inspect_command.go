package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"captioner/internal/captions"
	"captioner/internal/subtitles"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.srt|transcript>",
		Short: "Show the captions of an SRT file or a formatted transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := resolveSource(args[0])
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger, closeLog, err := ctx.logger()
			if err != nil {
				return err
			}
			defer closeLog()
			caps, err := subtitles.NewService(cfg, logger).LoadCaptions(source)
			if err != nil {
				return fmt.Errorf("inspect: %w", err)
			}

			rows := make([][]string, 0, len(caps))
			for _, c := range caps {
				rows = append(rows, []string{
					strconv.Itoa(c.Index),
					captions.FormatTimestamp(c.Start),
					captions.FormatTimestamp(c.End),
					strconv.FormatFloat(c.Duration(), 'f', 3, 64),
					c.Text,
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Start", "End", "Seconds", "Text"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft},
			))
			first, last := captions.Span(caps)
			fmt.Fprintf(out, "%d captions spanning %s --> %s\n", len(caps), captions.FormatTimestamp(first), captions.FormatTimestamp(last))
			return nil
		},
	}
}
