package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"captioner/internal/captions"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.srt>",
		Short: "Check an SRT file for index gaps, negative durations and overlaps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := resolveSource(args[0])
			if err != nil {
				return err
			}
			data, err := os.ReadFile(source)
			if err != nil {
				return fmt.Errorf("read %s: %w", source, err)
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			caps, err := captions.ParseDocument(string(data))
			if err != nil {
				fmt.Fprintln(out, renderStatusLine("parse", statusError, err.Error(), colorize))
				return fmt.Errorf("%s is not a valid srt document", source)
			}
			fmt.Fprintln(out, renderStatusLine("parse", statusOK, fmt.Sprintf("%d captions", len(caps)), colorize))

			issues := captions.ValidateDocument(caps)
			if len(issues) == 0 {
				fmt.Fprintln(out, renderStatusLine("timing", statusOK, "", colorize))
				return nil
			}
			for _, issue := range issues {
				fmt.Fprintln(out, renderStatusLine("timing", statusWarn, issue, colorize))
			}
			return fmt.Errorf("%s has %d issue(s)", source, len(issues))
		},
	}
}
