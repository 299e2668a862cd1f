package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"captioner/internal/language"
)

func newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "languages",
		Short:       "List selectable transcript languages",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			supported := language.Supported()
			rows := make([][]string, 0, len(supported))
			for _, sel := range supported {
				rows = append(rows, []string{
					sel.String(),
					sel.Base,
					language.ToISO3(sel.String()),
					language.Label(sel),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Tag", "ISO 639-1", "ISO 639-2", "Label"},
				rows,
				nil,
			))
			return nil
		},
	}
}
