package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"deckport/internal/formats"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "formats",
		Short:       "List supported inventory formats",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(formats.Registry()))
			for _, f := range formats.Registry() {
				detection := "headers"
				if f.IsSignature() {
					detection = "signature"
				}
				rows = append(rows, []string{
					f.ID,
					f.Name,
					detection,
					strings.Join(f.Required, ", "),
					strings.Join(f.Strong, ", "),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Name", "Detection", "Required Headers", "Strong Indicators"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}
