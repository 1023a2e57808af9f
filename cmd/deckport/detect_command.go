package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"deckport/internal/config"
	"deckport/internal/detect"
	"deckport/internal/formats"
	"deckport/internal/rowsource"
)

func newDetectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "detect <input>",
		Short:       "Show per-format detection scores for a file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Long: `Score every registered format against an input file without converting it.
Useful when auto-detection picks the wrong format or nothing at all: the
table shows which required headers each format missed and how close the
scores were.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			doc, err := rowsource.ReadPath(path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if doc.SignatureFormat != "" {
				f, ok := formats.ByID(doc.SignatureFormat)
				if !ok {
					return fmt.Errorf("unregistered signature format %q", doc.SignatureFormat)
				}
				fmt.Fprintf(out, "Content signature matched %s (%s)\n", f.ID, f.Name)
				return nil
			}

			fmt.Fprintf(out, "Headers: %s\n\n", strings.Join(doc.Headers, ", "))

			candidates := detect.ScoreAll(doc.Headers)
			rows := make([][]string, 0, len(candidates))
			for _, c := range candidates {
				eligible := "yes"
				if !c.Eligible() {
					eligible = "missing: " + strings.Join(c.Missing, ", ")
				}
				rows = append(rows, []string{
					c.Format.ID,
					fmt.Sprintf("%.2f", c.Score),
					eligible,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Format", "Score", "Required Headers"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft},
			))

			best, err := detect.Headers(doc.Headers)
			if err != nil {
				fmt.Fprintf(out, "\nNo format reached the %.2f floor.\n", detect.Threshold)
				return err
			}
			fmt.Fprintf(out, "\nDetected: %s (%s), score %.2f\n", best.Format.ID, best.Format.Name, best.Score)
			return nil
		},
	}
	return cmd
}
