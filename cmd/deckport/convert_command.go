package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"deckport/internal/config"
	"deckport/internal/convert"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var formatID string
	var delayMS int

	cmd := &cobra.Command{
		Use:   "convert <input>",
		Short: "Convert an inventory export to canonical CSV",
		Long: `Convert a vendor inventory export to the canonical CSV format, resolving
every row against the Scryfall card database.

The input format is auto-detected from the file's headers (or content
signature for XML exports); pass --format to skip detection. Rows that fail
to resolve are reported in the output file rather than aborting the run, so
the command exits zero whenever the conversion itself completed.

Examples:
  deckport convert collection.csv
  deckport convert collection.csv -o cards.csv
  deckport convert export.xlsx --format manabox
  deckport convert slow-network.csv --delay 250`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if cmd.Flags().Changed("delay") {
				if delayMS < 0 {
					return fmt.Errorf("delay must be zero or positive, got %d", delayMS)
				}
				cfg.Scryfall.RequestDelayMS = delayMS
			}

			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			inputPath, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			if outputPath != "" {
				if outputPath, err = config.ExpandPath(outputPath); err != nil {
					return err
				}
			}

			conv, err := convert.New(cfg, logger)
			if err != nil {
				return err
			}
			report, err := conv.Run(cmd.Context(), convert.Request{
				InputPath:  inputPath,
				OutputPath: outputPath,
				FormatID:   formatID,
			})
			if err != nil {
				return err
			}

			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination for the canonical CSV (default: next to the input)")
	cmd.Flags().StringVar(&formatID, "format", "", "Skip auto-detection and use this format id")
	cmd.Flags().IntVar(&delayMS, "delay", 0, "Override the inter-request delay in milliseconds")
	return cmd
}

func printReport(out io.Writer, report *convert.Report) {
	colorize := shouldColorize(out)

	for _, line := range renderSectionHeader("Conversion", colorize) {
		fmt.Fprintln(out, line)
	}

	formatNote := report.Format.ID
	switch report.FormatSource {
	case "headers":
		formatNote = fmt.Sprintf("%s (detected, score %.2f)", report.Format.ID, report.Score)
	case "signature":
		formatNote = fmt.Sprintf("%s (content signature)", report.Format.ID)
	case "flag":
		formatNote = fmt.Sprintf("%s (forced)", report.Format.ID)
	}
	fmt.Fprintln(out, renderStatusLine("Format", statusInfo, formatNote, colorize))
	fmt.Fprintln(out, renderStatusLine("Output", statusInfo, report.OutputPath, colorize))
	fmt.Fprintln(out, renderStatusLine("Rows", statusInfo, strconv.Itoa(report.Rows), colorize))

	resolvedKind := statusOK
	resolvedNote := fmt.Sprintf("%d of %d", report.Resolved, report.Rows)
	if report.Warned > 0 {
		resolvedKind = statusWarn
		resolvedNote = fmt.Sprintf("%d of %d (%d with warnings)", report.Resolved, report.Rows, report.Warned)
	}
	fmt.Fprintln(out, renderStatusLine("Resolved", resolvedKind, resolvedNote, colorize))
	if report.Failed > 0 {
		fmt.Fprintln(out, renderStatusLine("Failed", statusError, strconv.Itoa(report.Failed), colorize))
	}
	fmt.Fprintln(out, renderStatusLine("Duration", statusInfo, report.Duration.Round(10*time.Millisecond).String(), colorize))

	if len(report.StatusCounts) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, renderTable(
			[]string{"Status", "Rows"},
			countRows(report.StatusCounts),
			[]columnAlignment{alignLeft, alignRight},
		))
	}
	if len(report.MethodCounts) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, renderTable(
			[]string{"Method", "Rows"},
			countRows(report.MethodCounts),
			[]columnAlignment{alignLeft, alignRight},
		))
	}
}

// countRows flattens a tally map into table rows, largest buckets first.
func countRows(counts map[string]int) [][]string {
	type bucket struct {
		label string
		count int
	}
	buckets := make([]bucket, 0, len(counts))
	for label, count := range counts {
		buckets = append(buckets, bucket{label, count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].count != buckets[j].count {
			return buckets[i].count > buckets[j].count
		}
		return buckets[i].label < buckets[j].label
	})

	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, []string{b.label, strconv.Itoa(b.count)})
	}
	return rows
}
