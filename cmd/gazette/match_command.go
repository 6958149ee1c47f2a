package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"gazette/internal/export"
	"gazette/internal/identity"
	"gazette/internal/matching"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var csvOut string
	var jsonOut string
	var threshold int

	cmd := &cobra.Command{
		Use:   "match <input-file>",
		Short: "Match a batch of extracted people against the people store",
		Long: `Match reads people from a grant XML document or a JSON array, removes
exact duplicates, scores every person against existing records sharing the
same normalized surname, and reports which matches clear the auto-match
threshold.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if threshold <= 0 {
				threshold = cfg.Matching.AutoMatchThreshold
			}

			people, err := readPeopleFile(args[0])
			if err != nil {
				return err
			}
			unique, duplicates := identity.Deduplicate(people)

			st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			rows, err := st.FetchBySurnameKeys(cmd.Context(), matching.SurnameKeys(unique))
			if err != nil {
				return fmt.Errorf("fetch candidates: %w", err)
			}

			results, summary := matching.MatchBatch(unique, rows, threshold)
			report := matching.Report{
				Summary:         summary,
				DuplicatesFound: duplicates,
				Results:         results,
			}

			if csvOut != "" {
				if err := writeReportFile(cfg.Paths.ReportDir, csvOut, func(f *os.File) error {
					return export.WriteMatchCSV(f, report)
				}); err != nil {
					return err
				}
			}
			if jsonOut != "" {
				if err := writeReportFile(cfg.Paths.ReportDir, jsonOut, func(f *os.File) error {
					return export.WriteMatchJSON(f, report)
				}); err != nil {
					return err
				}
			}

			if jsonOutput || !stdoutIsTTY() {
				return writeJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Sampled", "Confirmed", "Below Threshold", "Confirmation Rate", "Duplicates Dropped"},
				[][]string{{
					strconv.Itoa(summary.Sampled),
					strconv.Itoa(summary.Confirmed),
					strconv.Itoa(summary.BelowThreshold),
					formatRate(summary.ConfirmationRate),
					strconv.Itoa(duplicates.Count),
				}},
				1, 2, 3, 4, 5,
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the full report as JSON")
	cmd.Flags().StringVar(&csvOut, "csv-out", "", "Write a CSV report to this path (relative paths land in report_dir)")
	cmd.Flags().StringVar(&jsonOut, "json-out", "", "Write a JSON report to this path (relative paths land in report_dir)")
	cmd.Flags().IntVar(&threshold, "threshold", 0, "Override the configured auto-match threshold")
	return cmd
}

func writeReportFile(reportDir, path string, write func(*os.File) error) error {
	if !filepath.IsAbs(path) {
		path = filepath.Join(reportDir, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report %s: %w", path, err)
	}
	defer f.Close()
	if err := write(f); err != nil {
		return err
	}
	return f.Close()
}
