package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"gazette/internal/enrichment/directory"
	"gazette/internal/enrichment/pdl"
	"gazette/internal/export"
	"gazette/internal/runner"
)

func newBackfillCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var jsonOut string

	cmd := &cobra.Command{
		Use:   "backfill",
		Short: "Refresh stale enrichment envelopes in the people store",
		Long: `Backfill walks every enriched record, refetches provider data for
envelopes that are empty or carry degraded boolean fields, and repairs
missing existing_record snapshots. A file lock keeps runs exclusive; records
that fail are counted and skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			logger, err := ctx.newLogger()
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}

			timeout := time.Duration(cfg.Enrichment.RequestTimeout) * time.Second
			provider, err := pdl.New(cfg.Enrichment.PDLAPIKey, cfg.Enrichment.PDLBaseURL, timeout)
			if err != nil {
				return fmt.Errorf("build people-data client: %w", err)
			}

			st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			opts := []runner.Option{runner.WithLogger(logger)}
			if cfg.Enrichment.DirectoryBaseURL != "" {
				dir, err := directory.New(cfg.Enrichment.DirectoryBaseURL, timeout)
				if err != nil {
					return fmt.Errorf("build directory client: %w", err)
				}
				opts = append(opts, runner.WithDirectory(dir))
			}

			lockPath := filepath.Join(cfg.Paths.DataDir, "backfill.lock")
			r := runner.New(st, provider, cfg.Enrichment.StaleFields, lockPath, opts...)

			summary, err := r.Run(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOut != "" {
				if err := writeReportFile(cfg.Paths.ReportDir, jsonOut, func(f *os.File) error {
					return export.WriteBackfillJSON(f, summary)
				}); err != nil {
					return err
				}
			}

			if jsonOutput || !stdoutIsTTY() {
				return writeJSON(cmd, summary)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Processed", "Updated", "Skipped", "Errors"},
				[][]string{{
					strconv.Itoa(summary.Processed),
					strconv.Itoa(summary.Updated),
					strconv.Itoa(summary.Skipped),
					strconv.Itoa(summary.Errors),
				}},
				1, 2, 3, 4,
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the run summary as JSON")
	cmd.Flags().StringVar(&jsonOut, "json-out", "", "Write the run summary to this path (relative paths land in report_dir)")
	return cmd
}
