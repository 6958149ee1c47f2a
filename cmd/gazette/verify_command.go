package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check database connectivity and report store health",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Ping(cmd.Context()); err != nil {
				return fmt.Errorf("database unavailable at %s: %w", st.Path(), err)
			}

			health, err := st.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("collect store health: %w", err)
			}

			if jsonOutput || !stdoutIsTTY() {
				return writeJSON(cmd, struct {
					Path     string `json:"path"`
					Total    int    `json:"total"`
					Pending  int    `json:"pending"`
					Enriched int    `json:"enriched"`
					Failed   int    `json:"failed"`
				}{st.Path(), health.Total, health.Pending, health.Enriched, health.Failed})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Database: %s\n", st.Path())
			fmt.Fprintln(out, renderTable(
				[]string{"Total", "Pending", "Enriched", "Failed"},
				[][]string{{
					strconv.Itoa(health.Total),
					strconv.Itoa(health.Pending),
					strconv.Itoa(health.Enriched),
					strconv.Itoa(health.Failed),
				}},
				1, 2, 3, 4,
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit store health as JSON")
	return cmd
}
