package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gazette/internal/identity"
)

func newDedupeCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "dedupe <input-file>",
		Short: "Report exact duplicates in a batch of extracted people",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}
			people, err := readPeopleFile(args[0])
			if err != nil {
				return err
			}
			unique, report := identity.Deduplicate(people)

			if jsonOutput || !stdoutIsTTY() {
				return writeJSON(cmd, struct {
					Input      int                      `json:"input"`
					Unique     int                      `json:"unique"`
					Duplicates identity.DuplicateReport `json:"duplicates"`
				}{len(people), len(unique), report})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Input", "Unique", "Duplicates"},
				[][]string{{
					strconv.Itoa(len(people)),
					strconv.Itoa(len(unique)),
					strconv.Itoa(report.Count),
				}},
				1, 2, 3,
			))
			if len(report.Examples) > 0 {
				rows := make([][]string, 0, len(report.Examples))
				for _, example := range report.Examples {
					rows = append(rows, []string{
						example.DisplayName(),
						example.City,
						example.State,
						string(example.PersonType),
						example.PatentNumber,
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Dropped Record", "City", "State", "Type", "Patent"},
					rows,
				))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the dedupe report as JSON")
	return cmd
}
