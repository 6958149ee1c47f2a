package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"gazette/internal/identity"
	"gazette/internal/ingest"
)

func newIngestCommand(ctx *commandContext) *cobra.Command {
	ingestCmd := &cobra.Command{
		Use:   "ingest",
		Short: "Load people records into the people store",
	}

	ingestCmd.AddCommand(newIngestFileCommand(ctx))
	ingestCmd.AddCommand(newIngestSearchCommand(ctx))
	return ingestCmd
}

func newIngestFileCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "file <input-file>",
		Short: "Ingest people from a grant XML document or JSON array",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			people, err := readPeopleFile(args[0])
			if err != nil {
				return err
			}

			st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			inserted := 0
			for _, person := range people {
				if _, err := st.InsertPerson(cmd.Context(), person); err != nil {
					return fmt.Errorf("insert %s: %w", person.DisplayName(), err)
				}
				inserted++
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d people from %s\n", inserted, args[0])
			return nil
		},
	}
}

func newIngestSearchCommand(ctx *commandContext) *cobra.Command {
	var patentNumber string
	var grantDate string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Ingest people from the patent search API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if patentNumber == "" && grantDate == "" {
				return fmt.Errorf("one of --patent or --date is required")
			}

			client, err := ingest.NewSearchClient(
				cfg.Ingest.SearchAPIKey,
				cfg.Ingest.SearchBaseURL,
				time.Duration(cfg.Ingest.RequestTimeout)*time.Second,
				cfg.Ingest.PageSize,
			)
			if err != nil {
				return fmt.Errorf("build search client: %w", err)
			}

			people, err := fetchSearchPeople(cmd, client, patentNumber, grantDate)
			if err != nil {
				return err
			}

			st, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			for _, person := range people {
				if _, err := st.InsertPerson(cmd.Context(), person); err != nil {
					return fmt.Errorf("insert %s: %w", person.DisplayName(), err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d people\n", len(people))
			return nil
		},
	}

	cmd.Flags().StringVar(&patentNumber, "patent", "", "Fetch people attached to a single patent")
	cmd.Flags().StringVar(&grantDate, "date", "", "Fetch people from all patents granted on a date (YYYY-MM-DD)")
	return cmd
}

func fetchSearchPeople(cmd *cobra.Command, client *ingest.SearchClient, patentNumber, grantDate string) ([]identity.Person, error) {
	if patentNumber != "" {
		return client.FetchPatent(cmd.Context(), patentNumber)
	}
	return client.FetchByGrantDate(cmd.Context(), grantDate)
}
