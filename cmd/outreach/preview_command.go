package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"outreach/internal/columns"
	"outreach/internal/ledger"
	"outreach/internal/recipients"
	"outreach/internal/survey"
)

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "List the recipients the next run would process",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			table, err := survey.Load(cfg.Paths.SurveyPath)
			if err != nil {
				return fmt.Errorf("load survey table: %w", err)
			}
			cols, err := columns.Resolve(table.Headers, columns.DefaultKeywords())
			if err != nil {
				return fmt.Errorf("detect required columns: %w", err)
			}
			processed, err := ledger.New(cfg.Paths.LedgerPath).Processed()
			if err != nil {
				return fmt.Errorf("read sent ledger: %w", err)
			}
			pending := recipients.Resolve(table, cols, processed)

			out := cmd.OutOrStdout()
			if len(pending) == 0 {
				fmt.Fprintln(out, "No pending recipients; every survey row is already recorded in the ledger.")
				return nil
			}

			rows := make([][]string, 0, len(pending))
			for _, r := range pending {
				rows = append(rows, []string{r.ID, r.Name, r.Email, r.CoachEmail})
			}
			fmt.Fprintln(out, renderTable([]string{"Id", "Name", "Email", "Coach Email"}, rows))
			fmt.Fprintf(out, "%d pending of %d survey rows (%d already processed)\n",
				len(pending), len(table.Rows), len(table.Rows)-len(pending))
			return nil
		},
	}
}
