package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"outreach/internal/ledger"
)

const statusRecentLimit = 10

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Summarize the sent ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			book := ledger.New(cfg.Paths.LedgerPath)
			entries, err := book.Entries()
			if err != nil {
				return fmt.Errorf("read sent ledger: %w", err)
			}

			var succeeded, failed int
			for _, e := range entries {
				if e.Status.Failed() {
					failed++
				} else {
					succeeded++
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Ledger: %s\n", book.Path())
			fmt.Fprintf(out, "Recorded: %d (%d succeeded, %d failed)\n", len(entries), succeeded, failed)

			if len(entries) == 0 {
				return nil
			}
			recent := entries
			if len(recent) > statusRecentLimit {
				recent = recent[len(recent)-statusRecentLimit:]
			}
			rows := make([][]string, 0, len(recent))
			for _, e := range recent {
				rows = append(rows, []string{
					e.ID,
					e.Timestamp.Format(time.DateTime),
					string(e.Status),
				})
			}
			fmt.Fprintln(out, renderTable([]string{"Id", "Timestamp", "Status"}, rows))
			return nil
		},
	}
}
