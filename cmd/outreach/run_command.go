package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"outreach/internal/campaign"
	"outreach/internal/logging"
	"outreach/internal/logs"
	"outreach/internal/services/llamacpp"
	"outreach/internal/services/mailer"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Send the campaign to all pending recipients",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			// Structured records go to the run log file; stdout stays
			// reserved for progress and the summary.
			logWriter := io.Writer(cmd.ErrOrStderr())
			if cfg.Paths.LogDir != "" {
				logFile, openErr := os.OpenFile(logs.RunLogPath(cfg.Paths.LogDir), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if openErr == nil {
					defer logFile.Close()
					logWriter = logFile
				}
			}
			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				Writer: logWriter,
			})
			if err != nil {
				return err
			}

			gen := llamacpp.NewClient(llamacpp.Config{
				Binary:         cfg.Model.Binary,
				ArtifactPath:   cfg.Model.ArtifactPath,
				Port:           cfg.Model.Port,
				ContextSize:    cfg.Model.ContextSize,
				Threads:        cfg.Model.Threads,
				StartupTimeout: time.Duration(cfg.Model.StartupTimeoutSeconds) * time.Second,
				RequestTimeout: time.Duration(cfg.Generation.TimeoutSeconds) * time.Second,
			})
			defer gen.Close()

			mail := mailer.NewSMTP(mailer.Config{
				Host:     cfg.SMTP.Host,
				Port:     cfg.SMTP.Port,
				Username: cfg.SMTP.Username,
				Password: cfg.SMTP.Password,
				From:     cfg.SMTP.From,
			})

			out := cmd.OutOrStdout()
			orchestrator := campaign.New(cfg, gen, mail, logger,
				campaign.WithObserver(func(ev campaign.Event) {
					switch ev.State {
					case campaign.StateValidating:
						fmt.Fprintln(out, "Validating campaign environment...")
					case campaign.StateResolving:
						fmt.Fprintln(out, "Resolving pending recipients...")
					case campaign.StateProcessing:
						fmt.Fprintf(out, "[%d/%d] %s\n", ev.Index, ev.Total, ev.Recipient)
					case campaign.StateCommitting:
						fmt.Fprintln(out, "Committing survey table...")
					}
				}))

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			summary, err := orchestrator.Run(runCtx, dryRun)
			if err != nil {
				return err
			}

			mode := "sent"
			if summary.DryRun {
				mode = "previewed (dry run)"
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Run", "Sent", "Failed", "Skipped", "Duration"},
				[][]string{{
					summary.RunID,
					fmt.Sprintf("%d", summary.Sent),
					fmt.Sprintf("%d", summary.Failed),
					fmt.Sprintf("%d", summary.Skipped),
					summary.Duration.Round(time.Millisecond).String(),
				}},
				1, 2, 3,
			))
			fmt.Fprintf(out, "%d message(s) %s\n", summary.Sent, mode)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Generate and compose without sending, recording, or committing")
	return cmd
}
