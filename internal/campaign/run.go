package campaign

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"outreach/internal/columns"
	"outreach/internal/ledger"
	"outreach/internal/logging"
	"outreach/internal/preflight"
	"outreach/internal/prompt"
	"outreach/internal/recipients"
	"outreach/internal/services"
	"outreach/internal/survey"
)

const sentFlagValue = "Yes"

// Run executes the campaign once. With dryRun set, generation and composition
// happen but nothing is sent, the ledger is untouched, and the table is not
// committed.
func (o *Orchestrator) Run(ctx context.Context, dryRun bool) (summary Summary, err error) {
	started := time.Now()
	summary.RunID = uuid.NewString()
	summary.DryRun = dryRun
	ctx = services.WithRunID(ctx, summary.RunID)

	defer func() {
		summary.Duration = time.Since(started)
		if r := recover(); r != nil {
			err = services.Wrap(nil, "campaign", "run", fmt.Sprintf("unexpected panic: %v", r), nil)
		}
		if err != nil {
			o.emit(Event{State: StateAborted, Err: err})
			o.logger.ErrorContext(ctx, "campaign aborted", logging.Error(err), logging.Duration("duration", summary.Duration))
		}
	}()

	// Single-writer guard over the campaign files.
	lock := flock.New(o.cfg.Paths.LedgerPath + ".lock")
	locked, lockErr := lock.TryLock()
	if lockErr != nil {
		return summary, services.Wrap(services.ErrLocked, "campaign", "lock", "acquire campaign lock", lockErr)
	}
	if !locked {
		return summary, services.Wrap(services.ErrLocked, "campaign", "lock", "campaign files are in use by another process", nil)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	o.emit(Event{State: StateValidating})
	if failed := preflight.Failures(preflight.RunAll(ctx, o.cfg)); len(failed) > 0 {
		names := make([]string, 0, len(failed))
		for _, f := range failed {
			names = append(names, fmt.Sprintf("%s: %s", f.Name, f.Detail))
		}
		return summary, services.Wrap(services.ErrValidation, "campaign", "preflight", strings.Join(names, "; "), nil)
	}

	table, loadErr := survey.Load(o.cfg.Paths.SurveyPath)
	if loadErr != nil {
		return summary, services.Wrap(services.ErrValidation, "campaign", "load survey", "read survey table", loadErr)
	}
	cols, colErr := columns.Resolve(table.Headers, o.keywords)
	if colErr != nil {
		return summary, services.Wrap(services.ErrValidation, "campaign", "resolve columns", "detect required columns", colErr)
	}

	o.emit(Event{State: StateResolving})
	book := ledger.New(o.cfg.Paths.LedgerPath)
	processed, ledgerErr := book.Load()
	if ledgerErr != nil {
		return summary, services.Wrap(nil, "campaign", "load ledger", "read sent ledger", ledgerErr)
	}
	pending := recipients.Resolve(table, cols, processed)
	summary.Total = len(pending)
	summary.Skipped = len(table.Rows) - len(pending)
	o.logger.InfoContext(ctx, "recipients resolved",
		logging.Int("pending", len(pending)),
		logging.Int("skipped", summary.Skipped))

	if len(pending) == 0 {
		o.emit(Event{State: StateDone})
		o.logger.InfoContext(ctx, "nothing to send", logging.Duration("duration", time.Since(started)))
		return summary, nil
	}

	working := table.Clone()
	for i, r := range pending {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return summary, services.Wrap(nil, "campaign", "run", "campaign interrupted", ctxErr)
		}
		o.emit(Event{State: StateProcessing, Recipient: r.Name, Index: i + 1, Total: len(pending)})

		recipientCtx := services.WithRecipientID(ctx, r.ID)
		sendErr := o.processOne(recipientCtx, r, dryRun)

		// An interruption mid-recipient is a run-level abort, not this
		// recipient's failure: recording it would permanently exclude a
		// recipient who was never actually handled. A send that completed
		// before the interrupt still gets recorded below; the next
		// iteration's check ends the run.
		if ctxErr := ctx.Err(); ctxErr != nil && sendErr != nil {
			return summary, services.Wrap(nil, "campaign", "run", "campaign interrupted", ctxErr)
		}

		status := ledger.StatusSuccess
		if sendErr != nil {
			status = ledger.FailureStatus(sendErr)
			summary.Failed++
			o.logger.WarnContext(recipientCtx, "recipient failed", logging.Error(sendErr))
		} else {
			summary.Sent++
			markSent(working, cols, r.Email)
			o.logger.InfoContext(recipientCtx, "recipient handled",
				logging.Int("index", i+1),
				logging.Int("total", len(pending)))
		}

		if dryRun {
			continue
		}
		if appendErr := book.Append(r.ID, status); appendErr != nil {
			// Without a durable record the next run would double-send, so a
			// ledger write failure ends the campaign immediately.
			return summary, services.Wrap(nil, "campaign", "record outcome", "append to sent ledger", appendErr)
		}
	}

	o.emit(Event{State: StateCommitting})
	if !dryRun {
		if commitErr := o.saveTable(working, o.cfg.Paths.SurveyPath); commitErr != nil {
			return summary, services.Wrap(nil, "campaign", "commit table", "write updated survey table", commitErr)
		}
	}

	o.emit(Event{State: StateDone})
	o.logger.InfoContext(ctx, "campaign finished",
		logging.Int("sent", summary.Sent),
		logging.Int("failed", summary.Failed),
		logging.Int("skipped", summary.Skipped),
		logging.Bool("dry_run", dryRun),
		logging.Duration("duration", time.Since(started)))
	return summary, nil
}

// processOne runs the generate-compose-send sequence for a single recipient.
// Any error is the recipient's failure reason; the caller records it and
// keeps going.
func (o *Orchestrator) processOne(ctx context.Context, r recipients.Recipient, dryRun bool) error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("recipient has no email address")
	}

	genCtx := ctx
	if o.cfg.Generation.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, time.Duration(o.cfg.Generation.TimeoutSeconds)*time.Second)
		defer cancel()
	}
	text, err := o.gen.Generate(genCtx,
		prompt.Build(r.Answers.Interest, r.Answers.Motivation, r.Answers.Enrollment),
		o.cfg.Generation.MaxTokens,
		o.cfg.Generation.StopSequences)
	if err != nil {
		return fmt.Errorf("generate content: %w", err)
	}

	msg, err := o.composer.Compose(r, text)
	if err != nil {
		return fmt.Errorf("compose message: %w", err)
	}
	if dryRun {
		return nil
	}
	if err := o.mail.Send(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// markSent flips the sent-flag cell on the working copy for every row whose
// email matches. The flag mirrors the ledger for people reading the
// spreadsheet; the ledger stays authoritative.
func markSent(working *survey.Table, cols columns.Map, email string) {
	for _, row := range working.Rows {
		if strings.EqualFold(strings.TrimSpace(row[cols.Email]), strings.TrimSpace(email)) {
			row[cols.SentFlag] = sentFlagValue
		}
	}
}
