// Package mailer delivers composed campaign messages.
//
// Mailer is the send capability consumed by the orchestrator. SMTP is the
// production implementation over a standard submission endpoint; Recorder
// captures messages in memory for dry runs and tests.
package mailer
