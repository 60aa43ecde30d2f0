// Package preflight validates the campaign environment before any send.
//
// Checks cover the survey table, the ledger location, the model artifact and
// server binary, and the mail transport settings. Each check returns a Result
// rather than an error so callers can render the full set at once; RunAll is
// what the run and preflight commands execute before touching recipients.
package preflight
