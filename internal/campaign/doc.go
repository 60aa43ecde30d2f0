// Package campaign runs the outreach pipeline end to end.
//
// The Orchestrator owns the run state machine: validate the environment,
// resolve pending recipients against the sent ledger, process each recipient
// sequentially (generate, compose, send, record), then commit the updated
// survey table atomically. The ledger is the authoritative record of who has
// been handled; the table's sent-flag column is only a convenience mirror.
//
// Failure handling is two-tier. A per-recipient failure is recorded in the
// ledger and the run moves on; a run-level failure (validation, ledger write,
// table commit) aborts the whole run. Either way, every recipient whose send
// was attempted has a ledger entry, so an interrupted campaign can be rerun
// without duplicate mail.
package campaign
