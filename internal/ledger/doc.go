// Package ledger persists the durable record of processed recipients.
//
// The ledger is a CSV file with exactly three columns: Id, Timestamp, Status.
// It is append-only in spirit: each recipient receives exactly one entry per
// campaign run, and entries are never rewritten or compacted. The set of
// recorded ids, regardless of status, is the authoritative "already
// processed" source for recipient resolution; the sent flag in the survey
// table is only a best-effort mirror.
//
// Load creates an empty ledger when the file is absent; that is a normal
// first-run condition, not an error. Append rewrites the whole file through
// a temp-and-rename sequence, which assumes a single writer for the duration
// of one run. The campaign lock enforces that assumption.
package ledger
