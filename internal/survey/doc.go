// Package survey reads and writes the tabular survey export the campaign
// operates on.
//
// A Table preserves column order and row order exactly as found in the CSV
// file. The pipeline treats the table as immutable except for the sent-status
// flag; SaveAtomic persists a mutated copy with a write-to-temp-then-rename
// sequence so a failed write never leaves a partial file at the table's path.
package survey
