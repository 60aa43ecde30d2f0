// Package recipients computes the pending-recipient set for a campaign run
// by joining survey rows against the ledger's processed ids.
//
// Row order from the table is preserved so runs are deterministic and easy to
// follow in the logs. Rows are never dropped for missing fields; blank
// free-text answers are substituted with a literal "-" because the generation
// step must receive a value for every field.
package recipients
