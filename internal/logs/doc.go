// Package logs reads the campaign run log with bounded memory.
//
// Runs append structured records to a single log file under the configured
// log directory. Tail returns the last N lines for `outreach logs`, and
// Follow streams appended lines while a campaign is running elsewhere.
package logs
