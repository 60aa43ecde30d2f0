// Package logging builds the slog loggers used across the campaign pipeline.
//
// Two output formats are supported: a compact console format for interactive
// use and JSON for machine consumption. The default "auto" format selects
// console when stdout is a terminal and JSON otherwise. Loggers carry a
// component attribute so every pipeline stage is attributable in mixed output.
package logging
