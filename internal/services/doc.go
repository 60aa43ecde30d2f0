// Package services defines shared utilities consumed by the campaign
// orchestrator and the external integrations it drives.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that classify failures
//     into the campaign error taxonomy (configuration, validation, external
//     tool, locked, transient).
//   - Context helpers that stamp the run identifier and recipient identifier
//     for logging.
//
// Use these helpers when wiring new pipeline logic so operational behaviour
// (error handling, observability) stays uniform across the pipeline.
package services
