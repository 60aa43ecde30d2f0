// Package config loads, normalizes, and validates outreach configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI and the campaign pipeline need: the survey table and sent-ledger
// locations, the local generation model, the mail transport, and logging.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
