// Package prompt renders the generation request for one recipient.
//
// Build is deterministic: identical answers yield byte-identical prompts,
// which is what makes generation cache-testable. Output constraints (tone,
// length, forbidden voice) live in the prompt text itself; the generator does
// not re-validate them.
package prompt
