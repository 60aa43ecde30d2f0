package preflight

import (
	"context"
	"path/filepath"

	"outreach/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every applicable check for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckFileReadable("Survey table", cfg.Paths.SurveyPath),
		CheckDirectoryAccess("Ledger directory", filepath.Dir(cfg.Paths.LedgerPath)),
		CheckModelArtifact(cfg.Model.ArtifactPath, cfg.MinArtifactBytes()),
		CheckBinary("Model server", cfg.Model.Binary),
		CheckMailTransport(cfg.SMTP),
	}
	return results
}

// Failures filters results down to the checks that did not pass.
func Failures(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
