package campaign

import (
	"context"
	"log/slog"
	"time"

	"outreach/internal/columns"
	"outreach/internal/compose"
	"outreach/internal/config"
	"outreach/internal/logging"
	"outreach/internal/services/mailer"
	"outreach/internal/survey"
)

// State identifies where a run is in its lifecycle.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateResolving  State = "resolving"
	StateProcessing State = "processing"
	StateCommitting State = "committing"
	StateDone       State = "done"
	StateAborted    State = "aborted"
)

// Event is a progress notification emitted as the run advances. Recipient,
// Index, and Total are only set for per-recipient processing events.
type Event struct {
	State     State
	Recipient string
	Index     int
	Total     int
	Err       error
}

// Observer receives run events. Callbacks run on the orchestrator goroutine
// and must not block.
type Observer func(Event)

// Generator produces the personalized message fragment for one recipient.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int, stop []string) (string, error)
}

// Summary reports the outcome of a run.
type Summary struct {
	RunID    string
	Total    int
	Sent     int
	Failed   int
	Skipped  int
	Duration time.Duration
	DryRun   bool
}

// Orchestrator coordinates a single campaign over its configured files.
type Orchestrator struct {
	cfg      *config.Config
	gen      Generator
	mail     mailer.Mailer
	composer *compose.Composer
	logger   *slog.Logger
	observer Observer
	keywords columns.Keywords

	// saveTable is swapped by tests to simulate commit failures.
	saveTable func(t *survey.Table, path string) error
}

// Option customizes the orchestrator.
type Option func(*Orchestrator)

// WithObserver installs a progress callback.
func WithObserver(fn Observer) Option {
	return func(o *Orchestrator) {
		if fn != nil {
			o.observer = fn
		}
	}
}

// WithKeywords overrides the column detection keywords.
func WithKeywords(kw columns.Keywords) Option {
	return func(o *Orchestrator) {
		if kw != nil {
			o.keywords = kw
		}
	}
}

// New builds an orchestrator over the configured campaign files.
func New(cfg *config.Config, gen Generator, mail mailer.Mailer, logger *slog.Logger, opts ...Option) *Orchestrator {
	if logger == nil {
		logger = logging.NewNop()
	}
	o := &Orchestrator{
		cfg:      cfg,
		gen:      gen,
		mail:     mail,
		composer: compose.NewComposer(cfg.Campaign.Subject, cfg.Campaign.CCCoach),
		logger:   logging.NewComponentLogger(logger, "campaign"),
		observer: func(Event) {},
		keywords: columns.DefaultKeywords(),
		saveTable: func(t *survey.Table, path string) error {
			return t.SaveAtomic(path)
		},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Orchestrator) emit(ev Event) {
	o.observer(ev)
}
