// Package monitor dispatches a monitoring run: it classifies each target,
// drives the matching extraction strategy behind a retry budget, and merges
// the surviving candidates into the news store exactly once.
package monitor

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pevans/newswatch/browse"
	"github.com/pevans/newswatch/extract"
	"github.com/pevans/newswatch/news"
)

// Mode is the run-level classification: uniform web, uniform social, or
// per-URL inference.
type Mode string

const (
	ModeWeb    Mode = "web"
	ModeSocial Mode = "twitter"
	ModeMixed  Mode = "mixed"
)

// ValidMode reports whether m is one of the supported run modes.
func ValidMode(m Mode) bool {
	return m == ModeWeb || m == ModeSocial || m == ModeMixed
}

// Options tune one run.
type Options struct {
	Mode        Mode
	Source      string // stored as each record's source field
	Selector    string // explicit selector, web targets only
	Static      bool   // fetch web targets over plain HTTP instead of the browser
	Attempts    int
	RetryDelay  time.Duration
	TargetDelay time.Duration
	Selectors   map[string]string
	Boilerplate []string
}

// Outcome records what happened to one target. Outcomes exist for run
// reporting only and are never persisted.
type Outcome struct {
	URL             string
	Kind            Kind
	Candidates      int
	MissingSelector bool
	Err             error
}

// Summary is the final run report, printed regardless of partial failures.
type Summary struct {
	Outcomes   []Outcome
	Found      int
	Added      int
	Duplicates int
	Wrote      bool
}

// Monitor owns one run: sequential targets, per-target failure isolation,
// one store read before the loop and at most one write after it.
type Monitor struct {
	store   *news.Store
	session browse.Session
	web     extract.Strategy
	social  extract.Strategy
	opts    Options
	logger  zerolog.Logger

	sleep func(time.Duration)
	now   func() time.Time
	newID func() uuid.UUID
}

// New builds a monitor. A nil session is allowed only when every target
// will take the static path; social targets require the browser.
func New(store *news.Store, session browse.Session, opts Options, logger zerolog.Logger) *Monitor {
	if opts.Attempts <= 0 {
		opts.Attempts = 3
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 2 * time.Second
	}
	if opts.TargetDelay <= 0 {
		opts.TargetDelay = time.Second
	}
	if opts.Selectors == nil {
		opts.Selectors = extract.DefaultSelectors
	}

	var web extract.Strategy
	if opts.Static {
		s := extract.NewStaticStrategy(logger)
		if len(opts.Boilerplate) > 0 {
			s.Boilerplate = opts.Boilerplate
		}
		web = s
	} else {
		s := extract.NewWebStrategy(logger)
		if len(opts.Boilerplate) > 0 {
			s.Boilerplate = opts.Boilerplate
		}
		web = s
	}

	return &Monitor{
		store:   store,
		session: session,
		web:     web,
		social:  extract.NewSocialStrategy(logger),
		opts:    opts,
		logger:  logger,
		sleep:   time.Sleep,
		now:     time.Now,
		newID:   uuid.New,
	}
}

// Run processes every target in the order supplied. Per-target failures
// never abort the run; only store I/O errors do. When no candidate is
// admitted the store file is left untouched.
func (m *Monitor) Run(urls []string) (*Summary, error) {
	existing, err := m.store.Load()
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	var candidates []news.Candidate
	for i, rawURL := range urls {
		if i > 0 {
			m.sleep(m.opts.TargetDelay)
		}
		found, outcome := m.processTarget(rawURL)
		summary.Outcomes = append(summary.Outcomes, outcome)
		summary.Found += len(found)
		candidates = append(candidates, found...)
	}

	result := news.Merge(existing, candidates, m.opts.Source, m.now, m.newID)
	summary.Added = len(result.Admitted)
	summary.Duplicates = result.Rejected
	if len(result.Admitted) == 0 {
		return summary, nil
	}

	if err := m.store.Save(append(existing, result.Admitted...)); err != nil {
		return summary, err
	}
	summary.Wrote = true

	m.logger.Info().
		Int("added", summary.Added).
		Int("duplicates", summary.Duplicates).
		Str("store", m.store.Path()).
		Msg("store updated")
	return summary, nil
}

// processTarget runs one target through classification, strategy selection,
// and the retry budget. All failures stay inside the returned outcome.
func (m *Monitor) processTarget(rawURL string) ([]news.Candidate, Outcome) {
	kind := m.classify(rawURL)
	outcome := Outcome{URL: rawURL, Kind: kind}

	target := extract.Target{URL: rawURL}
	strategy := m.social
	if kind == Web {
		strategy = m.web
		target.Selector = extract.SelectorFor(m.opts.Selector, rawURL, m.opts.Selectors)
		if target.Selector == "" {
			outcome.MissingSelector = true
			m.logger.Warn().Str("url", rawURL).Msg("no selector configured for target, skipping")
			return nil, outcome
		}
	} else if m.session == nil {
		outcome.Err = errors.New("social target requires the browser")
		return nil, outcome
	}

	m.logger.Info().Str("url", rawURL).Str("kind", kind.String()).Msg("processing target")
	candidates, ok := Retry(m.opts.Attempts, m.opts.RetryDelay, m.sleep,
		func(attempt int) ([]news.Candidate, error) {
			found, err := strategy.Extract(m.session, target)
			if err != nil {
				m.logger.Warn().
					Str("url", rawURL).
					Int("attempt", attempt).
					Err(err).
					Msg("extraction attempt failed")
				return nil, err
			}
			return found, nil
		})
	if !ok {
		outcome.Err = fmt.Errorf("all %d attempts failed", m.opts.Attempts)
		return nil, outcome
	}

	outcome.Candidates = len(candidates)
	return candidates, outcome
}

func (m *Monitor) classify(rawURL string) Kind {
	switch m.opts.Mode {
	case ModeSocial:
		return Social
	case ModeMixed:
		return Classify(rawURL)
	default:
		return Web
	}
}
