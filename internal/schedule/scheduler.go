package schedule

import (
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/darkawower/multiwall/internal/log"
)

const (
	// DefaultPollInterval is how long the scheduler sleeps between
	// wall-clock polls. Firing is checked at whole-minute granularity, so
	// detection may lag the scheduled minute by up to this interval.
	DefaultPollInterval = 30 * time.Second

	// DefaultDebounce is the sleep after a fired entry, long enough to
	// leave the matched minute before the next poll.
	DefaultDebounce = time.Minute
)

// ApplyFunc is invoked with the profile name of every fired entry.
type ApplyFunc func(profile string)

// Scheduler runs at most one background polling task. Start hands the task a
// private snapshot of the entries plus a cancellation channel; entries added
// after start are invisible to the running task, and Stop is observed at the
// next poll boundary.
type Scheduler struct {
	mu      sync.Mutex
	running bool
	stop    chan struct{}

	poll     time.Duration
	debounce time.Duration
	now      func() time.Time
	log      zerolog.Logger
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithPollInterval overrides the poll sleep.
func WithPollInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		s.poll = d
	}
}

// WithDebounce overrides the post-fire sleep.
func WithDebounce(d time.Duration) Option {
	return func(s *Scheduler) {
		s.debounce = d
	}
}

// WithClock overrides the wall-clock source.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

// New creates a stopped scheduler.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		poll:     DefaultPollInterval,
		debounce: DefaultDebounce,
		now:      time.Now,
		log:      log.WithComponent("scheduler"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start launches the background task over a snapshot of entries. Starting a
// running scheduler is a no-op, so callers may treat Start as idempotent.
func (s *Scheduler) Start(entries []Entry, apply ApplyFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.log.Debug().Msg("scheduler already running")
		return
	}

	s.running = true
	s.stop = make(chan struct{})

	go s.run(slices.Clone(entries), apply, s.stop)
	s.log.Info().Int("entries", len(entries)).Msg("scheduler started")
}

// Stop signals the background task to exit. The task observes the signal at
// its next poll boundary; there is no forced termination. Stopping a stopped
// scheduler is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	close(s.stop)
	s.running = false
	s.log.Info().Msg("scheduler stopped")
}

// Running reports whether the background task has been started and not yet
// stopped.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Scheduler) run(entries []Entry, apply ApplyFunc, stop <-chan struct{}) {
	for {
		now := s.now()
		hour, minute := now.Hour(), now.Minute()

		fired := false
		for _, e := range entries {
			if e.Enabled && e.Hour == hour && e.Minute == minute {
				s.log.Info().Str("profile", e.Profile).Msg("schedule entry fired")
				if apply != nil {
					apply(e.Profile)
				}
				fired = true
			}
		}

		// After a fire, sleep past the matched minute so the entry does
		// not re-fire on the next poll.
		wait := s.poll
		if fired {
			wait = s.debounce
		}

		select {
		case <-stop:
			return
		case <-time.After(wait):
		}
	}
}
