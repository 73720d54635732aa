package quiz

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Sweeper is the part of a store that can drop expired sessions.
type Sweeper interface {
	Sweep(now time.Time) int
}

// SweepWorker periodically evicts expired in-memory sessions.
type SweepWorker struct {
	store    Sweeper
	interval time.Duration
	logger   zerolog.Logger
	now      func() time.Time
}

// NewSweepWorker creates a worker; a non-positive interval means one minute.
func NewSweepWorker(store Sweeper, interval time.Duration, logger zerolog.Logger) *SweepWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &SweepWorker{
		store:    store,
		interval: interval,
		logger:   logger.With().Str("component", "quiz_session_sweeper").Logger(),
		now:      time.Now,
	}
}

// Run blocks until context cancellation.
func (w *SweepWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.tick()
		}
	}
}

func (w *SweepWorker) tick() {
	if removed := w.store.Sweep(w.now()); removed > 0 {
		w.logger.Debug().Int("removed", removed).Msg("expired sessions swept")
	}
}
