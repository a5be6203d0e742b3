package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Sweeper removes form sessions idle for longer than maxIdle.
type Sweeper interface {
	Sweep(maxIdle time.Duration) int
}

// SessionSweeper expires idle in-memory form sessions. Redis-backed
// sessions expire through key TTLs and do not need it.
type SessionSweeper struct {
	target   Sweeper
	maxIdle  time.Duration
	interval time.Duration
	log      zerolog.Logger
}

// NewSessionSweeper creates a new SessionSweeper.
func NewSessionSweeper(target Sweeper, maxIdle, interval time.Duration, log zerolog.Logger) *SessionSweeper {
	return &SessionSweeper{
		target:   target,
		maxIdle:  maxIdle,
		interval: interval,
		log:      log.With().Str("component", "session_sweeper").Logger(),
	}
}

// Start runs the sweep loop until ctx is cancelled. Call in a goroutine.
func (w *SessionSweeper) Start(ctx context.Context) {
	w.log.Info().
		Dur("max_idle", w.maxIdle).
		Dur("interval", w.interval).
		Msg("Worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopped")
			return
		case <-ticker.C:
			w.sweepOnce()
		}
	}
}

func (w *SessionSweeper) sweepOnce() int {
	removed := w.target.Sweep(w.maxIdle)
	if removed > 0 {
		w.log.Info().Int("removed", removed).Msg("Expired idle form sessions")
	}
	return removed
}
