package hid

import (
	"context"
	"time"

	"github.com/endolith/lib-xua/pkg"
	"github.com/endolith/lib-xua/timer"
)

// SendFunc transmits one input report to the host.
type SendFunc func(ctx context.Context) error

// Scheduler drives the periodic report loop. Before each candidate
// report instant it queries the engine's suppression predicate; after a
// transmitted report it captures the send time and re-arms the schedule.
// This is the only path that advances the engine's report times outside
// of a Set-Idle request.
type Scheduler struct {
	engine *IdleEngine
	src    timer.Source
	send   SendFunc
}

// NewScheduler creates a scheduler that sends reports through send.
func NewScheduler(engine *IdleEngine, src timer.Source, send SendFunc) *Scheduler {
	return &Scheduler{
		engine: engine,
		src:    src,
		send:   send,
	}
}

// Poll performs one candidate report instant: it returns (false, nil)
// when the report is suppressed, and otherwise transmits the report,
// captures its send time, and re-arms the next check.
func (s *Scheduler) Poll(ctx context.Context) (bool, error) {
	now := s.src.Now()
	if s.engine.Suppressed(now) {
		return false, nil
	}

	if err := s.send(ctx); err != nil {
		return false, err
	}

	s.engine.CaptureReportTime(s.src.Now())
	s.engine.ScheduleNextDefault()
	return true, nil
}

// Run polls at the given cadence until the context is cancelled.
// Send failures are logged and do not stop the loop.
func (s *Scheduler) Run(ctx context.Context, pollEvery time.Duration) error {
	ticker := time.NewTicker(pollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := s.Poll(ctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				pkg.LogWarn(pkg.ComponentScheduler, "error sending report",
					"error", err)
			}
		}
	}
}
