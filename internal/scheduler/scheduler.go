// Package scheduler provides the periodic re-classification trigger: every
// interval the dashboard recomputes lateness against the current clock. It
// deliberately never re-fetches; only the notion of "now" advances.
package scheduler

import (
	"sync"
	"time"
)

type Scheduler struct {
	interval time.Duration
	fn       func(now time.Time)

	mu      sync.Mutex
	done    chan struct{}
	stopped bool
}

// New creates a scheduler that calls fn with the tick time every interval.
// Nothing runs until Start.
func New(interval time.Duration, fn func(now time.Time)) *Scheduler {
	return &Scheduler{interval: interval, fn: fn}
}

// Start begins ticking. Calling Start on a running or stopped scheduler is
// a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done != nil || s.stopped {
		return
	}
	s.done = make(chan struct{})

	go func(done chan struct{}) {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case t := <-ticker.C:
				s.fn(t)
			case <-done:
				return
			}
		}
	}(s.done)
}

// Stop cancels the ticker. Idempotent; after Stop no further ticks fire and
// the background goroutine exits.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	if s.done != nil {
		close(s.done)
		s.done = nil
	}
}
