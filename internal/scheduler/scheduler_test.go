package scheduler

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestSchedulerFires(t *testing.T) {
	var ticks atomic.Int64
	fired := make(chan struct{}, 16)
	s := New(5*time.Millisecond, func(now time.Time) {
		ticks.Add(1)
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	s.Start()
	defer s.Stop()

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("scheduler never fired")
	}
	if ticks.Load() < 1 {
		t.Errorf("ticks = %d, want at least 1", ticks.Load())
	}
}

func TestSchedulerStopsCleanly(t *testing.T) {
	var ticks atomic.Int64
	s := New(5*time.Millisecond, func(now time.Time) {
		ticks.Add(1)
	})
	s.Start()
	time.Sleep(30 * time.Millisecond)
	s.Stop()

	// Let any tick already in flight drain before sampling.
	time.Sleep(10 * time.Millisecond)
	after := ticks.Load()
	time.Sleep(30 * time.Millisecond)
	if got := ticks.Load(); got != after {
		t.Errorf("ticks advanced from %d to %d after Stop", after, got)
	}
}

func TestSchedulerStopIdempotent(t *testing.T) {
	s := New(time.Minute, func(now time.Time) {})
	s.Start()
	s.Stop()
	s.Stop() // must not panic on double close
}

func TestSchedulerStartAfterStopIsNoop(t *testing.T) {
	var ticks atomic.Int64
	s := New(5*time.Millisecond, func(now time.Time) {
		ticks.Add(1)
	})
	s.Start()
	s.Stop()
	s.Start()
	time.Sleep(30 * time.Millisecond)
	if got := ticks.Load(); got != 0 {
		t.Errorf("stopped scheduler fired %d times after restart attempt", got)
	}
}

func TestSchedulerStopBeforeStart(t *testing.T) {
	s := New(time.Minute, func(now time.Time) {})
	s.Stop()
	s.Start()
	// Stopped before ever starting: Start must not spawn a ticker.
	s.Stop()
}
