package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time           { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStep(d time.Duration) (*FixedStep, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedInterval(d)
	fs.now = clock.now
	return fs, clock
}

func TestFixedStepFiresImmediately(t *testing.T) {
	fs, _ := newTestStep(200 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("first call should fire")
	}
	if fs.ShouldStep() {
		t.Fatal("second call without elapsed time should not fire")
	}
}

func TestFixedStepCadence(t *testing.T) {
	fs, clock := newTestStep(200 * time.Millisecond)
	fs.ShouldStep()

	fired := 0
	for i := 0; i < 60; i++ {
		clock.advance(16 * time.Millisecond)
		if fs.ShouldStep() {
			fired++
		}
	}
	// 60 frames of 16ms is 960ms of wall time.
	if fired != 4 {
		t.Fatalf("expected 4 ticks in 960ms at 200ms cadence, got %d", fired)
	}
}

func TestFixedStepDropsBacklog(t *testing.T) {
	fs, clock := newTestStep(100 * time.Millisecond)
	fs.ShouldStep()

	clock.advance(time.Second)
	if !fs.ShouldStep() {
		t.Fatal("expected a tick after a long stall")
	}
	if fs.ShouldStep() {
		t.Fatal("stalled time must not be replayed as a burst of ticks")
	}
}

func TestIntervalFallsBackOnNonPositive(t *testing.T) {
	fs := NewFixedInterval(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("default interval = %v", fs.Interval())
	}
	fs.SetInterval(100 * time.Millisecond)
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("interval after SetInterval = %v", fs.Interval())
	}
}
