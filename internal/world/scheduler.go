package world

import (
	"context"
	"errors"
	"time"
)

// ErrClosed is returned when a command is sent to a scheduler whose loop has
// finished.
var ErrClosed = errors.New("world: scheduler closed")

// Default cadences of the two tick kinds.
const (
	DefEditInterval = 16 * time.Millisecond
	DefStepInterval = 200 * time.Millisecond
)

type tickerFunc func(d time.Duration) (<-chan time.Time, func())

func newTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Scheduler drives a World from a single goroutine. Input ticks, step ticks
// and commands from other goroutines are all executed by the loop in Run, one
// at a time, so an edit never interleaves with a transition.
type Scheduler struct {
	world     *World
	editEvery time.Duration
	stepEvery time.Duration
	ticker    tickerFunc

	cmds chan func(*World)
	done chan struct{}
}

// NewScheduler returns a scheduler for w. Non-positive intervals fall back to
// the defaults.
func NewScheduler(w *World, editEvery, stepEvery time.Duration) *Scheduler {
	if editEvery <= 0 {
		editEvery = DefEditInterval
	}
	if stepEvery <= 0 {
		stepEvery = DefStepInterval
	}
	return &Scheduler{
		world:     w,
		editEvery: editEvery,
		stepEvery: stepEvery,
		ticker:    newTicker,
		cmds:      make(chan func(*World), 16),
		done:      make(chan struct{}),
	}
}

// Run executes ticks and commands until ctx is cancelled or the world reports
// an exit request. It must be called once.
func (s *Scheduler) Run(ctx context.Context) error {
	defer close(s.done)

	editC, stopEdit := s.ticker(s.editEvery)
	defer stopEdit()
	stepC, stopStep := s.ticker(s.stepEvery)
	defer stopStep()

	Logger().Info("scheduler started", "edit_interval", s.editEvery, "step_interval", s.stepEvery)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-s.cmds:
			fn(s.world)
		case <-editC:
			s.world.InputTick()
		case <-stepC:
			s.world.StepTick()
		}
		if s.world.ExitRequested() {
			Logger().Info("scheduler stopping on exit request")
			return nil
		}
	}
}

// Post queues fn for execution on the loop without waiting for it.
func (s *Scheduler) Post(fn func(*World)) error {
	select {
	case <-s.done:
		return ErrClosed
	default:
	}
	select {
	case s.cmds <- fn:
		return nil
	case <-s.done:
		return ErrClosed
	}
}

// Do runs fn on the loop and waits until it has returned.
func (s *Scheduler) Do(ctx context.Context, fn func(*World)) error {
	finished := make(chan struct{})
	wrapped := func(w *World) {
		defer close(finished)
		fn(w)
	}
	select {
	case s.cmds <- wrapped:
	case <-s.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-finished:
		return nil
	case <-s.done:
		// The loop may have run fn as its final command.
		select {
		case <-finished:
			return nil
		default:
			return ErrClosed
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed when Run returns.
func (s *Scheduler) Done() <-chan struct{} { return s.done }
