package app

import (
	"errors"
	"fmt"
	"time"

	"lifeboard/internal/config"
	"lifeboard/internal/core"
	"lifeboard/internal/patterns"
	"lifeboard/internal/world"
)

// ErrExit is returned by Advance once the user asked to leave.
var ErrExit = errors.New("app: exit requested")

// Clock decides whether a cadence is due on this frame.
type Clock interface {
	ShouldStep() bool
}

// Frame is everything captured from the input devices during one host
// frame.
type Frame struct {
	world.Input
	Clear     bool
	Randomize bool
	Pattern   bool
}

// Driver advances a World from a host loop that runs faster than either
// cadence. Both cadences run on the caller's goroutine.
type Driver struct {
	w       *world.World
	edit    Clock
	step    Clock
	seed    int64
	density float64
	pattern string
}

// NewDriver returns a driver for w. Random boards start at seed and use a
// new seed on every request.
func NewDriver(w *world.World, edit, step Clock, seed int64, density float64, pattern string) *Driver {
	return &Driver{w: w, edit: edit, step: step, seed: seed, density: density, pattern: pattern}
}

// NewClocks returns the two fixed-interval clocks for the given cadences.
// Non-positive intervals fall back to the scheduler defaults.
func NewClocks(editEvery, stepEvery time.Duration) (Clock, Clock) {
	if editEvery <= 0 {
		editEvery = world.DefEditInterval
	}
	if stepEvery <= 0 {
		stepEvery = world.DefStepInterval
	}
	return core.NewFixedInterval(editEvery), core.NewFixedInterval(stepEvery)
}

// NewWorld builds the world described by cfg. The configured pattern is
// stamped in the centre; without one the board is randomized when random is
// set and left empty otherwise.
func NewWorld(cfg config.Config, random bool) (*world.World, error) {
	w := world.New(cfg.GridSize, cfg.Hood())
	switch {
	case cfg.Pattern != "":
		p, ok := patterns.Lookup(cfg.Pattern)
		if !ok {
			return nil, fmt.Errorf("unknown pattern %q", cfg.Pattern)
		}
		if _, err := w.Load(p.Centered(cfg.GridSize)); err != nil {
			return nil, fmt.Errorf("load pattern: %w", err)
		}
	case random:
		if _, err := w.Randomize(cfg.Seed, cfg.Density); err != nil {
			return nil, fmt.Errorf("randomize: %w", err)
		}
	}
	return w, nil
}

// World returns the driven world.
func (d *Driver) World() *world.World { return d.w }

// Advance records the frame's input and runs whichever ticks are due.
func (d *Driver) Advance(f Frame) error {
	d.w.Submit(f.Input)
	if d.w.ExitRequested() {
		return ErrExit
	}
	d.bulk(f)
	if d.edit.ShouldStep() {
		d.w.InputTick()
	}
	if d.step.ShouldStep() {
		d.w.StepTick()
	}
	return nil
}

func (d *Driver) bulk(f Frame) {
	var err error
	switch {
	case f.Clear:
		_, err = d.w.Clear()
	case f.Randomize:
		_, err = d.w.Randomize(d.seed, d.density)
		if err == nil {
			d.seed++
		}
	case f.Pattern:
		p, ok := patterns.Lookup(d.pattern)
		if !ok {
			world.Logger().Warn("unknown pattern", "name", d.pattern)
			return
		}
		_, err = d.w.Load(p.Centered(d.w.Grid().N()))
	}
	if err != nil {
		world.Logger().Debug("board edit refused", "err", err)
	}
}
