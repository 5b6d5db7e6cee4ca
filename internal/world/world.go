// Package world wires the grid, the transition engine, the edit controller
// and the run state machine into one tick-driven simulation.
package world

import (
	"errors"
	"time"

	"lifeboard/internal/core"
	"lifeboard/internal/edit"
	"lifeboard/internal/runstate"
	pcore "lifeboard/pkg/core"
	"lifeboard/pkg/sims/life"
)

// ErrRunning is returned by bulk edits attempted while the simulation runs.
var ErrRunning = errors.New("world: grid is locked while running")

// Status summarises the simulation for display.
type Status struct {
	Generation int
	Live       int
	State      runstate.State
	StepTime   time.Duration
}

// Observer is notified after every tick or command that changed a cell or
// the run state. It is called on the goroutine driving the world and must
// not retain the changes slice.
type Observer interface {
	Changed(changes []core.Change, st Status)
}

// Input bundles what the input collaborator captured since the last tick.
type Input struct {
	Draw    *core.Coord
	Erase   *core.Coord
	Command runstate.Command
	Exit    bool
}

// World is the simulation core. It is not safe for concurrent use: every
// method must be called from the single goroutine that drives the ticks.
type World struct {
	grid    *core.Grid
	machine *runstate.Machine
	editor  *edit.Controller
	life    *life.Life
	req     edit.Requests

	generation int
	stepTime   time.Duration
	exit       bool
	observers  []Observer
}

// New creates an n*n world in the Stopped state with every cell Empty.
func New(n int, hood life.Neighborhood) *World {
	grid := core.NewGrid(n)
	machine := runstate.New()
	return &World{
		grid:    grid,
		machine: machine,
		editor:  edit.New(grid, machine),
		life:    life.New(grid, hood),
	}
}

// Grid exposes the board for reading. Writes must go through the world.
func (w *World) Grid() *core.Grid { return w.grid }

// State returns the current run state.
func (w *World) State() runstate.State { return w.machine.State() }

// Neighborhood returns the neighbour set used by the transition engine.
func (w *World) Neighborhood() life.Neighborhood { return w.life.Neighborhood() }

// Status returns the current counters.
func (w *World) Status() Status {
	return Status{
		Generation: w.generation,
		Live:       w.grid.LiveCount(),
		State:      w.machine.State(),
		StepTime:   w.stepTime,
	}
}

// AddObserver registers o for change notifications.
func (w *World) AddObserver(o Observer) {
	w.observers = append(w.observers, o)
}

// Draw records (x, y) as the pending draw target, replacing any earlier one.
func (w *World) Draw(x, y int) { w.req.Draw.Put(x, y) }

// Erase records (x, y) as the pending erase target, replacing any earlier one.
func (w *World) Erase(x, y int) { w.req.Erase.Put(x, y) }

// RequestExit marks that the host asked to terminate. It does not touch the
// grid or the run state.
func (w *World) RequestExit() { w.exit = true }

// ExitRequested reports whether RequestExit was called.
func (w *World) ExitRequested() bool { return w.exit }

// Command applies a run command immediately and reports whether the state
// changed.
func (w *World) Command(cmd runstate.Command) bool {
	if !w.machine.Apply(cmd) {
		return false
	}
	Logger().Info("run state changed", "command", cmd.String(), "state", w.machine.State().String(), "generation", w.generation)
	w.notify(nil)
	return true
}

// Submit records the input captured by a collaborator: the run command takes
// effect at once, the edit targets wait for the next InputTick.
func (w *World) Submit(in Input) {
	if in.Draw != nil {
		w.Draw(in.Draw.X, in.Draw.Y)
	}
	if in.Erase != nil {
		w.Erase(in.Erase.X, in.Erase.Y)
	}
	if in.Command != runstate.None {
		w.Command(in.Command)
	}
	if in.Exit {
		w.RequestExit()
	}
}

// InputTick consumes the pending draw and erase targets. They are applied
// only while Stopped and are cleared either way.
func (w *World) InputTick() []core.Change {
	res := w.editor.Apply(&w.req)
	log := Logger()
	if res.Discarded {
		log.Debug("edit requests dropped while running")
	}
	if res.OutOfRange > 0 {
		log.Debug("edit requests outside grid ignored", "count", res.OutOfRange)
	}
	if len(res.Changes) > 0 {
		log.Debug("edits applied", "cells", len(res.Changes))
		w.notify(res.Changes)
	}
	return res.Changes
}

// StepTick advances one generation while Running and does nothing otherwise.
func (w *World) StepTick() []core.Change {
	if !w.machine.CanStep() {
		return nil
	}
	start := time.Now()
	changes := w.life.Step()
	w.stepTime = time.Since(start)
	w.generation++
	Logger().Debug("generation committed", "generation", w.generation, "changed", len(changes), "took", w.stepTime)
	w.notify(changes)
	return changes
}

// Clear sets every cell Empty and resets the generation counter.
func (w *World) Clear() ([]core.Change, error) {
	changes, err := w.rewrite(func(next []core.CellState) {})
	if err != nil {
		return nil, err
	}
	Logger().Info("grid cleared", "changed", len(changes))
	return changes, nil
}

// Randomize replaces the board with live cells scattered at density using a
// deterministic seed. Every other cell becomes Empty.
func (w *World) Randomize(seed int64, density float64) ([]core.Change, error) {
	changes, err := w.rewrite(func(next []core.CellState) {
		for _, id := range pcore.NewRNG(seed).Scatter(len(next), density) {
			next[id] = core.Alive
		}
	})
	if err != nil {
		return nil, err
	}
	Logger().Info("grid randomized", "seed", seed, "density", density, "live", w.grid.LiveCount())
	return changes, nil
}

// Load replaces the board with the given live cells. Coordinates outside the
// grid are skipped.
func (w *World) Load(cells []core.Coord) ([]core.Change, error) {
	skipped := 0
	changes, err := w.rewrite(func(next []core.CellState) {
		for _, c := range cells {
			if !w.grid.InBounds(c.X, c.Y) {
				skipped++
				continue
			}
			next[w.grid.Index(c.X, c.Y)] = core.Alive
		}
	})
	if err != nil {
		return nil, err
	}
	Logger().Info("cells loaded", "live", w.grid.LiveCount(), "skipped", skipped)
	return changes, nil
}

// rewrite builds a fresh generation with fill, starting from an all-Empty
// board, and installs it in one commit. It is an edit, so only allowed while
// Stopped.
func (w *World) rewrite(fill func(next []core.CellState)) ([]core.Change, error) {
	if !w.machine.CanEdit() {
		return nil, ErrRunning
	}
	cur := w.grid.Cells()
	next := make([]core.CellState, len(cur))
	fill(next)

	var changes []core.Change
	for id := range next {
		if next[id] != cur[id] {
			x, y := w.grid.Coord(id)
			changes = append(changes, core.Change{X: x, Y: y, State: next[id]})
		}
	}
	w.grid.Commit(next)
	w.generation = 0
	w.notify(changes)
	return changes, nil
}

func (w *World) notify(changes []core.Change) {
	if len(w.observers) == 0 {
		return
	}
	st := w.Status()
	for _, o := range w.observers {
		o.Changed(changes, st)
	}
}
