// Package edit turns pending pointer requests into grid mutations while the
// simulation is stopped.
package edit

import "lifeboard/internal/core"

// Slot holds at most one pending coordinate. A later Put replaces an earlier
// one that has not been taken yet.
type Slot struct {
	c  core.Coord
	ok bool
}

// Put stores (x, y), discarding any unconsumed value.
func (s *Slot) Put(x, y int) {
	s.c = core.Coord{X: x, Y: y}
	s.ok = true
}

// Take returns the pending coordinate, if any, and clears the slot.
func (s *Slot) Take() (core.Coord, bool) {
	c, ok := s.c, s.ok
	*s = Slot{}
	return c, ok
}

// Pending reports whether the slot holds a coordinate.
func (s *Slot) Pending() bool { return s.ok }

// Requests pairs the draw and erase slots filled by the input collaborator.
type Requests struct {
	Draw  Slot
	Erase Slot
}

// Gate reports whether edits may currently touch the grid.
type Gate interface {
	CanEdit() bool
}

// Result describes what a call to Apply did.
type Result struct {
	// Changes lists cells whose state differs from before the call.
	Changes []core.Change
	// Discarded is set when requests were dropped because editing was closed.
	Discarded bool
	// OutOfRange counts requests that fell outside the grid.
	OutOfRange int
}

// Controller applies draw and erase requests to a grid.
type Controller struct {
	grid *core.Grid
	gate Gate
}

// New returns a Controller editing grid whenever gate allows it.
func New(grid *core.Grid, gate Gate) *Controller {
	return &Controller{grid: grid, gate: gate}
}

// Apply consumes both slots of req. When editing is allowed an in-range draw
// target becomes Alive and then an in-range erase target becomes Empty, so a
// draw and erase on the same cell leave it Empty. The slots are cleared in
// every case; requests made while editing is closed are dropped, not queued.
func (c *Controller) Apply(req *Requests) Result {
	draw, hasDraw := req.Draw.Take()
	erase, hasErase := req.Erase.Take()

	var res Result
	if !hasDraw && !hasErase {
		return res
	}
	if !c.gate.CanEdit() {
		res.Discarded = true
		return res
	}

	var touched []touch
	if hasDraw {
		touched = c.put(draw, core.Alive, touched, &res)
	}
	if hasErase {
		touched = c.put(erase, core.Empty, touched, &res)
	}
	for _, t := range touched {
		now := c.grid.Cells()[t.id]
		if now == t.before {
			continue
		}
		x, y := c.grid.Coord(t.id)
		res.Changes = append(res.Changes, core.Change{X: x, Y: y, State: now})
	}
	return res
}

type touch struct {
	id     int
	before core.CellState
}

func (c *Controller) put(at core.Coord, s core.CellState, touched []touch, res *Result) []touch {
	if !c.grid.InBounds(at.X, at.Y) {
		res.OutOfRange++
		return touched
	}
	id := c.grid.Index(at.X, at.Y)
	before := c.grid.Replace(id, s)
	for _, t := range touched {
		if t.id == id {
			return touched
		}
	}
	return append(touched, touch{id: id, before: before})
}
