package edit

import (
	"slices"
	"testing"

	"lifeboard/internal/core"
	"lifeboard/internal/runstate"
)

func newController(n int) (*Controller, *core.Grid, *runstate.Machine) {
	g := core.NewGrid(n)
	m := runstate.New()
	return New(g, m), g, m
}

func stateAt(t *testing.T, g *core.Grid, x, y int) core.CellState {
	t.Helper()
	s, err := g.Get(x, y)
	if err != nil {
		t.Fatalf("Get(%d,%d): %v", x, y, err)
	}
	return s
}

func TestSlotLastWriteWins(t *testing.T) {
	var s Slot
	if s.Pending() {
		t.Fatal("zero slot must be empty")
	}
	s.Put(1, 2)
	s.Put(3, 4)
	c, ok := s.Take()
	if !ok || c != (core.Coord{X: 3, Y: 4}) {
		t.Fatalf("Take = %v, %v; expected (3,4)", c, ok)
	}
	if _, ok := s.Take(); ok {
		t.Fatal("slot must be consumed exactly once")
	}
}

func TestDrawAndErase(t *testing.T) {
	c, g, _ := newController(10)
	var req Requests
	req.Draw.Put(5, 5)
	res := c.Apply(&req)
	if stateAt(t, g, 5, 5) != core.Alive {
		t.Fatal("draw should set the cell alive")
	}
	want := []core.Change{{X: 5, Y: 5, State: core.Alive}}
	if !slices.Equal(res.Changes, want) {
		t.Fatalf("changes = %v, expected %v", res.Changes, want)
	}

	req.Erase.Put(5, 5)
	res = c.Apply(&req)
	if stateAt(t, g, 5, 5) != core.Empty {
		t.Fatal("erase should set the cell empty")
	}
	want = []core.Change{{X: 5, Y: 5, State: core.Empty}}
	if !slices.Equal(res.Changes, want) {
		t.Fatalf("changes = %v, expected %v", res.Changes, want)
	}
}

func TestEraseWinsOnSameCell(t *testing.T) {
	c, g, _ := newController(10)
	var req Requests
	req.Draw.Put(2, 3)
	req.Erase.Put(2, 3)
	res := c.Apply(&req)
	if stateAt(t, g, 2, 3) != core.Empty {
		t.Fatal("erase must be applied after draw")
	}
	if len(res.Changes) != 0 {
		t.Fatalf("empty cell drawn and erased is not a change, got %v", res.Changes)
	}

	if err := g.Set(2, 3, core.Dead); err != nil {
		t.Fatal(err)
	}
	req.Draw.Put(2, 3)
	req.Erase.Put(2, 3)
	res = c.Apply(&req)
	want := []core.Change{{X: 2, Y: 3, State: core.Empty}}
	if !slices.Equal(res.Changes, want) {
		t.Fatalf("changes = %v, expected %v", res.Changes, want)
	}
}

func TestDrawAndEraseDifferentCells(t *testing.T) {
	c, g, _ := newController(4)
	if err := g.Set(0, 0, core.Alive); err != nil {
		t.Fatal(err)
	}
	var req Requests
	req.Draw.Put(3, 3)
	req.Erase.Put(0, 0)
	res := c.Apply(&req)
	want := []core.Change{
		{X: 3, Y: 3, State: core.Alive},
		{X: 0, Y: 0, State: core.Empty},
	}
	if !slices.Equal(res.Changes, want) {
		t.Fatalf("changes = %v, expected %v", res.Changes, want)
	}
}

func TestRunningDiscardsEdits(t *testing.T) {
	c, g, m := newController(10)
	m.Apply(runstate.Play)

	var req Requests
	req.Draw.Put(1, 1)
	req.Erase.Put(2, 2)
	res := c.Apply(&req)
	if !res.Discarded || len(res.Changes) != 0 {
		t.Fatalf("unexpected result while running: %+v", res)
	}
	if g.LiveCount() != 0 {
		t.Fatal("edits while running must not touch the grid")
	}
	if req.Draw.Pending() || req.Erase.Pending() {
		t.Fatal("slots must be cleared even while running")
	}

	// Nothing is queued for when the machine stops again.
	m.Apply(runstate.Stop)
	res = c.Apply(&req)
	if len(res.Changes) != 0 || g.LiveCount() != 0 {
		t.Fatal("discarded edits must not be replayed")
	}
}

func TestOutOfRangeIgnored(t *testing.T) {
	c, g, _ := newController(5)
	var req Requests
	req.Draw.Put(5, 0)
	req.Erase.Put(-1, 2)
	res := c.Apply(&req)
	if res.OutOfRange != 2 {
		t.Fatalf("OutOfRange = %d, expected 2", res.OutOfRange)
	}
	if len(res.Changes) != 0 || g.LiveCount() != 0 {
		t.Fatal("out of range requests must be ignored")
	}
	if req.Draw.Pending() || req.Erase.Pending() {
		t.Fatal("slots must be cleared for out of range requests")
	}
}

func TestRedrawAliveIsNotAChange(t *testing.T) {
	c, _, _ := newController(5)
	var req Requests
	req.Draw.Put(1, 1)
	c.Apply(&req)
	req.Draw.Put(1, 1)
	if res := c.Apply(&req); len(res.Changes) != 0 {
		t.Fatalf("drawing an alive cell reported changes %v", res.Changes)
	}
}
