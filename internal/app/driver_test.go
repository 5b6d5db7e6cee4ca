package app

import (
	"errors"
	"testing"

	"lifeboard/internal/config"
	"lifeboard/internal/core"
	"lifeboard/internal/runstate"
	"lifeboard/internal/world"
	"lifeboard/pkg/sims/life"
)

// scripted fires according to a fixed sequence and then stays quiet.
type scripted struct {
	seq []bool
}

func (s *scripted) ShouldStep() bool {
	if len(s.seq) == 0 {
		return false
	}
	v := s.seq[0]
	s.seq = s.seq[1:]
	return v
}

func always() *scripted {
	seq := make([]bool, 64)
	for i := range seq {
		seq[i] = true
	}
	return &scripted{seq: seq}
}

func cell(w *world.World, x, y int) core.CellState {
	s, err := w.Grid().Get(x, y)
	if err != nil {
		panic(err)
	}
	return s
}

func TestDrawWaitsForInputTick(t *testing.T) {
	w := world.New(10, life.Moore)
	edit := &scripted{seq: []bool{false, true}}
	d := NewDriver(w, edit, &scripted{}, 1, 0.5, "blinker")

	if err := d.Advance(Frame{Input: world.Input{Draw: &core.Coord{X: 5, Y: 5}}}); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if cell(w, 5, 5) != core.Empty {
		t.Fatal("draw applied before the input tick")
	}
	if err := d.Advance(Frame{}); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if cell(w, 5, 5) != core.Alive {
		t.Fatal("draw not applied on the input tick")
	}
}

func TestPlayThenStepKillsLoneCell(t *testing.T) {
	w := world.New(10, life.Moore)
	d := NewDriver(w, always(), always(), 1, 0.5, "")
	_ = d.Advance(Frame{Input: world.Input{Draw: &core.Coord{X: 5, Y: 5}}})
	if cell(w, 5, 5) != core.Alive {
		t.Fatal("cell not drawn while stopped")
	}
	_ = d.Advance(Frame{Input: world.Input{Command: runstate.Play}})
	if cell(w, 5, 5) != core.Dead {
		t.Fatalf("lone cell after one step = %v", cell(w, 5, 5))
	}
	if w.Status().Generation != 1 {
		t.Fatalf("generation %d", w.Status().Generation)
	}
}

func TestRunningIgnoresDrawAndBulkEdits(t *testing.T) {
	w := world.New(10, life.Moore)
	d := NewDriver(w, always(), &scripted{}, 1, 0.5, "glider")
	_ = d.Advance(Frame{Input: world.Input{Command: runstate.Play}})
	_ = d.Advance(Frame{Input: world.Input{Draw: &core.Coord{X: 1, Y: 1}}, Randomize: true})
	_ = d.Advance(Frame{Pattern: true})
	if live := w.Grid().LiveCount(); live != 0 {
		t.Fatalf("running board was edited: %d live", live)
	}
}

func TestBulkEditsWhileStopped(t *testing.T) {
	w := world.New(10, life.Moore)
	d := NewDriver(w, &scripted{}, &scripted{}, 7, 0.5, "blinker")

	_ = d.Advance(Frame{Pattern: true})
	if live := w.Grid().LiveCount(); live != 3 {
		t.Fatalf("blinker loaded %d live cells", live)
	}
	_ = d.Advance(Frame{Randomize: true})
	first := w.Grid().Snapshot()
	_ = d.Advance(Frame{Randomize: true})
	if w.Grid().LiveCount() == 0 {
		t.Fatal("random board is empty")
	}
	same := true
	for i, s := range w.Grid().Cells() {
		if s != first[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("second random board reused the seed")
	}
	_ = d.Advance(Frame{Clear: true})
	if w.Grid().LiveCount() != 0 {
		t.Fatal("clear left live cells")
	}
}

func TestExitStopsAdvancing(t *testing.T) {
	w := world.New(5, life.Moore)
	d := NewDriver(w, always(), always(), 1, 0.5, "")
	err := d.Advance(Frame{Input: world.Input{Exit: true, Draw: &core.Coord{X: 1, Y: 1}}})
	if !errors.Is(err, ErrExit) {
		t.Fatalf("expected ErrExit, got %v", err)
	}
	if w.State() != runstate.Stopped {
		t.Fatal("exit changed the run state")
	}
	if cell(w, 1, 1) != core.Empty {
		t.Fatal("exit frame still ticked")
	}
}

func TestNewClocksFallBackToDefaults(t *testing.T) {
	edit, step := NewClocks(0, -1)
	if got := edit.(*core.FixedStep).Interval(); got != world.DefEditInterval {
		t.Fatalf("edit interval %v", got)
	}
	if got := step.(*core.FixedStep).Interval(); got != world.DefStepInterval {
		t.Fatalf("step interval %v", got)
	}
}

func TestNewWorldFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.GridSize = 20
	cfg.Neighborhood = "diagonal"

	w, err := NewWorld(cfg, false)
	if err != nil {
		t.Fatalf("empty world: %v", err)
	}
	if w.Grid().LiveCount() != 0 || w.Neighborhood() != life.Diagonal {
		t.Fatalf("unexpected world: live=%d hood=%v", w.Grid().LiveCount(), w.Neighborhood())
	}

	cfg.Pattern = "glider"
	w, err = NewWorld(cfg, true)
	if err != nil {
		t.Fatalf("pattern world: %v", err)
	}
	if w.Grid().LiveCount() != 5 {
		t.Fatalf("glider has %d live cells", w.Grid().LiveCount())
	}

	cfg.Pattern = ""
	w, err = NewWorld(cfg, true)
	if err != nil {
		t.Fatalf("random world: %v", err)
	}
	if w.Grid().LiveCount() == 0 {
		t.Fatal("random world is empty")
	}

	cfg.Pattern = "nope"
	if _, err := NewWorld(cfg, false); err == nil {
		t.Fatal("unknown pattern accepted")
	}
}
