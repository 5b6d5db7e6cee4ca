package runstate

import "testing"

func TestInitialState(t *testing.T) {
	m := New()
	if m.State() != Stopped {
		t.Fatalf("initial state = %v, expected stopped", m.State())
	}
	if !m.CanEdit() || m.CanStep() {
		t.Fatal("stopped machine must allow edits and forbid steps")
	}
	var zero Machine
	if zero.State() != Stopped {
		t.Fatal("zero value must be stopped")
	}
}

func TestTransitions(t *testing.T) {
	m := New()
	steps := []struct {
		cmd     Command
		changed bool
		want    State
	}{
		{None, false, Stopped},
		{Stop, false, Stopped},
		{Play, true, Running},
		{Play, false, Running},
		{None, false, Running},
		{Stop, true, Stopped},
		{Stop, false, Stopped},
	}
	for i, s := range steps {
		if got := m.Apply(s.cmd); got != s.changed {
			t.Fatalf("step %d: Apply(%v) changed=%v, expected %v", i, s.cmd, got, s.changed)
		}
		if m.State() != s.want {
			t.Fatalf("step %d: state %v, expected %v", i, m.State(), s.want)
		}
	}
}

func TestGating(t *testing.T) {
	m := New()
	m.Apply(Play)
	if m.CanEdit() || !m.CanStep() {
		t.Fatal("running machine must forbid edits and allow steps")
	}
}
