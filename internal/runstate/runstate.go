// Package runstate tracks whether the simulation is editing or stepping.
package runstate

import "fmt"

// State is the run mode of the simulation.
type State uint8

const (
	// Stopped is the initial state. Edits are applied, generations are not.
	Stopped State = iota
	// Running steps generations and discards edits.
	Running
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Command is an external request to change the run state.
type Command uint8

const (
	// None leaves the state untouched.
	None Command = iota
	// Play moves Stopped to Running.
	Play
	// Stop moves Running to Stopped.
	Stop
)

// String returns the lower-case command name.
func (c Command) String() string {
	switch c {
	case None:
		return "none"
	case Play:
		return "play"
	case Stop:
		return "stop"
	default:
		return fmt.Sprintf("command(%d)", uint8(c))
	}
}

// Machine holds the current State. It only changes through Apply; there are
// no timers or automatic transitions. The zero value is Stopped.
type Machine struct {
	state State
}

// New returns a Machine in the Stopped state.
func New() *Machine { return &Machine{} }

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Apply executes cmd and reports whether the state changed. Repeating the
// command for the state already held is a no-op.
func (m *Machine) Apply(cmd Command) bool {
	next := m.state
	switch cmd {
	case Play:
		next = Running
	case Stop:
		next = Stopped
	}
	if next == m.state {
		return false
	}
	m.state = next
	return true
}

// CanEdit reports whether edit requests may mutate the grid.
func (m *Machine) CanEdit() bool { return m.state == Stopped }

// CanStep reports whether the transition engine may run.
func (m *Machine) CanStep() bool { return m.state == Running }
