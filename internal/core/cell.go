package core

// CellState is the value stored for every grid cell.
type CellState uint8

const (
	// Empty marks a cell that has never been touched. It is the zero value.
	Empty CellState = iota
	// Alive marks a cell that participates in the automaton.
	Alive
	// Dead marks a cell that was alive and died from the transition rule.
	// The rule treats it exactly like Empty; only the presentation differs.
	Dead
)

// IsAlive reports whether the state counts as alive for the transition rule.
func (s CellState) IsAlive() bool { return s == Alive }

// String returns the lower-case state name.
func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}
