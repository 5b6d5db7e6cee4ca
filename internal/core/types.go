package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Coord addresses a single grid cell.
type Coord struct {
	X int
	Y int
}

// Change reports a cell whose state moved during a tick. Collaborators use the
// new state to pick the matching visual.
type Change struct {
	X     int
	Y     int
	State CellState
}
