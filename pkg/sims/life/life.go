package life

import (
	"fmt"
	"strings"

	"lifeboard/internal/core"
)

// Neighborhood selects which of the eight surrounding cells are counted.
type Neighborhood uint8

const (
	// Moore counts all eight surrounding cells. This is the standard rule.
	Moore Neighborhood = iota
	// Diagonal counts only the four diagonal cells. It reproduces the
	// behaviour of the original editor, whose neighbour test required both
	// the column and the row to differ from the centre.
	Diagonal
)

// String returns the configuration name of the neighbourhood.
func (n Neighborhood) String() string {
	switch n {
	case Moore:
		return "moore"
	case Diagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("neighborhood(%d)", uint8(n))
	}
}

// ParseNeighborhood maps a configuration name to a Neighborhood.
func ParseNeighborhood(name string) (Neighborhood, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "moore":
		return Moore, nil
	case "diagonal":
		return Diagonal, nil
	default:
		return Moore, fmt.Errorf("unknown neighborhood %q", name)
	}
}

func (n Neighborhood) counts(dx, dy int) bool {
	if n == Diagonal {
		return dx != 0 && dy != 0
	}
	return dx != 0 || dy != 0
}

// Next applies the birth/survival/death rule to a cell in state s with k
// live neighbours. Decay only demotes Alive cells; Dead and Empty cells keep
// their state unless born.
func Next(s core.CellState, k int) core.CellState {
	switch {
	case k == 3:
		return core.Alive
	case s.IsAlive() && (k < 2 || k > 3):
		return core.Dead
	default:
		return s
	}
}

// Life advances a bounded grid one generation at a time. Coordinates past the
// edge are treated as absent rather than wrapped.
type Life struct {
	grid  *core.Grid
	hood  Neighborhood
	alive []bool
	nxt   []core.CellState
}

// New returns a transition engine operating on grid.
func New(grid *core.Grid, hood Neighborhood) *Life {
	total := len(grid.Cells())
	return &Life{
		grid:  grid,
		hood:  hood,
		alive: make([]bool, total),
		nxt:   make([]core.CellState, total),
	}
}

// Neighborhood returns the neighbour set used when counting.
func (l *Life) Neighborhood() Neighborhood { return l.hood }

// Step advances the grid by one generation and returns every cell whose state
// changed. The whole generation is computed from a snapshot taken before any
// cell is touched and is installed with a single buffer swap.
func (l *Life) Step() []core.Change {
	n := l.grid.N()
	cur := l.grid.Cells()
	for i, c := range cur {
		l.alive[i] = c.IsAlive()
	}

	var changes []core.Change
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			idx := y*n + x
			next := Next(cur[idx], l.neighbors(x, y))
			l.nxt[idx] = next
			if next != cur[idx] {
				changes = append(changes, core.Change{X: x, Y: y, State: next})
			}
		}
	}
	l.nxt = l.grid.Commit(l.nxt)
	return changes
}

// Neighbors counts the live neighbours of (x, y) in the current generation.
func (l *Life) Neighbors(x, y int) int {
	for i, c := range l.grid.Cells() {
		l.alive[i] = c.IsAlive()
	}
	return l.neighbors(x, y)
}

func (l *Life) neighbors(x, y int) int {
	n := l.grid.N()
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if !l.hood.counts(dx, dy) {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || ny < 0 || nx >= n || ny >= n {
				continue
			}
			if l.alive[ny*n+nx] {
				count++
			}
		}
	}
	return count
}
