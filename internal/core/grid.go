package core

// Grid stores a fixed square board of cells in row-major order. The side
// length is chosen at creation and never changes.
type Grid struct {
	n    int
	data []CellState
}

// NewGrid allocates an n*n grid with every cell Empty.
func NewGrid(n int) *Grid {
	if n <= 0 {
		n = 1
	}
	return &Grid{n: n, data: make([]CellState, n*n)}
}

// N returns the side length.
func (g *Grid) N() int { return g.n }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.n, H: g.n} }

// Cells exposes the backing slice for read access. The slice is replaced on
// every Commit, so callers must not hold on to it across ticks.
func (g *Grid) Cells() []CellState { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return x + y*g.n }

// Coord converts a linear index back into coordinates.
func (g *Grid) Coord(id int) (int, int) { return id % g.n, id / g.n }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.n && y < g.n
}

// Get returns the state at (x, y).
func (g *Grid) Get(x, y int) (CellState, error) {
	if !g.InBounds(x, y) {
		return Empty, &OutOfRangeError{X: x, Y: y, N: g.n}
	}
	return g.data[g.Index(x, y)], nil
}

// Set stores s at (x, y).
func (g *Grid) Set(x, y int, s CellState) error {
	if !g.InBounds(x, y) {
		return &OutOfRangeError{X: x, Y: y, N: g.n}
	}
	g.data[g.Index(x, y)] = s
	return nil
}

// Replace stores s at linear index id and returns the previous state. The
// index must be valid.
func (g *Grid) Replace(id int, s CellState) CellState {
	prev := g.data[id]
	g.data[id] = s
	return prev
}

// Commit installs next as the current generation in one step and hands back
// the previous backing slice so the caller can reuse it as a scratch buffer.
func (g *Grid) Commit(next []CellState) []CellState {
	if len(next) != len(g.data) {
		panic("core: commit buffer does not match grid size")
	}
	prev := g.data
	g.data = next
	return prev
}

// Clear sets every cell to Empty.
func (g *Grid) Clear() {
	clear(g.data)
}

// Snapshot returns a copy of the current cells.
func (g *Grid) Snapshot() []CellState {
	return append([]CellState(nil), g.data...)
}

// LiveCount returns the number of Alive cells.
func (g *Grid) LiveCount() int {
	live := 0
	for _, c := range g.data {
		if c.IsAlive() {
			live++
		}
	}
	return live
}
