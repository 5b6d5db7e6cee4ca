package term

import (
	"bytes"

	"lifeboard/internal/core"
)

// cellWidth is the number of terminal columns used per cell; two columns
// keep cells roughly square.
const cellWidth = 2

// board is the terminal's copy of the grid plus the scroll offset of the
// visible window.
type board struct {
	n      int
	cells  []core.CellState
	ox, oy int
}

func newBoard(cells []core.CellState, n int) *board {
	return &board{n: n, cells: append([]core.CellState(nil), cells...)}
}

func (b *board) apply(changes []core.Change) {
	for _, c := range changes {
		if c.X < 0 || c.Y < 0 || c.X >= b.n || c.Y >= b.n {
			continue
		}
		b.cells[c.X+c.Y*b.n] = c.State
	}
}

// toGrid maps a view cursor position to grid coordinates.
func (b *board) toGrid(cx, cy int) (int, int, bool) {
	x := cx/cellWidth + b.ox
	y := cy + b.oy
	if x < 0 || y < 0 || x >= b.n || y >= b.n {
		return 0, 0, false
	}
	return x, y, true
}

// pan moves the visible window, keeping it inside the board.
func (b *board) pan(dx, dy, viewW, viewH int) {
	cols := viewW / cellWidth
	b.ox = clamp(b.ox+dx, 0, max(0, b.n-cols))
	b.oy = clamp(b.oy+dy, 0, max(0, b.n-viewH))
}

// render draws the visible part of the board into a viewW x viewH view.
func (b *board) render(viewW, viewH int, filler func(core.CellState) string) string {
	var buf bytes.Buffer
	cols := viewW / cellWidth
	for row := 0; row < viewH && row+b.oy < b.n; row++ {
		if row != 0 {
			buf.WriteByte('\n')
		}
		y := row + b.oy
		for col := 0; col < cols && col+b.ox < b.n; col++ {
			buf.WriteString(filler(b.cells[col+b.ox+y*b.n]))
		}
	}
	return buf.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
