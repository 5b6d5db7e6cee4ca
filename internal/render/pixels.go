package render

import (
	"image/color"

	"lifeboard/internal/core"
)

// Palette maps every cell state to the colour used to draw it. Dead and Empty
// share the rule but not the look.
type Palette [3]color.RGBA

// Background is the clear colour behind the board.
var Background = color.RGBA{R: 40, G: 44, B: 52, A: 255}

// DefaultPalette returns the standard empty/alive/dead colours.
func DefaultPalette() Palette {
	var p Palette
	p[core.Empty] = color.RGBA{R: 58, G: 64, B: 76, A: 255}
	p[core.Alive] = color.RGBA{R: 236, G: 240, B: 214, A: 255}
	p[core.Dead] = color.RGBA{R: 122, G: 62, B: 66, A: 255}
	return p
}

// Color returns the colour for s. Unknown states draw as Empty.
func (p Palette) Color(s core.CellState) color.RGBA {
	if int(s) >= len(p) {
		return p[core.Empty]
	}
	return p[s]
}

// fillPaletteRGBA converts cell states into RGBA pixels in buf, one pixel per
// cell.
func fillPaletteRGBA(buf []byte, cells []core.CellState, p Palette) {
	for i, c := range cells {
		base := i * 4
		col := p.Color(c)
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
