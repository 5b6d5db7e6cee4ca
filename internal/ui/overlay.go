//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"lifeboard/internal/core"
)

// Overlay outlines the cell under the pointer while the board can be edited.
type Overlay struct {
	scale int
	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for a board drawn at scale pixels per cell.
func NewOverlay(scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Draw outlines cell c as seen through v.
func (o *Overlay) Draw(screen *ebiten.Image, c core.Coord, v View) {
	x, y, s := v.CellRect(c, o.scale)
	col := color.RGBA{R: 250, G: 200, B: 80, A: 255}
	o.rect(screen, x, y, s, 1, col)
	o.rect(screen, x, y+s-1, s, 1, col)
	o.rect(screen, x, y, 1, s, col)
	o.rect(screen, x+s-1, y, 1, s, col)
}

func (o *Overlay) rect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
