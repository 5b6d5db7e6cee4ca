//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"lifeboard/internal/core"
)

// GridPainter keeps one RGBA image with a pixel per cell and draws it scaled.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it with
// geo, which maps cell units to screen pixels.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []core.CellState, p Palette, geo ebiten.GeoM) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, p)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM = geo
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
