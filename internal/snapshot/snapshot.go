// Package snapshot renders a generation to a PNG image.
package snapshot

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	"lifeboard/internal/core"
	"lifeboard/internal/render"
)

// Options control how a frame is drawn.
type Options struct {
	// Scale is the edge length of one cell in pixels.
	Scale int
	// Gap is the blank border left around every cell, in pixels.
	Gap float64
	// Palette colours the cells. The zero value selects DefaultPalette.
	Palette *render.Palette
}

func (o Options) palette() render.Palette {
	if o.Palette != nil {
		return *o.Palette
	}
	return render.DefaultPalette()
}

// Render draws an n*n board of cells and returns the image.
func Render(cells []core.CellState, n int, opts Options) (image.Image, error) {
	dc, err := draw(cells, n, opts)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// WritePNG draws an n*n board of cells and encodes it to w.
func WritePNG(w io.Writer, cells []core.CellState, n int, opts Options) error {
	dc, err := draw(cells, n, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func draw(cells []core.CellState, n int, opts Options) (*gg.Context, error) {
	if n <= 0 || len(cells) != n*n {
		return nil, fmt.Errorf("snapshot: %d cells do not form a %dx%d board", len(cells), n, n)
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	gap := opts.Gap
	if gap < 0 || 2*gap >= float64(scale) {
		gap = 0
	}
	pal := opts.palette()

	size := n * scale
	dc := gg.NewContext(size, size)
	dc.ClearWithColor(gg.FromColor(render.Background))

	// One path per state keeps the number of fills constant.
	for _, state := range []core.CellState{core.Empty, core.Alive, core.Dead} {
		drawn := false
		for id, c := range cells {
			if c != state {
				continue
			}
			x, y := id%n, id/n
			dc.DrawRectangle(float64(x*scale)+gap, float64(y*scale)+gap, float64(scale)-2*gap, float64(scale)-2*gap)
			drawn = true
		}
		if !drawn {
			continue
		}
		dc.SetColor(pal.Color(state))
		if err := dc.Fill(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("fill %s cells: %w", state, err)
		}
	}
	if err := dc.FlushGPU(); err != nil {
		dc.Close()
		return nil, fmt.Errorf("flush: %w", err)
	}
	return dc, nil
}
