//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"lifeboard/internal/world"
)

// HUD draws the control bar below the board: the PLAY/STOP/EXIT buttons and a
// status line.
type HUD struct {
	top     int
	width   int
	buttons []Button
	pixel   *ebiten.Image
}

// NewHUD constructs a HUD whose bar starts at y = top and spans width pixels.
func NewHUD(top, width int) *HUD {
	h := &HUD{top: top, width: width, buttons: Buttons(top)}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Click returns the action of the button under the cursor.
func (h *HUD) Click(x, y int) Action {
	if h == nil {
		return ActionNone
	}
	return HitTest(h.buttons, x, y)
}

// Draw paints the bar for the given status. The button under the cursor
// (mx, my) is tinted, more strongly while the mouse button is held.
func (h *HUD) Draw(screen *ebiten.Image, st world.Status, mx, my int, held bool) {
	if h == nil {
		return
	}
	h.fill(screen, image.Rect(0, h.top, h.width, h.top+BarHeight), color.RGBA{R: 16, G: 16, B: 20, A: 255})
	for _, b := range h.buttons {
		hovered := pointInRect(mx, my, b.Rect)
		h.drawButton(screen, b, Enabled(b.Action, st.State), hovered, hovered && held)
	}
	face := basicfont.Face7x13
	last := h.buttons[len(h.buttons)-1].Rect
	y := h.top + (BarHeight+face.Ascent)/2
	text.Draw(screen, StatusLine(st), face, last.Max.X+2*buttonGap, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
}

func (h *HUD) drawButton(screen *ebiten.Image, b Button, enabled, hovered, pressed bool) {
	bg, fg := ButtonLook(enabled, hovered, pressed)
	h.fill(screen, b.Rect, bg)

	face := basicfont.Face7x13
	label := b.Action.String()
	bounds := text.BoundString(face, label)
	x := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	y := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, label, face, x, y, fg)
}

func (h *HUD) fill(screen *ebiten.Image, rect image.Rectangle, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(h.pixel, op)
}
