package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"lifeboard/internal/core"
	"lifeboard/internal/runstate"
	"lifeboard/internal/world"
)

// Action is what a HUD button asks the game to do.
type Action int

const (
	ActionNone Action = iota
	ActionPlay
	ActionStop
	ActionExit
)

func (a Action) String() string {
	switch a {
	case ActionPlay:
		return "PLAY"
	case ActionStop:
		return "STOP"
	case ActionExit:
		return "EXIT"
	default:
		return ""
	}
}

// Button is a clickable rectangle in screen coordinates.
type Button struct {
	Action Action
	Rect   image.Rectangle
}

const (
	// BarHeight is the height of the control bar below the board.
	BarHeight = 44

	barPadding   = 8
	buttonWidth  = 56
	buttonHeight = 28
	buttonGap    = 8

	// BarMinWidth is the narrowest window that still shows every button.
	BarMinWidth = 2*barPadding + 3*buttonWidth + 2*buttonGap
)

// ScreenSize returns the logical window size for an n*n board drawn at scale
// pixels per cell: the board plus the control bar, never narrower than the
// bar.
func ScreenSize(n, scale int) (int, int) {
	side := n * scale
	return max(side, BarMinWidth), side + BarHeight
}

// Buttons lays out PLAY, STOP and EXIT left to right in a bar whose top edge
// is at y = top.
func Buttons(top int) []Button {
	y := top + (BarHeight-buttonHeight)/2
	out := make([]Button, 0, 3)
	x := barPadding
	for _, a := range []Action{ActionPlay, ActionStop, ActionExit} {
		out = append(out, Button{Action: a, Rect: image.Rect(x, y, x+buttonWidth, y+buttonHeight)})
		x += buttonWidth + buttonGap
	}
	return out
}

// HitTest returns the action of the button under (x, y).
func HitTest(buttons []Button, x, y int) Action {
	for _, b := range buttons {
		if pointInRect(x, y, b.Rect) {
			return b.Action
		}
	}
	return ActionNone
}

// Enabled reports whether a is meaningful in state st. PLAY is only live
// while stopped and STOP only while running.
func Enabled(a Action, st runstate.State) bool {
	switch a {
	case ActionPlay:
		return st == runstate.Stopped
	case ActionStop:
		return st == runstate.Running
	case ActionExit:
		return true
	default:
		return false
	}
}

// CellAt maps a screen position to the grid cell drawn there at the given
// scale, seen through view v. Positions off the board report false.
func CellAt(px, py, scale, n int, v View) (core.Coord, bool) {
	if scale <= 0 {
		return core.Coord{}, false
	}
	z := v.zoom() * float64(scale)
	x := int(math.Floor((float64(px) + v.X) / z))
	y := int(math.Floor((float64(py) + v.Y) / z))
	if x < 0 || y < 0 || x >= n || y >= n {
		return core.Coord{}, false
	}
	return core.Coord{X: x, Y: y}, true
}

// ButtonLook returns the background and label colours of a button.
func ButtonLook(enabled, hovered, pressed bool) (bg, fg color.RGBA) {
	switch {
	case !enabled:
		return color.RGBA{R: 32, G: 34, B: 40, A: 255}, color.RGBA{R: 120, G: 120, B: 130, A: 255}
	case pressed:
		return color.RGBA{R: 26, G: 255, B: 255, A: 255}, color.RGBA{R: 16, G: 16, B: 20, A: 255}
	case hovered:
		return color.RGBA{R: 102, G: 204, B: 204, A: 255}, color.RGBA{R: 16, G: 16, B: 20, A: 255}
	default:
		return color.RGBA{R: 54, G: 56, B: 64, A: 255}, color.RGBA{R: 230, G: 230, B: 240, A: 255}
	}
}

// StatusLine formats the counters shown next to the buttons.
func StatusLine(st world.Status) string {
	return fmt.Sprintf("gen %d  live %d  %s", st.Generation, st.Live, st.State)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
