package ui

import (
	"math"

	"lifeboard/internal/core"
)

// Zoom limits of the camera.
const (
	MinZoom = 1.0
	MaxZoom = 6.0
)

const (
	panAccel  = 1.0
	panSpeed  = 15.0
	zoomAccel = 0.01
	zoomSpeed = 0.1
)

// View places the board on screen: X and Y are the pan offset in screen
// pixels and Zoom magnifies the board. A zero Zoom means 1.
type View struct {
	X, Y float64
	Zoom float64
}

func (v View) zoom() float64 {
	if v.Zoom <= 0 {
		return 1
	}
	return v.Zoom
}

// CellRect returns the top-left corner and edge length on screen of cell c
// drawn at scale pixels per cell. CellAt is its inverse.
func (v View) CellRect(c core.Coord, scale int) (x, y, size float64) {
	size = float64(scale) * v.zoom()
	return float64(c.X)*size - v.X, float64(c.Y)*size - v.Y, size
}

// CameraInput is the state of the camera keys during one frame.
type CameraInput struct {
	Up, Down, Left, Right bool
	ZoomIn, ZoomOut       bool
	Halt                  bool
}

// Camera moves a View with momentum: held keys accelerate the pan and zoom
// up to a speed limit, and Halt stops both.
type Camera struct {
	View
	vx, vy, vz float64
}

// NewCamera returns a camera showing the board unmagnified at the origin.
func NewCamera() *Camera {
	return &Camera{View: View{Zoom: 1}}
}

// Update advances the camera by one frame. Zooming keeps the centre of the
// w*h viewport fixed.
func (c *Camera) Update(in CameraInput, w, h int) {
	var dx, dy float64
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if dx != 0 && dy != 0 {
		dx, dy = dx/math.Sqrt2, dy/math.Sqrt2
	}
	c.vx = clampF(c.vx+dx*panAccel, -panSpeed, panSpeed)
	c.vy = clampF(c.vy+dy*panAccel, -panSpeed, panSpeed)

	var dz float64
	if in.ZoomIn {
		dz += zoomAccel
	}
	if in.ZoomOut {
		dz -= zoomAccel
	}
	c.vz = clampF(c.vz+dz, -zoomSpeed, zoomSpeed)

	if in.Halt {
		c.vx, c.vy, c.vz = 0, 0, 0
	}
	c.X += c.vx
	c.Y += c.vy

	z0 := c.zoom()
	z1 := clampF(z0+c.vz, MinZoom, MaxZoom)
	if z1 == MinZoom || z1 == MaxZoom {
		c.vz = 0
	}
	if z1 != z0 {
		cx, cy := float64(w)/2, float64(h)/2
		c.X = (cx+c.X)/z0*z1 - cx
		c.Y = (cy+c.Y)/z0*z1 - cy
	}
	c.Zoom = z1
}

func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
