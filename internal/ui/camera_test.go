package ui

import (
	"math"
	"testing"
)

func TestCameraPanAccelerates(t *testing.T) {
	c := NewCamera()
	c.Update(CameraInput{Right: true}, 800, 800)
	c.Update(CameraInput{Right: true}, 800, 800)
	if c.X != 3 || c.Y != 0 {
		t.Fatalf("after two frames X=%v Y=%v, expected 3,0", c.X, c.Y)
	}
	c.Update(CameraInput{}, 800, 800)
	if c.X != 5 {
		t.Fatalf("momentum lost: X=%v", c.X)
	}
}

func TestCameraPanSpeedLimit(t *testing.T) {
	c := NewCamera()
	for i := 0; i < 40; i++ {
		c.Update(CameraInput{Up: true}, 800, 800)
	}
	before := c.Y
	c.Update(CameraInput{Up: true}, 800, 800)
	if d := before - c.Y; d != panSpeed {
		t.Fatalf("pan step %v, expected the limit %v", d, panSpeed)
	}
}

func TestCameraHaltStopsMotion(t *testing.T) {
	c := NewCamera()
	c.Update(CameraInput{Left: true, ZoomIn: true}, 800, 800)
	c.Update(CameraInput{Halt: true}, 800, 800)
	x, z := c.X, c.Zoom
	c.Update(CameraInput{}, 800, 800)
	if c.X != x || c.Zoom != z {
		t.Fatalf("camera kept moving after halt: X %v->%v zoom %v->%v", x, c.X, z, c.Zoom)
	}
}

func TestCameraZoomClamped(t *testing.T) {
	c := NewCamera()
	for i := 0; i < 500; i++ {
		c.Update(CameraInput{ZoomIn: true}, 800, 800)
	}
	if c.Zoom != MaxZoom {
		t.Fatalf("zoom %v, expected %v", c.Zoom, MaxZoom)
	}
	for i := 0; i < 500; i++ {
		c.Update(CameraInput{ZoomOut: true}, 800, 800)
	}
	if c.Zoom != MinZoom {
		t.Fatalf("zoom %v, expected %v", c.Zoom, MinZoom)
	}
}

func TestCameraZoomKeepsCentre(t *testing.T) {
	c := NewCamera()
	want, ok := CellAt(402, 402, 8, 100, c.View)
	if !ok {
		t.Fatal("centre is off the board")
	}
	for i := 0; i < 20; i++ {
		c.Update(CameraInput{ZoomIn: true}, 804, 804)
	}
	if c.Zoom <= 1 {
		t.Fatalf("zoom did not grow: %v", c.Zoom)
	}
	got, ok := CellAt(402, 402, 8, 100, c.View)
	if !ok || got != want {
		t.Fatalf("centre cell moved from %v to %v", want, got)
	}
	x, _, size := c.CellRect(want, 8)
	if math.Abs(size-8*c.Zoom) > 1e-9 || x > 402 || x+size < 402 {
		t.Fatalf("centre cell rect x=%v size=%v does not cover the centre", x, size)
	}
}
