package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"lifeboard/internal/config"
	"lifeboard/internal/core"
)

func TestRunWritesOneFramePerGeneration(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.GridSize = 5
	cfg.Scale = 4

	cells := []core.Coord{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}}
	n, err := run(options{cfg: cfg, cells: cells, frames: 2, out: dir})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 frames, wrote %d", n)
	}
	for _, name := range []string{"gen-0000.png", "gen-0001.png", "gen-0002.png"} {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 20 {
			t.Fatalf("%s is %v", name, b)
		}
	}
}

func TestRunRejectsUnknownPattern(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Pattern = "missing"
	if _, err := run(options{cfg: cfg, out: t.TempDir()}); err == nil {
		t.Fatal("expected an error for an unknown pattern")
	}
}
