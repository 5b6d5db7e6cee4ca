// Command life-snap runs a board headlessly for a number of generations and
// writes every generation as a PNG frame.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"lifeboard/internal/app"
	"lifeboard/internal/config"
	"lifeboard/internal/core"
	"lifeboard/internal/patterns"
	"lifeboard/internal/runstate"
	"lifeboard/internal/snapshot"
	"lifeboard/internal/world"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ";")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type options struct {
	cfg    config.Config
	cells  []core.Coord
	random bool
	frames int
	out    string
	gap    float64
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	fs := flag.CommandLine
	cfg.Bind(fs)
	frames := fs.Int("frames", 10, "number of generations to render after the initial board")
	out := fs.String("out", "frames", "directory for the PNG frames")
	gap := fs.Float64("gap", 1, "pixels left between neighbouring cells")
	random := fs.Bool("random", false, "start from a random board")
	var cellArgs kvList
	fs.Var(&cellArgs, "cell", "live cell as x,y (repeatable)")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	world.SetLogger(cfg.NewLogger(os.Stderr))

	cells, err := patterns.ParseCells(cellArgs.String())
	if err != nil {
		log.Fatalf("parse -cell: %v", err)
	}
	written, err := run(options{cfg: cfg, cells: cells, random: *random, frames: *frames, out: *out, gap: *gap})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %d frames to %s\n", written, *out)
}

// run renders the initial board and opts.frames further generations. It
// returns the number of files written.
func run(opts options) (int, error) {
	w, err := app.NewWorld(opts.cfg, opts.random && len(opts.cells) == 0)
	if err != nil {
		return 0, err
	}
	if len(opts.cells) > 0 {
		if _, err := w.Load(opts.cells); err != nil {
			return 0, fmt.Errorf("load cells: %w", err)
		}
	}
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}

	sopts := snapshot.Options{Scale: opts.cfg.Scale, Gap: opts.gap}
	written := 0
	write := func() error {
		name := filepath.Join(opts.out, fmt.Sprintf("gen-%04d.png", w.Status().Generation))
		f, err := os.Create(name)
		if err != nil {
			return err
		}
		if err := snapshot.WritePNG(f, w.Grid().Cells(), w.Grid().N(), sopts); err != nil {
			f.Close()
			return fmt.Errorf("%s: %w", name, err)
		}
		written++
		return f.Close()
	}

	if err := write(); err != nil {
		return written, err
	}
	w.Command(runstate.Play)
	for i := 0; i < opts.frames; i++ {
		w.StepTick()
		if err := write(); err != nil {
			return written, err
		}
	}
	return written, nil
}
