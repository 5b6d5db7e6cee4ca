//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"lifeboard/internal/app"
	"lifeboard/internal/config"
	"lifeboard/internal/world"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	random := flag.Bool("random", false, "start from a random board")
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	world.SetLogger(cfg.NewLogger(os.Stderr))

	w, err := app.NewWorld(cfg, *random)
	if err != nil {
		log.Fatal(err)
	}
	edit, step := app.NewClocks(cfg.EditInterval, cfg.StepInterval)
	game := app.New(app.NewDriver(w, edit, step, cfg.Seed, cfg.Density, cfg.Pattern), cfg.Scale)

	ebiten.SetWindowTitle("lifeboard (" + w.Neighborhood().String() + ")")
	ebiten.SetWindowSize(game.Size())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
