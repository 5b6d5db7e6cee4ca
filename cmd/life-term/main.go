package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/integrii/flaggy"

	"lifeboard/internal/app"
	"lifeboard/internal/config"
	"lifeboard/internal/patterns"
	"lifeboard/internal/term"
	"lifeboard/internal/world"
)

type envOptions struct {
	random  bool
	logFile string
}

func main() {
	cfg, eo := initOptions()

	var logOut io.Writer = io.Discard
	if eo.logFile != "" {
		f, err := os.OpenFile(eo.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	world.SetLogger(cfg.NewLogger(logOut))

	w, err := app.NewWorld(cfg, eo.random)
	if err != nil {
		log.Fatal(err)
	}
	sched := world.NewScheduler(w, cfg.EditInterval, cfg.StepInterval)

	console, err := term.NewConsole(sched, cfg)
	if err != nil {
		log.Fatal(err)
	}
	console.Attach(w)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	runErr := make(chan error, 1)
	go func() { runErr <- sched.Run(ctx) }()

	uiErr := console.Run(ctx)
	console.Close()
	cancel()

	if err := <-runErr; err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	if uiErr != nil {
		log.Fatal(uiErr)
	}
}

func initOptions() (config.Config, *envOptions) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	eo := &envOptions{}

	flaggy.SetName("life-term")
	flaggy.SetDescription("Conway's Game of Life in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&cfg.GridSize, "n", "size", "Side length of the grid")
	flaggy.String(&cfg.Neighborhood, "b", "neighborhood", "Neighbour set [moore|diagonal]")
	flaggy.Duration(&cfg.StepInterval, "i", "interval", "Interval between generations, for example 200ms")
	flaggy.Duration(&cfg.EditInterval, "e", "edit-interval", "Interval between input ticks")
	flaggy.Int64(&cfg.Seed, "s", "seed", "Seed for random boards")
	flaggy.Float64(&cfg.Density, "d", "density", "Share of live cells on random boards")
	flaggy.String(&cfg.Pattern, "p", "pattern", "Pattern to start with ("+patterns.Usage()+")")
	flaggy.String(&cfg.LogLevel, "v", "log-level", "Log level [debug|info|warn|error]")
	flaggy.Bool(&eo.random, "r", "random", "Settle with random data")
	flaggy.String(&eo.logFile, "l", "log", "Append logs to this file")

	flaggy.Parse()

	if err := cfg.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	return cfg, eo
}
