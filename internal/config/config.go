// Package config loads the simulation settings from the environment and the
// command line.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"lifeboard/internal/patterns"
	"lifeboard/pkg/sims/life"
)

// MaxGridSize bounds the side length accepted from configuration.
const MaxGridSize = 4096

// Config holds every tunable of the simulation and its front-ends.
type Config struct {
	GridSize     int           `env:"LIFE_GRID_SIZE" envDefault:"100"`
	Neighborhood string        `env:"LIFE_NEIGHBORHOOD" envDefault:"moore"`
	EditInterval time.Duration `env:"LIFE_EDIT_INTERVAL" envDefault:"16ms"`
	StepInterval time.Duration `env:"LIFE_STEP_INTERVAL" envDefault:"200ms"`
	Scale        int           `env:"LIFE_SCALE" envDefault:"8"`
	Seed         int64         `env:"LIFE_SEED" envDefault:"42"`
	Density      float64       `env:"LIFE_DENSITY" envDefault:"0.25"`
	Pattern      string        `env:"LIFE_PATTERN"`
	LogLevel     string        `env:"LIFE_LOG_LEVEL" envDefault:"info"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		GridSize:     100,
		Neighborhood: "moore",
		EditInterval: 16 * time.Millisecond,
		StepInterval: 200 * time.Millisecond,
		Scale:        8,
		Seed:         42,
		Density:      0.25,
		LogLevel:     "info",
	}
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// LoadFrom reads the configuration from the given variables instead of the
// process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	var c Config
	if err := env.ParseWithOptions(&c, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// Bind attaches the configuration to the provided FlagSet. Current values act
// as defaults, so flags override the environment.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.GridSize, "size", c.GridSize, "grid side length in cells")
	fs.StringVar(&c.Neighborhood, "neighborhood", c.Neighborhood, "neighbour set: moore or diagonal")
	fs.DurationVar(&c.EditInterval, "edit-interval", c.EditInterval, "period between input ticks")
	fs.DurationVar(&c.StepInterval, "step-interval", c.StepInterval, "period between generations")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards")
	fs.Float64Var(&c.Density, "density", c.Density, "share of live cells on random boards")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern to load at start ("+patterns.Usage()+")")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.GridSize < 1 || c.GridSize > MaxGridSize {
		errs = append(errs, fmt.Errorf("grid size %d outside [1, %d]", c.GridSize, MaxGridSize))
	}
	if _, err := life.ParseNeighborhood(c.Neighborhood); err != nil {
		errs = append(errs, err)
	}
	if c.EditInterval <= 0 {
		errs = append(errs, fmt.Errorf("edit interval must be positive, got %v", c.EditInterval))
	}
	if c.StepInterval <= 0 {
		errs = append(errs, fmt.Errorf("step interval must be positive, got %v", c.StepInterval))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %d", c.Scale))
	}
	if c.Density < 0 || c.Density > 1 {
		errs = append(errs, fmt.Errorf("density %v outside [0, 1]", c.Density))
	}
	if c.Pattern != "" {
		if _, ok := patterns.Lookup(c.Pattern); !ok {
			errs = append(errs, fmt.Errorf("unknown pattern %q", c.Pattern))
		}
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Hood returns the configured neighbourhood.
func (c Config) Hood() life.Neighborhood {
	n, _ := life.ParseNeighborhood(c.Neighborhood)
	return n
}

// NewLogger returns a text logger writing to w at the configured level.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", name, err)
	}
	return level, nil
}
