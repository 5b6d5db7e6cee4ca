// Package patterns holds named seed templates that can be stamped onto a
// stopped board.
package patterns

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"lifeboard/internal/core"
)

// Pattern is a named set of live cells relative to its top-left corner.
type Pattern struct {
	Name  string
	Descr string
	Cells []core.Coord
}

// Bounds returns the width and height of the pattern's bounding box.
func (p Pattern) Bounds() (int, int) {
	w, h := 0, 0
	for _, c := range p.Cells {
		if c.X+1 > w {
			w = c.X + 1
		}
		if c.Y+1 > h {
			h = c.Y + 1
		}
	}
	return w, h
}

// Centered returns the pattern's cells translated to the middle of an n*n
// grid. Cells that do not fit are still returned; callers filter by bounds.
func (p Pattern) Centered(n int) []core.Coord {
	w, h := p.Bounds()
	ox, oy := (n-w)/2, (n-h)/2
	out := make([]core.Coord, len(p.Cells))
	for i, c := range p.Cells {
		out[i] = core.Coord{X: c.X + ox, Y: c.Y + oy}
	}
	return out
}

var registry = map[string]Pattern{}

// Register adds a pattern under its name. Empty names are ignored.
func Register(p Pattern) {
	if p.Name == "" {
		return
	}
	registry[p.Name] = p
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, bool) {
	p, ok := registry[name]
	return p, ok
}

// Names lists the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Usage lists the registered patterns with their descriptions, for flag help.
func Usage() string {
	names := Names()
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + ": " + registry[name].Descr
	}
	return strings.Join(parts, "; ")
}

// ParseCells reads coordinates written as "x,y" pairs separated by
// semicolons or whitespace, e.g. "1,0; 2,1; 0,2".
func ParseCells(s string) ([]core.Coord, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == ' ' || r == '\t' || r == '\n'
	})
	out := make([]core.Coord, 0, len(fields))
	for _, f := range fields {
		parts := strings.SplitN(f, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("cell %q: expected x,y", f)
		}
		x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("cell %q: %w", f, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("cell %q: %w", f, err)
		}
		out = append(out, core.Coord{X: x, Y: y})
	}
	return out, nil
}

func cells(pairs ...int) []core.Coord {
	out := make([]core.Coord, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, core.Coord{X: pairs[i], Y: pairs[i+1]})
	}
	return out
}

func init() {
	Register(Pattern{"blinker", "period 2 oscillator", cells(0, 0, 1, 0, 2, 0)})
	Register(Pattern{"block", "still life", cells(0, 0, 1, 0, 0, 1, 1, 1)})
	Register(Pattern{"beacon", "period 2 oscillator", cells(0, 0, 1, 0, 0, 1, 3, 2, 2, 3, 3, 3)})
	Register(Pattern{"toad", "period 2 oscillator", cells(1, 0, 2, 0, 3, 0, 0, 1, 1, 1, 2, 1)})
	Register(Pattern{"glider", "diagonal spaceship", cells(1, 0, 2, 1, 0, 2, 1, 2, 2, 2)})
	Register(Pattern{"r-pentomino", "methuselah", cells(1, 0, 2, 0, 0, 1, 1, 1, 1, 2)})
}
