package patterns

import (
	"slices"
	"strings"
	"testing"

	"lifeboard/internal/core"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, name := range []string{"blinker", "block", "beacon", "toad", "glider", "r-pentomino"} {
		if _, ok := Lookup(name); !ok {
			t.Fatalf("pattern %q not registered", name)
		}
	}
	if !slices.IsSorted(Names()) {
		t.Fatal("Names must be sorted")
	}
}

func TestCentered(t *testing.T) {
	p, _ := Lookup("blinker")
	w, h := p.Bounds()
	if w != 3 || h != 1 {
		t.Fatalf("blinker bounds = %dx%d", w, h)
	}
	got := p.Centered(9)
	want := []core.Coord{{X: 3, Y: 4}, {X: 4, Y: 4}, {X: 5, Y: 4}}
	if !slices.Equal(got, want) {
		t.Fatalf("Centered = %v, expected %v", got, want)
	}
}

func TestParseCells(t *testing.T) {
	got, err := ParseCells("1,0; 2,1 0,2")
	if err != nil {
		t.Fatalf("ParseCells: %v", err)
	}
	want := []core.Coord{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}}
	if !slices.Equal(got, want) {
		t.Fatalf("ParseCells = %v, expected %v", got, want)
	}
	if _, err := ParseCells("1;2"); err == nil {
		t.Fatal("expected error for missing comma")
	}
	if _, err := ParseCells("a,2"); err == nil {
		t.Fatal("expected error for non-numeric coordinate")
	}
	if got, err := ParseCells(""); err != nil || len(got) != 0 {
		t.Fatalf("empty input = %v, %v", got, err)
	}
}

func TestUsageShowsDescriptions(t *testing.T) {
	u := Usage()
	for _, name := range Names() {
		p, _ := Lookup(name)
		if !strings.Contains(u, name+": "+p.Descr) {
			t.Fatalf("usage %q lacks %s", u, name)
		}
	}
	if !strings.Contains(u, "glider: diagonal spaceship") {
		t.Fatalf("usage %q lacks the glider description", u)
	}
}
