package life

import (
	"slices"
	"testing"

	"lifecast/pkg/core"
)

func TestBuiltinPatternsRegistered(t *testing.T) {
	want := []string{"acorn", "blinker", "block", "empty", "glider", "r-pentomino", "random"}
	for _, name := range want {
		if _, ok := Patterns()[name]; !ok {
			t.Fatalf("pattern %q not registered", name)
		}
	}
	if got := PatternNames(); !slices.IsSorted(got) {
		t.Fatalf("PatternNames() not sorted: %v", got)
	}
}

func TestRegisterIgnoresInvalid(t *testing.T) {
	before := len(Patterns())
	Register("", shape())
	Register("nil-pattern", nil)
	if got := len(Patterns()); got != before {
		t.Fatalf("registry grew from %d to %d", before, got)
	}
}

func TestShapePatternsCentred(t *testing.T) {
	cases := map[string]int{
		"blinker":     3,
		"block":       4,
		"glider":      5,
		"r-pentomino": 5,
		"acorn":       7,
	}
	for name, count := range cases {
		g := core.NewGrid(16, 16)
		Patterns()[name](g, nil, 0)
		if got := g.AliveCount(); got != count {
			t.Fatalf("%s: %d alive cells, want %d", name, got, count)
		}
	}

	g := core.NewGrid(16, 16)
	Patterns()["blinker"](g, nil, 0)
	want := []core.Point{{X: 8, Y: 7}, {X: 8, Y: 8}, {X: 8, Y: 9}}
	if got := g.Alive(); !slices.Equal(got, want) {
		t.Fatalf("blinker at %v, want %v", got, want)
	}
}

func TestShapeClippedOnTinyGrid(t *testing.T) {
	g := core.NewGrid(1, 1)
	Patterns()["acorn"](g, nil, 0)
	if got := g.AliveCount(); got != 1 {
		t.Fatalf("1x1 acorn has %d alive cells, want 1", got)
	}
}

func TestRandomPatternUsesSeed(t *testing.T) {
	a := core.NewGrid(30, 30)
	b := core.NewGrid(30, 30)
	Patterns()["random"](a, core.NewRNG(5).Source(), 0.5)
	Patterns()["random"](b, core.NewRNG(5).Source(), 0.5)
	if !slices.Equal(a.Alive(), b.Alive()) {
		t.Fatal("random pattern not reproducible for a fixed seed")
	}
	if a.AliveCount() == 0 {
		t.Fatal("random pattern left grid empty")
	}

	Patterns()["empty"](a, nil, 0)
	if a.AliveCount() != 0 {
		t.Fatal("empty pattern left cells alive")
	}
}
