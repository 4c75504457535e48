package life

import (
	"math/rand/v2"
	"sort"

	"lifecast/pkg/core"
)

// Pattern seeds a freshly allocated grid. density is only meaningful for
// random patterns.
type Pattern func(g *core.Grid, rng *rand.Rand, density float64)

var patterns = map[string]Pattern{}

// Register adds a pattern under the provided name.
func Register(name string, p Pattern) {
	if name == "" || p == nil {
		return
	}
	patterns[name] = p
}

// Patterns exposes the registry of seeding patterns.
func Patterns() map[string]Pattern {
	return patterns
}

// PatternNames returns the registered names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Place sets the given offsets alive around the centre of g. Offsets that fall
// outside a small grid are skipped.
func Place(g *core.Grid, offsets []core.Point) {
	s := g.Size()
	cx, cy := s.W/2, s.H/2
	for _, o := range offsets {
		// Out-of-range offsets are dropped on purpose.
		_ = g.Set(cx+o.X, cy+o.Y, true)
	}
}

func shape(offsets ...core.Point) Pattern {
	return func(g *core.Grid, _ *rand.Rand, _ float64) {
		Place(g, offsets)
	}
}

func init() {
	Register("empty", func(g *core.Grid, _ *rand.Rand, _ float64) { g.Clear() })
	Register("random", func(g *core.Grid, rng *rand.Rand, density float64) {
		s := g.Size()
		rows := core.NewRandomGrid(s.W, s.H, density, rng).Rows()
		_ = g.ReplaceState(rows)
	})
	Register("blinker", shape(core.Point{X: 0, Y: -1}, core.Point{X: 0, Y: 0}, core.Point{X: 0, Y: 1}))
	Register("block", shape(core.Point{X: 0, Y: 0}, core.Point{X: 1, Y: 0}, core.Point{X: 0, Y: 1}, core.Point{X: 1, Y: 1}))
	Register("glider", shape(
		core.Point{X: 0, Y: -1},
		core.Point{X: 1, Y: 0},
		core.Point{X: -1, Y: 1}, core.Point{X: 0, Y: 1}, core.Point{X: 1, Y: 1},
	))
	Register("r-pentomino", shape(
		core.Point{X: 0, Y: -1}, core.Point{X: 1, Y: -1},
		core.Point{X: -1, Y: 0}, core.Point{X: 0, Y: 0},
		core.Point{X: 0, Y: 1},
	))
	Register("acorn", shape(
		core.Point{X: -2, Y: -1},
		core.Point{X: 0, Y: 0},
		core.Point{X: -3, Y: 1}, core.Point{X: -2, Y: 1}, core.Point{X: 1, Y: 1}, core.Point{X: 2, Y: 1}, core.Point{X: 3, Y: 1},
	))
}
