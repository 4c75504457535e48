package life

import (
	"errors"
	"slices"
	"testing"

	"lifecast/pkg/core"
)

func seed(t *testing.T, e *Engine, points ...core.Point) {
	t.Helper()
	for _, p := range points {
		if err := e.Set(p.X, p.Y, true); err != nil {
			t.Fatalf("Set(%d,%d): %v", p.X, p.Y, err)
		}
	}
}

func expectAlive(t *testing.T, e *Engine, want ...core.Point) {
	t.Helper()
	if got := e.Alive(); !slices.Equal(got, want) {
		t.Fatalf("generation %d alive = %v, want %v\n%s", e.Generation(), got, want, e)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	life := New(5, 5)
	seed(t, life, core.Point{X: 2, Y: 1}, core.Point{X: 2, Y: 2}, core.Point{X: 2, Y: 3})

	life.Step()
	expectAlive(t, life, core.Point{X: 1, Y: 2}, core.Point{X: 2, Y: 2}, core.Point{X: 3, Y: 2})

	life.Step()
	expectAlive(t, life, core.Point{X: 2, Y: 1}, core.Point{X: 2, Y: 2}, core.Point{X: 2, Y: 3})

	if got := life.Generation(); got != 2 {
		t.Fatalf("Generation() = %d, want 2", got)
	}
}

func TestRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := Rule(true, n); got != wantAlive {
			t.Fatalf("Rule(alive, %d) = %v, want %v", n, got, wantAlive)
		}
		wantBirth := n == 3
		if got := Rule(false, n); got != wantBirth {
			t.Fatalf("Rule(dead, %d) = %v, want %v", n, got, wantBirth)
		}
	}
}

func TestUnderpopulation(t *testing.T) {
	lonely := New(5, 5)
	seed(t, lonely, core.Point{X: 2, Y: 2})
	lonely.Step()
	expectAlive(t, lonely)

	pair := New(5, 5)
	seed(t, pair, core.Point{X: 1, Y: 2}, core.Point{X: 2, Y: 2})
	pair.Step()
	expectAlive(t, pair)
}

func TestLShapeBecomesBlock(t *testing.T) {
	e := New(5, 5)
	seed(t, e, core.Point{X: 1, Y: 1}, core.Point{X: 2, Y: 1}, core.Point{X: 1, Y: 2})

	e.Step()
	block := []core.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	expectAlive(t, e, block...)

	e.Step()
	expectAlive(t, e, block...)
}

func TestBirthNeedsExactlyThree(t *testing.T) {
	cases := []struct {
		name      string
		neighbors []core.Point
		wantBorn  bool
	}{
		{"two", []core.Point{{X: 1, Y: 1}, {X: 3, Y: 1}}, false},
		{"three", []core.Point{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 2, Y: 3}}, true},
		{"four", []core.Point{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 1, Y: 3}, {X: 3, Y: 3}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := New(5, 5)
			seed(t, e, tc.neighbors...)
			if got := e.Neighbors(2, 2); got != len(tc.neighbors) {
				t.Fatalf("Neighbors(2,2) = %d, want %d", got, len(tc.neighbors))
			}
			e.Step()
			if alive, _ := e.Get(2, 2); alive != tc.wantBorn {
				t.Fatalf("centre alive=%v, want %v", alive, tc.wantBorn)
			}
		})
	}
}

func TestSurvivalWithTwoOrThree(t *testing.T) {
	for _, n := range []int{2, 3} {
		e := New(5, 5)
		seed(t, e, core.Point{X: 2, Y: 2})
		around := []core.Point{{X: 1, Y: 1}, {X: 3, Y: 3}, {X: 3, Y: 1}}
		seed(t, e, around[:n]...)
		e.Step()
		if alive, _ := e.Get(2, 2); !alive {
			t.Fatalf("cell with %d neighbours died", n)
		}
	}

	crowded := New(5, 5)
	seed(t, crowded, core.Point{X: 2, Y: 2},
		core.Point{X: 1, Y: 1}, core.Point{X: 3, Y: 1}, core.Point{X: 1, Y: 3}, core.Point{X: 3, Y: 3})
	crowded.Step()
	if alive, _ := crowded.Get(2, 2); alive {
		t.Fatal("cell with 4 neighbours survived overpopulation")
	}
}

// An in-place row-major update kills (2,1) before (1,2) and (3,2) are
// decided, leaving them with only two neighbours.
func TestStepUsesPreviousGenerationOnly(t *testing.T) {
	e := New(5, 5)
	seed(t, e, core.Point{X: 2, Y: 1}, core.Point{X: 2, Y: 2}, core.Point{X: 2, Y: 3})

	before := e.Grid().Rows()
	for _, p := range []core.Point{{X: 1, Y: 2}, {X: 3, Y: 2}} {
		if got := e.Neighbors(p.X, p.Y); got != 3 {
			t.Fatalf("Neighbors(%d,%d) = %d before step, want 3", p.X, p.Y, got)
		}
	}
	e.Step()

	want := reference(before)
	if got := e.Grid().Rows(); !equalRows(got, want) {
		t.Fatalf("step diverged from synchronous reference\ngot  %v\nwant %v", got, want)
	}
	for _, p := range []core.Point{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}} {
		if alive, _ := e.Get(p.X, p.Y); !alive {
			t.Fatalf("(%d,%d) should be alive after step", p.X, p.Y)
		}
	}
}

func TestStepMatchesReferenceOnRandomGrids(t *testing.T) {
	for s := int64(1); s <= 5; s++ {
		e := NewRandom(23, 17, 0.35, core.NewRNG(s).Source())
		for i := 0; i < 10; i++ {
			want := reference(e.Grid().Rows())
			e.Step()
			if got := e.Grid().Rows(); !equalRows(got, want) {
				t.Fatalf("seed %d step %d diverged from reference", s, i)
			}
		}
	}
}

func TestEdgeNeighboursAreAbsent(t *testing.T) {
	e := New(5, 5)
	seed(t, e, core.Point{X: 1, Y: 0}, core.Point{X: 2, Y: 0}, core.Point{X: 3, Y: 0})

	if got := e.Neighbors(2, 0); got != 2 {
		t.Fatalf("Neighbors(2,0) = %d, want 2", got)
	}
	if got := e.Neighbors(0, 0); got != 1 {
		t.Fatalf("Neighbors(0,0) = %d, want 1", got)
	}

	e.Step()
	// With wraparound (2,4) would be born as well.
	expectAlive(t, e, core.Point{X: 2, Y: 0}, core.Point{X: 2, Y: 1})

	e.Step()
	expectAlive(t, e)
}

func TestCornerCellsCountOnlyInBoundsNeighbours(t *testing.T) {
	e := New(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			seed(t, e, core.Point{X: x, Y: y})
		}
	}
	if got := e.Neighbors(0, 0); got != 3 {
		t.Fatalf("corner neighbours = %d, want 3", got)
	}
	if got := e.Neighbors(1, 0); got != 5 {
		t.Fatalf("edge neighbours = %d, want 5", got)
	}
	if got := e.Neighbors(1, 1); got != 8 {
		t.Fatalf("centre neighbours = %d, want 8", got)
	}

	e.Step()
	expectAlive(t, e, core.Point{X: 0, Y: 0}, core.Point{X: 2, Y: 0}, core.Point{X: 0, Y: 2}, core.Point{X: 2, Y: 2})
}

func TestEmptyGridStepIsNoop(t *testing.T) {
	e := New(0, 0)
	e.Step()
	expectAlive(t, e)
	if got := e.Generation(); got != 1 {
		t.Fatalf("Generation() = %d, want 1", got)
	}
}

func TestSetOutOfBoundsPassThrough(t *testing.T) {
	e := New(5, 5)
	if err := e.Set(5, 0, true); !errors.Is(err, core.ErrOutOfBounds) {
		t.Fatalf("Set(5,0) err = %v, want ErrOutOfBounds", err)
	}
	if _, ok := e.Get(-1, 3); ok {
		t.Fatal("Get(-1,3) reported in bounds")
	}
	expectAlive(t, e)
}

func TestGliderTranslates(t *testing.T) {
	e := New(10, 10)
	Patterns()["glider"](e.Grid(), nil, 0)
	start := e.Alive()

	for i := 0; i < 4; i++ {
		e.Step()
	}
	moved := make([]core.Point, len(start))
	for i, p := range start {
		moved[i] = core.Point{X: p.X + 1, Y: p.Y + 1}
	}
	expectAlive(t, e, moved...)
}

func reference(rows [][]bool) [][]bool {
	h := len(rows)
	next := make([][]bool, h)
	for y := range rows {
		w := len(rows[y])
		next[y] = make([]bool, w)
		for x := 0; x < w; x++ {
			n := 0
			for _, d := range [][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}} {
				nx, ny := x+d[0], y+d[1]
				if ny >= 0 && ny < h && nx >= 0 && nx < w && rows[ny][nx] {
					n++
				}
			}
			next[y][x] = n == 3 || (rows[y][x] && n == 2)
		}
	}
	return next
}

func equalRows(a, b [][]bool) bool {
	return slices.EqualFunc(a, b, func(x, y []bool) bool { return slices.Equal(x, y) })
}
