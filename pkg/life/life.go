package life

import (
	"math/rand/v2"

	"lifecast/pkg/core"
)

// Engine implements Conway's Game of Life on a bounded grid. Cells outside
// the grid are absent: there is no wraparound.
type Engine struct {
	grid *core.Grid
	nxt  []bool
	gen  uint64
}

// New returns an engine with every cell dead.
func New(w, h int) *Engine {
	return NewFromGrid(core.NewGrid(w, h))
}

// NewRandom returns an engine whose cells are alive with probability p.
func NewRandom(w, h int, p float64, rng *rand.Rand) *Engine {
	return NewFromGrid(core.NewRandomGrid(w, h, p, rng))
}

// NewFromGrid wraps an existing grid. The engine takes ownership of g.
func NewFromGrid(g *core.Grid) *Engine {
	s := g.Size()
	return &Engine{grid: g, nxt: make([]bool, s.W*s.H)}
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.grid.Size() }

// Generation returns how many steps have completed.
func (e *Engine) Generation() uint64 { return e.gen }

// Grid exposes the current generation's grid.
func (e *Engine) Grid() *core.Grid { return e.grid }

// Get reports the state of (x, y); ok is false outside the grid.
func (e *Engine) Get(x, y int) (alive, ok bool) { return e.grid.Get(x, y) }

// Set updates one cell, returning core.ErrOutOfBounds outside the grid.
func (e *Engine) Set(x, y int, alive bool) error { return e.grid.Set(x, y, alive) }

// Alive lists the alive cells in row-major order.
func (e *Engine) Alive() []core.Point { return e.grid.Alive() }

// Rule decides the next state of a cell from its current state and the number
// of alive neighbours.
func Rule(alive bool, neighbors int) bool {
	switch {
	case alive && (neighbors == 2 || neighbors == 3):
		return true
	case !alive && neighbors == 3:
		return true
	}
	return false
}

// Neighbors counts the alive cells among the eight surrounding (x, y).
func (e *Engine) Neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if alive, _ := e.grid.Get(x+dx, y+dy); alive {
				n++
			}
		}
	}
	return n
}

// Step advances the simulation by one generation. Every decision reads the
// current grid only; results go to the spare buffer, which is swapped in once
// all cells are decided.
func (e *Engine) Step() {
	s := e.grid.Size()
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			alive, _ := e.grid.Get(x, y)
			e.nxt[y*s.W+x] = Rule(alive, e.Neighbors(x, y))
		}
	}
	e.nxt = e.grid.Swap(e.nxt)
	e.gen++
}

// String renders the current generation in the text dump format.
func (e *Engine) String() string {
	return FormatText(e.Size(), e.Alive())
}
