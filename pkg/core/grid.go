package core

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Grid stores a W×H matrix of boolean cells in row-major order.
type Grid struct {
	w, h  int
	cells []bool
}

// NewGrid allocates a grid with every cell dead. Negative dimensions are
// treated as zero; an empty grid is valid.
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{w: w, h: h, cells: make([]bool, w*h)}
}

// NewRandomGrid allocates a grid and sets each cell alive with probability p,
// drawing once per cell in row-major order from rng.
func NewRandomGrid(w, h int, p float64, rng *rand.Rand) *Grid {
	g := NewGrid(w, h)
	FillChance(rng, g.cells, clampUnit(p))
	return g
}

func clampUnit(p float64) float64 {
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Get reports the state of (x, y). ok is false when the coordinate lies
// outside the grid, which is not the same as a dead cell.
func (g *Grid) Get(x, y int) (alive, ok bool) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return false, false
	}
	return g.cells[y*g.w+x], true
}

// State is Get folded into a single CellState value.
func (g *Grid) State(x, y int) CellState {
	alive, ok := g.Get(x, y)
	switch {
	case !ok:
		return OutOfBounds
	case alive:
		return Alive
	}
	return Dead
}

// Set updates exactly one cell. Coordinates outside the grid leave the grid
// untouched and return ErrOutOfBounds.
func (g *Grid) Set(x, y int, alive bool) error {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return fmt.Errorf("set (%d,%d) on %dx%d grid: %w", x, y, g.w, g.h, ErrOutOfBounds)
	}
	g.cells[y*g.w+x] = alive
	return nil
}

// ReplaceState installs a full matrix of rows. The shape is validated before
// anything changes, so the grid ends up either entirely old or entirely new.
func (g *Grid) ReplaceState(rows [][]bool) error {
	if len(rows) != g.h {
		return fmt.Errorf("replace: got %d rows, want %d: %w", len(rows), g.h, ErrShape)
	}
	for y, row := range rows {
		if len(row) != g.w {
			return fmt.Errorf("replace: row %d has %d cells, want %d: %w", y, len(row), g.w, ErrShape)
		}
	}
	next := make([]bool, g.w*g.h)
	for y, row := range rows {
		copy(next[y*g.w:(y+1)*g.w], row)
	}
	g.cells = next
	return nil
}

// Swap installs next as the backing buffer and returns the previous one so the
// caller can reuse it for the following generation.
func (g *Grid) Swap(next []bool) []bool {
	if len(next) != len(g.cells) {
		panic(fmt.Sprintf("core: swap buffer has %d cells, want %d", len(next), len(g.cells)))
	}
	prev := g.cells
	g.cells = next
	return prev
}

// Rows returns a copy of the matrix as one slice per row.
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.h)
	for y := range rows {
		rows[y] = append([]bool(nil), g.cells[y*g.w:(y+1)*g.w]...)
	}
	return rows
}

// Alive lists the alive cells in row-major scan order.
func (g *Grid) Alive() []Point {
	points := make([]Point, 0, g.AliveCount())
	for i, c := range g.cells {
		if c {
			points = append(points, Point{X: i % g.w, Y: i / g.w})
		}
	}
	return points
}

// AliveCount returns the number of alive cells.
func (g *Grid) AliveCount() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
}
