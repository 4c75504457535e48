package core

import "errors"

var (
	// ErrOutOfBounds reports access to a cell outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrShape reports a replacement matrix whose dimensions differ from the grid.
	ErrShape = errors.New("matrix shape mismatch")
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Contains reports whether (x, y) lies inside the size.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H
}

// Point is a cell coordinate. X indexes the column, Y the row.
type Point struct {
	X int
	Y int
}

// CellState is the tri-state result of a signed cell lookup.
type CellState uint8

const (
	OutOfBounds CellState = iota
	Dead
	Alive
)

func (s CellState) String() string {
	switch s {
	case Dead:
		return "dead"
	case Alive:
		return "alive"
	default:
		return "out-of-bounds"
	}
}

// Sim defines the contract the publisher needs from a simulation.
type Sim interface {
	Name() string
	Size() Size
	Step()
	Generation() uint64
	Alive() []Point
}
