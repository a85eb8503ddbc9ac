package gridpath

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfBounds is returned when a coordinate lies outside the grid.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Position is a cell coordinate. It also doubles as a movement offset.
type Position struct {
	X int
	Y int
}

// Add returns the component-wise sum of two positions.
func (position Position) Add(other Position) Position {
	return Position{X: position.X + other.X, Y: position.Y + other.Y}
}

// rotate turns an offset by 90 degrees.
func (position Position) rotate() Position {
	return Position{X: position.Y, Y: -position.X}
}

func (position Position) String() string {
	return fmt.Sprintf("(%d,%d)", position.X, position.Y)
}

// CellState is the content of a single grid cell.
type CellState uint8

const (
	Empty CellState = iota
	Start
	Goal
	Wall
	Path
	Visited
)

func (state CellState) String() string {
	switch state {
	case Empty:
		return "empty"
	case Start:
		return "start"
	case Goal:
		return "goal"
	case Wall:
		return "wall"
	case Path:
		return "path"
	case Visited:
		return "visited"
	}
	return fmt.Sprintf("CellState(%d)", uint8(state))
}

// Grid is a fixed-size occupancy grid stored row-major.
//
// A Grid is not safe for concurrent mutation. Searches only read it, apart from
// ClearPath at the start of a solve and the marking done by CreatePath.
type Grid struct {
	width  int
	height int
	cells  []CellState
}

// NewGrid returns a width x height grid with every cell Empty.
// Non-positive dimensions, or ones whose cell count overflows int, produce a
// grid without any valid coordinate.
func NewGrid(width, height int) *Grid {
	if width < 0 || height < 0 || (height != 0 && width > math.MaxInt/height) {
		width, height = 0, 0
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]CellState, width*height),
	}
}

func (grid *Grid) Width() int  { return grid.width }
func (grid *Grid) Height() int { return grid.height }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (grid *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < grid.width && y < grid.height
}

// Cell returns the state at (x, y). The boolean is false outside the grid.
func (grid *Grid) Cell(x, y int) (CellState, bool) {
	if !grid.InBounds(x, y) {
		return Empty, false
	}
	return grid.cells[x+y*grid.width], true
}

// SetCell overwrites the state at (x, y).
func (grid *Grid) SetCell(x, y int, state CellState) error {
	if !grid.InBounds(x, y) {
		return fmt.Errorf("set cell (%d,%d) on %dx%d grid: %w", x, y, grid.width, grid.height, ErrOutOfBounds)
	}
	grid.cells[x+y*grid.width] = state
	return nil
}

// Passable reports whether a search may step onto position.
func (grid *Grid) Passable(position Position) bool {
	state, ok := grid.Cell(position.X, position.Y)
	return ok && state != Wall
}

// Count returns how many cells currently hold state.
func (grid *Grid) Count(state CellState) int {
	count := 0
	for _, cell := range grid.cells {
		if cell == state {
			count++
		}
	}
	return count
}

// Clear resets every cell to Empty, including Start, Goal and Wall.
func (grid *Grid) Clear() {
	for i := range grid.cells {
		grid.cells[i] = Empty
	}
}

// ClearPath resets Path and Visited cells, leaving everything else untouched.
func (grid *Grid) ClearPath() {
	for i, cell := range grid.cells {
		if cell == Path || cell == Visited {
			grid.cells[i] = Empty
		}
	}
}
