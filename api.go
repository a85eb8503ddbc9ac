package gridpath

import (
	"context"
)

// NoParent marks the root of the search arena.
const NoParent = -1

// DefaultParallelThreshold is the arena size below which scans run on the calling goroutine.
const DefaultParallelThreshold = 512

// SearchNode is one entry of the search arena. Parent is an index into the same
// arena, NoParent for the start node.
type SearchNode struct {
	Position Position
	Parent   int
	G        int
	H        int
	Open     bool
}

// F is the priority of the node. Ties are left to discovery order.
func (node SearchNode) F() int { return node.G + node.H }

// SquaredDistance is the search heuristic: dx² + dy².
//
// It overestimates on 4-connected unit-cost moves, so paths are not guaranteed
// optimal on every grid. Results depend on it being exactly this function.
func SquaredDistance(from Position, to Position) int {
	dx := from.X - to.X
	dy := from.Y - to.Y
	return dx*dx + dy*dy
}

// Result contains the outcome of a search
type Result struct {
	// Path runs from the goal back to the start, both inclusive. Nil when no path was found.
	Path []Position
	// Trace is every node generated by the search, including the goal node.
	// Like Path it is only set on success.
	Trace []SearchNode
	// Expanded counts the nodes popped from the open set.
	Expanded int
	Found    bool
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers   int
	ParallelThreshold int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many worker goroutines share the arena scans.
// One or fewer keeps every scan on the calling goroutine.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithParallelThreshold sets the arena size from which scans are split across workers.
func WithParallelThreshold(nodes int) Option {
	return func(options *Options) { options.ParallelThreshold = nodes }
}

// Solve clears earlier Path/Visited marks on grid and runs A* from start to goal.
//
// A nil start or goal is not an error: the grid is left untouched and the Result
// is empty. An unreachable goal is not an error either. The returned error is
// only ever the context's.
func Solve(
	contextObject context.Context,
	grid *Grid,
	start *Position,
	goal *Position,
	options ...Option,
) (Result, error) {
	if grid == nil || start == nil || goal == nil {
		return Result{}, nil
	}
	grid.ClearPath()

	stepper := NewStepper(contextObject, grid, *start, *goal, options...)
	defer stepper.Close()

	for !stepper.Done() {
		if err := stepper.expand(); err != nil {
			return Result{}, err
		}
	}
	return stepper.Result(), nil
}

// CreatePath solves and writes the outcome onto the grid: traced Empty cells
// become Visited, then path cells that are Empty or Visited become Path.
// Start, Goal and Wall cells are never overwritten.
func (grid *Grid) CreatePath(
	contextObject context.Context,
	start *Position,
	goal *Position,
	options ...Option,
) (Result, error) {
	result, err := Solve(contextObject, grid, start, goal, options...)
	if err != nil {
		return result, err
	}

	for _, node := range result.Trace {
		if state, ok := grid.Cell(node.Position.X, node.Position.Y); ok && state == Empty {
			grid.cells[node.Position.X+node.Position.Y*grid.width] = Visited
		}
	}
	for _, position := range result.Path {
		if state, ok := grid.Cell(position.X, position.Y); ok && (state == Empty || state == Visited) {
			grid.cells[position.X+position.Y*grid.width] = Path
		}
	}
	return result, nil
}
