package gridpath

import (
	"context"
	"errors"
	"runtime"

	"github.com/pdrpinto/gridpath/internal"
)

// ErrStepperClosed is returned by Step once Close has been called.
var ErrStepperClosed = errors.New("stepper closed")

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current   Position
	Open      []Position
	Closed    []Position
	Done      bool
	Found     bool
	Path      []Position
	StepIndex int
}

// Stepper drives the search one expansion at a time. Solve is a Stepper run to completion.
//
// The grid must not be mutated while a Stepper is in use.
type Stepper struct {
	ctx    context.Context
	cancel context.CancelFunc
	grid   *Grid
	goal   Position
	pool   *scanPool

	nodes   []SearchNode
	current int
	path    []Position

	stepCount int
	done      bool
	found     bool
	closed    bool
}

// NewStepper creates a stepper over grid with the same worker-based scans as Solve.
// Unlike Solve it does not clear earlier Path/Visited marks.
func NewStepper(
	parent context.Context,
	grid *Grid,
	start Position,
	goal Position,
	options ...Option,
) *Stepper {
	opts := Options{
		NumberOfWorkers:   runtime.NumCPU(),
		ParallelThreshold: DefaultParallelThreshold,
	}
	for _, o := range options {
		o(&opts)
	}

	ctx, cancel := context.WithCancel(parent)
	s := &Stepper{
		ctx:     ctx,
		cancel:  cancel,
		grid:    grid,
		goal:    goal,
		pool:    newScanPool(ctx, opts),
		current: NoParent,
		nodes:   make([]SearchNode, 0, 64),
	}
	s.nodes = append(s.nodes, SearchNode{
		Position: start,
		Parent:   NoParent,
		G:        0,
		H:        SquaredDistance(start, goal),
		Open:     true,
	})
	return s
}

// Close stops the workers
func (s *Stepper) Close() {
	s.closed = true
	if s.cancel != nil {
		s.cancel()
	}
}

// Step advances the search by one node expansion and returns a snapshot
func (s *Stepper) Step() (StepSnapshot, error) {
	if s.closed {
		return StepSnapshot{}, ErrStepperClosed
	}
	if !s.done {
		if err := s.expand(); err != nil {
			s.done = true
			return StepSnapshot{Done: true, StepIndex: s.stepCount}, err
		}
	}
	return s.snapshot(), nil
}

// Done reports whether the search has finished, successfully or not.
func (s *Stepper) Done() bool { return s.done }

// Result returns the outcome so far. Path and Trace are only set once the goal was reached.
func (s *Stepper) Result() Result {
	result := Result{Found: s.found, Expanded: s.stepCount}
	if s.found {
		result.Path = append([]Position(nil), s.path...)
		result.Trace = append([]SearchNode(nil), s.nodes...)
	}
	return result
}

// expand pops the cheapest open node and generates its neighbours.
func (s *Stepper) expand() error {
	currentIndex, err := s.pool.minOpen(s.nodes)
	if err != nil {
		return err
	}
	if currentIndex < 0 {
		s.done = true
		return nil
	}
	s.stepCount++
	s.current = currentIndex
	s.nodes[currentIndex].Open = false
	currentNode := s.nodes[currentIndex]

	// only the start node can be popped here: the goal is never pushed as an open node otherwise
	if currentNode.Position == s.goal {
		s.finish(currentIndex)
		return nil
	}

	offset := Position{X: -1, Y: 0}
	for range 4 {
		offset = offset.rotate()
		position := currentNode.Position.Add(offset)
		if !s.grid.Passable(position) {
			continue
		}
		tentativeG := currentNode.G + 1

		if position == s.goal {
			s.nodes = append(s.nodes, SearchNode{
				Position: position,
				Parent:   currentIndex,
				G:        tentativeG,
				H:        0,
				Open:     true,
			})
			s.finish(len(s.nodes) - 1)
			return nil
		}

		existingIndex, err := s.pool.find(s.nodes, position)
		if err != nil {
			return err
		}
		if existingIndex >= 0 {
			existing := &s.nodes[existingIndex]
			if existing.Open && existing.G > tentativeG {
				existing.G = tentativeG
				existing.Parent = currentIndex
			}
			continue
		}
		s.nodes = append(s.nodes, SearchNode{
			Position: position,
			Parent:   currentIndex,
			G:        tentativeG,
			H:        SquaredDistance(position, s.goal),
			Open:     true,
		})
	}
	return nil
}

func (s *Stepper) finish(goalIndex int) {
	s.done = true
	s.found = true
	s.path = internal.ReconstructPath(
		s.nodes,
		goalIndex,
		func(node SearchNode) int { return node.Parent },
		func(node SearchNode) Position { return node.Position },
	)
}

func (s *Stepper) snapshot() StepSnapshot {
	snapshot := StepSnapshot{
		Done:      s.done,
		Found:     s.found,
		StepIndex: s.stepCount,
	}
	if s.current >= 0 {
		snapshot.Current = s.nodes[s.current].Position
	}
	for _, node := range s.nodes {
		if node.Open {
			snapshot.Open = append(snapshot.Open, node.Position)
		} else {
			snapshot.Closed = append(snapshot.Closed, node.Position)
		}
	}
	if s.found {
		snapshot.Path = append([]Position(nil), s.path...)
	}
	return snapshot
}
