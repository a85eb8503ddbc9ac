// Package gridpath finds 4-connected paths on an occupancy grid with A*.
//
// It exposes two main entry points:
//
//   - Solve / Grid.CreatePath: run the search to completion and get a Result,
//     optionally writing Visited and Path marks back onto the grid.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// Search nodes live in an index-addressed arena; parents are arena indices. The
// two scans of each iteration (cheapest open node, node at a position) can be
// split across a worker pool while a single orchestrator owns every mutation.
package gridpath
