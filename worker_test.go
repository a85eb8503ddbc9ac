package gridpath

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arenaOf(fs ...int) []SearchNode {
	nodes := make([]SearchNode, len(fs))
	for i, f := range fs {
		nodes[i] = SearchNode{Position: Position{X: i, Y: 0}, G: f, Open: true}
	}
	return nodes
}

func TestScanPoolMinOpen(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pools := map[string]*scanPool{
		"inline":   newScanPool(ctx, Options{NumberOfWorkers: 1}),
		"parallel": newScanPool(ctx, Options{NumberOfWorkers: 3, ParallelThreshold: 1}),
	}
	for name, pool := range pools {
		t.Run(name, func(t *testing.T) {
			nodes := arenaOf(9, 4, 7, 4, 2, 8, 2, 5)

			index, err := pool.minOpen(nodes)
			require.NoError(t, err)
			assert.Equal(t, 4, index, "lowest F, earliest on ties")

			nodes[4].Open = false
			index, err = pool.minOpen(nodes)
			require.NoError(t, err)
			assert.Equal(t, 6, index)

			for i := range nodes {
				nodes[i].Open = false
			}
			index, err = pool.minOpen(nodes)
			require.NoError(t, err)
			assert.Equal(t, -1, index)
		})
	}
}

func TestScanPoolFind(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool := newScanPool(ctx, Options{NumberOfWorkers: 4, ParallelThreshold: 1})
	nodes := arenaOf(1, 2, 3, 4, 5, 6, 7, 8, 9)

	index, err := pool.find(nodes, Position{X: 7, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, 7, index)

	index, err = pool.find(nodes, Position{X: 7, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, -1, index)

	index, err = pool.find(nil, Position{})
	require.NoError(t, err)
	assert.Equal(t, -1, index)
}

func TestScanPoolBelowThresholdStaysInline(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool := newScanPool(ctx, Options{NumberOfWorkers: 4, ParallelThreshold: 100})
	require.NotNil(t, pool.taskChannel)

	index, err := pool.minOpen(arenaOf(3, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, 1, index)
}

func TestBetter(t *testing.T) {
	none := ScanProposal{Index: -1}
	assert.True(t, better(ScanMinOpen, ScanProposal{Index: 3, F: 9}, none))
	assert.False(t, better(ScanMinOpen, none, ScanProposal{Index: 3, F: 9}))
	assert.True(t, better(ScanMinOpen, ScanProposal{Index: 5, F: 1}, ScanProposal{Index: 2, F: 4}))
	assert.True(t, better(ScanMinOpen, ScanProposal{Index: 2, F: 4}, ScanProposal{Index: 5, F: 4}))
	assert.False(t, better(ScanMinOpen, ScanProposal{Index: 5, F: 4}, ScanProposal{Index: 2, F: 4}))
	assert.True(t, better(ScanPosition, ScanProposal{Index: 1, F: 9}, ScanProposal{Index: 4, F: 0}))
}
