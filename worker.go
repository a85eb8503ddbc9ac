package gridpath

import "context"

// ScanKind selects which reduction a worker runs over its slice of the arena.
type ScanKind int

const (
	// ScanMinOpen finds the open node with the lowest F.
	ScanMinOpen ScanKind = iota
	// ScanPosition finds the node stored at Target.
	ScanPosition
)

// ScanTask represents a request from the orchestrator to the workers.
// Workers only read Nodes[Low:High]; the arena is not mutated while a scan is in flight.
type ScanTask struct {
	Kind   ScanKind
	Nodes  []SearchNode
	Low    int
	High   int
	Target Position
}

// ScanProposal is the worker's best candidate for its slice, or Index -1.
type ScanProposal struct {
	Index int
	F     int
}

// scanPool owns the worker goroutines of a single search.
type scanPool struct {
	ctx       context.Context
	workers   int
	threshold int

	taskChannel     chan ScanTask
	proposalChannel chan ScanProposal
}

func newScanPool(ctx context.Context, options Options) *scanPool {
	pool := &scanPool{
		ctx:       ctx,
		workers:   options.NumberOfWorkers,
		threshold: options.ParallelThreshold,
	}
	if pool.workers <= 1 {
		pool.workers = 1
		return pool
	}

	pool.taskChannel = make(chan ScanTask)
	pool.proposalChannel = make(chan ScanProposal, pool.workers)
	for i := 0; i < pool.workers; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case task := <-pool.taskChannel:
					proposal := runScan(task)
					select {
					case <-ctx.Done():
						return
					case pool.proposalChannel <- proposal:
					}
				}
			}
		}()
	}
	return pool
}

// minOpen returns the index of the open node with the lowest F, preferring the
// lowest index on ties, or -1 when nothing is open.
func (pool *scanPool) minOpen(nodes []SearchNode) (int, error) {
	proposal, err := pool.scan(ScanTask{Kind: ScanMinOpen, Nodes: nodes})
	return proposal.Index, err
}

// find returns the index of the node at target, or -1.
func (pool *scanPool) find(nodes []SearchNode, target Position) (int, error) {
	proposal, err := pool.scan(ScanTask{Kind: ScanPosition, Nodes: nodes, Target: target})
	return proposal.Index, err
}

func (pool *scanPool) scan(task ScanTask) (ScanProposal, error) {
	if err := pool.ctx.Err(); err != nil {
		return ScanProposal{Index: -1}, err
	}

	total := len(task.Nodes)
	if pool.workers == 1 || total < pool.threshold || total < pool.workers {
		task.Low, task.High = 0, total
		return runScan(task), nil
	}

	// --- Fan out one chunk per worker ---
	chunkSize := (total + pool.workers - 1) / pool.workers
	chunks := 0
	for low := 0; low < total; low += chunkSize {
		chunk := task
		chunk.Low = low
		chunk.High = min(low+chunkSize, total)
		select {
		case <-pool.ctx.Done():
			return ScanProposal{Index: -1}, pool.ctx.Err()
		case pool.taskChannel <- chunk:
		}
		chunks++
	}

	// --- Reduce ---
	best := ScanProposal{Index: -1}
	for i := 0; i < chunks; i++ {
		select {
		case <-pool.ctx.Done():
			return ScanProposal{Index: -1}, pool.ctx.Err()
		case proposal := <-pool.proposalChannel:
			if better(task.Kind, proposal, best) {
				best = proposal
			}
		}
	}
	return best, nil
}

// better orders candidates so the reduction is independent of which worker answers first.
func better(kind ScanKind, candidate, current ScanProposal) bool {
	if candidate.Index < 0 {
		return false
	}
	if current.Index < 0 {
		return true
	}
	if kind == ScanMinOpen && candidate.F != current.F {
		return candidate.F < current.F
	}
	return candidate.Index < current.Index
}

func runScan(task ScanTask) ScanProposal {
	best := ScanProposal{Index: -1}
	for i := task.Low; i < task.High; i++ {
		node := task.Nodes[i]
		switch task.Kind {
		case ScanMinOpen:
			if node.Open && (best.Index < 0 || node.F() < best.F) {
				best = ScanProposal{Index: i, F: node.F()}
			}
		case ScanPosition:
			if node.Position == task.Target {
				return ScanProposal{Index: i, F: node.F()}
			}
		}
	}
	return best
}
