package syncdigraph

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ParBfs is the parallel breadth-first engine bound to a source node.
// It expands the frontier level by level: within a round, workers race
// to claim (edge, target) pairs via the atomic claim bits, and the user
// closure judges each claimed edge. A Finish verdict sets the shared
// termination flag; workers read the flag only before expanding a node,
// so a worker already expanding a node when another worker finishes
// still claims and judges the rest of that node's edges. The
// finish-triggering edge is always last in the returned tree.
//
// On every exit path all claimed edges and nodes are reopened, leaving
// the graph in its steady state.
type ParBfs[K comparable, N, E any] struct {
	root *Node[K, N, E]
}

func newParBfs[K comparable, N, E any](root *Node[K, N, E]) *ParBfs[K, N, E] {
	return &ParBfs[K, N, E]{root: root}
}

// Search runs the engine and, if a Finish verdict fired, reconstructs
// the path from the root to the finishing edge's target. This is the
// shortest path in the BFS-discovery sense to the first Finish hit.
func (p *ParBfs[K, N, E]) Search(visit VisitFunc[K, N, E]) (Path[K, N, E], bool) {
	tree, ok := p.SearchEdges(visit)
	if !ok {
		return Path[K, N, E]{}, false
	}

	return pathFromEdgeTree(tree), true
}

// SearchEdges runs the engine and returns the accumulated edge tree
// when a Finish verdict fired, with level-n edges preceding level-n+1
// edges. Exhaustion without a Finish reports false.
func (p *ParBfs[K, N, E]) SearchEdges(visit VisitFunc[K, N, E]) ([]Edge[K, N, E], bool) {
	frontier, found := p.run(visit)
	if !found {
		return nil, false
	}
	tree := make([]Edge[K, N, E], len(frontier))
	for i, rec := range frontier {
		tree[i] = Edge[K, N, E]{Source: rec.source, Target: rec.target, Value: rec.value}
	}

	return tree, true
}

// run drives the level loop and returns the accumulated records plus
// whether termination came from a Finish verdict.
func (p *ParBfs[K, N, E]) run(visit VisitFunc[K, N, E]) ([]*record[K, N, E], bool) {
	var term atomic.Bool

	// Claim the root, then seed the frontier from its outbound edges.
	p.root.close()
	frontier, found := expand(p.root, visit)
	if found {
		term.Store(true)
	}

	lo := 0
	for !term.Load() {
		hi := len(frontier)
		if lo == hi {
			break
		}
		round := frontier[lo:hi]
		lo = hi

		// Expand every frontier edge's target in parallel. Each worker
		// collects its contribution into its own slot; a worker that
		// observes the termination flag contributes nothing.
		segments := make([][]*record[K, N, E], len(round))
		var finish atomic.Int64
		finish.Store(-1)
		var grp errgroup.Group
		grp.SetLimit(runtime.NumCPU())
		for i, rec := range round {
			i, rec := i, rec
			grp.Go(func() error {
				if term.Load() {
					return nil
				}
				seg, fin := expand(rec.target, visit)
				segments[i] = seg
				if fin {
					term.Store(true)
					finish.CompareAndSwap(-1, int64(i))
				}
				return nil
			})
		}
		_ = grp.Wait()

		// Concatenate contributions; the finishing segment goes last so
		// the tree ends with the Finish-triggering edge.
		fin := int(finish.Load())
		for i, seg := range segments {
			if i != fin {
				frontier = append(frontier, seg...)
			}
		}
		if fin >= 0 {
			frontier = append(frontier, segments[fin]...)
		}
	}

	openLocks(p.root, frontier)

	return frontier, term.Load()
}

// expand claims n's outbound (edge, target) pairs one by one and applies
// the closure's verdict. Losing either compare-exchange skips the edge;
// Skip releases both claims.
func expand[K comparable, N, E any](n *Node[K, N, E], visit VisitFunc[K, N, E]) ([]*record[K, N, E], bool) {
	var segment []*record[K, N, E]
	for _, rec := range n.adj.snapshotOutbound() {
		if !rec.tryClose() {
			continue
		}
		if !rec.target.tryClose() {
			rec.open()
			continue
		}
		e := Edge[K, N, E]{Source: rec.source, Target: rec.target, Value: rec.value}
		switch visit(e) {
		case Include:
			segment = append(segment, rec)
		case Finish:
			segment = append(segment, rec)
			return segment, true
		case Skip:
			rec.target.open()
			rec.open()
		}
	}

	return segment, false
}

// openLocks releases every claim taken during the run: the root and,
// for each accumulated edge, the edge itself and both its endpoints.
func openLocks[K comparable, N, E any](root *Node[K, N, E], recs []*record[K, N, E]) {
	root.open()
	for _, rec := range recs {
		rec.open()
		rec.source.open()
		rec.target.open()
	}
}
