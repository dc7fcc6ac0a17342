package syncdigraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for node mutation.
var (
	// ErrDuplicateEdge is reported by TryConnect when any outbound edge to
	// the given node already exists. Use errors.As with *DuplicateEdgeError
	// to recover the rejected edge value.
	ErrDuplicateEdge = errors.New("syncdigraph: edge already exists")

	// ErrEdgeNotFound is reported by Disconnect when no outbound edge to
	// the given key exists.
	ErrEdgeNotFound = errors.New("syncdigraph: edge not found")
)

// DuplicateEdgeError carries back the edge value that was not installed.
type DuplicateEdgeError[E any] struct {
	// Value is the rejected edge value.
	Value E
}

// Error implements the error interface.
func (e *DuplicateEdgeError[E]) Error() string {
	return fmt.Sprintf("syncdigraph: edge already exists (rejected value %v)", e.Value)
}

// Unwrap makes errors.Is(err, ErrDuplicateEdge) hold.
func (e *DuplicateEdgeError[E]) Unwrap() error { return ErrDuplicateEdge }

// Edge is the public view of a connection: a (Source, Target, Value)
// triple produced at enumeration time.
type Edge[K comparable, N, E any] struct {
	Source *Node[K, N, E]
	Target *Node[K, N, E]
	Value  E
}

// Reverse returns the edge with its direction flipped.
func (e Edge[K, N, E]) Reverse() Edge[K, N, E] {
	return Edge[K, N, E]{Source: e.Target, Target: e.Source, Value: e.Value}
}

// String renders the edge as "source -> target".
func (e Edge[K, N, E]) String() string {
	return fmt.Sprintf("%v -> %v", e.Source.Key(), e.Target.Key())
}

// Verdict is the decision a parallel BFS closure returns for a claimed
// edge.
type Verdict int

const (
	// Include keeps the edge in the round's contribution and expands its
	// target in the next round.
	Include Verdict = iota

	// Skip releases the edge and its target without processing them.
	Skip

	// Finish keeps the edge and signals cooperative termination; the
	// engine returns the edge tree ending in this edge.
	Finish
)

// FilterFunc inspects an edge during traversal and decides whether the
// traversal may follow it.
type FilterFunc[K comparable, N, E any] func(Edge[K, N, E]) bool

// ForEachFunc observes every edge the traversal considers, before the
// filter decision.
type ForEachFunc[K comparable, N, E any] func(Edge[K, N, E])

// VisitFunc judges a claimed edge during parallel BFS.
type VisitFunc[K comparable, N, E any] func(Edge[K, N, E]) Verdict

// method bundles the optional ForEach hook and Filter predicate shared by
// every sequential traversal builder.
type method[K comparable, N, E any] struct {
	forEach ForEachFunc[K, N, E]
	filter  FilterFunc[K, N, E]
}

func (m *method[K, N, E]) exec(e Edge[K, N, E]) bool {
	if m.forEach != nil {
		m.forEach(e)
	}
	if m.filter != nil {
		return m.filter(e)
	}

	return true
}

// adjacentEdges enumerates n's edges for the chosen direction under the
// adjacency read lock.
func adjacentEdges[K comparable, N, E any](n *Node[K, N, E], transposed bool) []Edge[K, N, E] {
	if !transposed {
		return n.IterOut()
	}
	in := n.IterIn()
	out := make([]Edge[K, N, E], len(in))
	for i, e := range in {
		out[i] = e.Reverse()
	}

	return out
}
