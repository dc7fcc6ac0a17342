package digraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for node mutation.
var (
	// ErrDuplicateEdge is reported by TryConnect when any outbound edge to
	// the given node already exists. Use errors.As with *DuplicateEdgeError
	// to recover the rejected edge value.
	ErrDuplicateEdge = errors.New("digraph: edge already exists")

	// ErrEdgeNotFound is reported by Disconnect when no outbound edge to
	// the given key exists.
	ErrEdgeNotFound = errors.New("digraph: edge not found")
)

// DuplicateEdgeError carries back the edge value that was not installed.
type DuplicateEdgeError[E any] struct {
	// Value is the rejected edge value.
	Value E
}

// Error implements the error interface.
func (e *DuplicateEdgeError[E]) Error() string {
	return fmt.Sprintf("digraph: edge already exists (rejected value %v)", e.Value)
}

// Unwrap makes errors.Is(err, ErrDuplicateEdge) hold.
func (e *DuplicateEdgeError[E]) Unwrap() error { return ErrDuplicateEdge }

// Edge is the public view of a connection: a (Source, Target, Value)
// triple produced at enumeration time. Independent copies; mutating a
// returned Edge never affects adjacency.
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

// FilterFunc inspects an edge during traversal and decides whether the
// traversal may follow it.
type FilterFunc[K comparable, N, E any] func(Edge[K, N, E]) bool

// ForEachFunc observes every edge the traversal considers, before the
// filter decision.
type ForEachFunc[K comparable, N, E any] func(Edge[K, N, E])

// method bundles the optional ForEach hook and Filter predicate shared by
// every traversal builder.
type method[K comparable, N, E any] struct {
	forEach ForEachFunc[K, N, E]
	filter  FilterFunc[K, N, E]
}

// exec runs the hook and returns the filter verdict (true when no filter
// is installed).
func (m *method[K, N, E]) exec(e Edge[K, N, E]) bool {
	if m.forEach != nil {
		m.forEach(e)
	}
	if m.filter != nil {
		return m.filter(e)
	}

	return true
}

// adjacentEdges enumerates n's edges for the chosen direction: outbound
// edges as-is, or inbound edges reversed so the traversal always walks
// source→target triples.
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
