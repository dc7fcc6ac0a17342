package syncdigraph

import (
	"fmt"
	"sync/atomic"
)

// Node is a shared handle to a (key, value, adjacency) cell, safe for
// concurrent use. Node identity is key identity.
//
// The value type N is not guarded by the node: use an atomic, a
// pointer-with-lock, or another synchronized cell if concurrent
// closures mutate it.
type Node[K comparable, N, E any] struct {
	key   K
	value N
	adj   adjacency[K, N, E]
	claim atomic.Bool
}

// New creates an isolated node with the given key and value.
func New[K comparable, N, E any](key K, value N) *Node[K, N, E] {
	return &Node[K, N, E]{key: key, value: value}
}

// Key returns the node's key.
func (n *Node[K, N, E]) Key() K { return n.key }

// Value returns the node's value.
func (n *Node[K, N, E]) Value() N { return n.value }

// String renders the node as its key.
func (n *Node[K, N, E]) String() string { return fmt.Sprintf("%v", n.key) }

// tryClose claims the node with an OPEN→CLOSED compare-exchange. Used
// only by the parallel BFS engine.
func (n *Node[K, N, E]) tryClose() bool { return n.claim.CompareAndSwap(false, true) }

// open releases the node's claim.
func (n *Node[K, N, E]) open() { n.claim.Store(false) }

// close marks the node claimed unconditionally. Used for the root of a
// parallel traversal.
func (n *Node[K, N, E]) close() { n.claim.Store(true) }

// OutDegree returns the number of outbound edges.
func (n *Node[K, N, E]) OutDegree() int { return n.adj.lenOutbound() }

// InDegree returns the number of inbound edges.
func (n *Node[K, N, E]) InDegree() int { return n.adj.lenInbound() }

// Degree returns the total number of edges touching the node.
func (n *Node[K, N, E]) Degree() int { return n.adj.lenOutbound() + n.adj.lenInbound() }

// IsRoot reports whether the node has no inbound edges.
func (n *Node[K, N, E]) IsRoot() bool { return n.adj.lenInbound() == 0 }

// IsLeaf reports whether the node has no outbound edges.
func (n *Node[K, N, E]) IsLeaf() bool { return n.adj.lenOutbound() == 0 }

// IsOrphan reports whether the node has no edges at all.
func (n *Node[K, N, E]) IsOrphan() bool { return n.IsRoot() && n.IsLeaf() }

// Connect appends an edge n→other with the given value to n's outbound
// list and other's inbound list. Parallel edges are permitted. The two
// appends take each endpoint's write lock in turn, never both at once.
func (n *Node[K, N, E]) Connect(other *Node[K, N, E], value E) {
	rec := &record[K, N, E]{source: n, target: other, value: value}
	n.adj.pushOutbound(rec)
	other.adj.pushInbound(rec)
}

// TryConnect connects n→other unless any outbound edge to other already
// exists, in which case it reports *DuplicateEdgeError carrying the
// rejected value. The existence check and the connect are not one
// atomic step; two racing TryConnect calls may both succeed.
func (n *Node[K, N, E]) TryConnect(other *Node[K, N, E], value E) error {
	if n.IsConnected(other.Key()) {
		return &DuplicateEdgeError[E]{Value: value}
	}
	n.Connect(other, value)

	return nil
}

// Disconnect removes the first outbound edge whose target has the given
// key, along with its twin in the target's inbound list, and returns
// the removed edge value. Reports ErrEdgeNotFound when no edge matches.
func (n *Node[K, N, E]) Disconnect(otherKey K) (E, error) {
	rec, ok := n.adj.removeOutbound(otherKey)
	if !ok {
		var zero E
		return zero, ErrEdgeNotFound
	}
	rec.target.adj.removeInboundRecord(rec)

	return rec.value, nil
}

// Isolate removes every edge touching n from both endpoints and clears
// n's adjacency, leaving it an orphan.
func (n *Node[K, N, E]) Isolate() {
	for _, rec := range n.adj.snapshotOutbound() {
		rec.target.adj.removeInboundRecord(rec)
	}
	for _, rec := range n.adj.snapshotInbound() {
		rec.source.adj.removeOutboundRecord(rec)
	}
	n.adj.clear()
}

// IsConnected reports whether any outbound edge to the given key exists.
func (n *Node[K, N, E]) IsConnected(otherKey K) bool {
	_, ok := n.adj.findOutbound(otherKey)
	return ok
}

// FindOutbound returns the target of the first outbound edge to the
// given key.
func (n *Node[K, N, E]) FindOutbound(otherKey K) (*Node[K, N, E], bool) {
	rec, ok := n.adj.findOutbound(otherKey)
	if !ok {
		return nil, false
	}

	return rec.target, true
}

// FindInbound returns the source of the first inbound edge from the
// given key.
func (n *Node[K, N, E]) FindInbound(otherKey K) (*Node[K, N, E], bool) {
	rec, ok := n.adj.findInbound(otherKey)
	if !ok {
		return nil, false
	}

	return rec.source, true
}

// IterOut returns the outbound edges as (n, target, value) triples in
// insertion order. The slice is an independent snapshot taken under the
// read lock.
func (n *Node[K, N, E]) IterOut() []Edge[K, N, E] {
	recs := n.adj.snapshotOutbound()
	out := make([]Edge[K, N, E], len(recs))
	for i, rec := range recs {
		out[i] = Edge[K, N, E]{Source: rec.source, Target: rec.target, Value: rec.value}
	}

	return out
}

// IterIn returns the inbound edges as (source, n, value) triples in
// insertion order. The slice is an independent snapshot taken under the
// read lock.
func (n *Node[K, N, E]) IterIn() []Edge[K, N, E] {
	recs := n.adj.snapshotInbound()
	in := make([]Edge[K, N, E], len(recs))
	for i, rec := range recs {
		in[i] = Edge[K, N, E]{Source: rec.source, Target: rec.target, Value: rec.value}
	}

	return in
}

// Dfs returns a depth-first traversal builder rooted at n.
func (n *Node[K, N, E]) Dfs() *Dfs[K, N, E] { return newDfs(n) }

// Bfs returns a breadth-first traversal builder rooted at n.
func (n *Node[K, N, E]) Bfs() *Bfs[K, N, E] { return newBfs(n) }

// Pfs returns a priority-first traversal builder rooted at n. The heap
// orders nodes by their values under cmp, a three-way comparator in the
// cmp.Compare shape; ties break by insertion order.
func (n *Node[K, N, E]) Pfs(cmp func(a, b N) int) *Pfs[K, N, E] { return newPfs(n, cmp) }

// Preorder returns an ordered-walk builder that lists each node before
// its descendants.
func (n *Node[K, N, E]) Preorder() *Order[K, N, E] { return newOrder(n, true) }

// Postorder returns an ordered-walk builder that lists each node after
// its descendants.
func (n *Node[K, N, E]) Postorder() *Order[K, N, E] { return newOrder(n, false) }

// ParBfs returns the parallel breadth-first engine rooted at n.
func (n *Node[K, N, E]) ParBfs() *ParBfs[K, N, E] { return newParBfs(n) }
