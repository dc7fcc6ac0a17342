package ungraph

import "fmt"

// Node is a shared handle to a (key, value, adjacency) cell. Nodes are
// created individually and do not depend on a graph container. Node
// identity is key identity.
//
// The value type N is not guarded by the node: make it a pointer or a
// cell type if traversal closures need to mutate it.
type Node[K comparable, N, E any] struct {
	key   K
	value N
	adj   adjacency[K, N, E]
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

// Degree returns the number of edges touching the node.
func (n *Node[K, N, E]) Degree() int { return n.adj.lenPrimary() + n.adj.lenSecondary() }

// IsOrphan reports whether the node has no edges.
func (n *Node[K, N, E]) IsOrphan() bool { return n.Degree() == 0 }

// Connect joins n and other with the given edge value. The edge is
// recorded in n's primary list and other's secondary list. Parallel
// edges are permitted; each Connect call installs a new edge.
func (n *Node[K, N, E]) Connect(other *Node[K, N, E], value E) {
	rec := &record[K, N, E]{source: n, target: other, value: value}
	n.adj.pushPrimary(rec)
	other.adj.pushSecondary(rec)
}

// TryConnect joins n and other unless they are already connected, in
// which case it reports *DuplicateEdgeError carrying the rejected value.
func (n *Node[K, N, E]) TryConnect(other *Node[K, N, E], value E) error {
	if n.IsConnected(other.Key()) {
		return &DuplicateEdgeError[E]{Value: value}
	}
	n.Connect(other, value)

	return nil
}

// Disconnect removes the first edge between n and the node with the
// given key, from both endpoints, and returns the removed edge value.
// Reports ErrEdgeNotFound when no edge matches.
func (n *Node[K, N, E]) Disconnect(otherKey K) (E, error) {
	if rec, ok := n.adj.removePrimary(otherKey); ok {
		rec.target.adj.removeSecondaryRecord(rec)
		return rec.value, nil
	}
	if rec, ok := n.adj.removeSecondary(otherKey); ok {
		rec.source.adj.removePrimaryRecord(rec)
		return rec.value, nil
	}
	var zero E

	return zero, ErrEdgeNotFound
}

// Isolate removes every edge touching n from both endpoints and clears
// n's adjacency, leaving it an orphan.
func (n *Node[K, N, E]) Isolate() {
	for _, rec := range n.adj.snapshotPrimary() {
		rec.target.adj.removeSecondaryRecord(rec)
	}
	for _, rec := range n.adj.snapshotSecondary() {
		rec.source.adj.removePrimaryRecord(rec)
	}
	n.adj.clear()
}

// IsConnected reports whether any edge joins n and the given key.
func (n *Node[K, N, E]) IsConnected(otherKey K) bool {
	_, ok := n.FindAdjacent(otherKey)
	return ok
}

// FindAdjacent returns the neighbor with the given key, if connected.
func (n *Node[K, N, E]) FindAdjacent(otherKey K) (*Node[K, N, E], bool) {
	for _, e := range n.Iter() {
		if e.Target.key == otherKey {
			return e.Target, true
		}
	}

	return nil, false
}

// Iter returns the adjacent edges as (n, neighbor, value) triples:
// first the edges n recorded, in insertion order, then the edges
// recorded by partners, reversed so each neighbor appears exactly once
// with n as the source.
func (n *Node[K, N, E]) Iter() []Edge[K, N, E] {
	primary := n.adj.snapshotPrimary()
	secondary := n.adj.snapshotSecondary()
	out := make([]Edge[K, N, E], 0, len(primary)+len(secondary))
	for _, rec := range primary {
		out = append(out, Edge[K, N, E]{Source: rec.source, Target: rec.target, Value: rec.value})
	}
	for _, rec := range secondary {
		out = append(out, Edge[K, N, E]{Source: rec.target, Target: rec.source, Value: rec.value})
	}

	return out
}

// iterRecorded returns only the edges n recorded, as triples. Used by
// DOT export and the codec to emit each undirected edge once.
func (n *Node[K, N, E]) iterRecorded() []Edge[K, N, E] {
	primary := n.adj.snapshotPrimary()
	out := make([]Edge[K, N, E], 0, len(primary))
	for _, rec := range primary {
		out = append(out, Edge[K, N, E]{Source: rec.source, Target: rec.target, Value: rec.value})
	}

	return out
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
