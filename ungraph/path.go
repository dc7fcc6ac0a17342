package ungraph

// Path is an ordered sequence of edges leading from a traversal root to
// a found target.
type Path[K comparable, N, E any] struct {
	edges []Edge[K, N, E]
}

// Edges returns the path's edges in root-to-target order.
func (p Path[K, N, E]) Edges() []Edge[K, N, E] {
	out := make([]Edge[K, N, E], len(p.edges))
	copy(out, p.edges)

	return out
}

// Nodes returns the root followed by every edge's target, in order.
func (p Path[K, N, E]) Nodes() []*Node[K, N, E] {
	if len(p.edges) == 0 {
		return nil
	}
	nodes := make([]*Node[K, N, E], 0, len(p.edges)+1)
	nodes = append(nodes, p.edges[0].Source)
	for _, e := range p.edges {
		nodes = append(nodes, e.Target)
	}

	return nodes
}

// LastNode returns the final node on the path.
func (p Path[K, N, E]) LastNode() *Node[K, N, E] {
	if len(p.edges) == 0 {
		return nil
	}

	return p.edges[len(p.edges)-1].Target
}

// At returns the i'th edge of the path.
func (p Path[K, N, E]) At(i int) Edge[K, N, E] { return p.edges[i] }

// Len returns the number of edges on the path.
func (p Path[K, N, E]) Len() int { return len(p.edges) }

// NodeCount returns the number of nodes on the path.
func (p Path[K, N, E]) NodeCount() int { return len(p.edges) + 1 }

// Walk invokes f for every edge in root-to-target order.
func (p Path[K, N, E]) Walk(f func(Edge[K, N, E])) {
	for _, e := range p.edges {
		f(e)
	}
}

// pathFromEdgeTree reconstructs the root-to-target chain from an edge
// tree recorded in discovery order, scanning in reverse and prepending
// each edge whose target is the source at the tip of the chain.
func pathFromEdgeTree[K comparable, N, E any](tree []Edge[K, N, E]) Path[K, N, E] {
	if len(tree) == 0 {
		return Path[K, N, E]{}
	}
	chain := []Edge[K, N, E]{tree[len(tree)-1]}
	for i := len(tree) - 2; i >= 0; i-- {
		tip := chain[len(chain)-1]
		if tree[i].Target == tip.Source {
			chain = append(chain, tree[i])
		}
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return Path[K, N, E]{edges: chain}
}
