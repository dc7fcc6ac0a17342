package syncdigraph

// Bfs is a breadth-first traversal builder bound to a root node. The
// frontier is a FIFO queue, so nodes are discovered in increasing edge
// distance from the root and SearchPath yields a shortest path in the
// edge-count sense.
type Bfs[K comparable, N, E any] struct {
	root       *Node[K, N, E]
	target     *K
	transposed bool
	method     method[K, N, E]
}

func newBfs[K comparable, N, E any](root *Node[K, N, E]) *Bfs[K, N, E] {
	return &Bfs[K, N, E]{root: root}
}

// Target sets the key the search stops at.
func (b *Bfs[K, N, E]) Target(key K) *Bfs[K, N, E] {
	b.target = &key
	return b
}

// Transpose makes the traversal follow inbound edges reversed.
func (b *Bfs[K, N, E]) Transpose() *Bfs[K, N, E] {
	b.transposed = true
	return b
}

// Filter installs the edge predicate; edges it rejects are not followed.
func (b *Bfs[K, N, E]) Filter(f FilterFunc[K, N, E]) *Bfs[K, N, E] {
	b.method.filter = f
	return b
}

// ForEach installs a hook observing every considered edge.
func (b *Bfs[K, N, E]) ForEach(f ForEachFunc[K, N, E]) *Bfs[K, N, E] {
	b.method.forEach = f
	return b
}

// Search returns the first node whose key matches the target, in
// breadth-first discovery order.
func (b *Bfs[K, N, E]) Search() (*Node[K, N, E], bool) {
	visited := map[K]struct{}{b.root.key: {}}
	var tree []Edge[K, N, E]

	return b.loop(visited, &tree, true)
}

// SearchPath returns the shortest path (by edge count) from the root to
// the target.
func (b *Bfs[K, N, E]) SearchPath() (Path[K, N, E], bool) {
	visited := map[K]struct{}{b.root.key: {}}
	var tree []Edge[K, N, E]
	if _, ok := b.loop(visited, &tree, true); !ok {
		return Path[K, N, E]{}, false
	}

	return pathFromEdgeTree(tree), true
}

// SearchCycle finds a cycle through the root, if any.
func (b *Bfs[K, N, E]) SearchCycle() (Path[K, N, E], bool) {
	key := b.root.key
	b.target = &key
	visited := make(map[K]struct{})
	var tree []Edge[K, N, E]
	if _, ok := b.loop(visited, &tree, true); !ok {
		return Path[K, N, E]{}, false
	}

	return pathFromEdgeTree(tree), true
}

// SearchNodes returns every reachable node in breadth-first discovery
// order, starting with the root.
func (b *Bfs[K, N, E]) SearchNodes() []*Node[K, N, E] {
	visited := map[K]struct{}{b.root.key: {}}
	var tree []Edge[K, N, E]
	b.loop(visited, &tree, false)

	nodes := make([]*Node[K, N, E], 0, len(tree)+1)
	nodes = append(nodes, b.root)
	for _, e := range tree {
		nodes = append(nodes, e.Target)
	}

	return nodes
}

// SearchEdges returns the discovery edge tree of the full traversal.
func (b *Bfs[K, N, E]) SearchEdges() []Edge[K, N, E] {
	visited := map[K]struct{}{b.root.key: {}}
	var tree []Edge[K, N, E]
	b.loop(visited, &tree, false)

	return tree
}

// loop drains the FIFO frontier. When stopAtTarget is set the loop
// returns as soon as an edge reaches the target key; the terminal edge
// is recorded in the tree first.
func (b *Bfs[K, N, E]) loop(visited map[K]struct{}, tree *[]Edge[K, N, E], stopAtTarget bool) (*Node[K, N, E], bool) {
	queue := []*Node[K, N, E]{b.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, e := range adjacentEdges(n, b.transposed) {
			if !b.method.exec(e) {
				continue
			}
			v := e.Target
			if _, seen := visited[v.key]; seen {
				continue
			}
			*tree = append(*tree, e)
			if stopAtTarget && b.target != nil && v.key == *b.target {
				return v, true
			}
			visited[v.key] = struct{}{}
			queue = append(queue, v)
		}
	}

	return nil, false
}
