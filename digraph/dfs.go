package digraph

// Dfs is a depth-first traversal builder bound to a root node. The
// frontier is the recursion stack: every unvisited neighbor of a frame
// is explored in adjacency order before the frame's next sibling.
//
// Configure with Target, Transpose, Filter and ForEach, then run one of
// the terminal operations. Builders are single-use.
type Dfs[K comparable, N, E any] struct {
	root       *Node[K, N, E]
	target     *K
	transposed bool
	method     method[K, N, E]
}

func newDfs[K comparable, N, E any](root *Node[K, N, E]) *Dfs[K, N, E] {
	return &Dfs[K, N, E]{root: root}
}

// Target sets the key the search stops at.
func (d *Dfs[K, N, E]) Target(key K) *Dfs[K, N, E] {
	d.target = &key
	return d
}

// Transpose makes the traversal follow inbound edges reversed.
func (d *Dfs[K, N, E]) Transpose() *Dfs[K, N, E] {
	d.transposed = true
	return d
}

// Filter installs the edge predicate; edges it rejects are not followed.
func (d *Dfs[K, N, E]) Filter(f FilterFunc[K, N, E]) *Dfs[K, N, E] {
	d.method.filter = f
	return d
}

// ForEach installs a hook observing every considered edge.
func (d *Dfs[K, N, E]) ForEach(f ForEachFunc[K, N, E]) *Dfs[K, N, E] {
	d.method.forEach = f
	return d
}

// Search returns the first node whose key matches the target, in
// depth-first discovery order. Without a target, or when the target is
// unreachable, it reports false.
func (d *Dfs[K, N, E]) Search() (*Node[K, N, E], bool) {
	visited := map[K]struct{}{d.root.key: {}}
	var tree []Edge[K, N, E]

	return d.find(d.root, visited, &tree)
}

// SearchPath returns the path from the root to the target,
// reconstructed from the discovery edge tree.
func (d *Dfs[K, N, E]) SearchPath() (Path[K, N, E], bool) {
	visited := map[K]struct{}{d.root.key: {}}
	var tree []Edge[K, N, E]
	if _, ok := d.find(d.root, visited, &tree); !ok {
		return Path[K, N, E]{}, false
	}

	return pathFromEdgeTree(tree), true
}

// SearchCycle finds a cycle through the root, if any. The root is the
// target but is not pre-seeded into the visited set, so a back-edge to
// it terminates the search.
func (d *Dfs[K, N, E]) SearchCycle() (Path[K, N, E], bool) {
	key := d.root.key
	d.target = &key
	visited := make(map[K]struct{})
	var tree []Edge[K, N, E]
	if _, ok := d.find(d.root, visited, &tree); !ok {
		return Path[K, N, E]{}, false
	}

	return pathFromEdgeTree(tree), true
}

// SearchNodes returns every node reachable from the root under the
// configured direction and filter, in depth-first discovery order,
// starting with the root.
func (d *Dfs[K, N, E]) SearchNodes() []*Node[K, N, E] {
	visited := map[K]struct{}{d.root.key: {}}
	var tree []Edge[K, N, E]
	d.collect(d.root, visited, &tree)

	nodes := make([]*Node[K, N, E], 0, len(tree)+1)
	nodes = append(nodes, d.root)
	for _, e := range tree {
		nodes = append(nodes, e.Target)
	}

	return nodes
}

// SearchEdges returns the discovery edge tree of the full traversal.
func (d *Dfs[K, N, E]) SearchEdges() []Edge[K, N, E] {
	visited := map[K]struct{}{d.root.key: {}}
	var tree []Edge[K, N, E]
	d.collect(d.root, visited, &tree)

	return tree
}

// find descends from n recording discovered edges, stopping at the
// first node matching the target.
func (d *Dfs[K, N, E]) find(n *Node[K, N, E], visited map[K]struct{}, tree *[]Edge[K, N, E]) (*Node[K, N, E], bool) {
	for _, e := range adjacentEdges(n, d.transposed) {
		if !d.method.exec(e) {
			continue
		}
		v := e.Target
		if _, seen := visited[v.key]; seen {
			continue
		}
		*tree = append(*tree, e)
		if d.target != nil && v.key == *d.target {
			return v, true
		}
		visited[v.key] = struct{}{}
		if t, ok := d.find(v, visited, tree); ok {
			return t, true
		}
	}

	return nil, false
}

// collect descends from n recording every discovered edge.
func (d *Dfs[K, N, E]) collect(n *Node[K, N, E], visited map[K]struct{}, tree *[]Edge[K, N, E]) {
	for _, e := range adjacentEdges(n, d.transposed) {
		if !d.method.exec(e) {
			continue
		}
		v := e.Target
		if _, seen := visited[v.key]; seen {
			continue
		}
		visited[v.key] = struct{}{}
		*tree = append(*tree, e)
		d.collect(v, visited, tree)
	}
}
