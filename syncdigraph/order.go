package syncdigraph

// Order is an ordered-walk builder bound to a root node. It descends
// recursively from the root and places each node before (preorder) or
// after (postorder) its descendants in the output. Ordered walks
// enumerate; they do not search, so the terminal operations are
// SearchNodes and SearchEdges.
type Order[K comparable, N, E any] struct {
	root       *Node[K, N, E]
	pre        bool
	transposed bool
	method     method[K, N, E]
}

func newOrder[K comparable, N, E any](root *Node[K, N, E], pre bool) *Order[K, N, E] {
	return &Order[K, N, E]{root: root, pre: pre}
}

// Transpose makes the walk follow inbound edges reversed.
func (o *Order[K, N, E]) Transpose() *Order[K, N, E] {
	o.transposed = true
	return o
}

// Filter installs the edge predicate; edges it rejects are not followed.
func (o *Order[K, N, E]) Filter(f FilterFunc[K, N, E]) *Order[K, N, E] {
	o.method.filter = f
	return o
}

// ForEach installs a hook observing every considered edge.
func (o *Order[K, N, E]) ForEach(f ForEachFunc[K, N, E]) *Order[K, N, E] {
	o.method.forEach = f
	return o
}

// SearchNodes returns the nodes reachable from the root in walk order:
// the root followed by each child subtree for preorder, each child
// subtree followed by the root for postorder.
func (o *Order[K, N, E]) SearchNodes() []*Node[K, N, E] {
	tree := o.SearchEdges()
	nodes := make([]*Node[K, N, E], 0, len(tree)+1)
	if o.pre {
		nodes = append(nodes, o.root)
		for _, e := range tree {
			nodes = append(nodes, e.Target)
		}

		return nodes
	}
	for _, e := range tree {
		nodes = append(nodes, e.Target)
	}

	return append(nodes, o.root)
}

// SearchEdges returns the tree edges in walk order: an edge precedes
// its subtree's edges for preorder and follows them for postorder.
func (o *Order[K, N, E]) SearchEdges() []Edge[K, N, E] {
	visited := map[K]struct{}{o.root.key: {}}
	var tree []Edge[K, N, E]
	o.walk(o.root, visited, &tree)

	return tree
}

func (o *Order[K, N, E]) walk(n *Node[K, N, E], visited map[K]struct{}, tree *[]Edge[K, N, E]) {
	for _, e := range adjacentEdges(n, o.transposed) {
		if !o.method.exec(e) {
			continue
		}
		v := e.Target
		if _, seen := visited[v.key]; seen {
			continue
		}
		visited[v.key] = struct{}{}
		if o.pre {
			*tree = append(*tree, e)
			o.walk(v, visited, tree)
		} else {
			o.walk(v, visited, tree)
			*tree = append(*tree, e)
		}
	}
}
