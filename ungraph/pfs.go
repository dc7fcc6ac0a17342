package ungraph

import "container/heap"

// Pfs is a priority-first traversal builder bound to a root node. The
// frontier is a binary heap ordering nodes by their values under the
// comparator supplied to Node.Pfs; ties break by insertion order.
// Minimum-first by default.
type Pfs[K comparable, N, E any] struct {
	root   *Node[K, N, E]
	target *K
	max    bool
	cmp    func(a, b N) int
	method method[K, N, E]
}

func newPfs[K comparable, N, E any](root *Node[K, N, E], cmp func(a, b N) int) *Pfs[K, N, E] {
	return &Pfs[K, N, E]{root: root, cmp: cmp}
}

// Min orders the frontier smallest node value first. This is the default.
func (p *Pfs[K, N, E]) Min() *Pfs[K, N, E] {
	p.max = false
	return p
}

// Max orders the frontier largest node value first.
func (p *Pfs[K, N, E]) Max() *Pfs[K, N, E] {
	p.max = true
	return p
}

// Target sets the key the search stops at.
func (p *Pfs[K, N, E]) Target(key K) *Pfs[K, N, E] {
	p.target = &key
	return p
}

// Filter installs the edge predicate; edges it rejects are not followed.
func (p *Pfs[K, N, E]) Filter(f FilterFunc[K, N, E]) *Pfs[K, N, E] {
	p.method.filter = f
	return p
}

// ForEach installs a hook observing every considered edge.
func (p *Pfs[K, N, E]) ForEach(f ForEachFunc[K, N, E]) *Pfs[K, N, E] {
	p.method.forEach = f
	return p
}

// Search returns the first node whose key matches the target, in
// priority order.
func (p *Pfs[K, N, E]) Search() (*Node[K, N, E], bool) {
	visited := map[K]struct{}{p.root.key: {}}
	var tree []Edge[K, N, E]

	return p.loop(visited, &tree, true)
}

// SearchPath returns the path from the root to the target along the
// discovery edge tree.
func (p *Pfs[K, N, E]) SearchPath() (Path[K, N, E], bool) {
	visited := map[K]struct{}{p.root.key: {}}
	var tree []Edge[K, N, E]
	if _, ok := p.loop(visited, &tree, true); !ok {
		return Path[K, N, E]{}, false
	}

	return pathFromEdgeTree(tree), true
}

// SearchCycle finds a cycle through the root, if any. The root is
// seeded into the heap but not into the visited set.
func (p *Pfs[K, N, E]) SearchCycle() (Path[K, N, E], bool) {
	key := p.root.key
	p.target = &key
	visited := make(map[K]struct{})
	var tree []Edge[K, N, E]
	if _, ok := p.loop(visited, &tree, true); !ok {
		return Path[K, N, E]{}, false
	}

	return pathFromEdgeTree(tree), true
}

// SearchNodes returns every reachable node in priority discovery order,
// starting with the root.
func (p *Pfs[K, N, E]) SearchNodes() []*Node[K, N, E] {
	visited := map[K]struct{}{p.root.key: {}}
	var tree []Edge[K, N, E]
	p.loop(visited, &tree, false)

	nodes := make([]*Node[K, N, E], 0, len(tree)+1)
	nodes = append(nodes, p.root)
	for _, e := range tree {
		nodes = append(nodes, e.Target)
	}

	return nodes
}

// SearchEdges returns the discovery edge tree of the full traversal.
func (p *Pfs[K, N, E]) SearchEdges() []Edge[K, N, E] {
	visited := map[K]struct{}{p.root.key: {}}
	var tree []Edge[K, N, E]
	p.loop(visited, &tree, false)

	return tree
}

func (p *Pfs[K, N, E]) loop(visited map[K]struct{}, tree *[]Edge[K, N, E], stopAtTarget bool) (*Node[K, N, E], bool) {
	frontier := &nodeHeap[K, N, E]{cmp: p.cmp, max: p.max}
	heap.Init(frontier)
	frontier.push(p.root)

	for frontier.Len() > 0 {
		n := frontier.pop()
		for _, e := range n.Iter() {
			if !p.method.exec(e) {
				continue
			}
			v := e.Target
			if _, seen := visited[v.key]; seen {
				continue
			}
			visited[v.key] = struct{}{}
			*tree = append(*tree, e)
			if stopAtTarget && p.target != nil && v.key == *p.target {
				return v, true
			}
			frontier.push(v)
		}
	}

	return nil, false
}

// heapItem pairs a node with its insertion sequence number, the
// tie-breaker that keeps equal priorities in adjacency order.
type heapItem[K comparable, N, E any] struct {
	node *Node[K, N, E]
	seq  int
}

type nodeHeap[K comparable, N, E any] struct {
	items []heapItem[K, N, E]
	cmp   func(a, b N) int
	max   bool
	next  int
}

func (h *nodeHeap[K, N, E]) Len() int { return len(h.items) }

func (h *nodeHeap[K, N, E]) Less(i, j int) bool {
	c := h.cmp(h.items[i].node.value, h.items[j].node.value)
	if h.max {
		c = -c
	}
	if c != 0 {
		return c < 0
	}

	return h.items[i].seq < h.items[j].seq
}

func (h *nodeHeap[K, N, E]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *nodeHeap[K, N, E]) Push(x any) {
	h.items = append(h.items, x.(heapItem[K, N, E]))
}

func (h *nodeHeap[K, N, E]) Pop() any {
	last := h.items[len(h.items)-1]
	h.items = h.items[:len(h.items)-1]

	return last
}

func (h *nodeHeap[K, N, E]) push(n *Node[K, N, E]) {
	heap.Push(h, heapItem[K, N, E]{node: n, seq: h.next})
	h.next++
}

func (h *nodeHeap[K, N, E]) pop() *Node[K, N, E] {
	return heap.Pop(h).(heapItem[K, N, E]).node
}
