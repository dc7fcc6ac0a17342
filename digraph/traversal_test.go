package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/juliuskoskela/gdsl/digraph"
)

type node = digraph.Node[int, struct{}, struct{}]

func unit(key int) *node { return digraph.New[int, struct{}, struct{}](key, struct{}{}) }

func keys(nodes []*node) []int {
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = n.Key()
	}

	return out
}

// ring returns the nodes of the cycle 1→2→3→1.
func ring() (*node, *node, *node) {
	n1, n2, n3 := unit(1), unit(2), unit(3)
	n1.Connect(n2, struct{}{})
	n2.Connect(n3, struct{}{})
	n3.Connect(n1, struct{}{})

	return n1, n2, n3
}

// diamond builds 0→{1,2,3}; 1→3; 2→4; 3→2 and returns node 0.
func diamond() *node {
	nodes := make([]*node, 5)
	for i := range nodes {
		nodes[i] = unit(i)
	}
	nodes[0].Connect(nodes[1], struct{}{})
	nodes[0].Connect(nodes[2], struct{}{})
	nodes[0].Connect(nodes[3], struct{}{})
	nodes[1].Connect(nodes[3], struct{}{})
	nodes[2].Connect(nodes[4], struct{}{})
	nodes[3].Connect(nodes[2], struct{}{})

	return nodes[0]
}

// TestDfsSearchNodes covers the three-node ring: discovery order is the
// adjacency chain.
func TestDfsSearchNodes(t *testing.T) {
	n1, _, _ := ring()
	require.Equal(t, []int{1, 2, 3}, keys(n1.Dfs().SearchNodes()))
}

// TestDfsSearchCycle finds the full ring back to the root.
func TestDfsSearchCycle(t *testing.T) {
	n1, _, _ := ring()

	cycle, ok := n1.Dfs().SearchCycle()
	require.True(t, ok)
	require.Equal(t, []int{1, 2, 3, 1}, keys(cycle.Nodes()))
	require.Same(t, n1, cycle.LastNode())
}

// TestDfsSearchCycleAcyclic reports no cycle on a DAG.
func TestDfsSearchCycleAcyclic(t *testing.T) {
	a, b := unit(1), unit(2)
	a.Connect(b, struct{}{})

	_, ok := a.Dfs().SearchCycle()
	require.False(t, ok)
}

// TestDfsSiblingEnumeration verifies that all unvisited neighbors of a
// frame are explored, not just the first.
func TestDfsSiblingEnumeration(t *testing.T) {
	root := unit(0)
	left, right := unit(1), unit(2)
	root.Connect(left, struct{}{})
	root.Connect(right, struct{}{})

	require.ElementsMatch(t, []int{0, 1, 2}, keys(root.Dfs().SearchNodes()))
}

// TestBfsSearchPath covers the diamond: BFS reaches 4 via the shortest
// chain 0→2→4.
func TestBfsSearchPath(t *testing.T) {
	root := diamond()

	path, ok := root.Bfs().Target(4).SearchPath()
	require.True(t, ok)
	require.Equal(t, []int{0, 2, 4}, keys(path.Nodes()))
	require.Equal(t, 2, path.Len())
	require.Equal(t, 3, path.NodeCount())
}

// TestBfsSearch returns the target node itself.
func TestBfsSearch(t *testing.T) {
	root := diamond()

	got, ok := root.Bfs().Target(4).Search()
	require.True(t, ok)
	require.Equal(t, 4, got.Key())

	_, ok = root.Bfs().Target(99).Search()
	require.False(t, ok)
}

// TestBfsSearchNodesOrder verifies level order with adjacency order
// inside a level.
func TestBfsSearchNodesOrder(t *testing.T) {
	root := diamond()
	require.Equal(t, []int{0, 1, 2, 3, 4}, keys(root.Bfs().SearchNodes()))
}

// TestTranspose walks inbound edges reversed.
func TestTranspose(t *testing.T) {
	a, b, c := unit(1), unit(2), unit(3)
	a.Connect(c, struct{}{})
	b.Connect(c, struct{}{})

	require.Equal(t, []int{3, 1, 2}, keys(c.Bfs().Transpose().SearchNodes()))

	got, ok := c.Dfs().Transpose().Target(2).Search()
	require.True(t, ok)
	require.Equal(t, 2, got.Key())
}

// TestFilter prunes edges the predicate rejects.
func TestFilter(t *testing.T) {
	root := diamond()

	nodes := root.Bfs().
		Filter(func(e digraph.Edge[int, struct{}, struct{}]) bool {
			return e.Target.Key() != 2
		}).
		SearchNodes()
	require.Equal(t, []int{0, 1, 3}, keys(nodes))
}

// TestForEach observes every considered edge.
func TestForEach(t *testing.T) {
	n1, _, _ := ring()

	var seen int
	n1.Bfs().
		ForEach(func(digraph.Edge[int, struct{}, struct{}]) { seen++ }).
		SearchNodes()
	require.Equal(t, 3, seen)
}

// TestSearchEdges returns the discovery tree.
func TestSearchEdges(t *testing.T) {
	n1, _, _ := ring()

	edges := n1.Dfs().SearchEdges()
	require.Len(t, edges, 2)
	require.Equal(t, 1, edges[0].Source.Key())
	require.Equal(t, 2, edges[0].Target.Key())
	require.Equal(t, 2, edges[1].Source.Key())
	require.Equal(t, 3, edges[1].Target.Key())
}

// TestPreorder lists the root before its subtrees.
func TestPreorder(t *testing.T) {
	root := unit(0)
	l, r, ll := unit(1), unit(2), unit(3)
	root.Connect(l, struct{}{})
	root.Connect(r, struct{}{})
	l.Connect(ll, struct{}{})

	require.Equal(t, []int{0, 1, 3, 2}, keys(root.Preorder().SearchNodes()))
}

// TestPostorder lists each node after its subtree: finishing order with
// the root last.
func TestPostorder(t *testing.T) {
	root := unit(0)
	l, r, ll := unit(1), unit(2), unit(3)
	root.Connect(l, struct{}{})
	root.Connect(r, struct{}{})
	l.Connect(ll, struct{}{})

	require.Equal(t, []int{3, 1, 2, 0}, keys(root.Postorder().SearchNodes()))

	edges := root.Postorder().SearchEdges()
	require.Equal(t, 3, edges[0].Target.Key(), "deepest edge finishes first")
	require.Equal(t, 1, edges[1].Target.Key())
	require.Equal(t, 2, edges[2].Target.Key())
}

// TestPathRoundTrip: the reconstructed path starts at the root and ends
// at the target.
func TestPathRoundTrip(t *testing.T) {
	root := diamond()

	path, ok := root.Dfs().Target(4).SearchPath()
	require.True(t, ok)
	nodes := path.Nodes()
	require.Equal(t, 0, nodes[0].Key())
	require.Equal(t, 4, nodes[len(nodes)-1].Key())

	var walked int
	path.Walk(func(digraph.Edge[int, struct{}, struct{}]) { walked++ })
	require.Equal(t, path.Len(), walked)
}

// TestSelfLoopCycle: a self-loop is a one-edge cycle.
func TestSelfLoopCycle(t *testing.T) {
	n := unit(9)
	n.Connect(n, struct{}{})

	cycle, ok := n.Dfs().SearchCycle()
	require.True(t, ok)
	require.Equal(t, 1, cycle.Len())
	require.Equal(t, []int{9, 9}, keys(cycle.Nodes()))
}
