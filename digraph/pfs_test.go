package digraph_test

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/juliuskoskela/gdsl/digraph"
)

type vnode = digraph.Node[string, int, struct{}]

func vnew(key string, value int) *vnode {
	return digraph.New[string, int, struct{}](key, value)
}

// pfsDiamond builds a→{b,c}→d with node values fixing the pop order.
func pfsDiamond() (*vnode, *vnode, *vnode, *vnode) {
	a, b, c, d := vnew("a", 0), vnew("b", 3), vnew("c", 1), vnew("d", 9)
	a.Connect(b, struct{}{})
	a.Connect(c, struct{}{})
	b.Connect(d, struct{}{})
	c.Connect(d, struct{}{})

	return a, b, c, d
}

// TestPfsMin expands the smallest node value first, so d is discovered
// through c.
func TestPfsMin(t *testing.T) {
	a, _, _, _ := pfsDiamond()

	edges := a.Pfs(cmp.Compare[int]).Min().SearchEdges()
	require.Len(t, edges, 3)
	require.Equal(t, "c", edges[2].Source.Key())
	require.Equal(t, "d", edges[2].Target.Key())
}

// TestPfsMax expands the largest node value first, so d is discovered
// through b.
func TestPfsMax(t *testing.T) {
	a, _, _, _ := pfsDiamond()

	edges := a.Pfs(cmp.Compare[int]).Max().SearchEdges()
	require.Len(t, edges, 3)
	require.Equal(t, "b", edges[2].Source.Key())
}

// TestPfsSearchPath reaches the target through the priority frontier.
func TestPfsSearchPath(t *testing.T) {
	a, _, _, d := pfsDiamond()

	path, ok := a.Pfs(cmp.Compare[int]).Target("d").SearchPath()
	require.True(t, ok)
	require.Same(t, d, path.LastNode())
	require.Equal(t, "a", path.Nodes()[0].Key())
}

// TestPfsTieBreak: equal priorities keep adjacency order.
func TestPfsTieBreak(t *testing.T) {
	root := vnew("r", 0)
	x, y := vnew("x", 1), vnew("y", 1)
	root.Connect(x, struct{}{})
	root.Connect(y, struct{}{})
	x.Connect(vnew("xx", 5), struct{}{})
	y.Connect(vnew("yy", 5), struct{}{})

	edges := root.Pfs(cmp.Compare[int]).SearchEdges()
	require.Equal(t, "xx", edges[2].Target.Key(), "x entered the heap first")
	require.Equal(t, "yy", edges[3].Target.Key())
}

// TestPfsCycle seeds the root into the heap without visiting it, so a
// back-edge terminates the search.
func TestPfsCycle(t *testing.T) {
	a, b, c := vnew("a", 0), vnew("b", 1), vnew("c", 2)
	a.Connect(b, struct{}{})
	b.Connect(c, struct{}{})
	c.Connect(a, struct{}{})

	cycle, ok := a.Pfs(cmp.Compare[int]).SearchCycle()
	require.True(t, ok)
	nodes := cycle.Nodes()
	require.Equal(t, "a", nodes[0].Key())
	require.Equal(t, "a", nodes[len(nodes)-1].Key())

	acyclic := vnew("r", 0)
	acyclic.Connect(vnew("s", 1), struct{}{})
	_, ok = acyclic.Pfs(cmp.Compare[int]).SearchCycle()
	require.False(t, ok)
}

// distNode carries a mutable distance cell as the node value, the shape
// a relaxing priority search needs.
type distNode = digraph.Node[string, *int64, int64]

const unreached = int64(1) << 32

func byDistance(a, b *int64) int { return cmp.Compare(*a, *b) }

// weightedMesh builds the classic weighted network, each edge installed
// in both directions, and returns the nodes plus their distance cells,
// seeded 0 at A.
func weightedMesh() (map[string]*distNode, map[string]*int64) {
	nodes := make(map[string]*distNode)
	dist := make(map[string]*int64)
	for _, k := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"} {
		d := unreached
		if k == "A" {
			d = 0
		}
		cell := &d
		dist[k] = cell
		nodes[k] = digraph.New[string, *int64, int64](k, cell)
	}
	connect := func(u, v string, w int64) {
		nodes[u].Connect(nodes[v], w)
		nodes[v].Connect(nodes[u], w)
	}
	connect("A", "B", 4)
	connect("A", "H", 8)
	connect("B", "C", 8)
	connect("B", "H", 11)
	connect("C", "D", 7)
	connect("C", "F", 4)
	connect("D", "E", 9)
	connect("D", "F", 14)
	connect("E", "F", 10)
	connect("F", "G", 2)
	connect("G", "H", 1)
	connect("G", "I", 6)
	connect("H", "I", 7)
	connect("I", "C", 2)

	return nodes, dist
}

// TestPfsDijkstra runs a min-priority search with a relaxing filter:
// the edge is followed only when it improves the target's distance.
func TestPfsDijkstra(t *testing.T) {
	nodes, dist := weightedMesh()

	nodes["A"].Pfs(byDistance).
		Min().
		Filter(func(e digraph.Edge[string, *int64, int64]) bool {
			du, dv := *e.Source.Value(), e.Target.Value()
			if du+e.Value < *dv {
				*dv = du + e.Value
				return true
			}
			return false
		}).
		SearchNodes()

	require.Equal(t, int64(21), *dist["E"])
	require.Equal(t, int64(4), *dist["B"])
	require.Equal(t, int64(8), *dist["H"])
	require.Equal(t, int64(9), *dist["G"])
	require.Equal(t, int64(11), *dist["F"])
	require.Equal(t, int64(12), *dist["C"])
	require.Equal(t, int64(19), *dist["D"])
	require.Equal(t, int64(14), *dist["I"])
}

// TestPfsTranspose drives a reverse sweep with a ForEach hook counting
// considered edges.
func TestPfsTranspose(t *testing.T) {
	a, b, c := vnew("a", 2), vnew("b", 1), vnew("c", 0)
	a.Connect(c, struct{}{})
	b.Connect(c, struct{}{})

	var considered int
	nodes := c.Pfs(cmp.Compare[int]).
		Transpose().
		ForEach(func(digraph.Edge[string, int, struct{}]) { considered++ }).
		SearchNodes()
	require.Len(t, nodes, 3)
	require.Equal(t, 2, considered)
}
