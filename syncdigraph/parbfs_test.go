package syncdigraph

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

type pnode = Node[int, struct{}, struct{}]

func punit(key int) *pnode { return New[int, struct{}, struct{}](key, struct{}{}) }

// funnel builds 1→{2,3,4}→5 and returns every node.
func funnel() []*pnode {
	nodes := make([]*pnode, 6)
	for i := 1; i <= 5; i++ {
		nodes[i] = punit(i)
	}
	nodes[1].Connect(nodes[2], struct{}{})
	nodes[1].Connect(nodes[3], struct{}{})
	nodes[1].Connect(nodes[4], struct{}{})
	nodes[2].Connect(nodes[5], struct{}{})
	nodes[3].Connect(nodes[5], struct{}{})
	nodes[4].Connect(nodes[5], struct{}{})

	return nodes
}

// requireAllOpen asserts every node and edge claim bit is back to OPEN.
func requireAllOpen(t *testing.T, nodes []*pnode) {
	t.Helper()
	for _, n := range nodes {
		if n == nil {
			continue
		}
		require.False(t, n.claim.Load(), "node %v still claimed", n.Key())
		for _, rec := range n.adj.snapshotOutbound() {
			require.False(t, rec.claim.Load(), "edge %v->%v still claimed", rec.source.Key(), rec.target.Key())
		}
	}
}

// TestParBfsFinish: the returned tree ends with the edge that triggered
// Finish, and every claim is released afterwards.
func TestParBfsFinish(t *testing.T) {
	nodes := funnel()

	tree, ok := nodes[1].ParBfs().SearchEdges(func(e Edge[int, struct{}, struct{}]) Verdict {
		if e.Target.Key() == 5 {
			return Finish
		}
		return Include
	})
	require.True(t, ok)
	require.NotEmpty(t, tree)
	require.Equal(t, 5, tree[len(tree)-1].Target.Key())
	requireAllOpen(t, nodes)
}

// TestParBfsSearchPath reconstructs the root-to-finish chain.
func TestParBfsSearchPath(t *testing.T) {
	nodes := funnel()

	path, ok := nodes[1].ParBfs().Search(func(e Edge[int, struct{}, struct{}]) Verdict {
		if e.Target.Key() == 5 {
			return Finish
		}
		return Include
	})
	require.True(t, ok)
	require.Equal(t, 2, path.Len())
	require.Equal(t, 1, path.Nodes()[0].Key())
	require.Equal(t, 5, path.LastNode().Key())
	requireAllOpen(t, nodes)
}

// TestParBfsExhaustion: no Finish verdict means no result, and claims
// are still released.
func TestParBfsExhaustion(t *testing.T) {
	nodes := funnel()

	tree, ok := nodes[1].ParBfs().SearchEdges(func(Edge[int, struct{}, struct{}]) Verdict {
		return Include
	})
	require.False(t, ok)
	require.Nil(t, tree)
	requireAllOpen(t, nodes)
}

// TestParBfsSkip prunes edges without poisoning their claims.
func TestParBfsSkip(t *testing.T) {
	nodes := funnel()

	var visits atomic.Int64
	_, ok := nodes[1].ParBfs().SearchEdges(func(e Edge[int, struct{}, struct{}]) Verdict {
		visits.Add(1)
		if e.Target.Key() == 3 {
			return Skip
		}
		if e.Target.Key() == 5 {
			return Finish
		}
		return Include
	})
	require.True(t, ok)
	requireAllOpen(t, nodes)
	require.LessOrEqual(t, visits.Load(), int64(6))
}

// TestParBfsLevelOrder: level-n edges precede level-n+1 edges in the
// accumulated tree.
func TestParBfsLevelOrder(t *testing.T) {
	nodes := funnel()

	tree, ok := nodes[1].ParBfs().SearchEdges(func(e Edge[int, struct{}, struct{}]) Verdict {
		if e.Target.Key() == 5 {
			return Finish
		}
		return Include
	})
	require.True(t, ok)

	level := func(e Edge[int, struct{}, struct{}]) int {
		if e.Source.Key() == 1 {
			return 0
		}
		return 1
	}
	for i := 1; i < len(tree); i++ {
		require.GreaterOrEqual(t, level(tree[i]), level(tree[i-1]))
	}
}

// TestParBfsRootHit: a Finish on a level-0 edge returns a one-edge tree.
func TestParBfsRootHit(t *testing.T) {
	a, b := punit(1), punit(2)
	a.Connect(b, struct{}{})

	tree, ok := a.ParBfs().SearchEdges(func(Edge[int, struct{}, struct{}]) Verdict {
		return Finish
	})
	require.True(t, ok)
	require.Len(t, tree, 1)
	require.Equal(t, 2, tree[0].Target.Key())
	requireAllOpen(t, []*pnode{a, b})
}

// TestParBfsDeepChain exercises several rounds.
func TestParBfsDeepChain(t *testing.T) {
	const depth = 64
	nodes := make([]*pnode, depth)
	for i := range nodes {
		nodes[i] = punit(i)
	}
	for i := 0; i+1 < depth; i++ {
		nodes[i].Connect(nodes[i+1], struct{}{})
	}

	path, ok := nodes[0].ParBfs().Search(func(e Edge[int, struct{}, struct{}]) Verdict {
		if e.Target.Key() == depth-1 {
			return Finish
		}
		return Include
	})
	require.True(t, ok)
	require.Equal(t, depth-1, path.Len())
	requireAllOpen(t, nodes)
}
