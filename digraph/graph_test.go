package digraph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/juliuskoskela/gdsl/digraph"
)

func container(edges [][2]int, n int) *digraph.Graph[int, struct{}, struct{}] {
	g := digraph.NewGraph[int, struct{}, struct{}]()
	for i := 0; i < n; i++ {
		g.Insert(unit(i))
	}
	for _, e := range edges {
		src, _ := g.Get(e[0])
		tgt, _ := g.Get(e[1])
		src.Connect(tgt, struct{}{})
	}

	return g
}

// TestGraphBasics exercises insert/get/remove/contains.
func TestGraphBasics(t *testing.T) {
	g := digraph.NewGraph[int, struct{}, struct{}]()
	require.True(t, g.IsEmpty())

	n := unit(1)
	require.True(t, g.Insert(n))
	require.False(t, g.Insert(unit(1)), "duplicate key rejected")
	require.Equal(t, 1, g.Len())
	require.True(t, g.Contains(1))

	got, ok := g.Get(1)
	require.True(t, ok)
	require.Same(t, n, got)

	removed, ok := g.Remove(1)
	require.True(t, ok)
	require.Same(t, n, removed)
	require.False(t, g.Contains(1))
	_, ok = g.Remove(1)
	require.False(t, ok)
}

// TestGraphQueries checks roots, leaves and orphans over a small DAG.
func TestGraphQueries(t *testing.T) {
	g := container([][2]int{{0, 1}, {1, 2}}, 4)

	require.Equal(t, []int{0, 3}, keys(g.Roots()))
	require.Equal(t, []int{2, 3}, keys(g.Leaves()))
	require.Equal(t, []int{3}, keys(g.Orphans()))
}

// TestGraphIter stops when the callback reports false.
func TestGraphIter(t *testing.T) {
	g := container(nil, 5)

	var visited int
	g.Iter(func(*node) bool {
		visited++
		return visited < 3
	})
	require.Equal(t, 3, visited)
}

// TestScc decomposes three disjoint rings and a self-loop into four
// components.
func TestScc(t *testing.T) {
	g := container([][2]int{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
		{6, 7}, {7, 8}, {8, 6},
		{9, 9},
	}, 10)

	components := g.Scc()
	require.Len(t, components, 4)

	sizes := make([]int, len(components))
	covered := make(map[int]struct{})
	for i, comp := range components {
		sizes[i] = len(comp)
		for _, n := range comp {
			covered[n.Key()] = struct{}{}
		}
	}
	sort.Ints(sizes)
	require.Equal(t, []int{1, 3, 3, 3}, sizes)
	require.Len(t, covered, 10, "every node assigned exactly once")
}

// TestSccChained verifies components across connecting edges: two rings
// joined by a one-way bridge stay separate components.
func TestSccChained(t *testing.T) {
	g := container([][2]int{
		{0, 1}, {1, 2}, {2, 0},
		{2, 3},
		{3, 4}, {4, 5}, {5, 3},
	}, 6)

	components := g.Scc()
	require.Len(t, components, 2)
	for _, comp := range components {
		require.Len(t, comp, 3)
	}
}

// TestSccSingletons: a DAG decomposes into singletons.
func TestSccSingletons(t *testing.T) {
	g := container([][2]int{{0, 1}, {1, 2}}, 3)
	require.Len(t, g.Scc(), 3)
}
