package digraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/juliuskoskela/gdsl/digraph"
)

// TestConnect verifies both adjacency records of a new edge.
func TestConnect(t *testing.T) {
	a := digraph.New[int, string, int](1, "a")
	b := digraph.New[int, string, int](2, "b")

	a.Connect(b, 42)

	require.True(t, a.IsConnected(2))
	require.False(t, b.IsConnected(1))

	out := a.IterOut()
	require.Len(t, out, 1)
	require.Same(t, b, out[0].Target)
	require.Equal(t, 42, out[0].Value)

	in := b.IterIn()
	require.Len(t, in, 1)
	require.Same(t, a, in[0].Source)
	require.Equal(t, 42, in[0].Value)
}

// TestConnectParallelEdges verifies Connect never deduplicates.
func TestConnectParallelEdges(t *testing.T) {
	a := digraph.New[int, struct{}, int](1, struct{}{})
	b := digraph.New[int, struct{}, int](2, struct{}{})

	a.Connect(b, 10)
	a.Connect(b, 20)

	require.Equal(t, 2, a.OutDegree())
	require.Equal(t, 2, b.InDegree())
	require.Equal(t, 10, a.IterOut()[0].Value)
	require.Equal(t, 20, a.IterOut()[1].Value)
}

// TestTryConnect verifies the duplicate rejection and the rejected
// value round-trip.
func TestTryConnect(t *testing.T) {
	a := digraph.New[string, struct{}, float64]("a", struct{}{})
	b := digraph.New[string, struct{}, float64]("b", struct{}{})

	require.NoError(t, a.TryConnect(b, 0.5))

	err := a.TryConnect(b, 0.7)
	require.Error(t, err)
	require.ErrorIs(t, err, digraph.ErrDuplicateEdge)

	var dup *digraph.DuplicateEdgeError[float64]
	require.True(t, errors.As(err, &dup))
	require.Equal(t, 0.7, dup.Value)
	require.Equal(t, 1, a.OutDegree())
}

// TestDisconnect verifies twin removal and one-at-a-time semantics for
// parallel edges.
func TestDisconnect(t *testing.T) {
	a := digraph.New[int, struct{}, int](1, struct{}{})
	b := digraph.New[int, struct{}, int](2, struct{}{})

	a.Connect(b, 10)
	a.Connect(b, 20)

	v, err := a.Disconnect(2)
	require.NoError(t, err)
	require.Equal(t, 10, v, "first matching edge goes first")
	require.Equal(t, 1, a.OutDegree())
	require.Equal(t, 1, b.InDegree())
	require.Equal(t, 20, a.IterOut()[0].Value)

	v, err = a.Disconnect(2)
	require.NoError(t, err)
	require.Equal(t, 20, v)
	require.True(t, a.IsLeaf())
	require.True(t, b.IsRoot())

	_, err = a.Disconnect(2)
	require.ErrorIs(t, err, digraph.ErrEdgeNotFound)
}

// TestIsolate verifies no other node lists the isolated one afterwards.
func TestIsolate(t *testing.T) {
	n1 := digraph.New[int, struct{}, struct{}](1, struct{}{})
	n2 := digraph.New[int, struct{}, struct{}](2, struct{}{})
	n3 := digraph.New[int, struct{}, struct{}](3, struct{}{})

	n1.Connect(n2, struct{}{})
	n3.Connect(n1, struct{}{})
	n1.Connect(n1, struct{}{}) // self-loop

	n1.Isolate()

	require.True(t, n1.IsOrphan())
	require.Zero(t, n2.InDegree())
	require.Zero(t, n3.OutDegree())
}

// TestRootLeafOrphan checks the degree predicates.
func TestRootLeafOrphan(t *testing.T) {
	a := digraph.New[int, struct{}, struct{}](1, struct{}{})
	b := digraph.New[int, struct{}, struct{}](2, struct{}{})
	c := digraph.New[int, struct{}, struct{}](3, struct{}{})

	a.Connect(b, struct{}{})
	b.Connect(c, struct{}{})

	require.True(t, a.IsRoot())
	require.False(t, a.IsLeaf())
	require.False(t, b.IsRoot())
	require.False(t, b.IsLeaf())
	require.True(t, c.IsLeaf())

	d := digraph.New[int, struct{}, struct{}](4, struct{}{})
	require.True(t, d.IsOrphan())
}

// TestFind checks key lookups on both adjacency sides.
func TestFind(t *testing.T) {
	a := digraph.New[int, struct{}, int](1, struct{}{})
	b := digraph.New[int, struct{}, int](2, struct{}{})
	a.Connect(b, 7)

	got, ok := a.FindOutbound(2)
	require.True(t, ok)
	require.Same(t, b, got)

	got, ok = b.FindInbound(1)
	require.True(t, ok)
	require.Same(t, a, got)

	_, ok = a.FindOutbound(99)
	require.False(t, ok)
	_, ok = a.FindInbound(2)
	require.False(t, ok)
}

// TestAdjacencyOrder verifies enumeration follows Connect order.
func TestAdjacencyOrder(t *testing.T) {
	hub := digraph.New[int, struct{}, int](0, struct{}{})
	for i := 1; i <= 5; i++ {
		hub.Connect(digraph.New[int, struct{}, int](i, struct{}{}), i*10)
	}
	out := hub.IterOut()
	require.Len(t, out, 5)
	for i, e := range out {
		require.Equal(t, i+1, e.Target.Key())
		require.Equal(t, (i+1)*10, e.Value)
	}
}
