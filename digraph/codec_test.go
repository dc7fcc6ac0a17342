package digraph_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/juliuskoskela/gdsl/digraph"
)

func weighted() *digraph.Graph[string, int, int] {
	g := digraph.NewGraph[string, int, int]()
	a := digraph.New[string, int, int]("a", 1)
	b := digraph.New[string, int, int]("b", 2)
	c := digraph.New[string, int, int]("c", 3)
	g.Insert(a)
	g.Insert(b)
	g.Insert(c)
	a.Connect(b, 10)
	a.Connect(c, 20)
	b.Connect(c, 30)

	return g
}

// requireSameOutbound asserts that per node, outbound edges match by
// target key and edge value, in order.
func requireSameOutbound(t *testing.T, want, got *digraph.Graph[string, int, int]) {
	t.Helper()
	require.Equal(t, want.Len(), got.Len())
	for _, wn := range want.ToVec() {
		gn, ok := got.Get(wn.Key())
		require.True(t, ok)
		require.Equal(t, wn.Value(), gn.Value())
		wout, gout := wn.IterOut(), gn.IterOut()
		require.Len(t, gout, len(wout))
		for i := range wout {
			require.Equal(t, wout[i].Target.Key(), gout[i].Target.Key())
			require.Equal(t, wout[i].Value, gout[i].Value)
		}
	}
}

// TestYAMLRoundTrip encodes and decodes the container through YAML.
func TestYAMLRoundTrip(t *testing.T) {
	g := weighted()

	var buf bytes.Buffer
	require.NoError(t, g.EncodeYAML(&buf))

	decoded, err := digraph.DecodeYAML[string, int, int](&buf)
	require.NoError(t, err)
	requireSameOutbound(t, g, decoded)
}

// TestJSONRoundTrip encodes and decodes the container through JSON.
func TestJSONRoundTrip(t *testing.T) {
	g := weighted()

	var buf bytes.Buffer
	require.NoError(t, g.EncodeJSON(&buf))

	decoded, err := digraph.DecodeJSON[string, int, int](&buf)
	require.NoError(t, err)
	requireSameOutbound(t, g, decoded)
}

// TestDecodeUnknownEndpoint rejects an edge naming an absent node.
func TestDecodeUnknownEndpoint(t *testing.T) {
	payload := `{"nodes":[{"key":"a","value":1}],"edges":[{"source":"a","target":"zz","value":5}]}`

	_, err := digraph.DecodeJSON[string, int, int](bytes.NewReader([]byte(payload)))
	require.ErrorIs(t, err, digraph.ErrUnknownEndpoint)
}
