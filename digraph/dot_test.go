package digraph_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/juliuskoskela/gdsl/digraph"
)

// TestDot renders nodes in ToVec order with sorted attributes.
func TestDot(t *testing.T) {
	g := weighted()

	var buf bytes.Buffer
	err := g.Dot(&buf, "example",
		func(n *digraph.Node[string, int, int]) map[string]string {
			if n.Key() == "a" {
				return map[string]string{"shape": "box", "color": "red"}
			}
			return nil
		},
		func(e digraph.Edge[string, int, int]) map[string]string {
			if e.Value == 30 {
				return map[string]string{"style": "dashed"}
			}
			return nil
		})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "digraph example {")
	require.Contains(t, out, "\t\"a\" [color=\"red\", shape=\"box\"]")
	require.Contains(t, out, "\t\"a\" -> \"b\"\n")
	require.Contains(t, out, "\t\"b\" -> \"c\" [style=\"dashed\"]")
	require.True(t, bytes.HasSuffix(buf.Bytes(), []byte("}\n")))
}

// TestWriteDotSubset renders only the given nodes and their outbound
// edges.
func TestWriteDotSubset(t *testing.T) {
	a := digraph.New[string, int, int]("a", 1)
	b := digraph.New[string, int, int]("b", 2)
	a.Connect(b, 10)

	var buf bytes.Buffer
	err := digraph.WriteDot(&buf, "sub", []*digraph.Node[string, int, int]{a}, nil, nil)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "\"a\" -> \"b\"")
	require.NotContains(t, buf.String(), "\t\"b\"\n")
}
