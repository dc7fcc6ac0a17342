package digraph

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// NodeAttrsFunc supplies DOT attributes for a node; nil means none.
type NodeAttrsFunc[K comparable, N, E any] func(*Node[K, N, E]) map[string]string

// EdgeAttrsFunc supplies DOT attributes for an edge; nil means none.
type EdgeAttrsFunc[K comparable, N, E any] func(Edge[K, N, E]) map[string]string

// WriteDot renders the given nodes and their outbound edges in DOT
// format. Nodes are emitted in the order given; attribute keys are
// sorted so output is reproducible.
func WriteDot[K comparable, N, E any](
	w io.Writer,
	name string,
	nodes []*Node[K, N, E],
	nodeAttrs NodeAttrsFunc[K, N, E],
	edgeAttrs EdgeAttrsFunc[K, N, E],
) error {
	var b strings.Builder
	fmt.Fprintf(&b, "digraph %s {\n", name)
	for _, n := range nodes {
		b.WriteString("\t")
		writeDotID(&b, n.key)
		if nodeAttrs != nil {
			writeDotAttrs(&b, nodeAttrs(n))
		}
		b.WriteString("\n")
	}
	for _, n := range nodes {
		for _, e := range n.IterOut() {
			b.WriteString("\t")
			writeDotID(&b, e.Source.key)
			b.WriteString(" -> ")
			writeDotID(&b, e.Target.key)
			if edgeAttrs != nil {
				writeDotAttrs(&b, edgeAttrs(e))
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())

	return err
}

// Dot renders the container in DOT format, nodes in ToVec order.
func (g *Graph[K, N, E]) Dot(w io.Writer, name string, nodeAttrs NodeAttrsFunc[K, N, E], edgeAttrs EdgeAttrsFunc[K, N, E]) error {
	return WriteDot(w, name, g.ToVec(), nodeAttrs, edgeAttrs)
}

func writeDotID[K comparable](b *strings.Builder, key K) {
	fmt.Fprintf(b, "%q", fmt.Sprint(key))
}

func writeDotAttrs(b *strings.Builder, attrs map[string]string) {
	if len(attrs) == 0 {
		return
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	b.WriteString(" [")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%s=%q", k, attrs[k])
	}
	b.WriteString("]")
}
