package syncdigraph_test

import (
	"testing"

	"github.com/juliuskoskela/gdsl/syncdigraph"
)

// grid builds a w×w directed lattice and returns the corner nodes.
func grid(w int) (*node, *node) {
	nodes := make([]*node, w*w)
	for i := range nodes {
		nodes[i] = unit(i)
	}
	for r := 0; r < w; r++ {
		for c := 0; c < w; c++ {
			i := r*w + c
			if c+1 < w {
				nodes[i].Connect(nodes[i+1], 1)
			}
			if r+1 < w {
				nodes[i].Connect(nodes[i+w], 1)
			}
		}
	}

	return nodes[0], nodes[w*w-1]
}

func BenchmarkParBfs(b *testing.B) {
	source, sink := grid(48)
	sinkKey := sink.Key()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, ok := source.ParBfs().SearchEdges(func(e syncdigraph.Edge[int, struct{}, int]) syncdigraph.Verdict {
			if e.Target.Key() == sinkKey {
				return syncdigraph.Finish
			}
			return syncdigraph.Include
		})
		if !ok {
			b.Fatal("sink not reached")
		}
	}
}

func BenchmarkBfsSequential(b *testing.B) {
	source, sink := grid(48)
	sinkKey := sink.Key()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := source.Bfs().Target(sinkKey).Search(); !ok {
			b.Fatal("sink not reached")
		}
	}
}
