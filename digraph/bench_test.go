package digraph_test

import (
	"testing"
)

// chain builds a directed path of n nodes.
func chain(n int) *node {
	root := unit(0)
	prev := root
	for i := 1; i < n; i++ {
		next := unit(i)
		prev.Connect(next, struct{}{})
		prev = next
	}

	return root
}

func BenchmarkConnect(b *testing.B) {
	hub := unit(0)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		hub.Connect(unit(i+1), struct{}{})
	}
}

func BenchmarkDfsSearch(b *testing.B) {
	root := chain(1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := root.Dfs().Target(1023).Search(); !ok {
			b.Fatal("target not found")
		}
	}
}

func BenchmarkBfsSearchPath(b *testing.B) {
	root := chain(1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := root.Bfs().Target(1023).SearchPath(); !ok {
			b.Fatal("target not found")
		}
	}
}
