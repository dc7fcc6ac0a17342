package build

import (
	"github.com/juliuskoskela/gdsl/digraph"
	"github.com/juliuskoskela/gdsl/syncdigraph"
	"github.com/juliuskoskela/gdsl/ungraph"
)

// Cycle generates the directed cycle 0→1→…→n-1→0. Requires n ≥ 1; a
// single node yields a self-loop.
func Cycle[N, E any](n int, opts ...Option[N, E]) (*digraph.Graph[int, N, E], error) {
	if n < 1 {
		return nil, ErrTooFewNodes
	}
	cfg := resolve(opts)
	g, nodes := digraphNodes[N, E](n, cfg)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		nodes[i].Connect(nodes[j], cfg.edge(i, j))
	}

	return g, nil
}

// PathGraph generates the directed path 0→1→…→n-1. Requires n ≥ 1.
func PathGraph[N, E any](n int, opts ...Option[N, E]) (*digraph.Graph[int, N, E], error) {
	if n < 1 {
		return nil, ErrTooFewNodes
	}
	cfg := resolve(opts)
	g, nodes := digraphNodes[N, E](n, cfg)
	for i := 0; i+1 < n; i++ {
		nodes[i].Connect(nodes[i+1], cfg.edge(i, i+1))
	}

	return g, nil
}

// Complete generates the complete directed graph on n nodes: one edge
// u→v for every ordered pair of distinct nodes. Requires n ≥ 1.
func Complete[N, E any](n int, opts ...Option[N, E]) (*digraph.Graph[int, N, E], error) {
	if n < 1 {
		return nil, ErrTooFewNodes
	}
	cfg := resolve(opts)
	g, nodes := digraphNodes[N, E](n, cfg)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v {
				nodes[u].Connect(nodes[v], cfg.edge(u, v))
			}
		}
	}

	return g, nil
}

// Star generates the directed star with hub 0 and leaves 1…n. Requires
// n ≥ 1 leaves.
func Star[N, E any](n int, opts ...Option[N, E]) (*digraph.Graph[int, N, E], error) {
	if n < 1 {
		return nil, ErrTooFewNodes
	}
	cfg := resolve(opts)
	g, nodes := digraphNodes[N, E](n+1, cfg)
	for i := 1; i <= n; i++ {
		nodes[0].Connect(nodes[i], cfg.edge(0, i))
	}

	return g, nil
}

// UngraphCycle generates the undirected cycle 0–1–…–n-1–0. Requires
// n ≥ 3; smaller rings collapse into parallel edges or loops.
func UngraphCycle[N, E any](n int, opts ...Option[N, E]) (*ungraph.Graph[int, N, E], error) {
	if n < 3 {
		return nil, ErrTooFewNodes
	}
	cfg := resolve(opts)
	g, nodes := ungraphNodes[N, E](n, cfg)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		nodes[i].Connect(nodes[j], cfg.edge(i, j))
	}

	return g, nil
}

// UngraphPathGraph generates the undirected path 0–1–…–n-1. Requires
// n ≥ 1.
func UngraphPathGraph[N, E any](n int, opts ...Option[N, E]) (*ungraph.Graph[int, N, E], error) {
	if n < 1 {
		return nil, ErrTooFewNodes
	}
	cfg := resolve(opts)
	g, nodes := ungraphNodes[N, E](n, cfg)
	for i := 0; i+1 < n; i++ {
		nodes[i].Connect(nodes[i+1], cfg.edge(i, i+1))
	}

	return g, nil
}

// UngraphComplete generates the complete undirected graph on n nodes:
// one edge per unordered pair, recorded by the lower-indexed endpoint.
// Requires n ≥ 1.
func UngraphComplete[N, E any](n int, opts ...Option[N, E]) (*ungraph.Graph[int, N, E], error) {
	if n < 1 {
		return nil, ErrTooFewNodes
	}
	cfg := resolve(opts)
	g, nodes := ungraphNodes[N, E](n, cfg)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			nodes[u].Connect(nodes[v], cfg.edge(u, v))
		}
	}

	return g, nil
}

// UngraphStar generates the undirected star with hub 0 and leaves 1…n.
// Requires n ≥ 1 leaves.
func UngraphStar[N, E any](n int, opts ...Option[N, E]) (*ungraph.Graph[int, N, E], error) {
	if n < 1 {
		return nil, ErrTooFewNodes
	}
	cfg := resolve(opts)
	g, nodes := ungraphNodes[N, E](n+1, cfg)
	for i := 1; i <= n; i++ {
		nodes[0].Connect(nodes[i], cfg.edge(0, i))
	}

	return g, nil
}

// SyncCycle generates the directed cycle 0→1→…→n-1→0 over concurrent
// handles. Requires n ≥ 1.
func SyncCycle[N, E any](n int, opts ...Option[N, E]) (*syncdigraph.Graph[int, N, E], error) {
	if n < 1 {
		return nil, ErrTooFewNodes
	}
	cfg := resolve(opts)
	g, nodes := syncdigraphNodes[N, E](n, cfg)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		nodes[i].Connect(nodes[j], cfg.edge(i, j))
	}

	return g, nil
}

// SyncPathGraph generates the directed path 0→1→…→n-1 over concurrent
// handles. Requires n ≥ 1.
func SyncPathGraph[N, E any](n int, opts ...Option[N, E]) (*syncdigraph.Graph[int, N, E], error) {
	if n < 1 {
		return nil, ErrTooFewNodes
	}
	cfg := resolve(opts)
	g, nodes := syncdigraphNodes[N, E](n, cfg)
	for i := 0; i+1 < n; i++ {
		nodes[i].Connect(nodes[i+1], cfg.edge(i, i+1))
	}

	return g, nil
}

// SyncComplete generates the complete directed graph on n concurrent
// nodes. Requires n ≥ 1.
func SyncComplete[N, E any](n int, opts ...Option[N, E]) (*syncdigraph.Graph[int, N, E], error) {
	if n < 1 {
		return nil, ErrTooFewNodes
	}
	cfg := resolve(opts)
	g, nodes := syncdigraphNodes[N, E](n, cfg)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v {
				nodes[u].Connect(nodes[v], cfg.edge(u, v))
			}
		}
	}

	return g, nil
}

// SyncStar generates the directed star with hub 0 and leaves 1…n over
// concurrent handles. Requires n ≥ 1 leaves.
func SyncStar[N, E any](n int, opts ...Option[N, E]) (*syncdigraph.Graph[int, N, E], error) {
	if n < 1 {
		return nil, ErrTooFewNodes
	}
	cfg := resolve(opts)
	g, nodes := syncdigraphNodes[N, E](n+1, cfg)
	for i := 1; i <= n; i++ {
		nodes[0].Connect(nodes[i], cfg.edge(0, i))
	}

	return g, nil
}

// digraphNodes inserts n zero-indexed nodes and returns them by index.
func digraphNodes[N, E any](n int, cfg config[N, E]) (*digraph.Graph[int, N, E], []*digraph.Node[int, N, E]) {
	g := digraph.NewGraph[int, N, E]()
	nodes := make([]*digraph.Node[int, N, E], n)
	for i := 0; i < n; i++ {
		nodes[i] = digraph.New[int, N, E](i, cfg.node(i))
		g.Insert(nodes[i])
	}

	return g, nodes
}

func ungraphNodes[N, E any](n int, cfg config[N, E]) (*ungraph.Graph[int, N, E], []*ungraph.Node[int, N, E]) {
	g := ungraph.NewGraph[int, N, E]()
	nodes := make([]*ungraph.Node[int, N, E], n)
	for i := 0; i < n; i++ {
		nodes[i] = ungraph.New[int, N, E](i, cfg.node(i))
		g.Insert(nodes[i])
	}

	return g, nodes
}

func syncdigraphNodes[N, E any](n int, cfg config[N, E]) (*syncdigraph.Graph[int, N, E], []*syncdigraph.Node[int, N, E]) {
	g := syncdigraph.NewGraph[int, N, E]()
	nodes := make([]*syncdigraph.Node[int, N, E], n)
	for i := 0; i < n; i++ {
		nodes[i] = syncdigraph.New[int, N, E](i, cfg.node(i))
		g.Insert(nodes[i])
	}

	return g, nodes
}
