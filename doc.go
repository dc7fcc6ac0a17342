// Package gdsl is a graph data-structure library built around shared
// node handles.
//
// Nodes are values you hold directly: a node owns its key, its value,
// and its adjacency, and edges keep partner nodes alive without a
// central registry. Traversals attach to any node and configure as a
// builder pipeline before running:
//
//	path, ok := root.Bfs().Target(sink).SearchPath()
//
// The library ships three graph flavors and their collaborators:
//
//	digraph/     — sequential directed nodes, DFS/BFS/PFS/ordered walks,
//	               paths, the flat container with SCC, DOT export, codec
//	ungraph/     — the undirected flavor of the same surface
//	syncdigraph/ — the concurrent directed flavor: RWMutex adjacency,
//	               atomic visit claims, and a parallel BFS engine
//	build/       — literal graph construction and topology generators
//
// All four traversal kinds share one shape — a frontier, a visited set,
// and an edge tree for path reconstruction — and differ only in the
// frontier container: stack, FIFO queue, priority heap, or ordered
// recursion.
//
//	go get github.com/juliuskoskela/gdsl
package gdsl
