// Package build constructs node-handle graphs from literal
// specifications and parametric generators.
//
// The spec constructors (Digraph, Ungraph, SyncDigraph) take the whole
// topology up front, insert every node before connecting any edge, and
// reject edges naming an absent key — the terse way to declare fixture
// graphs:
//
//	g, err := build.Digraph(
//		build.Nodes[int, struct{}](1, 2, 3),
//		[]build.EdgeSpec[int, int]{{1, 2, 10}, {2, 3, 20}},
//	)
//
// The generators (Cycle, PathGraph, Complete, Star and their undirected
// variants) produce int-keyed standard topologies; node and edge values
// come from functional options and default to zero values.
package build
