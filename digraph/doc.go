// Package digraph provides a directed graph built from shared node handles.
//
// A Node is a (key, value, adjacency) cell that clients hold directly;
// nodes do not depend on a graph container. Two nodes are equal when their
// keys are equal. Edges are recorded twice, once in the source's outbound
// list and once in the target's inbound list, and enumerate in insertion
// order.
//
// Traversals attach to a root node and configure as a builder pipeline:
//
//	path, ok := a.Bfs().Target(k).SearchPath()
//
// Four traversal kinds share the same surface and differ only in their
// frontier: Dfs (stack), Bfs (queue), Pfs (priority heap over node values),
// and Preorder/Postorder (recursive ordered walks). Each exposes Search,
// SearchPath, SearchCycle, SearchNodes and SearchEdges; ordered walks
// expose the last two.
//
// The package also carries the flat Graph container (a key→node map with
// root/leaf/orphan queries and SCC decomposition), DOT export, and a
// YAML/JSON codec for the container.
//
// This flavor is single-threaded; see package syncdigraph for the
// concurrent flavor.
package digraph
