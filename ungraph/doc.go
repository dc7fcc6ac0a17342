// Package ungraph provides an undirected graph built from shared node
// handles.
//
// The surface mirrors package digraph with direction collapsed: Connect
// joins two nodes symmetrically, Iter yields each adjacent edge exactly
// once with the iterated node as the source of the triple, and traversal
// builders have no Transpose.
//
// Internally an edge is still recorded twice. The endpoint that called
// Connect holds the edge in its primary list; the partner holds it in a
// secondary list and reverses it at enumeration time. Directionality is
// a storage convention with no semantic weight.
package ungraph
