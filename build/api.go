package build

import (
	"fmt"

	"github.com/juliuskoskela/gdsl/digraph"
	"github.com/juliuskoskela/gdsl/syncdigraph"
	"github.com/juliuskoskela/gdsl/ungraph"
)

// NodeSpec declares one node of a literal graph.
type NodeSpec[K comparable, N any] struct {
	Key   K
	Value N
}

// EdgeSpec declares one edge of a literal graph by endpoint keys.
type EdgeSpec[K comparable, E any] struct {
	Source K
	Target K
	Value  E
}

// Nodes is sugar for a run of zero-valued node specs.
func Nodes[K comparable, N any](keys ...K) []NodeSpec[K, N] {
	specs := make([]NodeSpec[K, N], len(keys))
	for i, k := range keys {
		specs[i].Key = k
	}

	return specs
}

// Digraph builds a directed container from literal specs: every node is
// inserted first, then every edge is connected in listed order. Reports
// ErrDuplicateKey for a repeated node key and ErrUnknownEndpoint for an
// edge naming an absent key.
func Digraph[K comparable, N, E any](nodes []NodeSpec[K, N], edges []EdgeSpec[K, E]) (*digraph.Graph[K, N, E], error) {
	g := digraph.NewGraph[K, N, E]()
	for _, ns := range nodes {
		if !g.Insert(digraph.New[K, N, E](ns.Key, ns.Value)) {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, ns.Key)
		}
	}
	for _, es := range edges {
		src, ok := g.Get(es.Source)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnknownEndpoint, es.Source)
		}
		tgt, ok := g.Get(es.Target)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnknownEndpoint, es.Target)
		}
		src.Connect(tgt, es.Value)
	}

	return g, nil
}

// Ungraph builds an undirected container from literal specs. Each edge
// spec connects its endpoints once; the source key is the recording
// endpoint.
func Ungraph[K comparable, N, E any](nodes []NodeSpec[K, N], edges []EdgeSpec[K, E]) (*ungraph.Graph[K, N, E], error) {
	g := ungraph.NewGraph[K, N, E]()
	for _, ns := range nodes {
		if !g.Insert(ungraph.New[K, N, E](ns.Key, ns.Value)) {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, ns.Key)
		}
	}
	for _, es := range edges {
		src, ok := g.Get(es.Source)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnknownEndpoint, es.Source)
		}
		tgt, ok := g.Get(es.Target)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnknownEndpoint, es.Target)
		}
		src.Connect(tgt, es.Value)
	}

	return g, nil
}

// SyncDigraph builds a concurrent directed container from literal specs.
func SyncDigraph[K comparable, N, E any](nodes []NodeSpec[K, N], edges []EdgeSpec[K, E]) (*syncdigraph.Graph[K, N, E], error) {
	g := syncdigraph.NewGraph[K, N, E]()
	for _, ns := range nodes {
		if !g.Insert(syncdigraph.New[K, N, E](ns.Key, ns.Value)) {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, ns.Key)
		}
	}
	for _, es := range edges {
		src, ok := g.Get(es.Source)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnknownEndpoint, es.Source)
		}
		tgt, ok := g.Get(es.Target)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnknownEndpoint, es.Target)
		}
		src.Connect(tgt, es.Value)
	}

	return g, nil
}
