package syncdigraph

// Scc decomposes the container into strongly connected components,
// composed from two traversals in the Kosaraju manner:
//
//  1. A postorder walk from each not-yet-visited node accumulates the
//     nodes in finishing order.
//  2. Popping that order back to front, a transposed depth-first cycle
//     search restricted to unassigned nodes yields one component: the
//     found cycle with its closing duplicate dropped, or a singleton
//     when no cycle comes back to the popped node.
//
// The order of components and of the nodes within one is unspecified.
func (g *Graph[K, N, E]) Scc() [][]*Node[K, N, E] {
	ordering := g.finishingOrder()

	assigned := make(map[K]struct{}, len(ordering))
	var components [][]*Node[K, N, E]
	for i := len(ordering) - 1; i >= 0; i-- {
		n := ordering[i]
		if _, done := assigned[n.key]; done {
			continue
		}
		cycle, ok := n.Dfs().
			Transpose().
			Filter(func(e Edge[K, N, E]) bool {
				_, done := assigned[e.Target.key]
				return !done
			}).
			SearchCycle()
		if !ok {
			assigned[n.key] = struct{}{}
			components = append(components, []*Node[K, N, E]{n})
			continue
		}
		members := cycle.Nodes()
		members = members[:len(members)-1] // drop the duplicated root
		for _, m := range members {
			assigned[m.key] = struct{}{}
		}
		components = append(components, members)
	}

	return components
}

// finishingOrder runs a postorder walk from every node not covered by an
// earlier walk and concatenates the results, giving a full finishing
// order of the container.
func (g *Graph[K, N, E]) finishingOrder() []*Node[K, N, E] {
	visited := make(map[K]struct{}, len(g.nodes))
	ordering := make([]*Node[K, N, E], 0, len(g.nodes))
	for _, n := range g.ToVec() {
		if _, seen := visited[n.key]; seen {
			continue
		}
		partition := n.Postorder().
			Filter(func(e Edge[K, N, E]) bool {
				_, seen := visited[e.Target.key]
				return !seen
			}).
			SearchNodes()
		for _, m := range partition {
			visited[m.key] = struct{}{}
			ordering = append(ordering, m)
		}
	}

	return ordering
}
