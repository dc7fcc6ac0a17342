package digraph

// record is the internal edge cell. The same record is referenced from
// the source's outbound list and the target's inbound list, so removal
// can match by identity on the twin side.
type record[K comparable, N, E any] struct {
	source *Node[K, N, E]
	target *Node[K, N, E]
	value  E
}

// adjacency is the per-node edge store: two ordered sequences holding
// the edges in Connect order. This flavor is single-threaded; all
// mutation happens through the owning node handle.
type adjacency[K comparable, N, E any] struct {
	outbound []*record[K, N, E]
	inbound  []*record[K, N, E]
}

func (a *adjacency[K, N, E]) lenOutbound() int { return len(a.outbound) }
func (a *adjacency[K, N, E]) lenInbound() int  { return len(a.inbound) }

func (a *adjacency[K, N, E]) pushOutbound(rec *record[K, N, E]) {
	a.outbound = append(a.outbound, rec)
}

func (a *adjacency[K, N, E]) pushInbound(rec *record[K, N, E]) {
	a.inbound = append(a.inbound, rec)
}

// findOutbound returns the first outbound record whose target matches key.
func (a *adjacency[K, N, E]) findOutbound(key K) (*record[K, N, E], bool) {
	for _, rec := range a.outbound {
		if rec.target.key == key {
			return rec, true
		}
	}

	return nil, false
}

// findInbound returns the first inbound record whose source matches key.
func (a *adjacency[K, N, E]) findInbound(key K) (*record[K, N, E], bool) {
	for _, rec := range a.inbound {
		if rec.source.key == key {
			return rec, true
		}
	}

	return nil, false
}

// removeOutbound removes and returns the first outbound record whose
// target matches key, preserving the order of the remainder.
func (a *adjacency[K, N, E]) removeOutbound(key K) (*record[K, N, E], bool) {
	for i, rec := range a.outbound {
		if rec.target.key == key {
			a.outbound = append(a.outbound[:i], a.outbound[i+1:]...)
			return rec, true
		}
	}

	return nil, false
}

// removeOutboundRecord removes rec from the outbound list by identity.
func (a *adjacency[K, N, E]) removeOutboundRecord(rec *record[K, N, E]) {
	for i, r := range a.outbound {
		if r == rec {
			a.outbound = append(a.outbound[:i], a.outbound[i+1:]...)
			return
		}
	}
}

// removeInboundRecord removes rec from the inbound list by identity.
func (a *adjacency[K, N, E]) removeInboundRecord(rec *record[K, N, E]) {
	for i, r := range a.inbound {
		if r == rec {
			a.inbound = append(a.inbound[:i], a.inbound[i+1:]...)
			return
		}
	}
}

func (a *adjacency[K, N, E]) clear() {
	a.outbound = nil
	a.inbound = nil
}

// snapshotOutbound copies the outbound list so callers may mutate
// adjacency while ranging over the result.
func (a *adjacency[K, N, E]) snapshotOutbound() []*record[K, N, E] {
	out := make([]*record[K, N, E], len(a.outbound))
	copy(out, a.outbound)

	return out
}

func (a *adjacency[K, N, E]) snapshotInbound() []*record[K, N, E] {
	in := make([]*record[K, N, E], len(a.inbound))
	copy(in, a.inbound)

	return in
}
