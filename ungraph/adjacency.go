package ungraph

// record is the internal edge cell, shared between both endpoints. The
// source is the endpoint that recorded the edge; the distinction only
// matters for storage bookkeeping and single-emission enumeration.
type record[K comparable, N, E any] struct {
	source *Node[K, N, E]
	target *Node[K, N, E]
	value  E
}

// adjacency is the per-node edge store: the primary list holds edges
// this node recorded, the secondary list holds edges recorded by the
// partner endpoint. Enumeration walks primary then reversed secondary.
type adjacency[K comparable, N, E any] struct {
	primary   []*record[K, N, E]
	secondary []*record[K, N, E]
}

func (a *adjacency[K, N, E]) lenPrimary() int   { return len(a.primary) }
func (a *adjacency[K, N, E]) lenSecondary() int { return len(a.secondary) }

func (a *adjacency[K, N, E]) pushPrimary(rec *record[K, N, E]) {
	a.primary = append(a.primary, rec)
}

func (a *adjacency[K, N, E]) pushSecondary(rec *record[K, N, E]) {
	a.secondary = append(a.secondary, rec)
}

// removePrimary removes and returns the first primary record whose
// partner matches key.
func (a *adjacency[K, N, E]) removePrimary(key K) (*record[K, N, E], bool) {
	for i, rec := range a.primary {
		if rec.target.key == key {
			a.primary = append(a.primary[:i], a.primary[i+1:]...)
			return rec, true
		}
	}

	return nil, false
}

// removeSecondary removes and returns the first secondary record whose
// partner matches key.
func (a *adjacency[K, N, E]) removeSecondary(key K) (*record[K, N, E], bool) {
	for i, rec := range a.secondary {
		if rec.source.key == key {
			a.secondary = append(a.secondary[:i], a.secondary[i+1:]...)
			return rec, true
		}
	}

	return nil, false
}

func (a *adjacency[K, N, E]) removePrimaryRecord(rec *record[K, N, E]) {
	for i, r := range a.primary {
		if r == rec {
			a.primary = append(a.primary[:i], a.primary[i+1:]...)
			return
		}
	}
}

func (a *adjacency[K, N, E]) removeSecondaryRecord(rec *record[K, N, E]) {
	for i, r := range a.secondary {
		if r == rec {
			a.secondary = append(a.secondary[:i], a.secondary[i+1:]...)
			return
		}
	}
}

func (a *adjacency[K, N, E]) clear() {
	a.primary = nil
	a.secondary = nil
}

func (a *adjacency[K, N, E]) snapshotPrimary() []*record[K, N, E] {
	out := make([]*record[K, N, E], len(a.primary))
	copy(out, a.primary)

	return out
}

func (a *adjacency[K, N, E]) snapshotSecondary() []*record[K, N, E] {
	out := make([]*record[K, N, E], len(a.secondary))
	copy(out, a.secondary)

	return out
}
