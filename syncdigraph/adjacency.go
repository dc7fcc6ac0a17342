package syncdigraph

import (
	"sync"
	"sync/atomic"
)

// record is the internal edge cell, shared between the source's
// outbound list and the target's inbound list. The claim bit belongs to
// the parallel BFS engine; it does not protect the record's data.
type record[K comparable, N, E any] struct {
	source *Node[K, N, E]
	target *Node[K, N, E]
	value  E
	claim  atomic.Bool
}

// tryClose claims the record with an OPEN→CLOSED compare-exchange.
func (r *record[K, N, E]) tryClose() bool { return r.claim.CompareAndSwap(false, true) }

// open releases the record's claim.
func (r *record[K, N, E]) open() { r.claim.Store(false) }

// adjacency is the per-node edge store: two ordered sequences guarded
// by a reader-writer lock. Many iterators coexist; a writer excludes
// all.
type adjacency[K comparable, N, E any] struct {
	mu       sync.RWMutex
	outbound []*record[K, N, E]
	inbound  []*record[K, N, E]
}

func (a *adjacency[K, N, E]) lenOutbound() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return len(a.outbound)
}

func (a *adjacency[K, N, E]) lenInbound() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return len(a.inbound)
}

func (a *adjacency[K, N, E]) pushOutbound(rec *record[K, N, E]) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.outbound = append(a.outbound, rec)
}

func (a *adjacency[K, N, E]) pushInbound(rec *record[K, N, E]) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.inbound = append(a.inbound, rec)
}

// findOutbound returns the first outbound record whose target matches key.
func (a *adjacency[K, N, E]) findOutbound(key K) (*record[K, N, E], bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	for _, rec := range a.outbound {
		if rec.target.key == key {
			return rec, true
		}
	}

	return nil, false
}

// findInbound returns the first inbound record whose source matches key.
func (a *adjacency[K, N, E]) findInbound(key K) (*record[K, N, E], bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

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
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, rec := range a.outbound {
		if rec.target.key == key {
			a.outbound = append(a.outbound[:i], a.outbound[i+1:]...)
			return rec, true
		}
	}

	return nil, false
}

func (a *adjacency[K, N, E]) removeOutboundRecord(rec *record[K, N, E]) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, r := range a.outbound {
		if r == rec {
			a.outbound = append(a.outbound[:i], a.outbound[i+1:]...)
			return
		}
	}
}

func (a *adjacency[K, N, E]) removeInboundRecord(rec *record[K, N, E]) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, r := range a.inbound {
		if r == rec {
			a.inbound = append(a.inbound[:i], a.inbound[i+1:]...)
			return
		}
	}
}

func (a *adjacency[K, N, E]) clear() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.outbound = nil
	a.inbound = nil
}

// snapshotOutbound copies the outbound list under the read lock.
func (a *adjacency[K, N, E]) snapshotOutbound() []*record[K, N, E] {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]*record[K, N, E], len(a.outbound))
	copy(out, a.outbound)

	return out
}

func (a *adjacency[K, N, E]) snapshotInbound() []*record[K, N, E] {
	a.mu.RLock()
	defer a.mu.RUnlock()

	in := make([]*record[K, N, E], len(a.inbound))
	copy(in, a.inbound)

	return in
}
