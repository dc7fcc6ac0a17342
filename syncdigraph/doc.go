// Package syncdigraph provides the concurrent flavor of the directed
// node-handle graph.
//
// The surface mirrors package digraph. Each node's adjacency is guarded
// by a sync.RWMutex, so any number of iterators and traversals coexist
// with occasional writers; Connect, Disconnect and Isolate are safe to
// call from multiple goroutines. Races between writers targeting the
// same edge pair are the client's responsibility.
//
// Each node and each edge additionally carry an atomic claim bit used
// only by the parallel breadth-first engine (Node.ParBfs) to guarantee
// single-visit across workers:
//
//	path, ok := source.ParBfs().Search(func(e Edge) Verdict {
//		if e.Target.Key() == sink {
//			return Finish
//		}
//		return Include
//	})
//
// The engine expands the frontier level-synchronously: workers race to
// claim (edge, target) pairs with OPEN→CLOSED compare-exchanges, the
// user closure judges each claimed edge, and a shared termination flag
// stops the loop after a Finish verdict. Every claim is released on
// exit, success or not.
package syncdigraph
