// Package core defines the immutable weighted directed Graph consumed by the
// shortest-path engine, and the Builder that assembles it from raw arcs.
//
// A Graph G = (V, E) maps every node identifier to an ordered set of
// out-arcs, each carrying a finite, non-negative weight:
//
//	node → { neighbor → weight }
//
// Key properties:
//
//   - Generic node identifiers: any comparable type (OSM int64 ids, strings, …).
//   - Immutable after Build(): no method mutates a Graph, so one instance may
//     be shared by any number of concurrent readers without locking.
//   - Deterministic iteration: Nodes() and Adjacent() yield elements in
//     first-insertion order, so repeated searches over the same Graph are
//     reproducible even when several paths tie.
//   - O(1) amortized neighbor lookup.
//
// Malformed road data:
//
//	Real-world extracts contain arcs whose target lies outside the node set
//	(the target was clipped away, or never declared). Builder.AddRecord keeps
//	such arcs verbatim without registering the target; HasNode(target) stays
//	false and consumers decide how to treat them. Builder.AddEdge registers
//	both endpoints and is the normal entry point for hand-built graphs.
//
// Weights:
//
//	Negative weights break every label-setting shortest-path algorithm and
//	are rejected at construction time (ErrNegativeWeight). NaN and ±Inf are
//	rejected as well (ErrNonFiniteWeight). Parallel arcs between the same
//	ordered pair collapse to the smallest weight.
//
// Errors:
//
//	ErrNodeNotFound    - a query referenced a node outside the node set.
//	ErrNegativeWeight  - an arc weight is below zero.
//	ErrNonFiniteWeight - an arc weight is NaN or infinite.
//	ErrBuilderFrozen   - the Builder was used after Build().
//
// Example:
//
//	b := core.NewBuilder[string]()
//	_ = b.AddEdge("A", "B", 1)
//	_ = b.AddEdge("B", "C", 2)
//	g := b.Build()
//	nbrs, _ := g.Neighbors("A") // map[B:1]
package core
