// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Arc and Builder declarations plus sentinel errors.
// Policy:
//   - Graph is read-only once returned by Builder.Build().
//   - Builder is single-goroutine; it is never shared with readers.

package core

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrNodeNotFound indicates a query referenced a node outside the node set.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNegativeWeight indicates an arc with a weight below zero.
	ErrNegativeWeight = errors.New("core: negative arc weight")

	// ErrNonFiniteWeight indicates an arc weight that is NaN or infinite.
	ErrNonFiniteWeight = errors.New("core: non-finite arc weight")

	// ErrBuilderFrozen indicates a mutation attempted after Build().
	ErrBuilderFrozen = errors.New("core: builder already built")
)

// Arc is a single directed, weighted connection leaving a node.
type Arc[ID comparable] struct {
	// To is the target node; it may be absent from the node set (see AddRecord).
	To ID

	// Weight is the finite, non-negative traversal cost.
	Weight float64
}

// adjacency stores the out-arcs of one node in insertion order together
// with an index used to merge duplicate targets in O(1).
type adjacency[ID comparable] struct {
	arcs  []Arc[ID]
	index map[ID]int
}

// Graph is an immutable weighted directed graph.
//
// nodes keeps first-insertion order for deterministic enumeration; out maps
// every node in the node set to its (possibly empty) adjacency.
type Graph[ID comparable] struct {
	nodes    []ID
	out      map[ID]*adjacency[ID]
	arcs     int // total number of stored arcs
	dangling int // arcs whose target is outside the node set
}

// Builder accumulates nodes and arcs and produces a Graph.
// The zero value is not usable; call NewBuilder.
type Builder[ID comparable] struct {
	g      *Graph[ID]
	frozen bool
}
