// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Read-only queries over a built Graph.
// Concurrency:
//   - Every method is safe for concurrent use; none mutates the receiver.

package core

import (
	"fmt"
	"iter"
)

// Nodes returns the node set in first-insertion order.
// The returned slice is a copy and may be modified by the caller.
// Complexity: O(V).
func (g *Graph[ID]) Nodes() []ID {
	out := make([]ID, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// HasNode reports whether id belongs to the node set.
// Complexity: O(1).
func (g *Graph[ID]) HasNode(id ID) bool {
	_, ok := g.out[id]

	return ok
}

// Order returns |V|.
func (g *Graph[ID]) Order() int { return len(g.nodes) }

// Size returns |E|, counting dangling arcs.
func (g *Graph[ID]) Size() int { return g.arcs }

// Dangling returns the number of arcs whose target is outside the node set.
func (g *Graph[ID]) Dangling() int { return g.dangling }

// Neighbors returns a copy of the out-adjacency of id as neighbor → weight.
//
// Behavior highlights:
//   - A node with no out-arcs yields an empty, non-nil map.
//   - Dangling targets are included; filter them with HasNode if needed.
//
// Errors:
//   - ErrNodeNotFound: id is not in the node set.
//
// Complexity: O(deg(id)).
func (g *Graph[ID]) Neighbors(id ID) (map[ID]float64, error) {
	adj, ok := g.out[id]
	if !ok {
		return nil, fmt.Errorf("neighbors of %v: %w", id, ErrNodeNotFound)
	}
	out := make(map[ID]float64, len(adj.arcs))
	for _, a := range adj.arcs {
		out[a.To] = a.Weight
	}

	return out, nil
}

// Adjacent yields the out-arcs of id in insertion order without allocating.
// An unknown id yields nothing; callers that must distinguish "unknown" from
// "no out-arcs" use HasNode first.
//
// Complexity: O(1) lookup, O(deg(id)) to drain.
func (g *Graph[ID]) Adjacent(id ID) iter.Seq2[ID, float64] {
	return func(yield func(ID, float64) bool) {
		adj, ok := g.out[id]
		if !ok {
			return
		}
		for _, a := range adj.arcs {
			if !yield(a.To, a.Weight) {
				return
			}
		}
	}
}

// Weight returns the weight of the arc from→to, if present.
// Complexity: O(1).
func (g *Graph[ID]) Weight(from, to ID) (float64, bool) {
	adj, ok := g.out[from]
	if !ok {
		return 0, false
	}
	i, ok := adj.index[to]
	if !ok {
		return 0, false
	}

	return adj.arcs[i].Weight, true
}

// OutDegree returns the number of out-arcs of id, or ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph[ID]) OutDegree(id ID) (int, error) {
	adj, ok := g.out[id]
	if !ok {
		return 0, fmt.Errorf("out-degree of %v: %w", id, ErrNodeNotFound)
	}

	return len(adj.arcs), nil
}
