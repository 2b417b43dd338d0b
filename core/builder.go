// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Incremental graph assembly and weight validation.
// Determinism:
//   - Node order and per-node arc order follow the order of insertion.
// AI-HINT (file):
//   - Use AddEdge for hand-built graphs; AddRecord for raw road records
//     whose target may be missing from the extract.

package core

import (
	"fmt"
	"math"
)

// NewBuilder returns an empty Builder.
// Complexity: O(1).
func NewBuilder[ID comparable]() *Builder[ID] {
	return &Builder[ID]{
		g: &Graph[ID]{out: make(map[ID]*adjacency[ID])},
	}
}

// AddNode inserts id into the node set. Adding an existing node is a no-op.
//
// Errors:
//   - ErrBuilderFrozen: if Build() was already called.
//
// Complexity: O(1) amortized.
func (b *Builder[ID]) AddNode(id ID) error {
	if b.frozen {
		return ErrBuilderFrozen
	}
	b.ensureNode(id)

	return nil
}

// AddEdge inserts the arc from→to with weight w and registers both endpoints.
//
// Behavior highlights:
//   - Repeated arcs between the same ordered pair keep the smaller weight.
//   - Self-loops are stored; they never improve a shortest path.
//
// Errors:
//   - ErrNegativeWeight, ErrNonFiniteWeight: invalid w (wrapped with the arc).
//   - ErrBuilderFrozen: if Build() was already called.
//
// Complexity: O(1) amortized.
func (b *Builder[ID]) AddEdge(from, to ID, w float64) error {
	if err := b.AddRecord(from, to, w); err != nil {
		return err
	}
	b.ensureNode(to)

	return nil
}

// AddRecord inserts the arc from→to with weight w, registering only the
// source node. Records sharing a source merge into one adjacency mapping.
// The target is left undeclared unless it is added by other means, which is
// how arcs leaving the extracted area are represented.
//
// Errors:
//   - ErrNegativeWeight, ErrNonFiniteWeight: invalid w (wrapped with the arc).
//   - ErrBuilderFrozen: if Build() was already called.
//
// Complexity: O(1) amortized.
func (b *Builder[ID]) AddRecord(from, to ID, w float64) error {
	if b.frozen {
		return ErrBuilderFrozen
	}
	if err := validateWeight(w); err != nil {
		return fmt.Errorf("arc %v→%v weight=%g: %w", from, to, w, err)
	}

	adj := b.ensureNode(from)
	if i, ok := adj.index[to]; ok {
		// Parallel arc: only a cheaper one changes the graph.
		if w < adj.arcs[i].Weight {
			adj.arcs[i].Weight = w
		}
		return nil
	}
	adj.index[to] = len(adj.arcs)
	adj.arcs = append(adj.arcs, Arc[ID]{To: to, Weight: w})
	b.g.arcs++

	return nil
}

// Build freezes the builder and returns the assembled Graph. Further
// mutations return ErrBuilderFrozen; calling Build again returns the same
// Graph.
//
// Complexity: O(E) to count dangling arcs.
func (b *Builder[ID]) Build() *Graph[ID] {
	if !b.frozen {
		b.frozen = true
		dangling := 0
		for _, id := range b.g.nodes {
			for _, a := range b.g.out[id].arcs {
				if _, ok := b.g.out[a.To]; !ok {
					dangling++
				}
			}
		}
		b.g.dangling = dangling
	}

	return b.g
}

// ensureNode returns the adjacency of id, registering the node if missing.
func (b *Builder[ID]) ensureNode(id ID) *adjacency[ID] {
	adj, ok := b.g.out[id]
	if !ok {
		adj = &adjacency[ID]{index: make(map[ID]int)}
		b.g.out[id] = adj
		b.g.nodes = append(b.g.nodes, id)
	}

	return adj
}

// validateWeight enforces the finite, non-negative weight invariant.
func validateWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrNonFiniteWeight
	}
	if w < 0 {
		return ErrNegativeWeight
	}

	return nil
}
