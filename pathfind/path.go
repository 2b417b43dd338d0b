package pathfind

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvroute/core"
)

// Reconstruct walks prev from goal back to a node without predecessor and
// returns the route in source → goal order. A goal without predecessor
// yields [goal].
//
// Errors:
//   - ErrCyclicPredecessors: the chain revisits a node.
//
// Complexity: O(path length).
func Reconstruct[ID comparable](prev map[ID]ID, goal ID) ([]ID, error) {
	path := []ID{goal}
	cur := goal
	for steps := 0; ; steps++ {
		p, ok := prev[cur]
		if !ok {
			break
		}
		// An acyclic chain has at most len(prev) links.
		if steps >= len(prev) {
			return nil, ErrCyclicPredecessors
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)

	return path, nil
}

// PathCost checks that every consecutive pair of path is an arc of g and
// returns the sum of their weights. A single-node path costs 0.
//
// Errors:
//   - ErrNilGraph, ErrEmptyPath.
//   - core.ErrNodeNotFound: the first node is not in g.
//   - ErrNotAnArc: a pair is not joined by an arc (wrapped with the pair).
func PathCost[ID comparable](g *core.Graph[ID], path []ID) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if len(path) == 0 {
		return 0, ErrEmptyPath
	}
	if !g.HasNode(path[0]) {
		return 0, fmt.Errorf("path start %v: %w", path[0], core.ErrNodeNotFound)
	}

	total := 0.0
	for i := 1; i < len(path); i++ {
		w, ok := g.Weight(path[i-1], path[i])
		if !ok {
			return 0, fmt.Errorf("%w: %v→%v", ErrNotAnArc, path[i-1], path[i])
		}
		total += w
	}

	return total, nil
}
