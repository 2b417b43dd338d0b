package geo

// Locator resolves a node to its projected position.
type Locator[ID comparable] interface {
	Planar(id ID) (Planar, bool)
}

// Euclidean estimates the remaining cost as the straight-line distance
// between a node and the goal on the projection plane. It satisfies
// pathfind.Heuristic and is admissible whenever every arc length is at
// least the planar distance between its endpoints, which holds for
// lengths measured along the road.
//
// Nodes without a known position estimate 0.
type Euclidean[ID comparable] struct {
	loc Locator[ID]
}

// NewEuclidean returns a heuristic that reads positions from loc.
func NewEuclidean[ID comparable](loc Locator[ID]) Euclidean[ID] {
	return Euclidean[ID]{loc: loc}
}

// Estimate returns the planar distance from node to goal.
func (e Euclidean[ID]) Estimate(node, goal ID) float64 {
	if e.loc == nil {
		return 0
	}
	a, ok := e.loc.Planar(node)
	if !ok {
		return 0
	}
	b, ok := e.loc.Planar(goal)
	if !ok {
		return 0
	}

	return a.Dist(b)
}
