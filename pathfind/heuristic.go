package pathfind

// Heuristic estimates the remaining cost from node to goal.
//
// For A* to return optimal paths the estimate must never exceed the true
// remaining cost (admissible). Consistency, h(u) ≤ w(u,v) + h(v), further
// guarantees that no node is expanded twice.
type Heuristic[ID comparable] interface {
	Estimate(node, goal ID) float64
}

// HeuristicFunc adapts a plain function to the Heuristic interface.
type HeuristicFunc[ID comparable] func(node, goal ID) float64

// Estimate calls f(node, goal).
func (f HeuristicFunc[ID]) Estimate(node, goal ID) float64 { return f(node, goal) }

// Zero returns the heuristic that always estimates 0. A* with Zero explores
// exactly like Dijkstra.
func Zero[ID comparable]() Heuristic[ID] {
	return HeuristicFunc[ID](func(_, _ ID) float64 { return 0 })
}

// clampEstimate maps negative and NaN estimates to 0.
func clampEstimate(e float64) float64 {
	if !(e > 0) {
		return 0
	}
	return e
}
