// Package pathfind implements single-source, single-target best-first search
// over a core.Graph in two modes that share one relaxation loop:
//
//   - Dijkstra (uninformed): the frontier is ordered by g(v), the best known
//     cost from the source.
//   - A* (heuristic-guided): the frontier is ordered by g(v) + h(v, goal),
//     where h is a pluggable Heuristic.
//
// Both modes are configurations of the same runner; they differ only in the
// priority-key function installed at start-up.
//
// Algorithm (per search call):
//
//  1. dist[source] = 0, every other node is at +∞ (absent); push source.
//  2. Pop the minimum-key entry. Empty frontier ⇒ Exhausted.
//  3. Popped node == goal ⇒ Found.
//  4. Popped key worse than the node's recorded priority ⇒ stale, skip.
//  5. For each out-arc (u → v, w): skip v if it is not in the node set
//     (malformed road data), otherwise tentative = dist[u] + w.
//  6. tentative < dist[v] ⇒ record it, set prev[v] = u, push (key(v), v).
//  7. Repeat from 2.
//
// Lazy deletion:
//
//	The Frontier never decreases keys in place. An improved node is pushed
//	again and the superseded entry is recognised as stale when popped, by
//	comparing its key against the authoritative recorded priority.
//
// Results:
//
//   - source == goal: Path = [source], Cost = 0, Found = true.
//   - unreachable goal: Path = [goal], Cost = +Inf, Found = false, err == nil.
//     The degenerate singleton is the established contract; check Found (or
//     math.IsInf(Cost, 1)) to tell "no route" apart from a real path.
//
// Heuristics:
//
//	A* returns optimal paths when h is admissible (never overestimates the
//	remaining cost); with a consistent h no node is expanded twice. An
//	overestimating h still terminates but may yield a suboptimal path.
//	Estimates below zero or NaN are clamped to zero.
//
// Complexity:
//
//   - Time:  O((V + E) log E) with the binary-heap frontier.
//   - Space: O(V + E) worst case (E pending entries under lazy deletion).
//
// Concurrency:
//
//	Each call owns its distance, predecessor and frontier state. The Graph is
//	only read, so independent searches may run in parallel on one Graph.
//
// Errors (sentinel):
//
//	ErrNilGraph        - the graph pointer is nil.
//	ErrSourceNotFound  - source is outside the node set (wraps core.ErrNodeNotFound).
//	ErrGoalNotFound    - goal is outside the node set (wraps core.ErrNodeNotFound).
//	ErrNilHeuristic    - A* requested without a heuristic.
//	ErrCyclicPredecessors - Reconstruct was given a predecessor cycle.
//	ErrEmptyPath, ErrNotAnArc - PathCost validation failures.
package pathfind
