package pathfind

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
)

// Dijkstra finds the lowest-cost path from source to goal, ordering the
// frontier by distance alone. See Search for the result contract.
func Dijkstra[ID comparable](g *core.Graph[ID], source, goal ID, opts ...Option) (Result[ID], error) {
	return Search(g, source, goal, Uninformed[ID](), opts...)
}

// AStar finds the lowest-cost path from source to goal, ordering the
// frontier by distance plus h(node, goal). The path is optimal when h is
// admissible. See Search for the result contract.
func AStar[ID comparable](g *core.Graph[ID], source, goal ID, h Heuristic[ID], opts ...Option) (Result[ID], error) {
	return Search(g, source, goal, Guided(h), opts...)
}

// Search runs the shared best-first relaxation loop from source to goal
// with the priority key chosen by strategy.
//
// Returns:
//
//   - Found: Path = source…goal, Cost = sum of its weights.
//   - source == goal: Path = [source], Cost = 0 (no expansion happens).
//   - Exhausted: Path = [goal], Cost = +Inf, Found = false, err == nil.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. A guided strategy must carry a heuristic (ErrNilHeuristic).
//  3. source must be in the node set (ErrSourceNotFound).
//  4. goal must be in the node set (ErrGoalNotFound).
//
// Arcs to nodes outside the node set are skipped silently.
func Search[ID comparable](g *core.Graph[ID], source, goal ID, strategy Strategy[ID], opts ...Option) (Result[ID], error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs before any state is allocated.
	if g == nil {
		return Result[ID]{}, ErrNilGraph
	}
	if strategy.guided && strategy.heuristic == nil {
		return Result[ID]{}, ErrNilHeuristic
	}
	if !g.HasNode(source) {
		return Result[ID]{}, fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}
	if !g.HasNode(goal) {
		return Result[ID]{}, fmt.Errorf("%w: %v", ErrGoalNotFound, goal)
	}

	// 3) Trivial route.
	if source == goal {
		return Result[ID]{Path: []ID{source}, Cost: 0, Found: true}, nil
	}

	// 4) Run the loop on fresh per-call state.
	r := newRunner(g, goal, strategy, cfg)
	r.init(source)
	found := r.process()

	// 5) Reconstruct. prev is acyclic by construction, so the error branch
	//    only guards against a broken invariant.
	path, err := Reconstruct(r.prev, goal)
	if err != nil {
		return Result[ID]{}, err
	}
	res := Result[ID]{
		Path:     path,
		Cost:     math.Inf(1),
		Found:    found,
		Expanded: r.expanded,
		Pushed:   r.pushed,
		Stale:    r.stale,
	}
	if found {
		res.Cost = r.dist[goal]
	}

	return res, nil
}

// runner holds the mutable state of a single search.
type runner[ID comparable] struct {
	g       *core.Graph[ID]  // read-only input
	goal    ID               // target node
	options Options          // cost cap and wall threshold
	key     func(ID) float64 // priority of a node from its current dist
	h       Heuristic[ID]    // nil for Uninformed
	dist    map[ID]float64   // best known cost; absent means +Inf
	prev    map[ID]ID        // predecessor on the best known path
	best    map[ID]float64   // priority recorded at the node's last push
	est     map[ID]float64   // heuristic cache, filled on demand
	pq      *Frontier[ID]    // pending entries, stale ones included

	expanded, pushed, stale int
}

// newRunner wires the priority key for the chosen strategy.
func newRunner[ID comparable](g *core.Graph[ID], goal ID, s Strategy[ID], cfg Options) *runner[ID] {
	r := &runner[ID]{
		g:       g,
		goal:    goal,
		options: cfg,
		dist:    make(map[ID]float64),
		prev:    make(map[ID]ID),
		best:    make(map[ID]float64),
		pq:      NewFrontier[ID](g.Order()),
	}
	if s.guided {
		r.h = s.heuristic
		r.est = make(map[ID]float64)
		r.key = r.guidedKey
	} else {
		r.key = r.distKey
	}

	return r
}

// distKey is the Dijkstra priority: g(v).
func (r *runner[ID]) distKey(v ID) float64 { return r.dist[v] }

// guidedKey is the A* priority: g(v) + h(v, goal). The estimate is computed
// once per node, the first time the node is discovered.
func (r *runner[ID]) guidedKey(v ID) float64 {
	e, ok := r.est[v]
	if !ok {
		e = clampEstimate(r.h.Estimate(v, r.goal))
		r.est[v] = e
	}

	return r.dist[v] + e
}

// init seeds the frontier with the source at distance zero.
func (r *runner[ID]) init(source ID) {
	r.dist[source] = 0
	r.push(source)
}

// push records v's current priority and enqueues it.
func (r *runner[ID]) push(v ID) {
	k := r.key(v)
	r.best[v] = k
	r.pq.Push(k, v)
	r.pushed++
}

// process is the shared loop. It returns true when the goal is popped and
// false when the frontier runs dry.
func (r *runner[ID]) process() bool {
	for {
		// 1) Pop the best entry; an empty frontier means no path.
		k, u, ok := r.pq.PopMin()
		if !ok {
			return false
		}

		// 2) Goal reached. Its first pop always carries its final priority.
		if u == r.goal {
			return true
		}

		// 3) Superseded duplicate: a better entry for u was pushed later.
		if k > r.best[u] {
			r.stale++
			continue
		}

		// 4) Expand.
		r.expanded++
		r.relax(u)
	}
}

// relax tests every out-arc of u and records strict improvements.
func (r *runner[ID]) relax(u ID) {
	du := r.dist[u]
	for v, w := range r.g.Adjacent(u) {
		// Arc into a node the extract does not contain.
		if !r.g.HasNode(v) {
			continue
		}
		// Closed road.
		if w >= r.options.ImpassableAt {
			continue
		}

		nd := du + w
		if nd > r.options.MaxCost {
			continue
		}
		// Strict improvement only; equal costs keep the earlier predecessor.
		if dv, seen := r.dist[v]; seen && nd >= dv {
			continue
		}

		r.dist[v] = nd
		r.prev[v] = u
		r.push(v)
	}
}
