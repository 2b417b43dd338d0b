package pathfind

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to a search.
	ErrNilGraph = errors.New("pathfind: graph is nil")

	// ErrSourceNotFound indicates that the source is not in the node set.
	ErrSourceNotFound = fmt.Errorf("pathfind: source %w", core.ErrNodeNotFound)

	// ErrGoalNotFound indicates that the goal is not in the node set.
	ErrGoalNotFound = fmt.Errorf("pathfind: goal %w", core.ErrNodeNotFound)

	// ErrNilHeuristic indicates a guided strategy built without a heuristic.
	ErrNilHeuristic = errors.New("pathfind: heuristic is nil")

	// ErrCyclicPredecessors indicates a predecessor table that loops.
	ErrCyclicPredecessors = errors.New("pathfind: predecessor table contains a cycle")

	// ErrEmptyPath indicates PathCost was given no nodes.
	ErrEmptyPath = errors.New("pathfind: path is empty")

	// ErrNotAnArc indicates two consecutive path nodes that are not joined by an arc.
	ErrNotAnArc = errors.New("pathfind: consecutive path nodes are not an arc")

	// ErrBadMaxCost indicates a negative or NaN cost cap.
	ErrBadMaxCost = errors.New("pathfind: MaxCost must be non-negative")

	// ErrBadImpassable indicates a non-positive or NaN wall threshold.
	ErrBadImpassable = errors.New("pathfind: impassable threshold must be positive")
)

// Strategy selects the priority key of the frontier. It is a closed variant:
// Uninformed (Dijkstra) or Guided by a Heuristic (A*).
type Strategy[ID comparable] struct {
	guided    bool
	heuristic Heuristic[ID]
}

// Uninformed orders the frontier by distance from the source (Dijkstra).
func Uninformed[ID comparable]() Strategy[ID] {
	return Strategy[ID]{}
}

// Guided orders the frontier by distance plus h(node, goal) (A*).
// A nil h is reported as ErrNilHeuristic when the search starts.
func Guided[ID comparable](h Heuristic[ID]) Strategy[ID] {
	return Strategy[ID]{guided: true, heuristic: h}
}

// Informed reports whether the strategy uses a heuristic.
func (s Strategy[ID]) Informed() bool { return s.guided }

// String names the strategy for logs.
func (s Strategy[ID]) String() string {
	if s.guided {
		return "astar"
	}
	return "dijkstra"
}

// Options configures a search.
//
// MaxCost      – relaxations whose tentative cost exceeds this cap are skipped.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// ImpassableAt – arcs with weight ≥ this threshold are treated as walls.
//
//	Must be > 0. Default is +Inf (no walls).
type Options struct {
	MaxCost      float64
	ImpassableAt float64
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns Options with no cost cap and no walls.
func DefaultOptions() Options {
	return Options{
		MaxCost:      math.Inf(1),
		ImpassableAt: math.Inf(1),
	}
}

// WithMaxCost caps the explored cost. A goal farther than c is reported as
// unreachable. Panics on negative or NaN c.
func WithMaxCost(c float64) Option {
	if math.IsNaN(c) || c < 0 {
		panic(ErrBadMaxCost.Error())
	}
	return func(o *Options) {
		o.MaxCost = c
	}
}

// WithImpassable treats arcs whose weight is ≥ t as closed roads.
// Panics on NaN or t ≤ 0.
func WithImpassable(t float64) Option {
	if math.IsNaN(t) || t <= 0 {
		panic(ErrBadImpassable.Error())
	}
	return func(o *Options) {
		o.ImpassableAt = t
	}
}

// Result describes the outcome of one search.
type Result[ID comparable] struct {
	// Path is source → … → goal when Found; [goal] otherwise.
	Path []ID

	// Cost is the sum of arc weights along Path, or +Inf when not Found.
	Cost float64

	// Found reports whether the goal was popped from the frontier.
	Found bool

	// Expanded counts nodes whose out-arcs were relaxed.
	Expanded int

	// Pushed counts frontier insertions, including the source.
	Pushed int

	// Stale counts superseded frontier entries discarded on pop.
	Stale int
}
