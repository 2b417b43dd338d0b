// Package planner answers "how do I get from here to there" over a
// roadnet.Network: it snaps both coordinates to the nearest intersections,
// runs Dijkstra or A*, and turns the winning route into a length and a
// street-by-street itinerary.
package planner

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/lvroute/geo"
	"github.com/katalvlaran/lvroute/pathfind"
	"github.com/katalvlaran/lvroute/roadnet"
)

var (
	// ErrNoRoute indicates that the destination cannot be reached from the start.
	ErrNoRoute = errors.New("planner: no route between the given points")

	// ErrNilNetwork indicates that New was called without a network.
	ErrNilNetwork = errors.New("planner: network is nil")

	// ErrUnknownAlgorithm indicates an algorithm name ParseAlgorithm does not know.
	ErrUnknownAlgorithm = errors.New("planner: unknown algorithm")
)

// Algorithm selects the search used by a Planner.
type Algorithm int

const (
	// AStar guides the search with the straight-line distance to the goal.
	AStar Algorithm = iota
	// Dijkstra explores by distance from the start only.
	Dijkstra
)

func (a Algorithm) String() string {
	switch a {
	case AStar:
		return "astar"
	case Dijkstra:
		return "dijkstra"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "astar", "a*" or "dijkstra" (any case) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "astar", "a*", "a-star":
		return AStar, nil
	case "dijkstra":
		return Dijkstra, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Planner plans routes over one network. It is safe for concurrent use.
type Planner struct {
	net       *roadnet.Network
	logger    *slog.Logger
	algorithm Algorithm
	search    []pathfind.Option
}

// Option configures a Planner.
type Option func(*Planner)

// WithLogger routes planner logs to logger. A nil logger discards them.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Planner) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		p.logger = logger
	}
}

// WithAlgorithm selects the search algorithm. Panics on an unknown value.
func WithAlgorithm(a Algorithm) Option {
	if a != AStar && a != Dijkstra {
		panic(fmt.Sprintf("planner: WithAlgorithm(%d): %v", int(a), ErrUnknownAlgorithm))
	}
	return func(p *Planner) {
		p.algorithm = a
	}
}

// WithSearchOptions forwards opts to every search, e.g. pathfind.WithMaxCost.
func WithSearchOptions(opts ...pathfind.Option) Option {
	return func(p *Planner) {
		p.search = append(p.search, opts...)
	}
}

// New returns a Planner over net. Defaults: A*, logs discarded.
func New(net *roadnet.Network, opts ...Option) (*Planner, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	p := &Planner{
		net:       net,
		logger:    slog.New(slog.DiscardHandler),
		algorithm: AStar,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Network returns the network the planner routes over.
func (p *Planner) Network() *roadnet.Network { return p.net }

// Algorithm returns the configured search algorithm.
func (p *Planner) Algorithm() Algorithm { return p.algorithm }

// Plan snaps from and to onto the nearest intersections and finds the
// shortest route between them.
//
// Errors:
//   - geo.ErrEmptyIndex: the network has no located intersections.
//   - ErrNoRoute: the destination is unreachable (or beyond a configured cost cap).
func (p *Planner) Plan(from, to geo.Point) (Plan, error) {
	source, snapFrom, err := p.net.Nearest(from)
	if err != nil {
		return Plan{}, fmt.Errorf("planner: resolve start %v: %w", from, err)
	}
	target, snapTo, err := p.net.Nearest(to)
	if err != nil {
		return Plan{}, fmt.Errorf("planner: resolve destination %v: %w", to, err)
	}
	p.logger.Debug("Snapped coordinates to intersections",
		"from", from.String(), "source", source, "snap_from_m", snapFrom,
		"to", to.String(), "target", target, "snap_to_m", snapTo)

	strategy := pathfind.Uninformed[int64]()
	if p.algorithm == AStar {
		strategy = pathfind.Guided[int64](geo.NewEuclidean[int64](p.net))
	}
	res, err := pathfind.Search(p.net.Graph(), source, target, strategy, p.search...)
	if err != nil {
		return Plan{}, fmt.Errorf("planner: %s search: %w", p.algorithm, err)
	}
	if !res.Found {
		p.logger.Warn("No route found", "source", source, "target", target,
			"algorithm", p.algorithm.String(), "expanded", res.Expanded)
		return Plan{}, fmt.Errorf("%w: %d → %d", ErrNoRoute, source, target)
	}

	plan := Plan{
		Algorithm: p.algorithm,
		From:      from,
		To:        to,
		Source:    source,
		Target:    target,
		SnapFrom:  snapFrom,
		SnapTo:    snapTo,
		Route:     res.Path,
		Length:    res.Cost,
		Steps:     roadnet.Itinerary(p.net, res.Path),
		Expanded:  res.Expanded,
		Points:    make([]geo.Point, 0, len(res.Path)),
	}
	for _, id := range res.Path {
		if pt, ok := p.net.Point(id); ok {
			plan.Points = append(plan.Points, pt)
		}
	}
	p.logger.Info("Planned route", "algorithm", p.algorithm.String(),
		"source", source, "target", target, "hops", len(res.Path)-1,
		"length_m", res.Cost, "expanded", res.Expanded, "stale", res.Stale)

	return plan, nil
}
