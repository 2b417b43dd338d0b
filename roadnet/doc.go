// Package roadnet turns raw road records into a routable Network.
//
// A Dataset is what a map source hands over: intersections with their
// coordinates and road segments between them. Build folds the segments into
// a core.Graph[int64] weighted by length in metres, keeps the street names of
// every arc, and projects the intersections onto a local plane for the
// straight-line heuristic.
//
// Record semantics follow road extracts:
//
//   - The node set is the declared intersections plus every segment source.
//     A segment whose target is neither stays in the graph as a dangling arc
//     and is never followed.
//   - A segment that is not one-way also yields the reverse arc.
//   - Repeated segments between the same ordered pair keep the shortest
//     length together with its names.
//
// Itinerary renders a route as numbered "Go to" steps, one per street.
package roadnet
