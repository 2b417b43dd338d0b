// Package lvroute finds lowest-cost routes through road networks.
//
// A road network is a weighted directed graph: intersections are nodes,
// road segments are arcs weighted by their length in metres. One search
// engine serves both Dijkstra (uninformed) and A* (guided by a heuristic);
// the two differ only in the key that orders the frontier.
//
// Packages:
//
//	core/      - immutable weighted digraph and its Builder
//	pathfind/  - priority frontier, Dijkstra / A* search, path reconstruction
//	geo/       - coordinates, projection, haversine, Euclidean heuristic, nearest-node index
//	roadnet/   - intersections and road segments turned into a routable Network, itineraries
//	builder/   - deterministic synthetic networks (grids, rings, random sparse)
//	mapdata/   - load networks from HCL files or a Neo4j graph database
//	planner/   - coordinates in, route length and street-by-street itinerary out
//
// The command in cmd/routeplanner ties them together:
//
//	routeplanner -hcl ./maps/krakow -from 50.0680,19.9123 -to 50.0765,20.0335
//	Distance to target: 9.84km
//	1. Go to: **Aleja Mickiewicza**
//	2. Go to: **Unnamed Road**
//	...
//
// Minimal library use:
//
//	b := core.NewBuilder[string]()
//	_ = b.AddEdge("A", "B", 1)
//	_ = b.AddEdge("B", "C", 2)
//	res, _ := pathfind.Dijkstra(b.Build(), "A", "C")
//	fmt.Println(res.Path, res.Cost) // [A B C] 3
package lvroute
