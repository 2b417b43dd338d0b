// Package geo holds the geographic pieces of route planning: WGS84 points,
// a local planar projection, great-circle distance, the straight-line A*
// heuristic and a nearest-node index used to snap coordinates onto a road
// network.
//
// Distances are metres throughout. The projection is equirectangular around
// a reference point, which is accurate to a fraction of a percent across a
// single city and keeps the heuristic a plain hypotenuse.
package geo
