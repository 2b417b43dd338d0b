package geo

import "math"

// Projection is an equirectangular projection centred on a reference point.
// X grows eastward and Y northward; the reference maps to the origin.
type Projection struct {
	ref    Point
	cosLat float64
}

// NewProjection returns a projection centred on ref.
func NewProjection(ref Point) Projection {
	return Projection{ref: ref, cosLat: math.Cos(radians(ref.Lat))}
}

// Ref returns the reference point.
func (pr Projection) Ref() Point { return pr.ref }

// Project maps p onto the plane.
func (pr Projection) Project(p Point) Planar {
	return Planar{
		X: EarthRadius * radians(p.Lon-pr.ref.Lon) * pr.cosLat,
		Y: EarthRadius * radians(p.Lat-pr.ref.Lat),
	}
}

// Unproject is the inverse of Project. At the poles cosLat is zero and the
// longitude of the result is the reference longitude.
func (pr Projection) Unproject(q Planar) Point {
	p := Point{Lat: pr.ref.Lat + degrees(q.Y/EarthRadius), Lon: pr.ref.Lon}
	if pr.cosLat != 0 {
		p.Lon += degrees(q.X / (EarthRadius * pr.cosLat))
	}

	return p
}
