package roadnet

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/geo"
)

type arcKey struct{ from, to int64 }

// Network is a routable road network. It is immutable once built and safe
// for concurrent use.
type Network struct {
	place  string
	graph  *core.Graph[int64]
	points map[int64]geo.Point
	planar map[int64]geo.Planar
	proj   geo.Projection
	names  map[arcKey][]string
	index  *geo.Index[int64]
}

// Build assembles a Network from ds.
//
// Errors:
//   - ErrEmptyDataset: ds has no nodes and no edges.
//   - ErrBadCoordinate: an intersection lies outside WGS84 ranges.
//   - core.ErrNegativeWeight, core.ErrNonFiniteWeight: a bad segment length.
func Build(ds Dataset) (*Network, error) {
	if ds.Empty() {
		return nil, ErrEmptyDataset
	}

	b := core.NewBuilder[int64]()
	points := make(map[int64]geo.Point, len(ds.Nodes))
	var lat, lon float64
	for _, n := range ds.Nodes {
		p := n.Point()
		if !p.Valid() {
			return nil, fmt.Errorf("%w: node %d at %v", ErrBadCoordinate, n.ID, p)
		}
		if _, dup := points[n.ID]; dup {
			continue
		}
		points[n.ID] = p
		lat += p.Lat
		lon += p.Lon
		if err := b.AddNode(n.ID); err != nil {
			return nil, err
		}
	}

	names := make(map[arcKey][]string)
	lengths := make(map[arcKey]float64)
	add := func(from, to int64, e EdgeRecord) error {
		if err := b.AddRecord(from, to, e.Length); err != nil {
			return fmt.Errorf("roadnet: %w", err)
		}
		k := arcKey{from, to}
		if prev, seen := lengths[k]; seen && e.Length >= prev {
			return nil
		}
		lengths[k] = e.Length
		names[k] = slices.Clone(e.Names)

		return nil
	}
	for _, e := range ds.Edges {
		if err := add(e.From, e.To, e); err != nil {
			return nil, err
		}
		if !e.Oneway {
			if err := add(e.To, e.From, e); err != nil {
				return nil, err
			}
		}
	}

	var ref geo.Point
	if len(points) > 0 {
		ref = geo.Point{Lat: lat / float64(len(points)), Lon: lon / float64(len(points))}
	}
	net := &Network{
		place:  ds.Place,
		graph:  b.Build(),
		points: points,
		planar: make(map[int64]geo.Planar, len(points)),
		proj:   geo.NewProjection(ref),
		names:  names,
		index:  geo.NewIndex[int64](len(points)),
	}
	for _, id := range net.graph.Nodes() {
		p, ok := points[id]
		if !ok {
			continue
		}
		net.planar[id] = net.proj.Project(p)
		net.index.Add(id, p)
	}

	return net, nil
}

// Place is the area name carried over from the dataset.
func (n *Network) Place() string { return n.place }

// Graph returns the weighted graph, lengths in metres.
func (n *Network) Graph() *core.Graph[int64] { return n.graph }

// Projection returns the plane the intersections were projected onto.
func (n *Network) Projection() geo.Projection { return n.proj }

// Point returns the coordinate of intersection id.
func (n *Network) Point(id int64) (geo.Point, bool) {
	p, ok := n.points[id]
	return p, ok
}

// Planar returns the projected position of intersection id. Network
// implements geo.Locator[int64].
func (n *Network) Planar(id int64) (geo.Planar, bool) {
	p, ok := n.planar[id]
	return p, ok
}

// Names returns the street names of the arc from→to, nil if there are none
// or the arc does not exist.
func (n *Network) Names(from, to int64) []string {
	return slices.Clone(n.names[arcKey{from, to}])
}

// Nearest snaps p to the closest routable intersection with a known
// coordinate and returns it with the snap distance in metres.
func (n *Network) Nearest(p geo.Point) (int64, float64, error) {
	return n.index.Nearest(p)
}
