package roadnet

import (
	"errors"

	"github.com/katalvlaran/lvroute/geo"
)

// Sentinel errors for network assembly.
var (
	// ErrEmptyDataset indicates a dataset with neither intersections nor roads.
	ErrEmptyDataset = errors.New("roadnet: empty dataset")

	// ErrBadCoordinate indicates an intersection outside WGS84 ranges.
	ErrBadCoordinate = errors.New("roadnet: coordinate out of range")
)

// NodeRecord is an intersection.
type NodeRecord struct {
	ID  int64
	Lat float64
	Lon float64
}

// Point returns the record's coordinate.
func (n NodeRecord) Point() geo.Point { return geo.Point{Lat: n.Lat, Lon: n.Lon} }

// EdgeRecord is a road segment between two intersections.
type EdgeRecord struct {
	From   int64
	To     int64
	Length float64  // metres
	Names  []string // empty for unnamed roads
	Oneway bool
}

// Dataset is a raw road network as delivered by a map source.
type Dataset struct {
	Place string
	Nodes []NodeRecord
	Edges []EdgeRecord
}

// Empty reports whether the dataset carries nothing to route on.
func (ds Dataset) Empty() bool { return len(ds.Nodes) == 0 && len(ds.Edges) == 0 }
