package roadnet_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/geo"
	"github.com/katalvlaran/lvroute/pathfind"
	"github.com/katalvlaran/lvroute/roadnet"
)

// sample is a small district: a two-way avenue 1–2–3, a one-way lane 3→4,
// and a road from 4 to 99, an intersection outside the extract.
func sample() roadnet.Dataset {
	return roadnet.Dataset{
		Place: "Testville",
		Nodes: []roadnet.NodeRecord{
			{ID: 1, Lat: 50.000, Lon: 20.000},
			{ID: 2, Lat: 50.001, Lon: 20.000},
			{ID: 3, Lat: 50.002, Lon: 20.000},
			{ID: 4, Lat: 50.002, Lon: 20.002},
		},
		Edges: []roadnet.EdgeRecord{
			{From: 1, To: 2, Length: 120, Names: []string{"Avenue"}},
			{From: 2, To: 3, Length: 115, Names: []string{"Avenue"}},
			{From: 3, To: 4, Length: 150, Names: []string{"Lane"}, Oneway: true},
			{From: 4, To: 99, Length: 80, Oneway: true},
		},
	}
}

func TestBuild_NodeSetAndArcs(t *testing.T) {
	net, err := roadnet.Build(sample())
	require.NoError(t, err)
	g := net.Graph()

	assert.Equal(t, "Testville", net.Place())
	assert.Equal(t, []int64{1, 2, 3, 4}, g.Nodes())
	assert.False(t, g.HasNode(99))
	assert.Equal(t, 1, g.Dangling())

	w, ok := g.Weight(2, 1)
	require.True(t, ok, "two-way road yields the reverse arc")
	assert.Equal(t, 120.0, w)
	_, ok = g.Weight(4, 3)
	assert.False(t, ok, "one-way road has no reverse arc")
	assert.Equal(t, 6, g.Size())
}

func TestBuild_UndeclaredSourceJoinsNodeSet(t *testing.T) {
	ds := sample()
	ds.Edges = append(ds.Edges, roadnet.EdgeRecord{From: 7, To: 1, Length: 10, Oneway: true})
	net, err := roadnet.Build(ds)
	require.NoError(t, err)

	assert.True(t, net.Graph().HasNode(7))
	_, ok := net.Point(7)
	assert.False(t, ok)
	_, ok = net.Planar(7)
	assert.False(t, ok)
}

func TestBuild_DuplicateSegmentsKeepShortest(t *testing.T) {
	ds := sample()
	ds.Edges = append(ds.Edges,
		roadnet.EdgeRecord{From: 1, To: 2, Length: 90, Names: []string{"Shortcut"}, Oneway: true},
		roadnet.EdgeRecord{From: 1, To: 2, Length: 500, Names: []string{"Detour"}, Oneway: true},
	)
	net, err := roadnet.Build(ds)
	require.NoError(t, err)

	w, _ := net.Graph().Weight(1, 2)
	assert.Equal(t, 90.0, w)
	assert.Equal(t, []string{"Shortcut"}, net.Names(1, 2))
	assert.Equal(t, []string{"Avenue"}, net.Names(2, 1))
}

func TestBuild_Errors(t *testing.T) {
	_, err := roadnet.Build(roadnet.Dataset{})
	assert.ErrorIs(t, err, roadnet.ErrEmptyDataset)

	ds := sample()
	ds.Nodes = append(ds.Nodes, roadnet.NodeRecord{ID: 5, Lat: 95})
	_, err = roadnet.Build(ds)
	assert.ErrorIs(t, err, roadnet.ErrBadCoordinate)

	ds = sample()
	ds.Edges[0].Length = -1
	_, err = roadnet.Build(ds)
	assert.ErrorIs(t, err, core.ErrNegativeWeight)

	ds = sample()
	ds.Edges[1].Length = math.NaN()
	_, err = roadnet.Build(ds)
	assert.ErrorIs(t, err, core.ErrNonFiniteWeight)
}

func TestNetwork_Geometry(t *testing.T) {
	net, err := roadnet.Build(sample())
	require.NoError(t, err)

	p1, _ := net.Planar(1)
	p3, _ := net.Planar(3)
	a, _ := net.Point(1)
	c, _ := net.Point(3)
	assert.InEpsilon(t, geo.Haversine(a, c), p1.Dist(p3), 1e-3)

	id, d, err := net.Nearest(geo.Point{Lat: 50.0021, Lon: 20.0019})
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
	assert.Less(t, d, 20.0)
}

func TestNetwork_RoutesWithEuclidean(t *testing.T) {
	net, err := roadnet.Build(sample())
	require.NoError(t, err)

	d, err := pathfind.Dijkstra(net.Graph(), 1, 4)
	require.NoError(t, err)
	a, err := pathfind.AStar(net.Graph(), 1, 4, geo.NewEuclidean[int64](net))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, d.Path)
	assert.Equal(t, d.Path, a.Path)
	assert.Equal(t, 385.0, a.Cost)

	res, err := pathfind.Dijkstra(net.Graph(), 4, 1)
	require.NoError(t, err)
	assert.False(t, res.Found, "the lane is one-way and 99 is outside the extract")
}
