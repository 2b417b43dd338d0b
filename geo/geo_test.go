package geo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/geo"
	"github.com/katalvlaran/lvroute/pathfind"
)

var _ pathfind.Heuristic[int64] = geo.Euclidean[int64]{}

type planarMap map[int64]geo.Planar

func (m planarMap) Planar(id int64) (geo.Planar, bool) {
	p, ok := m[id]
	return p, ok
}

func TestHaversine(t *testing.T) {
	oneDegree := geo.EarthRadius * math.Pi / 180

	assert.Zero(t, geo.Haversine(geo.Point{Lat: 50, Lon: 20}, geo.Point{Lat: 50, Lon: 20}))
	assert.InDelta(t, oneDegree, geo.Haversine(geo.Point{Lat: 0, Lon: 0}, geo.Point{Lat: 1, Lon: 0}), 1e-6)
	assert.InDelta(t, oneDegree, geo.Haversine(geo.Point{Lat: 0, Lon: 0}, geo.Point{Lat: 0, Lon: 1}), 1e-6)

	// AGH to Nowa Huta, roughly 8.7 km apart.
	agh := geo.Point{Lat: 50.06798, Lon: 19.91234}
	huta := geo.Point{Lat: 50.07680, Lon: 20.03280}
	d := geo.Haversine(agh, huta)
	assert.InDelta(t, 8_650, d, 150)
	assert.Equal(t, d, geo.Haversine(huta, agh))

	// Antipodes.
	assert.InDelta(t, math.Pi*geo.EarthRadius, geo.Haversine(geo.Point{Lat: 0, Lon: 0}, geo.Point{Lat: 0, Lon: 180}), 1e-3)
}

func TestProjection_RoundTrip(t *testing.T) {
	pr := geo.NewProjection(geo.Point{Lat: 52.2, Lon: 21.0})
	assert.Equal(t, geo.Planar{}, pr.Project(pr.Ref()))

	for _, p := range []geo.Point{{Lat: 52.24136, Lon: 21.03236}, {Lat: 52.16450, Lon: 21.08910}, {Lat: 51.9, Lon: 20.5}} {
		back := pr.Unproject(pr.Project(p))
		assert.InDelta(t, p.Lat, back.Lat, 1e-9)
		assert.InDelta(t, p.Lon, back.Lon, 1e-9)
	}
}

func TestProjection_CloseToGreatCircle(t *testing.T) {
	a := geo.Point{Lat: 50.06798, Lon: 19.91234}
	b := geo.Point{Lat: 50.07680, Lon: 20.03280}
	pr := geo.NewProjection(a)

	planar := pr.Project(a).Dist(pr.Project(b))
	assert.InEpsilon(t, geo.Haversine(a, b), planar, 0.002)
}

func TestProjection_Axes(t *testing.T) {
	pr := geo.NewProjection(geo.Point{})
	east := pr.Project(geo.Point{Lon: 1})
	north := pr.Project(geo.Point{Lat: 1})
	assert.Greater(t, east.X, 0.0)
	assert.InDelta(t, 0, east.Y, 1e-9)
	assert.Greater(t, north.Y, 0.0)
	assert.InDelta(t, 0, north.X, 1e-9)
}

func TestPoint_Valid(t *testing.T) {
	assert.True(t, geo.Point{Lat: 90, Lon: -180}.Valid())
	assert.False(t, geo.Point{Lat: 91}.Valid())
	assert.False(t, geo.Point{Lon: 180.5}.Valid())
	assert.Equal(t, "(50.067980, 19.912340)", geo.Point{Lat: 50.06798, Lon: 19.91234}.String())
}

func TestEuclidean(t *testing.T) {
	loc := planarMap{1: {X: 0, Y: 0}, 2: {X: 3, Y: 4}}
	h := geo.NewEuclidean[int64](loc)

	assert.Equal(t, 5.0, h.Estimate(1, 2))
	assert.Equal(t, 5.0, h.Estimate(2, 1))
	assert.Zero(t, h.Estimate(2, 2))
	assert.Zero(t, h.Estimate(1, 99), "unknown goal")
	assert.Zero(t, h.Estimate(99, 1), "unknown node")
	assert.Zero(t, geo.Euclidean[int64]{}.Estimate(1, 2), "no locator")
}

func TestIndex_Nearest(t *testing.T) {
	ix := geo.NewIndex[int64](3)
	_, _, err := ix.Nearest(geo.Point{})
	require.ErrorIs(t, err, geo.ErrEmptyIndex)

	ix.Add(10, geo.Point{Lat: 50.000, Lon: 20.000})
	ix.Add(11, geo.Point{Lat: 50.010, Lon: 20.000})
	ix.Add(12, geo.Point{Lat: 50.000, Lon: 20.010})
	require.Equal(t, 3, ix.Len())

	id, d, err := ix.Nearest(geo.Point{Lat: 50.009, Lon: 20.001})
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.Less(t, d, 200.0)

	id, d, err = ix.Nearest(geo.Point{Lat: 50.000, Lon: 20.000})
	require.NoError(t, err)
	assert.Equal(t, int64(10), id)
	assert.Zero(t, d)
}

func TestIndex_TiesGoToFirstAdded(t *testing.T) {
	ix := geo.NewIndex[string](0)
	ix.Add("west", geo.Point{Lat: 0, Lon: -0.001})
	ix.Add("east", geo.Point{Lat: 0, Lon: 0.001})

	id, _, err := ix.Nearest(geo.Point{})
	require.NoError(t, err)
	assert.Equal(t, "west", id)
}
