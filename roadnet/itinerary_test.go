package roadnet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/pathfind"
	"github.com/katalvlaran/lvroute/roadnet"
)

func TestItinerary(t *testing.T) {
	ds := roadnet.Dataset{
		Edges: []roadnet.EdgeRecord{
			{From: 1, To: 2, Length: 10, Names: []string{"Main Street"}},
			{From: 2, To: 3, Length: 10, Names: []string{"Main Street"}},
			{From: 3, To: 4, Length: 10},
			{From: 4, To: 5, Length: 10},
			{From: 5, To: 6, Length: 10, Names: []string{"Aleja Mickiewicza", "DK79"}},
			{From: 6, To: 7, Length: 10, Names: []string{"Main Street"}},
		},
	}
	net, err := roadnet.Build(ds)
	require.NoError(t, err)

	route := []int64{1, 2, 3, 4, 5, 6, 7}
	steps := roadnet.Itinerary(net, route)
	require.Len(t, steps, 4)
	assert.Equal(t, roadnet.Step{Street: "Main Street", From: 1, To: 2}, steps[0])
	assert.Equal(t, roadnet.Step{Street: roadnet.UnnamedRoad, From: 3, To: 4}, steps[1])
	assert.Equal(t, "Aleja Mickiewicza/DK79", steps[2].Street)
	assert.Equal(t, "Main Street", steps[3].Street, "a street may come back after a change")

	want := "1. Go to: **Main Street**\n" +
		"2. Go to: **Unnamed Road**\n" +
		"3. Go to: **Aleja Mickiewicza/DK79**\n" +
		"4. Go to: **Main Street**"
	assert.Equal(t, want, roadnet.FormatItinerary(steps))

	length, err := roadnet.Length(net, route)
	require.NoError(t, err)
	assert.Equal(t, 60.0, length)
}

func TestItinerary_Degenerate(t *testing.T) {
	net, err := roadnet.Build(sample())
	require.NoError(t, err)

	assert.Empty(t, roadnet.Itinerary(net, nil))
	assert.Empty(t, roadnet.Itinerary(net, []int64{1}))
	assert.Empty(t, roadnet.Itinerary(net, []int64{1, 3}), "1→3 is not a road")
	assert.Equal(t, "", roadnet.FormatItinerary(nil))

	_, err = roadnet.Length(net, []int64{1, 3})
	assert.ErrorIs(t, err, pathfind.ErrNotAnArc)

	length, err := roadnet.Length(net, []int64{2})
	require.NoError(t, err)
	assert.Zero(t, length)
}
