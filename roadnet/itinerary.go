package roadnet

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvroute/pathfind"
)

// UnnamedRoad labels arcs that carry no street name.
const UnnamedRoad = "Unnamed Road"

// Step is one leg of an itinerary: the street and the arc where it starts.
type Step struct {
	Street string
	From   int64
	To     int64
}

// Itinerary walks route arc by arc and emits a Step whenever the street
// changes. Multiple names of one arc join with "/". Pairs that are not arcs
// of the network contribute nothing.
func Itinerary(net *Network, route []int64) []Step {
	var steps []Step
	for i := 0; i+1 < len(route); i++ {
		u, v := route[i], route[i+1]
		if _, ok := net.graph.Weight(u, v); !ok {
			continue
		}
		street := UnnamedRoad
		if names := net.names[arcKey{u, v}]; len(names) > 0 {
			street = strings.Join(names, "/")
		}
		if len(steps) > 0 && steps[len(steps)-1].Street == street {
			continue
		}
		steps = append(steps, Step{Street: street, From: u, To: v})
	}

	return steps
}

// FormatItinerary renders steps as numbered lines:
//
//	1. Go to: **Main Street**
//	2. Go to: **Unnamed Road**
func FormatItinerary(steps []Step) string {
	var sb strings.Builder
	for i, s := range steps {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%d. Go to: **%s**", i+1, s.Street)
	}

	return sb.String()
}

// Length is the total length of route in metres.
func Length(net *Network, route []int64) (float64, error) {
	return pathfind.PathCost(net.graph, route)
}
