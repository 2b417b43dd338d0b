package planner

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/lvroute/geo"
	"github.com/katalvlaran/lvroute/roadnet"
)

// Plan is a planned route between two coordinates.
type Plan struct {
	Algorithm Algorithm

	// From and To are the requested coordinates.
	From, To geo.Point

	// Source and Target are the intersections they snapped to, SnapFrom and
	// SnapTo the snap distances in metres.
	Source, Target   int64
	SnapFrom, SnapTo float64

	// Route lists intersections from Source to Target.
	Route []int64

	// Length is the route length in metres.
	Length float64

	Steps []roadnet.Step

	// Points are the coordinates of Route, for plotting.
	Points []geo.Point

	// Expanded is the number of intersections the search settled.
	Expanded int
}

// Kilometres returns Length in km.
func (p Plan) Kilometres() float64 { return p.Length / 1000 }

// Summary is the one-line distance report, e.g. "Distance to target: 2.47km".
func (p Plan) Summary() string {
	return fmt.Sprintf("Distance to target: %.2fkm", p.Kilometres())
}

// Itinerary renders Steps as numbered "Go to" lines.
func (p Plan) Itinerary() string {
	return roadnet.FormatItinerary(p.Steps)
}

type geoJSONFeature struct {
	Type       string            `json:"type"`
	Geometry   geoJSONLineString `json:"geometry"`
	Properties geoJSONProperties `json:"properties"`
}

type geoJSONLineString struct {
	Type        string       `json:"type"`
	Coordinates [][2]float64 `json:"coordinates"`
}

type geoJSONProperties struct {
	Algorithm string   `json:"algorithm"`
	Source    int64    `json:"source"`
	Target    int64    `json:"target"`
	LengthM   float64  `json:"length_m"`
	Route     []int64  `json:"route"`
	Streets   []string `json:"streets"`
}

// GeoJSON renders the route as a GeoJSON Feature with a LineString
// geometry, positions in [lon, lat] order. A route that never leaves its
// intersection repeats the single position so the line stays valid.
func (p Plan) GeoJSON() ([]byte, error) {
	coords := make([][2]float64, 0, len(p.Points)+1)
	for _, pt := range p.Points {
		coords = append(coords, [2]float64{pt.Lon, pt.Lat})
	}
	if len(coords) == 1 {
		coords = append(coords, coords[0])
	}
	streets := make([]string, 0, len(p.Steps))
	for _, s := range p.Steps {
		streets = append(streets, s.Street)
	}

	feature := geoJSONFeature{
		Type: "Feature",
		Geometry: geoJSONLineString{
			Type:        "LineString",
			Coordinates: coords,
		},
		Properties: geoJSONProperties{
			Algorithm: p.Algorithm.String(),
			Source:    p.Source,
			Target:    p.Target,
			LengthM:   p.Length,
			Route:     p.Route,
			Streets:   streets,
		},
	}
	out, err := json.MarshalIndent(feature, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("planner: encode GeoJSON: %w", err)
	}

	return out, nil
}
