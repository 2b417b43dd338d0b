package mapdata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvroute/roadnet"
)

// ErrNoRows indicates the database holds no intersections for a place.
var ErrNoRows = errors.New("mapdata: no intersections stored for place")

const (
	loadIntersectionsCypher = `
MATCH (n:Intersection {place: $place})
RETURN n.id AS id, n.lat AS lat, n.lon AS lon
ORDER BY n.id`

	loadRoadsCypher = `
MATCH (a:Intersection {place: $place})-[r:ROAD]->(b:Intersection)
RETURN a.id AS from, b.id AS to, r.length AS length, r.names AS names, r.oneway AS oneway
ORDER BY a.id, b.id`

	saveIntersectionsCypher = `
UNWIND $nodes AS n
MERGE (i:Intersection {id: n.id})
SET i.place = $place, i.lat = n.lat, i.lon = n.lon`

	saveRoadsCypher = `
UNWIND $roads AS r
MERGE (a:Intersection {id: r.from})
MERGE (b:Intersection {id: r.to})
CREATE (a)-[:ROAD {length: r.length, names: r.names, oneway: r.oneway}]->(b)`
)

// Store reads and writes road networks in a graph database.
type Store struct {
	client Client
	logger *slog.Logger
}

// NewStore wraps client. A nil logger discards log output.
func NewStore(client Client, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{client: client, logger: logger}
}

// Load reads the intersections of place and every road leaving them.
// Roads may end at intersections of another place; those arcs stay
// dangling in the built network.
func (s *Store) Load(ctx context.Context, place string) (roadnet.Dataset, error) {
	params := map[string]any{"place": place}

	nodes, err := s.client.ExecuteRead(ctx, loadIntersectionsCypher, params)
	if err != nil {
		return roadnet.Dataset{}, fmt.Errorf("load intersections query: %w", err)
	}
	if len(nodes.Records) == 0 {
		return roadnet.Dataset{}, fmt.Errorf("%w: %q", ErrNoRows, place)
	}

	roads, err := s.client.ExecuteRead(ctx, loadRoadsCypher, params)
	if err != nil {
		return roadnet.Dataset{}, fmt.Errorf("load roads query: %w", err)
	}

	ds := roadnet.Dataset{
		Place: place,
		Nodes: make([]roadnet.NodeRecord, 0, len(nodes.Records)),
		Edges: make([]roadnet.EdgeRecord, 0, len(roads.Records)),
	}
	for _, rec := range nodes.Records {
		ds.Nodes = append(ds.Nodes, roadnet.NodeRecord{
			ID:  toInt64(rec["id"]),
			Lat: toFloat64(rec["lat"]),
			Lon: toFloat64(rec["lon"]),
		})
	}
	for _, rec := range roads.Records {
		ds.Edges = append(ds.Edges, roadnet.EdgeRecord{
			From:   toInt64(rec["from"]),
			To:     toInt64(rec["to"]),
			Length: toFloat64(rec["length"]),
			Names:  toStrings(rec["names"]),
			Oneway: toBool(rec["oneway"]),
		})
	}
	s.logger.Info("Loaded road network from graph store", "place", place,
		"nodes", len(ds.Nodes), "roads", len(ds.Edges))

	return ds, nil
}

// Save writes ds under ds.Place: intersections are merged by id, roads are
// created as one relationship per record.
func (s *Store) Save(ctx context.Context, ds roadnet.Dataset) error {
	nodes := make([]map[string]any, 0, len(ds.Nodes))
	for _, n := range ds.Nodes {
		nodes = append(nodes, map[string]any{"id": n.ID, "lat": n.Lat, "lon": n.Lon})
	}
	roads := make([]map[string]any, 0, len(ds.Edges))
	for _, e := range ds.Edges {
		names := e.Names
		if names == nil {
			names = []string{}
		}
		roads = append(roads, map[string]any{
			"from": e.From, "to": e.To, "length": e.Length, "names": names, "oneway": e.Oneway,
		})
	}

	if _, err := s.client.ExecuteWrite(ctx, saveIntersectionsCypher, map[string]any{"place": ds.Place, "nodes": nodes}); err != nil {
		return fmt.Errorf("save intersections query: %w", err)
	}
	if _, err := s.client.ExecuteWrite(ctx, saveRoadsCypher, map[string]any{"roads": roads}); err != nil {
		return fmt.Errorf("save roads query: %w", err)
	}
	s.logger.Info("Saved road network to graph store", "place", ds.Place,
		"nodes", len(nodes), "roads", len(roads))

	return nil
}

func toInt64(val any) int64 {
	switch v := val.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

func toFloat64(val any) float64 {
	switch v := val.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}

func toBool(val any) bool {
	b, _ := val.(bool)
	return b
}

// toStrings accepts the list shapes the driver returns plus a lone string.
func toStrings(val any) []string {
	switch v := val.(type) {
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		return nil
	}
}
