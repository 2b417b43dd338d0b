package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/geo"
	"github.com/katalvlaran/lvroute/roadnet"
)

// site is an intersection being emitted: its ID and planar position.
type site struct {
	id int64
	at geo.Planar
}

// addSite appends the intersection for index idx at position at.
func addSite(ds *roadnet.Dataset, cfg builderConfig, idx int, at geo.Planar) site {
	s := site{id: cfg.idFn(idx), at: at}
	p := cfg.proj.Unproject(at)
	ds.Nodes = append(ds.Nodes, roadnet.NodeRecord{ID: s.id, Lat: p.Lat, Lon: p.Lon})

	return s
}

// addRoad appends one segment u→v whose length is drawn from cfg.weightFn.
func addRoad(ds *roadnet.Dataset, cfg builderConfig, method string, u, v site, oneway bool, names ...string) error {
	w := cfg.weightFn(cfg.rng, u.at.Dist(v.at))
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return fmt.Errorf("%s: segment %d→%d length=%g: %w", method, u.id, v.id, w, ErrConstructFailed)
	}
	ds.Edges = append(ds.Edges, roadnet.EdgeRecord{
		From:   u.id,
		To:     v.id,
		Length: w,
		Names:  names,
		Oneway: oneway,
	})

	return nil
}
