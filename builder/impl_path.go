// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Intersections i=0..n-1 lie due east of the origin, cfg.spacing apart.
//   - Emits two-way segments (i-1) -> i for i=1..n-1, all named "Main Road".
//   - Length policy: cfg.weightFn(cfg.rng, spacing).
//
// Complexity:
//   - Time: O(n) intersections + O(n-1) segments.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/geo"
	"github.com/katalvlaran/lvroute/roadnet"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
	pathRoadName = "Main Road"
)

// Path returns a Constructor that builds a straight road through n intersections.
func Path(n int) Constructor {
	return func(ds *roadnet.Dataset, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		prev := addSite(ds, cfg, 0, geo.Planar{})
		for i := 1; i < n; i++ {
			cur := addSite(ds, cfg, i, geo.Planar{X: float64(i) * cfg.spacing})
			if err := addRoad(ds, cfg, methodPath, prev, cur, false, pathRoadName); err != nil {
				return err
			}
			prev = cur
		}

		return nil
	}
}
