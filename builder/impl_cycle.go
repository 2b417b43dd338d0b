// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_cycle.go - implementation of Ring(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Intersections sit counter-clockwise on a circle centred on the origin,
//     with neighbouring intersections cfg.spacing apart (chord length).
//   • Emits two-way segments i -> (i+1)%n for i=0..n-1, named "Ring Road".
//   • Length policy: cfg.weightFn(cfg.rng, spacing).
//
// Complexity:
//   • Time: O(n) intersections + O(n) segments.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/geo"
	"github.com/katalvlaran/lvroute/roadnet"
)

const (
	methodRing   = "Ring"
	minRingNodes = 3
	ringRoadName = "Ring Road"
)

// Ring returns a Constructor that builds a ring road through n intersections.
func Ring(n int) Constructor {
	return func(ds *roadnet.Dataset, cfg builderConfig) error {
		if n < minRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewVertices)
		}

		sites := ringLayout(ds, cfg, n)
		for i := 0; i < n; i++ {
			if err := addRoad(ds, cfg, methodRing, sites[i], sites[(i+1)%n], false, ringRoadName); err != nil {
				return err
			}
		}

		return nil
	}
}

// ringLayout places n intersections on a circle whose chords are cfg.spacing.
func ringLayout(ds *roadnet.Dataset, cfg builderConfig, n int) []site {
	radius := cfg.spacing / (2 * math.Sin(math.Pi/float64(n)))
	sites := make([]site, n)
	for i := range sites {
		theta := 2 * math.Pi * float64(i) / float64(n)
		sites[i] = addSite(ds, cfg, i, geo.Planar{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)})
	}

	return sites
}
