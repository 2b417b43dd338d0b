// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • Manhattan-style district: rows east-west streets crossed by cols
//     north-south avenues, cfg.spacing metres apart.
//   • Intersection (r,c) has index r*cols+c and sits at X=c*spacing, Y=r*spacing.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Adds intersections in row-major order.
//   • Emits a two-way segment to the East (r,c+1) and North (r+1,c) neighbours.
//     East segments are named "Street <r+1>", North segments "Avenue <c+1>".
//   • Length policy: cfg.weightFn(cfg.rng, spacing).
//
// Complexity:
//   • Time: O(rows*cols) intersections + O(rows*cols) segments.
//
// Determinism:
//   • Stable segment order: for each (r,c) emit East then North if present.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/geo"
	"github.com/katalvlaran/lvroute/roadnet"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols street grid.
func Grid(rows, cols int) Constructor {
	return func(ds *roadnet.Dataset, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast; no partial work).
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		// 2) Lay out all intersections in row-major order.
		sites := make([]site, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				at := geo.Planar{X: float64(c) * cfg.spacing, Y: float64(r) * cfg.spacing}
				sites = append(sites, addSite(ds, cfg, r*cols+c, at))
			}
		}

		// 3) Emit segments: East then North.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := sites[r*cols+c]
				if c+1 < cols {
					street := fmt.Sprintf("Street %d", r+1)
					if err := addRoad(ds, cfg, methodGrid, u, sites[r*cols+c+1], false, street); err != nil {
						return err
					}
				}
				if r+1 < rows {
					avenue := fmt.Sprintf("Avenue %d", c+1)
					if err := addRoad(ds, cfg, methodGrid, u, sites[(r+1)*cols+c], false, avenue); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
