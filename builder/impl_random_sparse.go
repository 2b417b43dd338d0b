// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like road sample: every ordered pair (i,j), i≠j, becomes a
//     one-way unnamed segment independently with probability p.
//   - Intersections are scattered uniformly over a square of side
//     spacing*ceil(√n) when an RNG is present; without one (p ∈ {0,1}) they
//     sit on a ring as in Ring(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Length policy: cfg.weightFn(cfg.rng, planar distance).
//
// Complexity:
//   - Time: O(n) intersections + O(n²) Bernoulli trials.
//
// Determinism:
//   - Positions are drawn first (i asc), then trials for i asc, j asc.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/geo"
	"github.com/katalvlaran/lvroute/roadnet"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random one-way road
// network over n intersections with independent segment probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(ds *roadnet.Dataset, cfg builderConfig) error {
		// 1) Validate parameters early.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Place intersections.
		var sites []site
		switch {
		case rng != nil:
			side := cfg.spacing * math.Ceil(math.Sqrt(float64(n)))
			sites = make([]site, n)
			for i := range sites {
				at := geo.Planar{X: rng.Float64() * side, Y: rng.Float64() * side}
				sites[i] = addSite(ds, cfg, i, at)
			}
		case n >= minRingNodes:
			sites = ringLayout(ds, cfg, n)
		default:
			// One or two intersections: a ring is undefined, use a line.
			sites = make([]site, n)
			for i := range sites {
				sites[i] = addSite(ds, cfg, i, geo.Planar{X: float64(i) * cfg.spacing})
			}
		}

		// 3) Bernoulli trial per ordered pair.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				keep := p == probMax
				if rng != nil && p > probMin && p < probMax {
					keep = rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addRoad(ds, cfg, methodRandomSparse, sites[i], sites[j], true); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
