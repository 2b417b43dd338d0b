// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn     = SequentialIDFn      (1, 2, 3, ...)
//   • rng      = nil                 (pure/deterministic unless seeded)
//   • weightFn = StraightWeightFn    (length = planar distance)
//   • origin   = 50.06798, 19.91234  (Kraków, AGH)
//   • spacing  = 100 m
//   • place    = "Synthetic"

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvroute/geo"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Intersection ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Segment length generator from the straight-line distance.
	weightFn WeightFn

	// Layout: intersections are placed on the plane of proj, spacing metres apart.
	proj    geo.Projection
	spacing float64

	// Dataset label.
	place string
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultSpacing = 100.0
	defaultPlace   = "Synthetic"
)

// DefaultOrigin is the reference point of generated layouts.
var DefaultOrigin = geo.Point{Lat: 50.06798, Lon: 19.91234}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     SequentialIDFn,
		rng:      nil,
		weightFn: StraightWeightFn,
		proj:     geo.NewProjection(DefaultOrigin),
		spacing:  defaultSpacing,
		place:    defaultPlace,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
