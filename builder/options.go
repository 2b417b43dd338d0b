// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvroute/geo"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic intersection ID generator.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the segment length generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithOrigin moves the layout reference point. Panics on coordinates outside
// WGS84 ranges.
func WithOrigin(p geo.Point) BuilderOption {
	if !p.Valid() {
		panic(fmt.Sprintf("builder: WithOrigin(%v) out of range", p))
	}
	return func(c *builderConfig) {
		c.proj = geo.NewProjection(p)
	}
}

// WithSpacing sets the distance between neighbouring intersections in
// metres. Panics unless spacing is finite and > 0.
func WithSpacing(spacing float64) BuilderOption {
	if !(spacing > 0) || math.IsInf(spacing, 1) {
		panic(fmt.Sprintf("builder: WithSpacing(%g) must be finite and > 0", spacing))
	}
	return func(c *builderConfig) {
		c.spacing = spacing
	}
}

// WithPlace labels the generated dataset.
func WithPlace(name string) BuilderOption {
	return func(c *builderConfig) {
		c.place = name
	}
}
