// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildDataset(bopts, cons...). Resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical datasets.
//   - Safety: never panic; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose several constructors with distinct WithIDOffset values; IDs are
//     resolved per constructor from index 0, so overlapping schemes collide.
//   - Use WithSeed(...) to freeze stochastic paths (RandomSparse, UniformWeightFn, DetourWeightFn).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/roadnet"
)

// Constructor appends intersections and road segments to ds using the
// resolved builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit nodes and segments in a stable, documented order.
//   - Preserve determinism for the same config and call order.
type Constructor func(ds *roadnet.Dataset, cfg builderConfig) error

// BuildDataset resolves the builder configuration from bopts and applies all
// constructors in order to a fresh Dataset. Any constructor error is wrapped
// with the context "BuildDataset: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildDataset(bopts []BuilderOption, cons ...Constructor) (roadnet.Dataset, error) {
	cfg := newBuilderConfig(bopts...)
	ds := roadnet.Dataset{Place: cfg.place}

	for i, fn := range cons {
		if fn == nil {
			return roadnet.Dataset{}, fmt.Errorf("BuildDataset: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&ds, cfg); err != nil {
			return roadnet.Dataset{}, fmt.Errorf("BuildDataset: %w", err)
		}
	}

	return ds, nil
}

// BuildNetwork is BuildDataset followed by roadnet.Build.
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) (*roadnet.Network, error) {
	ds, err := BuildDataset(bopts, cons...)
	if err != nil {
		return nil, err
	}
	net, err := roadnet.Build(ds)
	if err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w", err)
	}

	return net, nil
}
