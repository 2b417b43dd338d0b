package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces a segment length in metres from the straight-line
// distance between its ends and an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand, straight float64) float64

// StraightWeightFn returns the straight-line distance unchanged.
// Never panics.
func StraightWeightFn(_ *rand.Rand, straight float64) float64 {
	return straight
}

// DetourWeightFn returns straight × f with f uniform in [min, max]; roads
// rarely run straight. Panics unless 1 ≤ min ≤ max.
// If rng is nil, f = min.
func DetourWeightFn(min, max float64) WeightFn {
	if !(min >= 1) || max < min {
		panic(fmt.Sprintf("DetourWeightFn: require 1 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand, straight float64) float64 {
		if rng == nil || max == min {
			return straight * min
		}
		return straight * (min + rng.Float64()*(max-min))
	}
}

// ConstantWeightFn returns a WeightFn that always yields value, ignoring
// geometry. Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if !(value >= 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}
	return func(_ *rand.Rand, _ float64) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max),
// ignoring geometry. Panics if min < 0 or max < min.
// If rng is nil, yields min.
func UniformWeightFn(min, max float64) WeightFn {
	if !(min >= 0) || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand, _ float64) float64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

// WithDetour sets lengths to straight-line distance × U[min,max].
func WithDetour(min, max float64) BuilderOption {
	return WithWeightFn(DetourWeightFn(min, max))
}

// WithConstantLength sets every segment to the same length.
func WithConstantLength(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformLength sets lengths ∼ U[min,max].
func WithUniformLength(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
