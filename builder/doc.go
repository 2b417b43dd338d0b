// Package builder generates synthetic road networks for tests, benchmarks
// and demos. Constructors lay intersections out on a local plane around a
// configurable origin and emit road segments into a roadnet.Dataset, which
// BuildNetwork turns into a routable roadnet.Network.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds RNG, ID scheme, length function, layout.
//   - Intersection ID schemes (IDFn implementations):
//     – SequentialIDFn:  1, 2, 3, … (OSM ids are positive).
//     – OffsetIDFn:      base, base+1, … for composing several fixtures.
//   - Segment length policies (WeightFn implementations):
//     – StraightWeightFn: exactly the straight-line distance.
//     – DetourWeightFn:   straight-line distance times a factor in [min,max].
//     – ConstantWeightFn: a fixed length regardless of geometry.
//     – UniformWeightFn:  a uniform length in [min,max].
//   - Topologies: Grid, Path, Ring, RandomSparse.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical datasets.
//   - Fast-fail on meaningless option values via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name.
//   - With StraightWeightFn or DetourWeightFn every segment is at least as long
//     as the planar distance between its ends, so the straight-line heuristic
//     stays admissible on the generated network.
package builder
