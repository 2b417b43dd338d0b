// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvroute/geo"
)

// TestDefaults verifies the deterministic defaults of newBuilderConfig.
func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if got := cfg.idFn(0); got != 1 {
		t.Errorf("default idFn(0): expected 1, got %d", got)
	}
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}
	if got := cfg.weightFn(nil, 42); got != 42 {
		t.Errorf("default weightFn: expected straight length 42, got %g", got)
	}
	if cfg.spacing != defaultSpacing || cfg.place != defaultPlace {
		t.Errorf("default layout: spacing=%g place=%q", cfg.spacing, cfg.place)
	}
	if cfg.proj.Ref() != DefaultOrigin {
		t.Errorf("default origin: got %v", cfg.proj.Ref())
	}
}

// TestIDSchemeOptions verifies that ID scheme options are applied in order.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	if got := newBuilderConfig(WithIDOffset(1000)).idFn(5); got != 1005 {
		t.Errorf("WithIDOffset: expected 1005, got %d", got)
	}
	if got := newBuilderConfig(WithIDOffset(1000), WithSequentialIDs()).idFn(5); got != 6 {
		t.Errorf("WithSequentialIDs override: expected 6, got %d", got)
	}
	custom := func(i int) int64 { return int64(-i) }
	if got := newBuilderConfig(WithIDScheme(custom)).idFn(3); got != -3 {
		t.Errorf("WithIDScheme: expected -3, got %d", got)
	}
}

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	expRNG := rand.New(rand.NewSource(123))
	if cfg := newBuilderConfig(WithRand(expRNG)); cfg.rng != expRNG {
		t.Errorf("WithRand: expected rng %v, got %v", expRNG, cfg.rng)
	}

	cfgSeed1 := newBuilderConfig(WithSeed(42))
	a1, b1 := cfgSeed1.rng.Int63(), cfgSeed1.rng.Int63()
	cfgSeed2 := newBuilderConfig(WithSeed(42))
	a2, b2 := cfgSeed2.rng.Int63(), cfgSeed2.rng.Int63()
	if a1 != a2 || b1 != b2 {
		t.Errorf("WithSeed reproducibility: got (%d,%d) vs (%d,%d)", a1, b1, a2, b2)
	}
}

// TestLayoutOptions verifies origin, spacing and place.
func TestLayoutOptions(t *testing.T) {
	t.Parallel()

	origin := geo.Point{Lat: 52.2, Lon: 21.0}
	cfg := newBuilderConfig(WithOrigin(origin), WithSpacing(75), WithPlace("Warszawa"))
	if cfg.proj.Ref() != origin {
		t.Errorf("WithOrigin: got %v", cfg.proj.Ref())
	}
	if cfg.spacing != 75 {
		t.Errorf("WithSpacing: got %g", cfg.spacing)
	}
	if cfg.place != "Warszawa" {
		t.Errorf("WithPlace: got %q", cfg.place)
	}
}

// TestWeightFnOptions verifies that length options apply and override in order.
func TestWeightFnOptions(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))

	if w := newBuilderConfig(WithConstantLength(9)).weightFn(rng, 100); w != 9 {
		t.Errorf("WithConstantLength: expected 9, got %g", w)
	}
	cfg := newBuilderConfig(WithConstantLength(9), WithDetour(1.2, 1.5))
	if w := cfg.weightFn(rng, 100); w < 120 || w > 150 {
		t.Errorf("override order: expected detour in [120,150], got %g", w)
	}
	if w := newBuilderConfig(WithUniformLength(3, 4)).weightFn(nil, 100); w != 3 {
		t.Errorf("WithUniformLength(nil rng): expected 3, got %g", w)
	}
}

// TestOptionPanics verifies that option constructors reject meaningless values.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	cases := map[string]func(){
		"WithIDScheme(nil)":    func() { WithIDScheme(nil) },
		"WithRand(nil)":        func() { WithRand(nil) },
		"WithWeightFn(nil)":    func() { WithWeightFn(nil) },
		"WithOrigin(lat=91)":   func() { WithOrigin(geo.Point{Lat: 91}) },
		"WithSpacing(0)":       func() { WithSpacing(0) },
		"WithSpacing(NaN)":     func() { WithSpacing(math.NaN()) },
		"WithSpacing(+Inf)":    func() { WithSpacing(math.Inf(1)) },
		"WithIDOffset(-1)":     func() { WithIDOffset(-1) },
		"WithDetour(0.5,1)":    func() { WithDetour(0.5, 1) },
		"WithUniformLength(-)": func() { WithUniformLength(-1, 2) },
	}
	for name, fn := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic, but none occurred", name)
				}
			}()
			fn()
		}()
	}
}
