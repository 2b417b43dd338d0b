package builder

import "fmt"

// IDFn generates an intersection identifier from its zero-based index.
// It must be pure and injective over the indices a constructor uses.
type IDFn func(idx int) int64

// SequentialIDFn returns idx+1, so the first intersection is 1.
// Never panics.
func SequentialIDFn(idx int) int64 {
	return int64(idx) + 1
}

// OffsetIDFn returns base+idx. Panics if base < 0.
func OffsetIDFn(base int64) IDFn {
	if base < 0 {
		panic(fmt.Sprintf("OffsetIDFn: base must be ≥ 0, got %d", base))
	}
	return func(idx int) int64 {
		return base + int64(idx)
	}
}

// WithIDOffset sets the ID scheme to OffsetIDFn(base).
func WithIDOffset(base int64) BuilderOption {
	return WithIDScheme(OffsetIDFn(base))
}

// WithSequentialIDs resets the ID scheme to SequentialIDFn.
func WithSequentialIDs() BuilderOption {
	return WithIDScheme(SequentialIDFn)
}
