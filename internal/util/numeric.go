package util

import "math"

// Numeric is satisfied by every number type an argument can read
type Numeric interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// Bounds returns the smallest and largest value representable by T. For floating point types
// these are the negated and positive largest finite values. Named number types are not supported.
func Bounds[T Numeric]() (T, T) {
	var lo, hi any
	switch any(*new(T)).(type) {
	case int32:
		lo, hi = int32(math.MinInt32), int32(math.MaxInt32)
	case int64:
		lo, hi = int64(math.MinInt64), int64(math.MaxInt64)
	case float32:
		lo, hi = float32(-math.MaxFloat32), float32(math.MaxFloat32)
	default:
		lo, hi = -math.MaxFloat64, math.MaxFloat64
	}

	return lo.(T), hi.(T)
}

// Within reports whether min <= v <= max
func Within[T Numeric](v, min, max T) bool {
	return v >= min && v <= max
}
