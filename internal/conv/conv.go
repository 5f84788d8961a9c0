// Package conv provides checked numeric conversions for values crossing the
// host boundary.
//
// Host scripting languages hand integers over as float64. These helpers
// reject values that are not exact integers or do not fit an int instead of
// silently truncating them.
package conv

import "math"

// FloatToInt converts f to an int.
// Reports false if f is NaN, infinite, has a fractional part, or is out of
// int range.
//
//go:inline
func FloatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	// float64(math.MaxInt) rounds up to 2^63, which is itself out of range.
	if f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}

// IntToFloat converts n to float64.
// Panics if n cannot be represented exactly, which for byte offsets means
// an input larger than 2^53 bytes and indicates a programming error.
//
//go:inline
func IntToFloat(n int) float64 {
	const maxExact = 1 << 53
	if n > maxExact || n < -maxExact {
		panic("integer overflow: int value not exactly representable as float64")
	}
	return float64(n)
}
