package geom

import "math"

// Clamp constrains v to [lo, hi]. If lo > hi (the documented "min wins"
// policy, spec §8 invariant 6), lo is returned.
func Clamp[T Number](v, lo, hi T) T {
	if lo > hi {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MinT returns the smaller of a and b.
func MinT[T Number](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// MaxT returns the greater of a and b.
func MaxT[T Number](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Lerp performs linear interpolation between a and b using t in [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Norm maps x from range [a, b] into [0, 1].
func Norm(x, a, b float64) float64 {
	return (x - a) / (b - a)
}

// Epsilon is the tolerance used when comparing resolved float inputs for
// cache-slot equality (spec §3, Cache entry: "compared by approximate
// equality... within 1 ULP-equivalent epsilon").
const Epsilon = 1e-6

// ApproxEqual reports whether a and b differ by no more than Epsilon.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// ApproxEqualOpt compares two optional (possibly nil) floats: both nil is
// equal, exactly one nil is unequal, otherwise ApproxEqual on the values.
func ApproxEqualOpt(a, b *float64) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return ApproxEqual(*a, *b)
}

// Maybe constructs a pointer to v — shorthand for building an optional
// float inline, analogous to Rust's Some(v) in the original source.
func Maybe(v float64) *float64 {
	return &v
}

// MaybeAdd adds two optional floats; nil ("indefinite") propagates,
// following the saturating policy in spec §7: percentage resolution
// against an indefinite basis yields indefinite, not zero.
func MaybeAdd(a, b *float64) *float64 {
	if a == nil || b == nil {
		return nil
	}
	return Maybe(*a + *b)
}

// MaybeSub subtracts b from a; nil propagates.
func MaybeSub(a, b *float64) *float64 {
	if a == nil || b == nil {
		return nil
	}
	return Maybe(*a - *b)
}

// MaybeMin returns the smaller of a and b; nil propagates as "no bound".
func MaybeMin(a, b *float64) *float64 {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return Maybe(math.Min(*a, *b))
}

// MaybeMax returns the greater of a and b; nil propagates as "no bound".
func MaybeMax(a, b *float64) *float64 {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return Maybe(math.Max(*a, *b))
}

// MaybeClamp clamps v (if present) between lo and hi (each optional). The
// upper bound is applied first, so when lo > hi, lo wins.
func MaybeClamp(v, lo, hi *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	if hi != nil && out > *hi {
		out = *hi
	}
	if lo != nil && out < *lo {
		out = *lo
	}
	return Maybe(out)
}

// OrZero dereferences v, returning 0 if it is nil.
func OrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
