// SPDX-License-Identifier: MIT

package scalar

import "math"

// Abs returns -n if n < 0, n otherwise.
// Works for every Number; unsigned values are returned unchanged.
func Abs[T Number](n T) T {
	if n < 0 {
		return -n
	}

	return n
}

// Sq returns n*n.
func Sq[T Number](n T) T {
	return n * n
}

// Sqrt returns the square root of n converted back to T.
// For integer T the result is truncated toward zero.
// The value goes through float64, so 64-bit integers above 2^53 lose precision.
func Sqrt[T Number](n T) T {
	return T(math.Sqrt(float64(n)))
}

// Pow returns b**e converted back to T.
// Like Sqrt it computes in float64; 64-bit integer inputs or results above
// 2^53 are not exact.
func Pow[T Number](b, e T) T {
	return T(math.Pow(float64(b), float64(e)))
}

// Min returns the smaller of a and b.
func Min[T Number](a, b T) T {
	if a < b {
		return a
	}

	return b
}

// Max returns the larger of a and b.
func Max[T Number](a, b T) T {
	if a > b {
		return a
	}

	return b
}

// Clamp limits n to the closed range [lo, hi].
// If lo > hi the result is hi for every n >= hi and lo otherwise.
func Clamp[T Number](n, lo, hi T) T {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}

	return n
}
