// SPDX-License-Identifier: MIT

package scalar

import "math"

// Rounding thresholds used by IRound.
const (
	halfUp   = 0.5
	halfDown = -0.5
)

// Trunc rounds n toward zero.
func Trunc[T Float](n T) T {
	return T(math.Trunc(float64(n)))
}

// Floor returns the greatest integral value less than or equal to n.
func Floor[T Float](n T) T {
	return T(math.Floor(float64(n)))
}

// Ceil returns the least integral value greater than or equal to n.
func Ceil[T Float](n T) T {
	return T(math.Ceil(float64(n)))
}

// Round returns the nearest integral value, rounding half away from zero.
//
//	Round(0.5)  == 1
//	Round(-0.5) == -1
func Round[T Float](n T) T {
	return T(math.Round(float64(n)))
}

// RoundEven returns the nearest integral value, rounding ties to even.
func RoundEven[T Float](n T) T {
	return T(math.RoundToEven(float64(n)))
}

// special reports the fixed direct-to-int result for NaN and ±Inf.
// ok is false for every finite n.
func special[I Integer, T Float](n T) (r I, ok bool) {
	switch {
	case IsNaN(n):
		return 0, true
	case IsInf(n) && n > 0:
		return 1, true
	case IsInf(n):
		r-- // -1, or the maximum value for unsigned I
		return r, true
	}

	return 0, false
}

// ITrunc rounds n toward zero directly into the integer type I.
// NaN yields 0, +Inf yields 1, -Inf yields -1.
// Finite values outside the range of I give an implementation-defined result.
func ITrunc[I Integer, T Float](n T) I {
	if r, ok := special[I](n); ok {
		return r
	}

	return I(n)
}

// IFloor returns floor(n) as I.
// The truncated value is corrected by -1 when n is negative and non-integral.
// NaN yields 0, +Inf yields 1, -Inf yields -1.
func IFloor[I Integer, T Float](n T) I {
	if r, ok := special[I](n); ok {
		return r
	}
	ni := I(n)
	if n < T(ni) {
		return ni - 1
	}

	return ni
}

// ICeil returns ceil(n) as I.
// The truncated value is corrected by +1 when n is positive and non-integral.
// NaN yields 0, +Inf yields 1, -Inf yields -1.
func ICeil[I Integer, T Float](n T) I {
	if r, ok := special[I](n); ok {
		return r
	}
	ni := I(n)
	if n > T(ni) {
		return ni + 1
	}

	return ni
}

// IRound rounds n to the nearest integer as I, ties away from zero.
// The fractional part n-trunc(n) is compared against ±0.5 on the side of n's sign.
// NaN yields 0, +Inf yields 1, -Inf yields -1.
func IRound[I Integer, T Float](n T) I {
	if r, ok := special[I](n); ok {
		return r
	}
	ni := I(n)
	frac := n - T(ni)
	if n > 0 {
		if frac >= halfUp {
			return ni + 1
		}
		return ni
	}
	if frac <= halfDown {
		return ni - 1
	}

	return ni
}
