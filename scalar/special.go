// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"unsafe"
)

// Bit patterns for NaN encodings.
// Quiet NaNs have the top mantissa bit set, signaling NaNs have it clear.
const (
	qnan32Bits uint32 = 0x7fc00000
	snan32Bits uint32 = 0x7fa00000
	qnan64Bits uint64 = 0x7ff8000000000000
	snan64Bits uint64 = 0x7ff4000000000000
)

// is32 reports whether T is a 32-bit float.
func is32[T Float]() bool {
	var z T
	return unsafe.Sizeof(z) == 4
}

// Inf returns positive infinity as T.
func Inf[T Float]() T {
	return T(math.Inf(1))
}

// QNaN returns a quiet NaN as T.
func QNaN[T Float]() T {
	if is32[T]() {
		return T(math.Float32frombits(qnan32Bits))
	}

	return T(math.Float64frombits(qnan64Bits))
}

// SNaN returns a signaling NaN as T.
// The encoding is built per width so that no float64->float32 conversion
// gets a chance to quiet it.
func SNaN[T Float]() T {
	if is32[T]() {
		return T(math.Float32frombits(snan32Bits))
	}

	return T(math.Float64frombits(snan64Bits))
}

// NaN returns QNaN.
func NaN[T Float]() T {
	return QNaN[T]()
}

// IsInf reports whether n is +Inf or -Inf.
func IsInf[T Float](n T) bool {
	return n == Inf[T]() || n == -Inf[T]()
}

// IsNaN reports whether n is any NaN encoding.
func IsNaN[T Float](n T) bool {
	return n != n
}
