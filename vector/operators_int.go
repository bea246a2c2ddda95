// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/vecmat/scalar"

// Integer-only operators. They are free functions because Go methods cannot
// narrow the receiver's type parameter; calling one with a float vector is a
// compile error.
// Shifting by a negative count panics at run time, as for plain Go integers.

func rem[T scalar.Integer](x, y T) T    { return x % y }
func and[T scalar.Integer](x, y T) T    { return x & y }
func or[T scalar.Integer](x, y T) T     { return x | y }
func xor[T scalar.Integer](x, y T) T    { return x ^ y }
func andNot[T scalar.Integer](x, y T) T { return x &^ y }
func shl[T scalar.Integer](x, y T) T    { return x << y }
func shr[T scalar.Integer](x, y T) T    { return x >> y }

// Complement returns the bitwise complement of every component (unary ~).
func Complement[L Dim, T scalar.Integer](v Vec[L, T]) Vec[L, T] {
	return mapOf(v, func(x T) T { return ^x })
}

// Rem returns a % b per component.
func Rem[L Dim, T scalar.Integer](a, b Vec[L, T]) Vec[L, T] { return zipOf(a, b, rem[T]) }

// And returns a & b per component.
func And[L Dim, T scalar.Integer](a, b Vec[L, T]) Vec[L, T] { return zipOf(a, b, and[T]) }

// Or returns a | b per component.
func Or[L Dim, T scalar.Integer](a, b Vec[L, T]) Vec[L, T] { return zipOf(a, b, or[T]) }

// Xor returns a ^ b per component.
func Xor[L Dim, T scalar.Integer](a, b Vec[L, T]) Vec[L, T] { return zipOf(a, b, xor[T]) }

// AndNot returns a &^ b per component.
func AndNot[L Dim, T scalar.Integer](a, b Vec[L, T]) Vec[L, T] { return zipOf(a, b, andNot[T]) }

// Shl returns a << b per component.
func Shl[L Dim, T scalar.Integer](a, b Vec[L, T]) Vec[L, T] { return zipOf(a, b, shl[T]) }

// Shr returns a >> b per component.
func Shr[L Dim, T scalar.Integer](a, b Vec[L, T]) Vec[L, T] { return zipOf(a, b, shr[T]) }

// RemScalar returns a % s per component.
func RemScalar[L Dim, T scalar.Integer](a Vec[L, T], s T) Vec[L, T] { return zipScalar(a, s, rem[T]) }

// AndScalar returns a & s per component.
func AndScalar[L Dim, T scalar.Integer](a Vec[L, T], s T) Vec[L, T] { return zipScalar(a, s, and[T]) }

// OrScalar returns a | s per component.
func OrScalar[L Dim, T scalar.Integer](a Vec[L, T], s T) Vec[L, T] { return zipScalar(a, s, or[T]) }

// XorScalar returns a ^ s per component.
func XorScalar[L Dim, T scalar.Integer](a Vec[L, T], s T) Vec[L, T] { return zipScalar(a, s, xor[T]) }

// ShlScalar shifts every component of a left by s.
func ShlScalar[L Dim, T scalar.Integer](a Vec[L, T], s T) Vec[L, T] { return zipScalar(a, s, shl[T]) }

// ShrScalar shifts every component of a right by s.
func ShrScalar[L Dim, T scalar.Integer](a Vec[L, T], s T) Vec[L, T] { return zipScalar(a, s, shr[T]) }

// ScalarRem returns s % b per component.
func ScalarRem[L Dim, T scalar.Integer](s T, b Vec[L, T]) Vec[L, T] { return scalarZip(s, b, rem[T]) }

// ScalarAnd returns s & b per component.
func ScalarAnd[L Dim, T scalar.Integer](s T, b Vec[L, T]) Vec[L, T] { return scalarZip(s, b, and[T]) }

// ScalarOr returns s | b per component.
func ScalarOr[L Dim, T scalar.Integer](s T, b Vec[L, T]) Vec[L, T] { return scalarZip(s, b, or[T]) }

// ScalarXor returns s ^ b per component.
func ScalarXor[L Dim, T scalar.Integer](s T, b Vec[L, T]) Vec[L, T] { return scalarZip(s, b, xor[T]) }

// ScalarShl returns s << b[i] per component.
func ScalarShl[L Dim, T scalar.Integer](s T, b Vec[L, T]) Vec[L, T] { return scalarZip(s, b, shl[T]) }

// ScalarShr returns s >> b[i] per component.
func ScalarShr[L Dim, T scalar.Integer](s T, b Vec[L, T]) Vec[L, T] { return scalarZip(s, b, shr[T]) }

// RemAssign performs *a %= b and returns a.
func RemAssign[L Dim, T scalar.Integer](a *Vec[L, T], b Vec[L, T]) *Vec[L, T] {
	*a = Rem(*a, b)
	return a
}

// AndAssign performs *a &= b and returns a.
func AndAssign[L Dim, T scalar.Integer](a *Vec[L, T], b Vec[L, T]) *Vec[L, T] {
	*a = And(*a, b)
	return a
}

// OrAssign performs *a |= b and returns a.
func OrAssign[L Dim, T scalar.Integer](a *Vec[L, T], b Vec[L, T]) *Vec[L, T] {
	*a = Or(*a, b)
	return a
}

// XorAssign performs *a ^= b and returns a.
func XorAssign[L Dim, T scalar.Integer](a *Vec[L, T], b Vec[L, T]) *Vec[L, T] {
	*a = Xor(*a, b)
	return a
}

// ShlAssign performs *a <<= b and returns a.
func ShlAssign[L Dim, T scalar.Integer](a *Vec[L, T], b Vec[L, T]) *Vec[L, T] {
	*a = Shl(*a, b)
	return a
}

// ShrAssign performs *a >>= b and returns a.
func ShrAssign[L Dim, T scalar.Integer](a *Vec[L, T], b Vec[L, T]) *Vec[L, T] {
	*a = Shr(*a, b)
	return a
}

// RemScalarAssign performs *a %= s and returns a.
func RemScalarAssign[L Dim, T scalar.Integer](a *Vec[L, T], s T) *Vec[L, T] {
	*a = RemScalar(*a, s)
	return a
}

// AndScalarAssign performs *a &= s and returns a.
func AndScalarAssign[L Dim, T scalar.Integer](a *Vec[L, T], s T) *Vec[L, T] {
	*a = AndScalar(*a, s)
	return a
}

// OrScalarAssign performs *a |= s and returns a.
func OrScalarAssign[L Dim, T scalar.Integer](a *Vec[L, T], s T) *Vec[L, T] {
	*a = OrScalar(*a, s)
	return a
}

// XorScalarAssign performs *a ^= s and returns a.
func XorScalarAssign[L Dim, T scalar.Integer](a *Vec[L, T], s T) *Vec[L, T] {
	*a = XorScalar(*a, s)
	return a
}

// ShlScalarAssign performs *a <<= s and returns a.
func ShlScalarAssign[L Dim, T scalar.Integer](a *Vec[L, T], s T) *Vec[L, T] {
	*a = ShlScalar(*a, s)
	return a
}

// ShrScalarAssign performs *a >>= s and returns a.
func ShrScalarAssign[L Dim, T scalar.Integer](a *Vec[L, T], s T) *Vec[L, T] {
	*a = ShrScalar(*a, s)
	return a
}
