// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/vecmat/scalar"
	"github.com/katalvlaran/vecmat/vector"
)

// Integer-only operators, applied row by row through their vector
// counterparts. Float matrices do not compile with them.

// scalarOp adapts a vector (vec, scalar) operator to a row kernel.
func scalarOp[N vector.Dim, T scalar.Integer](s T, f func(vector.Vec[N, T], T) vector.Vec[N, T]) func(vector.Vec[N, T]) vector.Vec[N, T] {
	return func(r vector.Vec[N, T]) vector.Vec[N, T] { return f(r, s) }
}

// opScalar adapts a vector (scalar, vec) operator to a row kernel.
func opScalar[N vector.Dim, T scalar.Integer](s T, f func(T, vector.Vec[N, T]) vector.Vec[N, T]) func(vector.Vec[N, T]) vector.Vec[N, T] {
	return func(r vector.Vec[N, T]) vector.Vec[N, T] { return f(s, r) }
}

// Complement returns the bitwise complement of every entry.
func Complement[M, N vector.Dim, T scalar.Integer](m Mat[M, N, T]) Mat[M, N, T] {
	return rowwise(m, vector.Complement[N, T])
}

// Rem returns a % b per entry.
func Rem[M, N vector.Dim, T scalar.Integer](a, b Mat[M, N, T]) Mat[M, N, T] {
	return rowwise2(a, b, vector.Rem[N, T])
}

// And returns a & b per entry.
func And[M, N vector.Dim, T scalar.Integer](a, b Mat[M, N, T]) Mat[M, N, T] {
	return rowwise2(a, b, vector.And[N, T])
}

// Or returns a | b per entry.
func Or[M, N vector.Dim, T scalar.Integer](a, b Mat[M, N, T]) Mat[M, N, T] {
	return rowwise2(a, b, vector.Or[N, T])
}

// Xor returns a ^ b per entry.
func Xor[M, N vector.Dim, T scalar.Integer](a, b Mat[M, N, T]) Mat[M, N, T] {
	return rowwise2(a, b, vector.Xor[N, T])
}

// AndNot returns a &^ b per entry.
func AndNot[M, N vector.Dim, T scalar.Integer](a, b Mat[M, N, T]) Mat[M, N, T] {
	return rowwise2(a, b, vector.AndNot[N, T])
}

// Shl returns a << b per entry.
func Shl[M, N vector.Dim, T scalar.Integer](a, b Mat[M, N, T]) Mat[M, N, T] {
	return rowwise2(a, b, vector.Shl[N, T])
}

// Shr returns a >> b per entry.
func Shr[M, N vector.Dim, T scalar.Integer](a, b Mat[M, N, T]) Mat[M, N, T] {
	return rowwise2(a, b, vector.Shr[N, T])
}

// RemScalar returns m % s per entry.
func RemScalar[M, N vector.Dim, T scalar.Integer](m Mat[M, N, T], s T) Mat[M, N, T] {
	return rowwise(m, scalarOp(s, vector.RemScalar[N, T]))
}

// AndScalar returns m & s per entry.
func AndScalar[M, N vector.Dim, T scalar.Integer](m Mat[M, N, T], s T) Mat[M, N, T] {
	return rowwise(m, scalarOp(s, vector.AndScalar[N, T]))
}

// OrScalar returns m | s per entry.
func OrScalar[M, N vector.Dim, T scalar.Integer](m Mat[M, N, T], s T) Mat[M, N, T] {
	return rowwise(m, scalarOp(s, vector.OrScalar[N, T]))
}

// XorScalar returns m ^ s per entry.
func XorScalar[M, N vector.Dim, T scalar.Integer](m Mat[M, N, T], s T) Mat[M, N, T] {
	return rowwise(m, scalarOp(s, vector.XorScalar[N, T]))
}

// ShlScalar shifts every entry of m left by s.
func ShlScalar[M, N vector.Dim, T scalar.Integer](m Mat[M, N, T], s T) Mat[M, N, T] {
	return rowwise(m, scalarOp(s, vector.ShlScalar[N, T]))
}

// ShrScalar shifts every entry of m right by s.
func ShrScalar[M, N vector.Dim, T scalar.Integer](m Mat[M, N, T], s T) Mat[M, N, T] {
	return rowwise(m, scalarOp(s, vector.ShrScalar[N, T]))
}

// ScalarRem returns s % m[i][j] per entry.
func ScalarRem[M, N vector.Dim, T scalar.Integer](s T, m Mat[M, N, T]) Mat[M, N, T] {
	return rowwise(m, opScalar(s, vector.ScalarRem[N, T]))
}

// ScalarAnd returns s & m per entry.
func ScalarAnd[M, N vector.Dim, T scalar.Integer](s T, m Mat[M, N, T]) Mat[M, N, T] {
	return rowwise(m, opScalar(s, vector.ScalarAnd[N, T]))
}

// ScalarOr returns s | m per entry.
func ScalarOr[M, N vector.Dim, T scalar.Integer](s T, m Mat[M, N, T]) Mat[M, N, T] {
	return rowwise(m, opScalar(s, vector.ScalarOr[N, T]))
}

// ScalarXor returns s ^ m per entry.
func ScalarXor[M, N vector.Dim, T scalar.Integer](s T, m Mat[M, N, T]) Mat[M, N, T] {
	return rowwise(m, opScalar(s, vector.ScalarXor[N, T]))
}

// ScalarShl returns s << m[i][j] per entry.
func ScalarShl[M, N vector.Dim, T scalar.Integer](s T, m Mat[M, N, T]) Mat[M, N, T] {
	return rowwise(m, opScalar(s, vector.ScalarShl[N, T]))
}

// ScalarShr returns s >> m[i][j] per entry.
func ScalarShr[M, N vector.Dim, T scalar.Integer](s T, m Mat[M, N, T]) Mat[M, N, T] {
	return rowwise(m, opScalar(s, vector.ScalarShr[N, T]))
}

// RemAssign performs *a %= b and returns a.
func RemAssign[M, N vector.Dim, T scalar.Integer](a *Mat[M, N, T], b Mat[M, N, T]) *Mat[M, N, T] {
	*a = Rem(*a, b)
	return a
}

// AndAssign performs *a &= b and returns a.
func AndAssign[M, N vector.Dim, T scalar.Integer](a *Mat[M, N, T], b Mat[M, N, T]) *Mat[M, N, T] {
	*a = And(*a, b)
	return a
}

// OrAssign performs *a |= b and returns a.
func OrAssign[M, N vector.Dim, T scalar.Integer](a *Mat[M, N, T], b Mat[M, N, T]) *Mat[M, N, T] {
	*a = Or(*a, b)
	return a
}

// XorAssign performs *a ^= b and returns a.
func XorAssign[M, N vector.Dim, T scalar.Integer](a *Mat[M, N, T], b Mat[M, N, T]) *Mat[M, N, T] {
	*a = Xor(*a, b)
	return a
}

// AndNotAssign performs *a &^= b and returns a.
func AndNotAssign[M, N vector.Dim, T scalar.Integer](a *Mat[M, N, T], b Mat[M, N, T]) *Mat[M, N, T] {
	*a = AndNot(*a, b)
	return a
}

// ShlAssign performs *a <<= b and returns a.
func ShlAssign[M, N vector.Dim, T scalar.Integer](a *Mat[M, N, T], b Mat[M, N, T]) *Mat[M, N, T] {
	*a = Shl(*a, b)
	return a
}

// ShrAssign performs *a >>= b and returns a.
func ShrAssign[M, N vector.Dim, T scalar.Integer](a *Mat[M, N, T], b Mat[M, N, T]) *Mat[M, N, T] {
	*a = Shr(*a, b)
	return a
}

// RemScalarAssign performs *m %= s and returns m.
func RemScalarAssign[M, N vector.Dim, T scalar.Integer](m *Mat[M, N, T], s T) *Mat[M, N, T] {
	*m = RemScalar(*m, s)
	return m
}

// AndScalarAssign performs *m &= s and returns m.
func AndScalarAssign[M, N vector.Dim, T scalar.Integer](m *Mat[M, N, T], s T) *Mat[M, N, T] {
	*m = AndScalar(*m, s)
	return m
}

// OrScalarAssign performs *m |= s and returns m.
func OrScalarAssign[M, N vector.Dim, T scalar.Integer](m *Mat[M, N, T], s T) *Mat[M, N, T] {
	*m = OrScalar(*m, s)
	return m
}

// XorScalarAssign performs *m ^= s and returns m.
func XorScalarAssign[M, N vector.Dim, T scalar.Integer](m *Mat[M, N, T], s T) *Mat[M, N, T] {
	*m = XorScalar(*m, s)
	return m
}

// ShlScalarAssign performs *m <<= s and returns m.
func ShlScalarAssign[M, N vector.Dim, T scalar.Integer](m *Mat[M, N, T], s T) *Mat[M, N, T] {
	*m = ShlScalar(*m, s)
	return m
}

// ShrScalarAssign performs *m >>= s and returns m.
func ShrScalarAssign[M, N vector.Dim, T scalar.Integer](m *Mat[M, N, T], s T) *Mat[M, N, T] {
	*m = ShrScalar(*m, s)
	return m
}
