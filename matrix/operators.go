// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/vecmat/scalar"
	"github.com/katalvlaran/vecmat/vector"
)

// Row-wise kernels. Every matrix operator applies the matching vector
// operator to rows[:M] and leaves the padding rows untouched.

func rowwise[M, N vector.Dim, T, U scalar.Number](m Mat[M, N, T], f func(vector.Vec[N, T]) vector.Vec[N, U]) Mat[M, N, U] {
	var out Mat[M, N, U]
	for i := range vector.LenOf[M]() {
		out.rows[i] = f(m.rows[i])
	}

	return out
}

func rowwise2[M, N vector.Dim, T scalar.Number](a, b Mat[M, N, T], f func(x, y vector.Vec[N, T]) vector.Vec[N, T]) Mat[M, N, T] {
	var out Mat[M, N, T]
	for i := range vector.LenOf[M]() {
		out.rows[i] = f(a.rows[i], b.rows[i])
	}

	return out
}

// ---------- Unary ----------

// Pos returns a copy of m (unary +).
func (m Mat[M, N, T]) Pos() Mat[M, N, T] {
	return m
}

// Neg returns -m.
func (m Mat[M, N, T]) Neg() Mat[M, N, T] {
	return rowwise(m, vector.Vec[N, T].Neg)
}

// Not returns 1 where an entry is 0 and 0 elsewhere.
func (m Mat[M, N, T]) Not() Mat[M, N, T] {
	return rowwise(m, vector.Vec[N, T].Not)
}

// Inc adds 1 to every entry in place and returns the new value.
func (m *Mat[M, N, T]) Inc() Mat[M, N, T] {
	for i := range vector.LenOf[M]() {
		m.rows[i].Inc()
	}

	return *m
}

// Dec subtracts 1 from every entry in place and returns the new value.
func (m *Mat[M, N, T]) Dec() Mat[M, N, T] {
	for i := range vector.LenOf[M]() {
		m.rows[i].Dec()
	}

	return *m
}

// PostInc adds 1 to every entry in place and returns the previous value.
func (m *Mat[M, N, T]) PostInc() Mat[M, N, T] {
	prev := *m
	m.Inc()

	return prev
}

// PostDec subtracts 1 from every entry in place and returns the previous value.
func (m *Mat[M, N, T]) PostDec() Mat[M, N, T] {
	prev := *m
	m.Dec()

	return prev
}

// ---------- Binary: matrix-matrix ----------

// Add returns the element-wise sum m + o.
func (m Mat[M, N, T]) Add(o Mat[M, N, T]) Mat[M, N, T] {
	return rowwise2(m, o, vector.Vec[N, T].Add)
}

// Sub returns the element-wise difference m - o.
func (m Mat[M, N, T]) Sub(o Mat[M, N, T]) Mat[M, N, T] {
	return rowwise2(m, o, vector.Vec[N, T].Sub)
}

// Hadamard returns the element-wise product m ⊙ o. Use Mul for the matrix product.
func (m Mat[M, N, T]) Hadamard(o Mat[M, N, T]) Mat[M, N, T] {
	return rowwise2(m, o, vector.Vec[N, T].Mul)
}

// Div returns the element-wise quotient m / o.
// Integer division by zero panics.
func (m Mat[M, N, T]) Div(o Mat[M, N, T]) Mat[M, N, T] {
	return rowwise2(m, o, vector.Vec[N, T].Div)
}

// LogicalAnd returns 1 where both entries are non-zero, 0 elsewhere.
func (m Mat[M, N, T]) LogicalAnd(o Mat[M, N, T]) Mat[M, N, T] {
	return rowwise2(m, o, vector.Vec[N, T].LogicalAnd)
}

// LogicalOr returns 1 where either entry is non-zero, 0 elsewhere.
func (m Mat[M, N, T]) LogicalOr(o Mat[M, N, T]) Mat[M, N, T] {
	return rowwise2(m, o, vector.Vec[N, T].LogicalOr)
}

// AddAssign performs m += o and returns m.
func (m *Mat[M, N, T]) AddAssign(o Mat[M, N, T]) *Mat[M, N, T] {
	for i := range vector.LenOf[M]() {
		m.rows[i].AddAssign(o.rows[i])
	}

	return m
}

// SubAssign performs m -= o and returns m.
func (m *Mat[M, N, T]) SubAssign(o Mat[M, N, T]) *Mat[M, N, T] {
	for i := range vector.LenOf[M]() {
		m.rows[i].SubAssign(o.rows[i])
	}

	return m
}

// HadamardAssign performs m ⊙= o and returns m.
func (m *Mat[M, N, T]) HadamardAssign(o Mat[M, N, T]) *Mat[M, N, T] {
	*m = m.Hadamard(o)
	return m
}

// DivAssign performs m /= o element-wise and returns m.
func (m *Mat[M, N, T]) DivAssign(o Mat[M, N, T]) *Mat[M, N, T] {
	*m = m.Div(o)
	return m
}

// ---------- Binary: matrix-scalar ----------

// AddScalar returns m with s added to every entry.
func (m Mat[M, N, T]) AddScalar(s T) Mat[M, N, T] {
	return rowwise(m, func(r vector.Vec[N, T]) vector.Vec[N, T] { return r.AddScalar(s) })
}

// SubScalar returns m with s subtracted from every entry.
func (m Mat[M, N, T]) SubScalar(s T) Mat[M, N, T] {
	return rowwise(m, func(r vector.Vec[N, T]) vector.Vec[N, T] { return r.SubScalar(s) })
}

// MulScalar returns m scaled by s.
func (m Mat[M, N, T]) MulScalar(s T) Mat[M, N, T] {
	return rowwise(m, func(r vector.Vec[N, T]) vector.Vec[N, T] { return r.MulScalar(s) })
}

// DivScalar returns m with every entry divided by s.
func (m Mat[M, N, T]) DivScalar(s T) Mat[M, N, T] {
	return rowwise(m, func(r vector.Vec[N, T]) vector.Vec[N, T] { return r.DivScalar(s) })
}

// LogicalAndScalar returns m && s per entry as 1/0.
func (m Mat[M, N, T]) LogicalAndScalar(s T) Mat[M, N, T] {
	return rowwise(m, func(r vector.Vec[N, T]) vector.Vec[N, T] { return r.LogicalAndScalar(s) })
}

// LogicalOrScalar returns m || s per entry as 1/0.
func (m Mat[M, N, T]) LogicalOrScalar(s T) Mat[M, N, T] {
	return rowwise(m, func(r vector.Vec[N, T]) vector.Vec[N, T] { return r.LogicalOrScalar(s) })
}

// ---------- Binary: scalar-matrix ----------

// ScalarAdd returns s + m.
func ScalarAdd[M, N vector.Dim, T scalar.Number](s T, m Mat[M, N, T]) Mat[M, N, T] {
	return rowwise(m, func(r vector.Vec[N, T]) vector.Vec[N, T] { return vector.ScalarAdd(s, r) })
}

// ScalarSub returns a matrix whose entries are s - m[i][j].
func ScalarSub[M, N vector.Dim, T scalar.Number](s T, m Mat[M, N, T]) Mat[M, N, T] {
	return rowwise(m, func(r vector.Vec[N, T]) vector.Vec[N, T] { return vector.ScalarSub(s, r) })
}

// ScalarMul returns s * m.
func ScalarMul[M, N vector.Dim, T scalar.Number](s T, m Mat[M, N, T]) Mat[M, N, T] {
	return rowwise(m, func(r vector.Vec[N, T]) vector.Vec[N, T] { return vector.ScalarMul(s, r) })
}

// ScalarDiv returns a matrix whose entries are s / m[i][j].
func ScalarDiv[M, N vector.Dim, T scalar.Number](s T, m Mat[M, N, T]) Mat[M, N, T] {
	return rowwise(m, func(r vector.Vec[N, T]) vector.Vec[N, T] { return vector.ScalarDiv(s, r) })
}

// ScalarLogicalAnd returns s && m per entry as 1/0.
func ScalarLogicalAnd[M, N vector.Dim, T scalar.Number](s T, m Mat[M, N, T]) Mat[M, N, T] {
	return rowwise(m, func(r vector.Vec[N, T]) vector.Vec[N, T] { return vector.ScalarLogicalAnd(s, r) })
}

// ScalarLogicalOr returns s || m per entry as 1/0.
func ScalarLogicalOr[M, N vector.Dim, T scalar.Number](s T, m Mat[M, N, T]) Mat[M, N, T] {
	return rowwise(m, func(r vector.Vec[N, T]) vector.Vec[N, T] { return vector.ScalarLogicalOr(s, r) })
}

// ---------- Compound assignment: matrix-scalar ----------

// AddScalarAssign performs m += s and returns m.
func (m *Mat[M, N, T]) AddScalarAssign(s T) *Mat[M, N, T] {
	*m = m.AddScalar(s)
	return m
}

// SubScalarAssign performs m -= s and returns m.
func (m *Mat[M, N, T]) SubScalarAssign(s T) *Mat[M, N, T] {
	*m = m.SubScalar(s)
	return m
}

// MulScalarAssign performs m *= s and returns m.
func (m *Mat[M, N, T]) MulScalarAssign(s T) *Mat[M, N, T] {
	*m = m.MulScalar(s)
	return m
}

// DivScalarAssign performs m /= s and returns m.
func (m *Mat[M, N, T]) DivScalarAssign(s T) *Mat[M, N, T] {
	*m = m.DivScalar(s)
	return m
}
