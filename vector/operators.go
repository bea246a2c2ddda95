// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/vecmat/scalar"

// Element-wise kernels. Every operator in this package goes through one of
// them, so only the live components are touched and the zero padding stays intact.

func mapOf[L Dim, T, U scalar.Number](v Vec[L, T], f func(T) U) Vec[L, U] {
	var out Vec[L, U]
	for i := range LenOf[L]() {
		out.c[i] = f(v.c[i])
	}

	return out
}

func zipOf[L Dim, T scalar.Number](a, b Vec[L, T], f func(x, y T) T) Vec[L, T] {
	var out Vec[L, T]
	for i := range LenOf[L]() {
		out.c[i] = f(a.c[i], b.c[i])
	}

	return out
}

func zipScalar[L Dim, T scalar.Number](a Vec[L, T], s T, f func(x, y T) T) Vec[L, T] {
	var out Vec[L, T]
	for i := range LenOf[L]() {
		out.c[i] = f(a.c[i], s)
	}

	return out
}

func scalarZip[L Dim, T scalar.Number](s T, b Vec[L, T], f func(x, y T) T) Vec[L, T] {
	var out Vec[L, T]
	for i := range LenOf[L]() {
		out.c[i] = f(s, b.c[i])
	}

	return out
}

func add[T scalar.Number](x, y T) T { return x + y }
func sub[T scalar.Number](x, y T) T { return x - y }
func mul[T scalar.Number](x, y T) T { return x * y }
func div[T scalar.Number](x, y T) T { return x / y }

// truth maps a Go bool onto the numeric 1/0 used by the logical operators.
func truth[T scalar.Number](b bool) T {
	if b {
		return 1
	}

	return 0
}

func land[T scalar.Number](x, y T) T { return truth[T](x != 0 && y != 0) }
func lor[T scalar.Number](x, y T) T  { return truth[T](x != 0 || y != 0) }

// ---------- Unary ----------

// Pos returns a copy of v (unary +).
func (v Vec[L, T]) Pos() Vec[L, T] {
	return v
}

// Neg returns -v. Unsigned components wrap.
func (v Vec[L, T]) Neg() Vec[L, T] {
	return mapOf(v, func(x T) T { return -x })
}

// Not returns the logical negation of each component: 1 where it is 0, 0 elsewhere.
func (v Vec[L, T]) Not() Vec[L, T] {
	return mapOf(v, func(x T) T { return truth[T](x == 0) })
}

// Inc adds 1 to every component in place and returns the new value (prefix ++).
func (v *Vec[L, T]) Inc() Vec[L, T] {
	for i := range LenOf[L]() {
		v.c[i]++
	}

	return *v
}

// Dec subtracts 1 from every component in place and returns the new value (prefix --).
func (v *Vec[L, T]) Dec() Vec[L, T] {
	for i := range LenOf[L]() {
		v.c[i]--
	}

	return *v
}

// PostInc adds 1 to every component in place and returns the previous value (postfix ++).
func (v *Vec[L, T]) PostInc() Vec[L, T] {
	prev := *v
	v.Inc()

	return prev
}

// PostDec subtracts 1 from every component in place and returns the previous value (postfix --).
func (v *Vec[L, T]) PostDec() Vec[L, T] {
	prev := *v
	v.Dec()

	return prev
}

// ---------- Binary: vector-vector ----------

// Add returns v + o.
func (v Vec[L, T]) Add(o Vec[L, T]) Vec[L, T] { return zipOf(v, o, add[T]) }

// Sub returns v - o.
func (v Vec[L, T]) Sub(o Vec[L, T]) Vec[L, T] { return zipOf(v, o, sub[T]) }

// Mul returns the component-wise product of v and o.
func (v Vec[L, T]) Mul(o Vec[L, T]) Vec[L, T] { return zipOf(v, o, mul[T]) }

// Div returns the component-wise quotient v / o.
// Integer division by zero panics, as it does for plain Go integers.
func (v Vec[L, T]) Div(o Vec[L, T]) Vec[L, T] { return zipOf(v, o, div[T]) }

// LogicalAnd returns 1 where both components are non-zero, 0 elsewhere.
func (v Vec[L, T]) LogicalAnd(o Vec[L, T]) Vec[L, T] { return zipOf(v, o, land[T]) }

// LogicalOr returns 1 where either component is non-zero, 0 elsewhere.
func (v Vec[L, T]) LogicalOr(o Vec[L, T]) Vec[L, T] { return zipOf(v, o, lor[T]) }

// ---------- Binary: vector-scalar ----------

// AddScalar returns v with s added to every component.
func (v Vec[L, T]) AddScalar(s T) Vec[L, T] { return zipScalar(v, s, add[T]) }

// SubScalar returns v with s subtracted from every component.
func (v Vec[L, T]) SubScalar(s T) Vec[L, T] { return zipScalar(v, s, sub[T]) }

// MulScalar returns v scaled by s.
func (v Vec[L, T]) MulScalar(s T) Vec[L, T] { return zipScalar(v, s, mul[T]) }

// DivScalar returns v with every component divided by s.
func (v Vec[L, T]) DivScalar(s T) Vec[L, T] { return zipScalar(v, s, div[T]) }

// LogicalAndScalar returns v && s per component.
func (v Vec[L, T]) LogicalAndScalar(s T) Vec[L, T] { return zipScalar(v, s, land[T]) }

// LogicalOrScalar returns v || s per component.
func (v Vec[L, T]) LogicalOrScalar(s T) Vec[L, T] { return zipScalar(v, s, lor[T]) }

// ---------- Binary: scalar-vector ----------

// ScalarAdd returns s + v.
func ScalarAdd[L Dim, T scalar.Number](s T, v Vec[L, T]) Vec[L, T] { return scalarZip(s, v, add[T]) }

// ScalarSub returns a vector whose components are s - v[i].
func ScalarSub[L Dim, T scalar.Number](s T, v Vec[L, T]) Vec[L, T] { return scalarZip(s, v, sub[T]) }

// ScalarMul returns s * v.
func ScalarMul[L Dim, T scalar.Number](s T, v Vec[L, T]) Vec[L, T] { return scalarZip(s, v, mul[T]) }

// ScalarDiv returns a vector whose components are s / v[i].
func ScalarDiv[L Dim, T scalar.Number](s T, v Vec[L, T]) Vec[L, T] { return scalarZip(s, v, div[T]) }

// ScalarLogicalAnd returns s && v per component.
func ScalarLogicalAnd[L Dim, T scalar.Number](s T, v Vec[L, T]) Vec[L, T] {
	return scalarZip(s, v, land[T])
}

// ScalarLogicalOr returns s || v per component.
func ScalarLogicalOr[L Dim, T scalar.Number](s T, v Vec[L, T]) Vec[L, T] {
	return scalarZip(s, v, lor[T])
}

// ---------- Compound assignment ----------
// Each form mutates the receiver and returns it so calls can be chained.

// AddAssign performs v += o.
func (v *Vec[L, T]) AddAssign(o Vec[L, T]) *Vec[L, T] {
	*v = v.Add(o)
	return v
}

// SubAssign performs v -= o.
func (v *Vec[L, T]) SubAssign(o Vec[L, T]) *Vec[L, T] {
	*v = v.Sub(o)
	return v
}

// MulAssign performs v *= o component-wise.
func (v *Vec[L, T]) MulAssign(o Vec[L, T]) *Vec[L, T] {
	*v = v.Mul(o)
	return v
}

// DivAssign performs v /= o component-wise.
func (v *Vec[L, T]) DivAssign(o Vec[L, T]) *Vec[L, T] {
	*v = v.Div(o)
	return v
}

// AddScalarAssign performs v += s.
func (v *Vec[L, T]) AddScalarAssign(s T) *Vec[L, T] {
	*v = v.AddScalar(s)
	return v
}

// SubScalarAssign performs v -= s.
func (v *Vec[L, T]) SubScalarAssign(s T) *Vec[L, T] {
	*v = v.SubScalar(s)
	return v
}

// MulScalarAssign performs v *= s.
func (v *Vec[L, T]) MulScalarAssign(s T) *Vec[L, T] {
	*v = v.MulScalar(s)
	return v
}

// DivScalarAssign performs v /= s.
func (v *Vec[L, T]) DivScalarAssign(s T) *Vec[L, T] {
	*v = v.DivScalar(s)
	return v
}
