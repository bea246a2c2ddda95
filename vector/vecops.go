// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/vecmat/scalar"

// ---------- Special floating point values ----------

// AllInf reports whether every component is ±Inf.
func AllInf[L Dim, T scalar.Float](v Vec[L, T]) bool {
	for i := range LenOf[L]() {
		if !scalar.IsInf(v.c[i]) {
			return false
		}
	}

	return true
}

// AnyInf reports whether at least one component is ±Inf.
func AnyInf[L Dim, T scalar.Float](v Vec[L, T]) bool {
	for i := range LenOf[L]() {
		if scalar.IsInf(v.c[i]) {
			return true
		}
	}

	return false
}

// AllNaN reports whether every component is NaN.
func AllNaN[L Dim, T scalar.Float](v Vec[L, T]) bool {
	for i := range LenOf[L]() {
		if !scalar.IsNaN(v.c[i]) {
			return false
		}
	}

	return true
}

// AnyNaN reports whether at least one component is NaN.
func AnyNaN[L Dim, T scalar.Float](v Vec[L, T]) bool {
	for i := range LenOf[L]() {
		if scalar.IsNaN(v.c[i]) {
			return true
		}
	}

	return false
}

// ---------- General functions ----------

// Abs returns the absolute value of every component.
func Abs[L Dim, T scalar.Number](v Vec[L, T]) Vec[L, T] { return mapOf(v, scalar.Abs[T]) }

// Sq squares every component.
func Sq[L Dim, T scalar.Number](v Vec[L, T]) Vec[L, T] { return mapOf(v, scalar.Sq[T]) }

// Sqrt returns the square root of every component.
func Sqrt[L Dim, T scalar.Number](v Vec[L, T]) Vec[L, T] { return mapOf(v, scalar.Sqrt[T]) }

// Pow raises every component of b to the power e.
func Pow[L Dim, T scalar.Number](b Vec[L, T], e T) Vec[L, T] {
	return mapOf(b, func(x T) T { return scalar.Pow(x, e) })
}

// Min returns the component-wise minimum of a and b.
func Min[L Dim, T scalar.Number](a, b Vec[L, T]) Vec[L, T] { return zipOf(a, b, scalar.Min[T]) }

// Max returns the component-wise maximum of a and b.
func Max[L Dim, T scalar.Number](a, b Vec[L, T]) Vec[L, T] { return zipOf(a, b, scalar.Max[T]) }

// Dot returns the sum of a[i]*b[i].
func Dot[L Dim, T scalar.Number](a, b Vec[L, T]) T {
	var out T
	for i := range LenOf[L]() {
		out += a.c[i] * b.c[i]
	}

	return out
}

// Cross returns the cross product a × b. Only defined for length 3.
func Cross[T scalar.Number](a, b Vec3[T]) Vec3[T] {
	return V3(
		a.c[1]*b.c[2]-a.c[2]*b.c[1],
		a.c[2]*b.c[0]-a.c[0]*b.c[2],
		a.c[0]*b.c[1]-a.c[1]*b.c[0],
	)
}

// Sum returns the sum of all components.
func Sum[L Dim, T scalar.Number](v Vec[L, T]) T {
	var out T
	for i := range LenOf[L]() {
		out += v.c[i]
	}

	return out
}

// LengthSq returns Dot(v, v).
func LengthSq[L Dim, T scalar.Number](v Vec[L, T]) T {
	return Dot(v, v)
}

// Length returns the Euclidean norm of v.
func Length[L Dim, T scalar.Float](v Vec[L, T]) T {
	return scalar.Sqrt(Dot(v, v))
}

// Distance returns the Euclidean distance between a and b.
func Distance[L Dim, T scalar.Float](a, b Vec[L, T]) T {
	return Length(a.Sub(b))
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func Normalize[L Dim, T scalar.Float](v Vec[L, T]) Vec[L, T] {
	n := Length(v)
	if n == 0 {
		return v
	}

	return v.DivScalar(n)
}

// Lerp interpolates linearly between a (t=0) and b (t=1).
func Lerp[L Dim, T scalar.Float](a, b Vec[L, T], t T) Vec[L, T] {
	return a.Add(b.Sub(a).MulScalar(t))
}

// ApproxEqual reports whether every pair of components differs by at most eps.
// A NaN on either side never compares equal.
func ApproxEqual[L Dim, T scalar.Float](a, b Vec[L, T], eps T) bool {
	for i := range LenOf[L]() {
		if !(scalar.Abs(a.c[i]-b.c[i]) <= eps) {
			return false
		}
	}

	return true
}

// ---------- Rounding ----------

// Trunc rounds every component toward zero.
func Trunc[L Dim, T scalar.Float](v Vec[L, T]) Vec[L, T] { return mapOf(v, scalar.Trunc[T]) }

// Floor floors every component.
func Floor[L Dim, T scalar.Float](v Vec[L, T]) Vec[L, T] { return mapOf(v, scalar.Floor[T]) }

// Ceil ceils every component.
func Ceil[L Dim, T scalar.Float](v Vec[L, T]) Vec[L, T] { return mapOf(v, scalar.Ceil[T]) }

// Round rounds every component half away from zero.
func Round[L Dim, T scalar.Float](v Vec[L, T]) Vec[L, T] { return mapOf(v, scalar.Round[T]) }

// ---------- Direct-to-int rounding ----------
// See scalar.ITrunc for the NaN/Inf contract.

// ITrunc truncates every component directly into I.
func ITrunc[I scalar.Integer, L Dim, T scalar.Float](v Vec[L, T]) Vec[L, I] {
	return mapOf(v, scalar.ITrunc[I, T])
}

// IFloor floors every component directly into I.
func IFloor[I scalar.Integer, L Dim, T scalar.Float](v Vec[L, T]) Vec[L, I] {
	return mapOf(v, scalar.IFloor[I, T])
}

// ICeil ceils every component directly into I.
func ICeil[I scalar.Integer, L Dim, T scalar.Float](v Vec[L, T]) Vec[L, I] {
	return mapOf(v, scalar.ICeil[I, T])
}

// IRound rounds every component directly into I, ties away from zero.
func IRound[I scalar.Integer, L Dim, T scalar.Float](v Vec[L, T]) Vec[L, I] {
	return mapOf(v, scalar.IRound[I, T])
}
