// SPDX-License-Identifier: MIT

// Package vector implements fixed-length numeric vectors whose length is
// part of the type.
//
// A Vec[L, T] holds L components of element type T, where L is one of the
// phantom dimension types D1, D2, D3 or D4. Lengths are checked by the Go
// compiler: adding a Vec3[float32] to a Vec4[float32] does not compile.
//
//	a := vector.V3[float32](1, 2, 3)
//	b := vector.Splat[vector.D3, float32](1)
//	c := a.Add(b)                // [2, 3, 4]
//	d := vector.Dot(a, b)        // 6
//	e := vector.Cross(a, c)      // [-1, 2, -1]
//
// Vectors are plain values. Assigning or passing one copies it; conversions
// (Convert, Cast) always produce a new value.
//
// Named components are accessors over the same backing storage:
//
//	index:    0  1  2  3
//	position: X  Y  Z  W
//	colour:   R  G  B  A
//	texture:  U  V
//
// Operators become methods (Add, Sub, Mul, Div, ...) for the arithmetic
// every element type supports, and free functions (Rem, And, Or, Xor, Shl,
// Shr, Complement) for the integer-only ones, so using them with a float
// vector is a compile error. Each operator comes in vector-vector,
// vector-scalar (…Scalar) and scalar-vector (Scalar…) forms plus the
// in-place …Assign forms.
//
// Bounds policy: every index is checked. At and Set return ErrOutOfRange;
// the named accessors have no error result and panic with an error
// wrapping ErrOutOfRange instead.
package vector
