// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/vecmat/scalar"
	"github.com/katalvlaran/vecmat/vector"
)

// DefaultEpsilon is the tolerance ApproxEqual callers use for float64 results
// of a handful of chained operations.
const DefaultEpsilon = 1e-9

// Mat is an M×N matrix of T stored as M row vectors of length N.
// Rows past M are always zero, so == on two Mat values agrees with Equal.
type Mat[M, N vector.Dim, T scalar.Number] struct {
	rows [vector.MaxLen]vector.Vec[N, T] // rows[:M] are live
}

// Shorthand aliases, rows×cols.
type (
	Mat1x1[T scalar.Number] = Mat[vector.D1, vector.D1, T]
	Mat1x2[T scalar.Number] = Mat[vector.D1, vector.D2, T]
	Mat1x3[T scalar.Number] = Mat[vector.D1, vector.D3, T]
	Mat1x4[T scalar.Number] = Mat[vector.D1, vector.D4, T]
	Mat2x1[T scalar.Number] = Mat[vector.D2, vector.D1, T]
	Mat2x2[T scalar.Number] = Mat[vector.D2, vector.D2, T]
	Mat2x3[T scalar.Number] = Mat[vector.D2, vector.D3, T]
	Mat2x4[T scalar.Number] = Mat[vector.D2, vector.D4, T]
	Mat3x1[T scalar.Number] = Mat[vector.D3, vector.D1, T]
	Mat3x2[T scalar.Number] = Mat[vector.D3, vector.D2, T]
	Mat3x3[T scalar.Number] = Mat[vector.D3, vector.D3, T]
	Mat3x4[T scalar.Number] = Mat[vector.D3, vector.D4, T]
	Mat4x1[T scalar.Number] = Mat[vector.D4, vector.D1, T]
	Mat4x2[T scalar.Number] = Mat[vector.D4, vector.D2, T]
	Mat4x3[T scalar.Number] = Mat[vector.D4, vector.D3, T]
	Mat4x4[T scalar.Number] = Mat[vector.D4, vector.D4, T]

	Mat1[T scalar.Number] = Mat1x1[T]
	Mat2[T scalar.Number] = Mat2x2[T]
	Mat3[T scalar.Number] = Mat3x3[T]
	Mat4[T scalar.Number] = Mat4x4[T]
)
