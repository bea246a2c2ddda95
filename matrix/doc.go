// SPDX-License-Identifier: MIT

// Package matrix implements fixed-size M×N matrices whose shape is part of
// the type.
//
// The matrix package provides:
//
//   - Mat[M, N, T]: M row vectors of type vector.Vec[N, T], stored by value.
//   - Constructors: Zero, New (row-major components), FromRows, FromSlice,
//     Identity, Diagonal, and the shape/type converters Convert and Cast.
//   - Row, column and element access with checked indices (ErrOutOfRange).
//   - Row-wise operators mirroring package vector: unary, matrix-matrix
//     Add/Sub/Hadamard, matrix-scalar and scalar-matrix arithmetic,
//     integer-only bitwise operators, compound assignment.
//   - Linear algebra: Transpose, Mul, MulVec, VecMul, Trace, Determinant.
//   - Homogeneous 4×4 builders: Translation, Rotation, Scaling, and
//     TransformPoint/TransformDir to apply them.
//
// Shapes are checked by the compiler. Mul only accepts an M×K and a K×N
// matrix; Determinant and Trace only accept square ones:
//
//	a := matrix.MustNew[vector.D2, vector.D2](1, 2, 3, 4)
//	b := matrix.MustNew[vector.D2, vector.D2](5, 6, 7, 8)
//	fmt.Println(matrix.Mul(a, b)) // [[19, 22], [43, 50]]
//
// Transforms use the row-vector convention: a point p is transformed as
// p × M, and translation lives in the last row.
//
// Bounds policy: identical to package vector. Every index is checked and
// fallible accessors return an error wrapping ErrOutOfRange.
package matrix
