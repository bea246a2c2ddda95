// SPDX-License-Identifier: MIT

// Package vecmat is a small, allocation-free toolkit of fixed-size vectors
// and matrices for geometry, graphics and simulation code.
//
// 🚀 What is vecmat?
//
//	A generic, value-typed linear-algebra library that brings together:
//		• Scalar helpers: rounding, direct-to-int conversion, NaN/Inf, trig
//		• Vectors: Vec1…Vec4 over any integer or floating element type
//		• Operators: element-wise, scalar, integer-only and compound forms
//		• Algorithms: Dot, Cross, Length, Normalize, Lerp, rounding
//		• Matrices: Mat[M, N] for 1 ≤ M, N ≤ 4, row-major
//		• Linear algebra: Mul, MulVec, VecMul, Transpose, Trace, Determinant
//		• Transforms: Translation, Scaling, Rotation in the row-vector convention
//		• Interop: copy to and from gonum's mat.VecDense / mat.Dense
//
// ✨ Why choose vecmat?
//
//   - Dimensions are part of the type – Mul of a 2×3 and a 2×3 does not compile
//   - Value semantics – every Vec and Mat is a plain array, safe to copy and compare with ==
//   - No heap – kernels are loop-unrolled by the compiler over at most 16 slots
//   - Checked access – At/Set/Row/Col return errors wrapping ErrOutOfRange
//
// Under the hood, everything is organized under four subpackages:
//
//	scalar/         — Number constraints, rounding, ITrunc/IFloor/ICeil/IRound, special values, trig
//	vector/         — Vec[L, T], constructors, accessors, operators and vector algorithms
//	matrix/         — Mat[M, N, T], operators, Mul/Transpose/Determinant and 4×4 transforms
//	interop/gonumx/ — bridges to gonum for decompositions and solvers
//
// Quick example:
//
//	r := matrix.Rotation(vector.V3(0.0, 0.0, 1.0), math.Pi/2)
//	t := matrix.Translation(vector.V3(10.0, 0.0, 0.0))
//	p := matrix.TransformPoint(matrix.Mul(r, t), vector.V3(1.0, 0.0, 0.0))
//	// p ≈ [10, 1, 0]
//
// Runnable scenarios live under examples/.
//
//	go get github.com/katalvlaran/vecmat
package vecmat
