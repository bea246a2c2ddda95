// SPDX-License-Identifier: MIT

// Package gonumx converts between vecmat's fixed-size types and gonum's
// dynamically sized mat.VecDense and mat.Dense.
//
// Use it at the boundary when a small vector or matrix must go through a
// gonum routine (decompositions, solvers, eigenvalues) and come back:
//
//	d := gonumx.ToDense(m)            // *mat.Dense, row-major copy
//	var inv mat.Dense
//	if err := inv.Inverse(d); err != nil {
//		return err // singular
//	}
//	back, err := gonumx.FromDense[vector.D3, vector.D3, float64](&inv)
//
// All conversions copy. Elements go through float64, so integer element
// types are truncated toward zero on the way back and float32 loses the
// precision float64 had.
package gonumx
