// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels over fixed shapes.
//
// Purpose:
//   - Transpose, matrix×matrix, matrix×vector and vector×matrix products.
//   - Trace and Determinant for square matrices.
//
// Notes:
//   - Shape agreement is enforced by the type parameters, so no kernel here
//     validates or returns errors.
//   - Loop orders are fixed (i→j→k) and results are deterministic.

package matrix

import (
	"github.com/katalvlaran/vecmat/scalar"
	"github.com/katalvlaran/vecmat/vector"
)

// Transpose returns mᵀ: entry [i][j] of the result is entry [j][i] of m.
// The result type is N×M, so non-square matrices transpose correctly and
// Transpose(Transpose(m)) == m for every shape.
//
// Complexity: O(M*N).
func Transpose[M, N vector.Dim, T scalar.Number](m Mat[M, N, T]) Mat[N, M, T] {
	var out Mat[N, M, T]
	for j := range vector.LenOf[N]() {
		out.rows[j] = m.col(j)
	}

	return out
}

// Mul returns the matrix product a × b of an M×K and a K×N matrix.
// Entry [i][j] is Dot(row i of a, column j of b).
//
// Implementation:
//   - Stage 1: gather the N columns of b once.
//   - Stage 2: fill each output entry with a single dot product.
//
// Complexity: O(M*N*K).
func Mul[M, K, N vector.Dim, T scalar.Number](a Mat[M, K, T], b Mat[K, N, T]) Mat[M, N, T] {
	var cols [vector.MaxLen]vector.Vec[K, T]
	n := vector.LenOf[N]()
	for j := range n {
		cols[j] = b.col(j)
	}

	var out Mat[M, N, T]
	var row [vector.MaxLen]T
	for i := range vector.LenOf[M]() {
		for j := range n {
			row[j] = vector.Dot(a.rows[i], cols[j])
		}
		out.rows[i] = vector.FromArray[N](row)
	}

	return out
}

// MulVec returns a × v for an M×N matrix and a length-N column vector.
// Entry i is Dot(row i of a, v).
//
// Complexity: O(M*N).
func MulVec[M, N vector.Dim, T scalar.Number](a Mat[M, N, T], v vector.Vec[N, T]) vector.Vec[M, T] {
	var out [vector.MaxLen]T
	for i := range vector.LenOf[M]() {
		out[i] = vector.Dot(a.rows[i], v)
	}

	return vector.FromArray[M](out)
}

// VecMul returns v × a for a length-M row vector and an M×N matrix.
// Entry j is Dot(v, column j of a).
//
// Complexity: O(M*N).
func VecMul[M, N vector.Dim, T scalar.Number](v vector.Vec[M, T], a Mat[M, N, T]) vector.Vec[N, T] {
	var out [vector.MaxLen]T
	for j := range vector.LenOf[N]() {
		out[j] = vector.Dot(v, a.col(j))
	}

	return vector.FromArray[N](out)
}

// MulAssign performs m = m × b and returns m.
// The full product is computed first and then written back.
func (m *Mat[M, N, T]) MulAssign(b Mat[N, N, T]) *Mat[M, N, T] {
	*m = Mul(*m, b)
	return m
}

// VecMulAssign performs v = v × a and returns v.
func VecMulAssign[M vector.Dim, T scalar.Number](v *vector.Vec[M, T], a Mat[M, M, T]) *vector.Vec[M, T] {
	*v = VecMul(*v, a)
	return v
}

// Trace returns the sum of the main diagonal.
func Trace[N vector.Dim, T scalar.Number](m Mat[N, N, T]) T {
	var sum T
	for i := range vector.LenOf[N]() {
		sum += m.rows[i].Array()[i]
	}

	return sum
}

// Determinant returns det(m) by Laplace expansion along the first row.
// Shapes are at most 4×4, so the expansion stays cheap and exact for integers.
//
// Complexity: O(N!) with N <= 4.
func Determinant[N vector.Dim, T scalar.Number](m Mat[N, N, T]) T {
	return laplace(m.Array(), vector.LenOf[N]())
}

// laplace expands the leading n×n block of a along its first row.
func laplace[T scalar.Number](a [vector.MaxLen][vector.MaxLen]T, n int) T {
	switch n {
	case 1:
		return a[0][0]
	case 2:
		return a[0][0]*a[1][1] - a[0][1]*a[1][0]
	}

	var det T
	var minor [vector.MaxLen][vector.MaxLen]T
	for c := range n {
		// minor drops row 0 and column c
		for i := 1; i < n; i++ {
			k := 0
			for j := range n {
				if j == c {
					continue
				}
				minor[i-1][k] = a[i][j]
				k++
			}
		}
		term := a[0][c] * laplace(minor, n-1)
		if c%2 == 1 {
			det -= term
		} else {
			det += term
		}
	}

	return det
}
