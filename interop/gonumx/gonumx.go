// SPDX-License-Identifier: MIT

package gonumx

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/scalar"
	"github.com/katalvlaran/vecmat/vector"
)

// ToVecDense copies v into a new column vector of length L.
func ToVecDense[L vector.Dim, T scalar.Number](v vector.Vec[L, T]) *mat.VecDense {
	n := vector.LenOf[L]()
	data := make([]float64, n)
	arr := v.Array()
	for i := range n {
		data[i] = float64(arr[i])
	}

	return mat.NewVecDense(n, data)
}

// FromVecDense copies v into a Vec[L, T]. v must have exactly L elements.
func FromVecDense[L vector.Dim, T scalar.Number](v mat.Vector) (vector.Vec[L, T], error) {
	n := vector.LenOf[L]()
	if v.Len() != n {
		return vector.Vec[L, T]{}, shapeErrorf(opFromVecDense, n, 1, v.Len(), 1)
	}
	var arr [vector.MaxLen]T
	for i := range n {
		arr[i] = T(v.AtVec(i))
	}

	return vector.FromArray[L](arr), nil
}

// ToDense copies m into a new M×N dense matrix.
func ToDense[M, N vector.Dim, T scalar.Number](m matrix.Mat[M, N, T]) *mat.Dense {
	r, c := m.Rows(), m.Cols()
	data := make([]float64, 0, r*c)
	arr := m.Array()
	for i := range r {
		for j := range c {
			data = append(data, float64(arr[i][j]))
		}
	}

	return mat.NewDense(r, c, data)
}

// FromDense copies a into a Mat[M, N, T]. a must be exactly M×N.
func FromDense[M, N vector.Dim, T scalar.Number](a mat.Matrix) (matrix.Mat[M, N, T], error) {
	var out matrix.Mat[M, N, T]
	r, c := out.Rows(), out.Cols()
	if ar, ac := a.Dims(); ar != r || ac != c {
		return out, shapeErrorf(opFromDense, r, c, ar, ac)
	}
	var arr [vector.MaxLen][vector.MaxLen]T
	for i := range r {
		for j := range c {
			arr[i][j] = T(a.At(i, j))
		}
	}

	return matrix.FromArray[M, N](arr), nil
}
