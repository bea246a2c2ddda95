// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/vector"
)

// sinks to defeat dead-code elimination
var (
	sinkM4 matrix.Mat4[float32]
	sinkV4 vector.Vec4[float32]
	sinkF  float32
)

func benchMat4() matrix.Mat4[float32] {
	return matrix.MustNew[vector.D4, vector.D4, float32](
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 1, 2, 3,
		4, 5, 6, 7,
	)
}

func BenchmarkMul4x4(b *testing.B) {
	b.ReportAllocs()
	x, y := benchMat4(), matrix.Transpose(benchMat4())
	for i := 0; i < b.N; i++ {
		sinkM4 = matrix.Mul(x, y)
	}
}

func BenchmarkVecMul4(b *testing.B) {
	b.ReportAllocs()
	m := benchMat4()
	v := vector.V4[float32](1, 2, 3, 1)
	for i := 0; i < b.N; i++ {
		sinkV4 = matrix.VecMul(v, m)
	}
}

func BenchmarkTranspose4x4(b *testing.B) {
	b.ReportAllocs()
	m := benchMat4()
	for i := 0; i < b.N; i++ {
		sinkM4 = matrix.Transpose(m)
	}
}

func BenchmarkDeterminant4x4(b *testing.B) {
	b.ReportAllocs()
	m := benchMat4()
	for i := 0; i < b.N; i++ {
		sinkF = matrix.Determinant(m)
	}
}

func BenchmarkRotation(b *testing.B) {
	b.ReportAllocs()
	axis := vector.V3[float32](0, 0, 1)
	for i := 0; i < b.N; i++ {
		sinkM4 = matrix.Rotation(axis, float32(i))
	}
}
