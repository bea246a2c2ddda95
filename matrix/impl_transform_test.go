// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/vector"
)

func TestTranslation(t *testing.T) {
	m := matrix.Translation(vector.V3(2, 3, 4))
	CompareExact(t, [][]int{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{2, 3, 4, 1},
	}, m)

	require.Equal(t, vector.V3(3, 4, 5), matrix.TransformPoint(m, vector.V3(1, 1, 1)))
	// directions ignore translation
	require.Equal(t, vector.V3(1, 1, 1), matrix.TransformDir(m, vector.V3(1, 1, 1)))

	// composing two translations adds the offsets
	both := matrix.Mul(m, matrix.Translation(vector.V3(-1, 0, 6)))
	require.Equal(t, matrix.Translation(vector.V3(1, 3, 10)), both)
}

func TestScaling(t *testing.T) {
	m := matrix.Scaling(vector.V3(2.0, 3.0, 4.0))
	require.Equal(t, vector.V3(2.0, -3.0, 2.0), matrix.TransformPoint(m, vector.V3(1.0, -1.0, 0.5)))
	require.Equal(t, 24.0, matrix.Determinant(m))
}

func TestRotationAxes(t *testing.T) {
	const tol = 1e-12
	quarter := math.Pi / 2

	cases := []struct {
		name  string
		axis  vector.Vec3[float64]
		in    vector.Vec3[float64]
		want  vector.Vec3[float64]
		angle float64
	}{
		{"z: x->y", vector.V3(0.0, 0.0, 1.0), vector.V3(1.0, 0.0, 0.0), vector.V3(0.0, 1.0, 0.0), quarter},
		{"x: y->z", vector.V3(1.0, 0.0, 0.0), vector.V3(0.0, 1.0, 0.0), vector.V3(0.0, 0.0, 1.0), quarter},
		{"y: z->x", vector.V3(0.0, 1.0, 0.0), vector.V3(0.0, 0.0, 1.0), vector.V3(1.0, 0.0, 0.0), quarter},
		{"z: half turn", vector.V3(0.0, 0.0, 1.0), vector.V3(1.0, 2.0, 3.0), vector.V3(-1.0, -2.0, 3.0), math.Pi},
		{"zero angle", vector.V3(0.0, 1.0, 0.0), vector.V3(4.0, 5.0, 6.0), vector.V3(4.0, 5.0, 6.0), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := matrix.Rotation(tc.axis, tc.angle)
			got := matrix.TransformDir(r, tc.in)
			require.True(t, vector.ApproxEqual(tc.want, got, tol), "got %v want %v", got, tc.want)
		})
	}
}

func TestRotationZLayout(t *testing.T) {
	r := matrix.Rotation(vector.V3(0.0, 0.0, 1.0), math.Pi/2)
	CompareApprox(t, [][]float64{
		{0, 1, 0, 0},
		{-1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}, r, 1e-12)
}

func TestRotationOrthogonal(t *testing.T) {
	axis := vector.Normalize(vector.V3(1.0, 2.0, 3.0))
	for _, angle := range []float64{0.1, 1, 2.5, -0.7, math.Pi} {
		r := matrix.Rotation(axis, angle)
		CompareApprox(t, [][]float64{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		}, matrix.Mul(r, matrix.Transpose(r)), 1e-12)
		require.InDelta(t, 1.0, matrix.Determinant(r), 1e-12)

		// the axis is a fixed point
		require.True(t, vector.ApproxEqual(axis, matrix.TransformDir(r, axis), 1e-12))
	}
}

func TestTransformChain(t *testing.T) {
	// rotate then translate, in row-vector order
	r := matrix.Rotation(vector.V3(0.0, 0.0, 1.0), math.Pi/2)
	tr := matrix.Translation(vector.V3(10.0, 0.0, 0.0))
	m := matrix.Mul(r, tr)

	got := matrix.TransformPoint(m, vector.V3(1.0, 0.0, 0.0))
	require.True(t, vector.ApproxEqual(vector.V3(10.0, 1.0, 0.0), got, 1e-12), "got %v", got)
}
