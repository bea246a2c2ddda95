// SPDX-License-Identifier: MIT
package gonumx_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/vecmat/interop/gonumx"
	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/vector"
)

type (
	d2 = vector.D2
	d3 = vector.D3
	d4 = vector.D4
)

func TestVecRoundTrip(t *testing.T) {
	v := vector.V3(1.5, -2, 4)
	d := gonumx.ToVecDense(v)
	require.Equal(t, 3, d.Len())
	require.Equal(t, []float64{1.5, -2, 4}, d.RawVector().Data)

	back, err := gonumx.FromVecDense[d3, float64](d)
	require.NoError(t, err)
	require.Equal(t, v, back)

	// integer element types truncate toward zero
	iv, err := gonumx.FromVecDense[d3, int](d)
	require.NoError(t, err)
	require.Equal(t, vector.V3(1, -2, 4), iv)
}

func TestFromVecDenseMismatch(t *testing.T) {
	_, err := gonumx.FromVecDense[d2, float64](mat.NewVecDense(3, nil))
	require.ErrorIs(t, err, gonumx.ErrDimensionMismatch)
	require.EqualError(t, err, "gonumx.FromVecDense: want 2x1, got 3x1: gonumx: dimension mismatch")
}

func TestMatRoundTrip(t *testing.T) {
	m := matrix.MustNew[d2, d3, float32](1, 2, 3, 4, 5, 6)
	d := gonumx.ToDense(m)
	r, c := d.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, d.At(1, 2))

	back, err := gonumx.FromDense[d2, d3, float32](d)
	require.NoError(t, err)
	require.Equal(t, m, back)

	// any mat.Matrix works, including gonum's lazy transpose
	tr, err := gonumx.FromDense[d3, d2, float32](d.T())
	require.NoError(t, err)
	require.Equal(t, matrix.Transpose(m), tr)
}

func TestFromDenseMismatch(t *testing.T) {
	_, err := gonumx.FromDense[d3, d3, float64](mat.NewDense(3, 2, nil))
	require.ErrorIs(t, err, gonumx.ErrDimensionMismatch)
	require.EqualError(t, err, "gonumx.FromDense: want 3x3, got 3x2: gonumx: dimension mismatch")
}

// OracleSuite checks the fixed-size kernels against gonum on random inputs.
type OracleSuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *OracleSuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(1))
}

func (s *OracleSuite) randMat4() matrix.Mat4[float64] {
	vals := make([]float64, 16)
	for i := range vals {
		vals[i] = s.rng.Float64()*20 - 10
	}

	return matrix.MustNew[d4, d4](vals...)
}

func (s *OracleSuite) randMat3x4() matrix.Mat[d3, d4, float64] {
	vals := make([]float64, 12)
	for i := range vals {
		vals[i] = s.rng.Float64()*20 - 10
	}

	return matrix.MustNew[d3, d4](vals...)
}

func (s *OracleSuite) TestMul() {
	for k := 0; k < 25; k++ {
		a, b := s.randMat3x4(), s.randMat4()

		var want mat.Dense
		want.Mul(gonumx.ToDense(a), gonumx.ToDense(b))
		got := gonumx.ToDense(matrix.Mul(a, b))
		s.Require().True(mat.EqualApprox(&want, got, 1e-9), "case %d:\nwant %v\ngot  %v", k, mat.Formatted(&want), mat.Formatted(got))
	}
}

func (s *OracleSuite) TestMulVec() {
	for k := 0; k < 25; k++ {
		a := s.randMat3x4()
		v := vector.V4(s.rng.Float64(), s.rng.Float64(), s.rng.Float64(), s.rng.Float64())

		var want mat.VecDense
		want.MulVec(gonumx.ToDense(a), gonumx.ToVecDense(v))
		got := gonumx.ToVecDense(matrix.MulVec(a, v))
		s.Require().True(mat.EqualApprox(&want, got, 1e-9), "case %d", k)

		// v×A is Aᵀ×v
		u := vector.V3(s.rng.Float64(), s.rng.Float64(), s.rng.Float64())
		var wantT mat.VecDense
		wantT.MulVec(gonumx.ToDense(a).T(), gonumx.ToVecDense(u))
		got = gonumx.ToVecDense(matrix.VecMul(u, a))
		s.Require().True(mat.EqualApprox(&wantT, got, 1e-9), "case %d", k)
	}
}

func (s *OracleSuite) TestTranspose() {
	a := s.randMat3x4()
	s.Require().True(mat.Equal(gonumx.ToDense(a).T(), gonumx.ToDense(matrix.Transpose(a))))
}

func (s *OracleSuite) TestDeterminant() {
	for k := 0; k < 25; k++ {
		a := s.randMat4()
		want := mat.Det(gonumx.ToDense(a))
		s.Require().InDelta(want, matrix.Determinant(a), 1e-8, "case %d", k)
	}
}

func (s *OracleSuite) TestInverseThroughGonum() {
	a := matrix.MustNew[d3, d3](4.0, 7, 2, 3, 6, 1, 2, 5, 3)

	var inv mat.Dense
	s.Require().NoError(inv.Inverse(gonumx.ToDense(a)))
	back, err := gonumx.FromDense[d3, d3, float64](&inv)
	s.Require().NoError(err)

	s.Require().True(matrix.ApproxEqual(matrix.Identity[d3, d3, float64](), matrix.Mul(a, back), 1e-12))
}

func TestOracleSuite(t *testing.T) {
	suite.Run(t, new(OracleSuite))
}
