// SPDX-License-Identifier: MIT
package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecmat/scalar"
	"github.com/katalvlaran/vecmat/vector"
)

func TestDotCross(t *testing.T) {
	require.Equal(t, float32(32), vector.Dot(vector.V3[float32](1, 2, 3), vector.V3[float32](4, 5, 6)))
	require.Equal(t, 32, vector.Dot(vector.V3(1, 2, 3), vector.V3(4, 5, 6)))
	require.Equal(t,
		vector.V3[float32](-3, 6, -3),
		vector.Cross(vector.V3[float32](2, 3, 4), vector.V3[float32](5, 6, 7)),
	)

	// the cross product is orthogonal to both operands
	a, b := vector.V3(1.0, -2.0, 0.5), vector.V3(3.0, 0.25, -1.0)
	c := vector.Cross(a, b)
	assert.InDelta(t, 0, vector.Dot(a, c), 1e-12)
	assert.InDelta(t, 0, vector.Dot(b, c), 1e-12)
	assert.Equal(t, c.Neg(), vector.Cross(b, a))
}

func TestGeneralFunctions(t *testing.T) {
	require.Equal(t, vector.V3[float32](1, 2, 3), vector.Abs(vector.V3[float32](-1, 2, -3)))
	require.Equal(t, vector.V3(1, 4, 9), vector.Sq(vector.V3(-1, 2, -3)))
	require.Equal(t, vector.V3(1.0, 2.0, 3.0), vector.Sqrt(vector.V3(1.0, 4.0, 9.0)))
	require.Equal(t, vector.V2(8, 27), vector.Pow(vector.V2(2, 3), 3))
	require.Equal(t, vector.V3(1, -2, 0), vector.Min(vector.V3(1, 5, 0), vector.V3(2, -2, 0)))
	require.Equal(t, vector.V3(2, 5, 0), vector.Max(vector.V3(1, 5, 0), vector.V3(2, -2, 0)))
	require.Equal(t, 10, vector.Sum(vector.V4(1, 2, 3, 4)))
	require.Equal(t, 25, vector.LengthSq(vector.V2(3, 4)))
	require.Equal(t, 5.0, vector.Length(vector.V2(3.0, 4.0)))
	require.Equal(t, 5.0, vector.Distance(vector.V2(1.0, 1.0), vector.V2(4.0, 5.0)))
	require.Equal(t, vector.V2(0.6, 0.8), vector.Normalize(vector.V2(3.0, 4.0)))
	require.Equal(t, vector.V2(0.0, 0.0), vector.Normalize(vector.V2(0.0, 0.0)))
	require.Equal(t, vector.V2(2.0, 3.0), vector.Lerp(vector.V2(0.0, 2.0), vector.V2(4.0, 4.0), 0.5))
	require.True(t, vector.ApproxEqual(vector.V2(1.0, 2.0), vector.V2(1.0+1e-9, 2.0), 1e-6))
	require.False(t, vector.ApproxEqual(vector.V2(1.0, 2.0), vector.V2(1.1, 2.0), 1e-6))
}

func TestRounding(t *testing.T) {
	in := vector.V3[float32](0.5, 1.5, -0.5)
	require.Equal(t, vector.V3[float32](0, 1, 0), vector.Trunc(in))
	require.Equal(t, vector.V3[float32](0, 1, -1), vector.Floor(in))
	require.Equal(t, vector.V3[float32](1, 2, 0), vector.Ceil(in))
	require.Equal(t, vector.V3[float32](1, 2, -1), vector.Round(in))
	require.Equal(t, vector.V3[float32](0, 1, 1), vector.Round(vector.V3[float32](0.25, 0.5, 0.75)))
}

func TestDirectToIntRounding(t *testing.T) {
	in := vector.V3[float32](0.5, 1.5, -0.5)
	require.Equal(t, vector.V3(0, 1, 0), vector.ITrunc[int](in))
	require.Equal(t, vector.V3(0, 1, -1), vector.IFloor[int](in))
	require.Equal(t, vector.V3(1, 2, 0), vector.ICeil[int](in))
	require.Equal(t, vector.V3(1, 2, -1), vector.IRound[int](in))
	require.Equal(t, vector.V3[int64](0, 1, 1), vector.IRound[int64](vector.V3[float32](0.25, 0.5, 0.75)))

	special := vector.V3(math.NaN(), math.Inf(1), math.Inf(-1))
	require.Equal(t, vector.V3[int32](0, 1, -1), vector.IFloor[int32](special))
	require.Equal(t, vector.V3[int32](0, 1, -1), vector.IRound[int32](special))
}

func TestSpecialValueQueries(t *testing.T) {
	inf := scalar.Inf[float64]()
	nan := scalar.NaN[float64]()

	require.True(t, vector.AllInf(vector.V2(inf, -inf)))
	require.False(t, vector.AllInf(vector.V2(inf, 1)))
	require.True(t, vector.AnyInf(vector.V2(inf, 1)))
	require.False(t, vector.AnyInf(vector.V3(1.0, 2, nan)))

	require.True(t, vector.AllNaN(vector.V2(nan, nan)))
	require.False(t, vector.AllNaN(vector.V2(nan, 0)))
	require.True(t, vector.AnyNaN(vector.V3(1.0, 2, nan)))
	require.False(t, vector.AnyNaN(vector.V3(1.0, 2, inf)))

	// padding slots must not take part in the quantifiers
	require.True(t, vector.AllNaN(vector.V1(nan)))
	require.True(t, vector.AllInf(vector.V1(-inf)))
}
