// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/vector"
)

func ExampleMul() {
	a := matrix.MustNew[vector.D2, vector.D3](1, 2, 3, 4, 5, 6)
	b := matrix.MustNew[vector.D3, vector.D2](7, 8, 9, 10, 11, 12)
	fmt.Println(matrix.Mul(a, b))
	fmt.Println(matrix.Transpose(a))
	// Output:
	// [[58, 64], [139, 154]]
	// [[1, 4], [2, 5], [3, 6]]
}

func ExampleVecMul() {
	m := matrix.MustNew[vector.D2, vector.D2](1, 2, 3, 4)
	fmt.Println(matrix.VecMul(vector.V2(1, 2), m))
	fmt.Println(matrix.MulVec(m, vector.V2(1, 2)))
	// Output:
	// [7, 10]
	// [5, 11]
}

func ExampleTranslation() {
	m := matrix.Translation(vector.V3(1.0, 2.0, 3.0))
	fmt.Println(m)
	fmt.Println(matrix.TransformPoint(m, vector.V3(1.0, 1.0, 1.0)))
	// Output:
	// [[1, 0, 0, 0], [0, 1, 0, 0], [0, 0, 1, 0], [1, 2, 3, 1]]
	// [2, 3, 4]
}

func ExampleRotation() {
	r := matrix.Rotation(vector.V3(0.0, 0.0, 1.0), math.Pi/2)
	p := matrix.TransformDir(r, vector.V3(1.0, 0.0, 0.0))
	fmt.Println(vector.Round(p))
	// Output:
	// [0, 1, 0]
}

func ExampleMat_Row() {
	m := matrix.Identity[vector.D2, vector.D3, int]()
	row, err := m.Row(1)
	fmt.Println(row, err)
	_, err = m.Row(5)
	fmt.Println(err)
	// Output:
	// [0, 1, 0] <nil>
	// Mat.Row: index 5 not in [0,2): matrix: index out of range
}
