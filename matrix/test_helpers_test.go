// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/scalar"
	"github.com/katalvlaran/vecmat/vector"
)

// entries flattens m into a [][]T so it can be diffed with go-cmp.
func entries[M, N vector.Dim, T scalar.Number](t testing.TB, m matrix.Mat[M, N, T]) [][]T {
	t.Helper()
	out := make([][]T, m.Rows())
	for i := range out {
		row, err := m.Row(i)
		if err != nil {
			t.Fatalf("Row(%d): %v", i, err)
		}
		out[i] = row.Slice()
	}

	return out
}

// CompareApprox fails the test when got differs from want by more than tol anywhere.
func CompareApprox[M, N vector.Dim](t *testing.T, want [][]float64, got matrix.Mat[M, N, float64], tol float64) {
	t.Helper()
	if diff := cmp.Diff(want, entries(t, got), cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// CompareExact fails the test when got differs from want anywhere.
func CompareExact[M, N vector.Dim, T scalar.Number](t *testing.T, want [][]T, got matrix.Mat[M, N, T]) {
	t.Helper()
	if diff := cmp.Diff(want, entries(t, got)); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}
