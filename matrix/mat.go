// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/vecmat/scalar"
	"github.com/katalvlaran/vecmat/vector"
)

// shape returns (M, N) for the type arguments.
func shape[M, N vector.Dim]() (int, int) {
	return vector.LenOf[M](), vector.LenOf[N]()
}

// ---------- Constructors ----------

// Zero returns the M×N matrix with every entry 0.
// It equals the zero value of Mat[M, N, T].
func Zero[M, N vector.Dim, T scalar.Number]() Mat[M, N, T] {
	return Mat[M, N, T]{}
}

// New builds a matrix from exactly M*N components in row-major order.
// Any other count returns ErrComponentCount.
//
//	New[D2, D2](a, b, c, d) =>
//	[ a, b ]
//	[ c, d ]
func New[M, N vector.Dim, T scalar.Number](components ...T) (Mat[M, N, T], error) {
	var m Mat[M, N, T]
	rows, cols := shape[M, N]()
	if len(components) != rows*cols {
		return m, matrixErrorf(opNew, fmt.Errorf("%d components for %dx%d: %w", len(components), rows, cols, ErrComponentCount))
	}
	for i := range rows {
		m.rows[i] = vector.FromSlice[N](components[i*cols : (i+1)*cols])
	}

	return m, nil
}

// MustNew is like New but panics on error.
func MustNew[M, N vector.Dim, T scalar.Number](components ...T) Mat[M, N, T] {
	m, err := New[M, N](components...)
	if err != nil {
		panic(matrixErrorf(opMustNew, err))
	}

	return m
}

// FromRows builds a matrix from up to M rows; missing rows are zero.
// More than M rows returns ErrComponentCount.
func FromRows[M, N vector.Dim, T scalar.Number](rows ...vector.Vec[N, T]) (Mat[M, N, T], error) {
	var m Mat[M, N, T]
	if r := vector.LenOf[M](); len(rows) > r {
		return m, matrixErrorf(opFromRows, fmt.Errorf("%d rows for %d: %w", len(rows), r, ErrComponentCount))
	}
	copy(m.rows[:], rows)

	return m, nil
}

// FromSlice copies up to M*N row-major values from s; missing entries are zero.
func FromSlice[M, N vector.Dim, T scalar.Number](s []T) Mat[M, N, T] {
	var m Mat[M, N, T]
	rows, cols := shape[M, N]()
	for i := 0; i < rows && i*cols < len(s); i++ {
		m.rows[i] = vector.FromSlice[N](s[i*cols:])
	}

	return m
}

// FromArray builds a matrix from a row-major backing array. Entries past
// M rows or N columns are dropped so that the zero padding holds.
func FromArray[M, N vector.Dim, T scalar.Number](a [vector.MaxLen][vector.MaxLen]T) Mat[M, N, T] {
	var m Mat[M, N, T]
	for i := range vector.LenOf[M]() {
		m.rows[i] = vector.FromArray[N](a[i])
	}

	return m
}

// Diagonal returns the matrix with component on the main diagonal and 0
// elsewhere. For a non-square shape only the min(M, N) diagonal entries
// that exist are set.
//
//	Diagonal[D2, D3](v) =>
//	[ v, 0, 0 ]
//	[ 0, v, 0 ]
func Diagonal[M, N vector.Dim, T scalar.Number](component T) Mat[M, N, T] {
	var m Mat[M, N, T]
	rows, cols := shape[M, N]()
	for i := range min(rows, cols) {
		var a [vector.MaxLen]T
		a[i] = component
		m.rows[i] = vector.FromArray[N](a)
	}

	return m
}

// Identity returns Diagonal(1).
func Identity[M, N vector.Dim, T scalar.Number]() Mat[M, N, T] {
	return Diagonal[M, N, T](1)
}

// Convert copies m into an M2×N2 matrix of U.
// The first min(M, M2) rows are converted with vector.Convert, so columns
// are truncated or zero-padded the same way vector lengths are.
func Convert[M2, N2 vector.Dim, U scalar.Number, M, N vector.Dim, T scalar.Number](m Mat[M, N, T]) Mat[M2, N2, U] {
	var out Mat[M2, N2, U]
	for i := range min(vector.LenOf[M](), vector.LenOf[M2]()) {
		out.rows[i] = vector.Convert[N2, U](m.rows[i])
	}

	return out
}

// Cast converts every entry of m to U, keeping the shape.
func Cast[U scalar.Number, M, N vector.Dim, T scalar.Number](m Mat[M, N, T]) Mat[M, N, U] {
	return Convert[M, N, U](m)
}

// ---------- Access ----------

// Rows returns M.
func (m Mat[M, N, T]) Rows() int { return vector.LenOf[M]() }

// Cols returns N.
func (m Mat[M, N, T]) Cols() int { return vector.LenOf[N]() }

// Row returns a copy of row i.
func (m Mat[M, N, T]) Row(i int) (vector.Vec[N, T], error) {
	if r := vector.LenOf[M](); i < 0 || i >= r {
		return vector.Vec[N, T]{}, indexErrorf(opRow, i, r)
	}

	return m.rows[i], nil
}

// RowRef returns a pointer to row i. Writes through it modify m.
func (m *Mat[M, N, T]) RowRef(i int) (*vector.Vec[N, T], error) {
	if r := vector.LenOf[M](); i < 0 || i >= r {
		return nil, indexErrorf(opRowRef, i, r)
	}

	return &m.rows[i], nil
}

// SetRow replaces row i with v.
func (m *Mat[M, N, T]) SetRow(i int, v vector.Vec[N, T]) error {
	if r := vector.LenOf[M](); i < 0 || i >= r {
		return indexErrorf(opSetRow, i, r)
	}
	m.rows[i] = v

	return nil
}

// Col gathers column j across all M rows.
func (m Mat[M, N, T]) Col(j int) (vector.Vec[M, T], error) {
	if c := vector.LenOf[N](); j < 0 || j >= c {
		return vector.Vec[M, T]{}, indexErrorf(opCol, j, c)
	}

	return m.col(j), nil
}

// SetCol scatters v into column j.
func (m *Mat[M, N, T]) SetCol(j int, v vector.Vec[M, T]) error {
	if c := vector.LenOf[N](); j < 0 || j >= c {
		return indexErrorf(opSetCol, j, c)
	}
	vals := v.Array()
	for i := range vector.LenOf[M]() {
		a := m.rows[i].Array()
		a[j] = vals[i]
		m.rows[i] = vector.FromArray[N](a)
	}

	return nil
}

// At returns the entry at (i, j).
func (m Mat[M, N, T]) At(i, j int) (T, error) {
	if r := vector.LenOf[M](); i < 0 || i >= r {
		return 0, indexErrorf(opAt, i, r)
	}
	v, err := m.rows[i].At(j)
	if err != nil {
		return 0, matrixErrorf(opAt, fmt.Errorf("col %d: %w", j, ErrOutOfRange))
	}

	return v, nil
}

// Set assigns the entry at (i, j).
func (m *Mat[M, N, T]) Set(i, j int, v T) error {
	if r := vector.LenOf[M](); i < 0 || i >= r {
		return indexErrorf(opSet, i, r)
	}
	if err := m.rows[i].Set(j, v); err != nil {
		return matrixErrorf(opSet, fmt.Errorf("col %d: %w", j, ErrOutOfRange))
	}

	return nil
}

// Array returns a copy of the backing storage, one row per entry.
// Rows past M and columns past N are zero.
func (m Mat[M, N, T]) Array() [vector.MaxLen][vector.MaxLen]T {
	var out [vector.MaxLen][vector.MaxLen]T
	for i := range vector.LenOf[M]() {
		out[i] = m.rows[i].Array()
	}

	return out
}

// col gathers column j without bounds checks; callers guarantee j < N.
func (m Mat[M, N, T]) col(j int) vector.Vec[M, T] {
	var a [vector.MaxLen]T
	for i := range vector.LenOf[M]() {
		a[i] = m.rows[i].Array()[j]
	}

	return vector.FromArray[M](a)
}

// ---------- Comparison & printing ----------

// Equal reports whether every row of m equals the matching row of o.
// It stops at the first unequal row.
func (m Mat[M, N, T]) Equal(o Mat[M, N, T]) bool {
	for i := range vector.LenOf[M]() {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

// ApproxEqual reports whether every entry of a and b differs by at most eps.
func ApproxEqual[M, N vector.Dim, T scalar.Float](a, b Mat[M, N, T], eps T) bool {
	for i := range vector.LenOf[M]() {
		if !vector.ApproxEqual(a.rows[i], b.rows[i], eps) {
			return false
		}
	}

	return true
}

// String formats m as "[row0, row1, ...]", each row in vector form.
func (m Mat[M, N, T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	r := vector.LenOf[M]()
	for i := range r {
		sb.WriteString(m.rows[i].String())
		if i < r-1 {
			sb.WriteString(", ")
		}
	}
	sb.WriteByte(']')

	return sb.String()
}
