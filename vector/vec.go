// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/vecmat/scalar"
)

// Vec is a vector of L components of type T.
// Slots past L are always zero, so == on two Vec values agrees with Equal.
type Vec[L Dim, T scalar.Number] struct {
	c [MaxLen]T // backing storage; c[:L] is live
}

// Shorthand aliases.
type (
	Vec1[T scalar.Number] = Vec[D1, T]
	Vec2[T scalar.Number] = Vec[D2, T]
	Vec3[T scalar.Number] = Vec[D3, T]
	Vec4[T scalar.Number] = Vec[D4, T]
)

// ---------- Constructors ----------

// Zero returns the vector with every component 0.
// It equals the zero value of Vec[L, T].
func Zero[L Dim, T scalar.Number]() Vec[L, T] {
	return Vec[L, T]{}
}

// New fills the leading components from components and zero-pads the rest.
// Supplying more than L components returns ErrComponentCount.
//
//	New[D3](1.0, 2.0) => [1, 2, 0]
func New[L Dim, T scalar.Number](components ...T) (Vec[L, T], error) {
	var v Vec[L, T]
	n := LenOf[L]()
	if len(components) > n {
		return v, vectorErrorf(opNew, fmt.Errorf("%d components for length %d: %w", len(components), n, ErrComponentCount))
	}
	copy(v.c[:n], components)

	return v, nil
}

// MustNew is like New but panics on error.
func MustNew[L Dim, T scalar.Number](components ...T) Vec[L, T] {
	v, err := New[L](components...)
	if err != nil {
		panic(vectorErrorf(opMustNew, err))
	}

	return v
}

// Splat broadcasts s to every component.
//
//	Splat[D3](5.0) => [5, 5, 5]
func Splat[L Dim, T scalar.Number](s T) Vec[L, T] {
	var v Vec[L, T]
	for i := range LenOf[L]() {
		v.c[i] = s
	}

	return v
}

// FromSlice copies the first min(L, len(s)) values of s; the rest stay zero.
func FromSlice[L Dim, T scalar.Number](s []T) Vec[L, T] {
	var v Vec[L, T]
	copy(v.c[:LenOf[L]()], s)

	return v
}

// FromArray builds a vector from a backing array. Slots at or past L are
// dropped so that the zero padding holds.
func FromArray[L Dim, T scalar.Number](a [MaxLen]T) Vec[L, T] {
	var v Vec[L, T]
	copy(v.c[:LenOf[L]()], a[:])

	return v
}

// V1 returns the 1-component vector [x].
func V1[T scalar.Number](x T) Vec1[T] {
	return Vec1[T]{c: [MaxLen]T{x}}
}

// V2 returns the vector [x, y].
func V2[T scalar.Number](x, y T) Vec2[T] {
	return Vec2[T]{c: [MaxLen]T{x, y}}
}

// V3 returns the vector [x, y, z].
func V3[T scalar.Number](x, y, z T) Vec3[T] {
	return Vec3[T]{c: [MaxLen]T{x, y, z}}
}

// V4 returns the vector [x, y, z, w].
func V4[T scalar.Number](x, y, z, w T) Vec4[T] {
	return Vec4[T]{c: [MaxLen]T{x, y, z, w}}
}

// Convert copies v into a vector of length L2 and element type U.
// The first min(L1, L2) components are converted positionally; a longer
// target is zero-padded, a shorter one drops the trailing components.
//
//	Convert[D3, float64](V2[int](1, 2)) => [1, 2, 0]
func Convert[L2 Dim, U scalar.Number, L1 Dim, T scalar.Number](v Vec[L1, T]) Vec[L2, U] {
	var out Vec[L2, U]
	n := min(LenOf[L1](), LenOf[L2]())
	for i := range n {
		out.c[i] = U(v.c[i])
	}

	return out
}

// Cast converts every component of v to U, keeping the length.
func Cast[U scalar.Number, L Dim, T scalar.Number](v Vec[L, T]) Vec[L, U] {
	return Convert[L, U](v)
}

// ---------- Access ----------

// Len returns L.
func (v Vec[L, T]) Len() int {
	return LenOf[L]()
}

// At returns component i, or ErrOutOfRange if i is outside [0, L).
func (v Vec[L, T]) At(i int) (T, error) {
	if n := LenOf[L](); i < 0 || i >= n {
		return 0, indexErrorf(opAt, i, n)
	}

	return v.c[i], nil
}

// Set assigns component i, or returns ErrOutOfRange if i is outside [0, L).
func (v *Vec[L, T]) Set(i int, s T) error {
	if n := LenOf[L](); i < 0 || i >= n {
		return indexErrorf(opSet, i, n)
	}
	v.c[i] = s

	return nil
}

// Array returns a copy of the backing array. Entries past L are zero.
func (v Vec[L, T]) Array() [MaxLen]T {
	return v.c
}

// Slice returns a fresh slice holding the L live components.
func (v Vec[L, T]) Slice() []T {
	out := make([]T, LenOf[L]())
	copy(out, v.c[:])

	return out
}

// get is the panicking accessor behind the named components.
func (v *Vec[L, T]) get(i int) T {
	if n := LenOf[L](); i >= n {
		panic(indexErrorf(opAccess, i, n))
	}

	return v.c[i]
}

// put is the panicking mutator behind the named components.
func (v *Vec[L, T]) put(i int, s T) {
	if n := LenOf[L](); i >= n {
		panic(indexErrorf(opAccess, i, n))
	}
	v.c[i] = s
}

// Named accessors. Each panics if the component does not exist for L.

func (v Vec[L, T]) X() T { return v.get(0) }
func (v Vec[L, T]) Y() T { return v.get(1) }
func (v Vec[L, T]) Z() T { return v.get(2) }
func (v Vec[L, T]) W() T { return v.get(3) }

func (v Vec[L, T]) R() T { return v.get(0) }
func (v Vec[L, T]) G() T { return v.get(1) }
func (v Vec[L, T]) B() T { return v.get(2) }
func (v Vec[L, T]) A() T { return v.get(3) }

func (v Vec[L, T]) U() T { return v.get(0) }
func (v Vec[L, T]) V() T { return v.get(1) }

func (v *Vec[L, T]) SetX(s T) { v.put(0, s) }
func (v *Vec[L, T]) SetY(s T) { v.put(1, s) }
func (v *Vec[L, T]) SetZ(s T) { v.put(2, s) }
func (v *Vec[L, T]) SetW(s T) { v.put(3, s) }

func (v *Vec[L, T]) SetR(s T) { v.put(0, s) }
func (v *Vec[L, T]) SetG(s T) { v.put(1, s) }
func (v *Vec[L, T]) SetB(s T) { v.put(2, s) }
func (v *Vec[L, T]) SetA(s T) { v.put(3, s) }

func (v *Vec[L, T]) SetU(s T) { v.put(0, s) }
func (v *Vec[L, T]) SetV(s T) { v.put(1, s) }

// XY returns the first two components as a Vec2. Requires L >= 2.
func (v Vec[L, T]) XY() Vec2[T] { return V2(v.get(0), v.get(1)) }

// XYZ returns the first three components as a Vec3. Requires L >= 3.
func (v Vec[L, T]) XYZ() Vec3[T] { return V3(v.get(0), v.get(1), v.get(2)) }

// ---------- Comparison & printing ----------

// Equal reports whether every component of v equals the matching component of o.
// It stops at the first mismatch.
func (v Vec[L, T]) Equal(o Vec[L, T]) bool {
	for i := range LenOf[L]() {
		if v.c[i] != o.c[i] {
			return false
		}
	}

	return true
}

// String formats v as "[c0, c1, ...]".
// The format is meant for debugging and is not parsed anywhere.
func (v Vec[L, T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	n := LenOf[L]()
	for i := range n {
		fmt.Fprint(&sb, v.c[i])
		if i < n-1 {
			sb.WriteString(", ")
		}
	}
	sb.WriteByte(']')

	return sb.String()
}
