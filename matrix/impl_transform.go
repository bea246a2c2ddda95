// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/vecmat/scalar"
	"github.com/katalvlaran/vecmat/vector"
)

// Homogeneous 4×4 builders in the row-vector convention: a point p is
// transformed as [px py pz 1] × M.

// Translation returns the 4×4 matrix that moves points by offset.
//
//	[ 1  0  0  0 ]
//	[ 0  1  0  0 ]
//	[ 0  0  1  0 ]
//	[ x  y  z  1 ]
func Translation[T scalar.Number](offset vector.Vec3[T]) Mat4[T] {
	m := Identity[vector.D4, vector.D4, T]()
	m.rows[3] = vector.V4(offset.X(), offset.Y(), offset.Z(), 1)

	return m
}

// Scaling returns the 4×4 matrix that scales each axis by the matching factor.
func Scaling[T scalar.Number](factors vector.Vec3[T]) Mat4[T] {
	return MustNew[vector.D4, vector.D4](
		factors.X(), 0, 0, 0,
		0, factors.Y(), 0, 0,
		0, 0, factors.Z(), 0,
		0, 0, 0, 1,
	)
}

// Rotation returns the 4×4 matrix rotating by angle radians about axis,
// built with Rodrigues' formula. With c = cos(angle), s = sin(angle),
// t = 1-c and axis (x, y, z) the upper-left block is
//
//	[ t·x²+c    t·x·y+z·s  t·x·z−y·s ]
//	[ t·x·y−z·s t·y²+c     t·y·z+x·s ]
//	[ t·x·z+y·s t·y·z−x·s  t·z²+c    ]
//
// axis must already be unit length; it is neither normalized nor checked.
func Rotation[T scalar.Float](axis vector.Vec3[T], angle T) Mat4[T] {
	c := scalar.Cos(angle)
	s := scalar.Sin(angle)
	t := 1 - c
	x, y, z := axis.X(), axis.Y(), axis.Z()

	return MustNew[vector.D4, vector.D4](
		t*x*x+c, t*x*y+z*s, t*x*z-y*s, 0,
		t*x*y-z*s, t*y*y+c, t*y*z+x*s, 0,
		t*x*z+y*s, t*y*z-x*s, t*z*z+c, 0,
		0, 0, 0, 1,
	)
}

// TransformPoint applies m to the point p, i.e. [p 1] × m, and drops w.
func TransformPoint[T scalar.Number](m Mat4[T], p vector.Vec3[T]) vector.Vec3[T] {
	h := VecMul(vector.V4(p.X(), p.Y(), p.Z(), 1), m)
	return h.XYZ()
}

// TransformDir applies m to the direction d, i.e. [d 0] × m, ignoring translation.
func TransformDir[T scalar.Number](m Mat4[T], d vector.Vec3[T]) vector.Vec3[T] {
	h := VecMul(vector.V4(d.X(), d.Y(), d.Z(), 0), m)
	return h.XYZ()
}
