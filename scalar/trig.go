// SPDX-License-Identifier: MIT

package scalar

import "math"

// Pi returns π rounded to T.
func Pi[T Float]() T {
	return T(math.Pi)
}

// Tau returns 2π rounded to T.
func Tau[T Float]() T {
	return T(2 * math.Pi)
}

// Radians converts deg degrees to radians.
func Radians[T Float](deg T) T {
	return deg * Pi[T]() / 180
}

// Degrees converts rad radians to degrees.
func Degrees[T Float](rad T) T {
	return rad * 180 / Pi[T]()
}

// Sin returns the sine of the radian argument n.
func Sin[T Float](n T) T { return T(math.Sin(float64(n))) }

// Cos returns the cosine of the radian argument n.
func Cos[T Float](n T) T { return T(math.Cos(float64(n))) }

// Tan returns the tangent of the radian argument n.
func Tan[T Float](n T) T { return T(math.Tan(float64(n))) }

// Asin returns the arcsine of n in radians.
func Asin[T Float](n T) T { return T(math.Asin(float64(n))) }

// Acos returns the arccosine of n in radians.
func Acos[T Float](n T) T { return T(math.Acos(float64(n))) }

// Atan returns the arctangent of n in radians.
func Atan[T Float](n T) T { return T(math.Atan(float64(n))) }

// Atan2 returns the arctangent of y/x, using the signs of both to pick the quadrant.
func Atan2[T Float](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }
