// SPDX-License-Identifier: MIT

// Package scalar provides the element-level numeric primitives that vector
// and matrix operations apply per component.
//
// The package provides:
//
//   - Generic constraints (Number, Float, Integer) shared by the whole module.
//   - General functions: Abs, Sq, Sqrt, Pow, Min, Max, Clamp.
//   - Rounding: Trunc, Floor, Ceil, Round (half away from zero), RoundEven.
//   - Direct-to-int rounding: ITrunc, IFloor, ICeil, IRound.
//   - Special floating point values: Inf, QNaN, SNaN, NaN, IsInf, IsNaN.
//   - Constants and trigonometry: Pi, Tau, Sin, Cos, Tan, Asin, Acos, Atan, Atan2.
//
// Direct-to-int functions return an integer type I without going through
// a float result first. They never report errors; special values map to
// fixed results instead:
//
//	NaN  -> 0
//	+Inf -> 1
//	-Inf -> -1
//
// Callers relying on IEEE-754 semantics must use the float variants.
//
// All functions are pure and safe for concurrent use.
package scalar
