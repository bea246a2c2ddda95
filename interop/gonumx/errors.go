// SPDX-License-Identifier: MIT

package gonumx

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch indicates the gonum value's shape does not match the
// requested fixed-size type.
var ErrDimensionMismatch = errors.New("gonumx: dimension mismatch")

const (
	opFromVecDense = "FromVecDense"
	opFromDense    = "FromDense"
)

// shapeErrorf wraps ErrDimensionMismatch with the wanted and actual shapes.
func shapeErrorf(tag string, wr, wc, gr, gc int) error {
	return fmt.Errorf("gonumx.%s: want %dx%d, got %dx%d: %w", tag, wr, wc, gr, gc, ErrDimensionMismatch)
}
