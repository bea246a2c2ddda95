// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." and callers match them with
// errors.Is. Context is added with matrixErrorf at the call site.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrComponentCount indicates a constructor got the wrong number of
	// components or rows for the matrix shape.
	ErrComponentCount = errors.New("matrix: wrong component count")
)

// Operation name constants for unified error wrapping.
const (
	opNew      = "New"
	opMustNew  = "MustNew"
	opFromRows = "FromRows"
	opAt       = "At"
	opSet      = "Set"
	opRow      = "Row"
	opRowRef   = "RowRef"
	opSetRow   = "SetRow"
	opCol      = "Col"
	opSetCol   = "SetCol"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("Mat.%s: %w", tag, err)
}

// indexErrorf reports an out-of-range index together with the bound it violated.
func indexErrorf(tag string, idx, bound int) error {
	return matrixErrorf(tag, fmt.Errorf("index %d not in [0,%d): %w", idx, bound, ErrOutOfRange))
}
