// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates that a component index is outside [0, L).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrComponentCount indicates that more components were supplied than
	// the vector has room for.
	ErrComponentCount = errors.New("vector: too many components")
)

// Operation tags for error wrapping.
const (
	opAt      = "At"
	opSet     = "Set"
	opNew     = "New"
	opAccess  = "accessor"
	opMustNew = "MustNew"
)

// vectorErrorf wraps err with the operation tag, keeping it matchable with errors.Is.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("Vec.%s: %w", tag, err)
}

// indexErrorf wraps ErrOutOfRange with the offending index and the vector length.
func indexErrorf(tag string, i, n int) error {
	return fmt.Errorf("Vec.%s(%d) on length %d: %w", tag, i, n, ErrOutOfRange)
}
