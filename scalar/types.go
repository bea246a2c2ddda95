// SPDX-License-Identifier: MIT

package scalar

import "golang.org/x/exp/constraints"

// Number is any arithmetic element type a vector or matrix can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float is any floating point element type.
type Float interface {
	constraints.Float
}

// Integer is any signed or unsigned integer element type.
type Integer interface {
	constraints.Integer
}
