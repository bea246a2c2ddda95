// SPDX-License-Identifier: MIT

package vector

// MaxLen is the largest supported vector length.
// Every Vec reserves MaxLen slots; only the first L are live.
const MaxLen = 4

// Dim is the set of phantom dimension types.
// A Dim carries a length in the type system and nothing at run time.
type Dim interface {
	D1 | D2 | D3 | D4
	Len() int
}

// D1 is the dimension of length 1.
type D1 struct{}

// D2 is the dimension of length 2.
type D2 struct{}

// D3 is the dimension of length 3.
type D3 struct{}

// D4 is the dimension of length 4.
type D4 struct{}

func (D1) Len() int { return 1 }
func (D2) Len() int { return 2 }
func (D3) Len() int { return 3 }
func (D4) Len() int { return 4 }

// LenOf returns the length carried by L.
func LenOf[L Dim]() int {
	var l L
	return l.Len()
}
