// Package shape implements coordinate <-> linear index mappings for dense
// N-dimensional grids stored in flat buffers.
package shape

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Coord is a constraint for coordinate and index scalars.
// Arithmetic on Coord values wraps modulo the scalar's bit width.
type Coord interface {
	constraints.Integer
}

// Vector is a constraint for fixed-length coordinate, extent and bit-count
// vectors. Position 0 is the fastest-varying axis.
type Vector[T Coord] interface {
	~[2]T | ~[3]T | ~[4]T
}

// bitWidth returns the number of bits in T.
func bitWidth[T Coord]() int {
	n := 0
	for x := T(1); x != 0; x <<= 1 {
		n++
	}
	return n
}

// isSigned reports whether T is a signed integer type.
func isSigned[T Coord]() bool {
	return ^T(0) < 0
}

// scalarName returns a human-readable name for T, used in error messages.
func scalarName[T Coord]() string {
	return fmt.Sprintf("%T", T(0))
}
