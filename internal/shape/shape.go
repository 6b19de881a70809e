package shape

import "math"

// Shape is the shape of an N-dimensional array.
//
// Implementations never range-check their inputs and never fail: out of range
// coordinates produce a wrapped index.
type Shape[T Coord, V Vector[T]] interface {
	// Size returns the number of elements in an array with this shape.
	Size() T
	// AsArray returns the per-axis extents.
	AsArray() V
	// Linearize translates an N-dimensional coordinate into a linear index.
	Linearize(p V) T
	// Delinearize is the inverse of Linearize.
	Delinearize(i T) V
}

// Abstract is the shape of an array with unspecified dimensionality.
// Every Shape is an Abstract.
type Abstract[T, P any] interface {
	Size() T
	Linearize(p P) T
	Delinearize(i T) P
}

// Len returns s.Size() as an int, for sizing the caller's backing storage.
// It panics if the size does not fit in an int.
func Len[T Coord, V Vector[T]](s Shape[T, V]) int {
	n := s.Size()
	if n < 0 || uint64(n) > math.MaxInt {
		panic(scalarName[T]() + " shape size does not fit in int")
	}
	return int(n)
}

var (
	_ Shape[uint32, [3]uint32]    = Runtime[uint32, [3]uint32]{}
	_ Shape[int64, [4]int64]      = Pow2[int64, [4]int64]{}
	_ Abstract[uint16, [2]uint16] = Runtime[uint16, [2]uint16]{}
	_ Abstract[int8, [2]int8]     = Pow2[int8, [2]int8]{}
)
