package shape

// Runtime is an arbitrary-extent shape whose extents are supplied at
// construction. Strides and size are computed once by New and read by every
// call. A Runtime value is immutable; copies are independent.
type Runtime[T Coord, V Vector[T]] struct {
	extents V
	strides V
	size    T
}

// New returns a shape with the given per-axis extents.
//
// Extents are not validated unless built with -tags ndshape_debug; a product
// that overflows T wraps, and a zero extent makes Delinearize divide by zero.
// Use ValidateExtents to check them explicitly.
func New[T Coord, V Vector[T]](extents V) Runtime[T, V] {
	if debugAssertions {
		mustValid(ValidateExtents[T](extents))
	}
	return Runtime[T, V]{
		extents: extents,
		strides: computeStrides[T](extents),
		size:    product[T](extents),
	}
}

// Size returns the product of all extents.
func (s Runtime[T, V]) Size() T { return s.size }

// AsArray returns the per-axis extents.
func (s Runtime[T, V]) AsArray() V { return s.extents }

// Strides returns the per-axis strides; Strides()[0] is always 1.
func (s Runtime[T, V]) Strides() V { return s.strides }

// Linearize returns sum(p[k] * stride[k]).
func (s Runtime[T, V]) Linearize(p V) T {
	return linearizeStrided[T](s.strides, p)
}

// Delinearize returns the coordinate that Linearize maps to i.
func (s Runtime[T, V]) Delinearize(i T) V {
	return delinearizeStrided[T](s.strides, i)
}

// Validate reports whether the extents are usable for addressing.
func (s Runtime[T, V]) Validate() error {
	return ValidateExtents[T](s.extents)
}
