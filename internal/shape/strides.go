package shape

// computeStrides returns row-major strides for extents with axis 0 varying
// fastest: stride[0] = 1, stride[k] = stride[k-1] * extent[k-1].
func computeStrides[T Coord, V Vector[T]](extents V) V {
	var strides V
	strides[0] = 1
	for k := 1; k < len(strides); k++ {
		strides[k] = strides[k-1] * extents[k-1]
	}
	return strides
}

// product returns the product of all extents, wrapping on overflow.
func product[T Coord, V Vector[T]](extents V) T {
	n := T(1)
	for k := 0; k < len(extents); k++ {
		n *= extents[k]
	}
	return n
}

// linearizeStrided computes sum(p[k] * strides[k]) with wraparound.
func linearizeStrided[T Coord, V Vector[T]](strides, p V) T {
	i := p[0]
	for k := 1; k < len(p); k++ {
		i += strides[k] * p[k]
	}
	return i
}

// delinearizeStrided inverts linearizeStrided. Axes must be peeled from the
// highest stride down; what remains after axis 1 is the axis 0 coordinate.
func delinearizeStrided[T Coord, V Vector[T]](strides V, i T) V {
	var p V
	for k := len(p) - 1; k > 0; k-- {
		p[k] = i / strides[k]
		i -= p[k] * strides[k]
	}
	p[0] = i
	return p
}
