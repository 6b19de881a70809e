package shape

// computeShifts returns shift[0] = 0, shift[k] = shift[k-1] + bits[k-1].
func computeShifts[T Coord, V Vector[T]](bits V) V {
	var shifts V
	for k := 1; k < len(shifts); k++ {
		shifts[k] = shifts[k-1] + bits[k-1]
	}
	return shifts
}

// computeMasks returns, per axis, bits[k] contiguous set bits starting at
// shifts[k].
func computeMasks[T Coord, V Vector[T]](bits, shifts V) V {
	var masks V
	for k := 0; k < len(masks); k++ {
		masks[k] = lowMask(bits[k]) << shifts[k]
	}
	return masks
}

// lowMask returns a value with the low n bits set. n >= width yields all ones.
func lowMask[T Coord](n T) T {
	return ^(^T(0) << n)
}

// pow2Extents returns 1 << bits[k] for every axis.
func pow2Extents[T Coord, V Vector[T]](bits V) V {
	var extents V
	for k := 0; k < len(extents); k++ {
		extents[k] = T(1) << bits[k]
	}
	return extents
}

// pow2Size returns 1 << sum(bits).
func pow2Size[T Coord, V Vector[T]](bits V) T {
	var total T
	for k := 0; k < len(bits); k++ {
		total += bits[k]
	}
	return T(1) << total
}

// pack ORs every axis coordinate into its bit field.
func pack[T Coord, V Vector[T]](shifts, p V) T {
	var i T
	for k := 0; k < len(p); k++ {
		i |= p[k] << shifts[k]
	}
	return i
}

// unpack extracts every axis coordinate from its bit field.
func unpack[T Coord, V Vector[T]](shifts, masks V, i T) V {
	var p V
	for k := 0; k < len(p); k++ {
		p[k] = (i & masks[k]) >> shifts[k]
	}
	return p
}
