package shape

// Pow2 is a shape whose extents are powers of two, described by the number of
// bits per axis. Linearize and Delinearize use shifts and masks instead of
// multiplication and division.
//
// Bit counts are not validated unless built with -tags ndshape_debug. A sum
// that exceeds the width of T produces overlapping or truncated fields.
type Pow2[T Coord, V Vector[T]] struct {
	bits    V
	extents V
	shifts  V
	masks   V
	size    T
}

// NewPow2 returns a power-of-two shape with 1<<bits[k] elements on axis k.
func NewPow2[T Coord, V Vector[T]](bits V) Pow2[T, V] {
	if debugAssertions {
		mustValid(ValidateBits[T](bits))
	}
	shifts := computeShifts[T](bits)
	return Pow2[T, V]{
		bits:    bits,
		extents: pow2Extents[T](bits),
		shifts:  shifts,
		masks:   computeMasks[T](bits, shifts),
		size:    pow2Size[T](bits),
	}
}

// Size returns 1 << sum(bits). It wraps to 0 when the bits fill an unsigned T.
func (s Pow2[T, V]) Size() T { return s.size }

// AsArray returns the per-axis extents, not the bit counts.
func (s Pow2[T, V]) AsArray() V { return s.extents }

// Bits returns the per-axis bit counts.
func (s Pow2[T, V]) Bits() V { return s.bits }

// Shifts returns the bit offset of each axis field.
func (s Pow2[T, V]) Shifts() V { return s.shifts }

// Masks returns the in-place bit mask of each axis field.
func (s Pow2[T, V]) Masks() V { return s.masks }

// Linearize ORs each coordinate into its bit field.
func (s Pow2[T, V]) Linearize(p V) T {
	return pack[T](s.shifts, p)
}

// Delinearize extracts each coordinate from its bit field.
func (s Pow2[T, V]) Delinearize(i T) V {
	return unpack[T](s.shifts, s.masks, i)
}

// Validate reports whether the bit counts fit in T.
func (s Pow2[T, V]) Validate() error {
	return ValidateBits[T](s.bits)
}
