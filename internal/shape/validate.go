package shape

import "fmt"

// ValidateExtents checks that every extent is positive and that their product
// fits in T without wrapping.
func ValidateExtents[T Coord, V Vector[T]](extents V) error {
	size := T(1)
	for k := 0; k < len(extents); k++ {
		e := extents[k]
		if e == 0 {
			return fmt.Errorf("%w: axis %d of %v", ErrZeroExtent, k, extents)
		}
		if e < 0 {
			return fmt.Errorf("%w: axis %d of %v", ErrNegativeExtent, k, extents)
		}
		next := size * e
		if next/e != size {
			return fmt.Errorf("%w: %v as %s", ErrSizeOverflow, extents, scalarName[T]())
		}
		size = next
	}
	return nil
}

// ValidateBits checks that every bit count is non-negative and that their sum
// fits in T. For signed T, 1<<(width-1) is negative, so the sum may use at
// most width-2 bits.
func ValidateBits[T Coord, V Vector[T]](bits V) error {
	width := bitWidth[T]()
	if isSigned[T]() {
		width -= 2
	}

	total := 0
	for k := 0; k < len(bits); k++ {
		b := bits[k]
		if b < 0 {
			return fmt.Errorf("%w: axis %d of %v", ErrNegativeBits, k, bits)
		}
		if uint64(b) > uint64(width) {
			return fmt.Errorf("%w: axis %d has %d bits, %s allows %d", ErrBitsOverflow, k, b, scalarName[T](), width)
		}
		total += int(b)
		if total > width {
			return fmt.Errorf("%w: %v sums past %d bits of %s", ErrBitsOverflow, bits, width, scalarName[T]())
		}
	}
	return nil
}

// mustValid panics on err. Only reached when debug assertions are compiled in.
func mustValid(err error) {
	if err != nil {
		panic(fmt.Sprintf("ndshape: %v", err))
	}
}
