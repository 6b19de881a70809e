package shape

// Extents is implemented by zero-size marker types that fix a shape's extents
// at compile time:
//
//	type Chunk struct{}
//
//	func (Chunk) Extents() [3]uint32 { return [3]uint32{16, 16, 16} }
//
// Extents must return the same literal on every call. Marker types must not
// be pointers; Const calls Extents on the zero value.
type Extents[T Coord, V Vector[T]] interface {
	Extents() V
}

// BitWidths is the power-of-two counterpart of Extents: Bits returns the
// number of bits per axis.
type BitWidths[T Coord, V Vector[T]] interface {
	Bits() V
}

// Const is an arbitrary-extent shape whose extents are part of its type.
// It holds no state; strides and size are derived from E on each call.
type Const[T Coord, V Vector[T], E Extents[T, V]] struct{}

func (Const[T, V, E]) extents() V {
	var e E
	extents := e.Extents()
	if debugAssertions {
		mustValid(ValidateExtents[T](extents))
	}
	return extents
}

// Size returns the product of all extents.
func (s Const[T, V, E]) Size() T { return product[T](s.extents()) }

// AsArray returns the per-axis extents.
func (s Const[T, V, E]) AsArray() V { return s.extents() }

// Strides returns the per-axis strides; Strides()[0] is always 1.
func (s Const[T, V, E]) Strides() V { return computeStrides[T](s.extents()) }

// Linearize returns sum(p[k] * stride[k]).
func (s Const[T, V, E]) Linearize(p V) T {
	return linearizeStrided[T](s.Strides(), p)
}

// Delinearize returns the coordinate that Linearize maps to i.
func (s Const[T, V, E]) Delinearize(i T) V {
	return delinearizeStrided[T](s.Strides(), i)
}

// Validate reports whether E's extents are usable for addressing.
func (Const[T, V, E]) Validate() error {
	var e E
	return ValidateExtents[T](e.Extents())
}

// ConstPow2 is a power-of-two shape whose bit counts are part of its type.
type ConstPow2[T Coord, V Vector[T], B BitWidths[T, V]] struct{}

func (ConstPow2[T, V, B]) bits() V {
	var b B
	bits := b.Bits()
	if debugAssertions {
		mustValid(ValidateBits[T](bits))
	}
	return bits
}

// Size returns 1 << sum(bits).
func (s ConstPow2[T, V, B]) Size() T { return pow2Size[T](s.bits()) }

// AsArray returns the per-axis extents, not the bit counts.
func (s ConstPow2[T, V, B]) AsArray() V { return pow2Extents[T](s.bits()) }

// Shifts returns the bit offset of each axis field.
func (s ConstPow2[T, V, B]) Shifts() V { return computeShifts[T](s.bits()) }

// Masks returns the in-place bit mask of each axis field.
func (s ConstPow2[T, V, B]) Masks() V {
	bits := s.bits()
	return computeMasks[T](bits, computeShifts[T](bits))
}

// Linearize ORs each coordinate into its bit field.
func (s ConstPow2[T, V, B]) Linearize(p V) T {
	return pack[T](s.Shifts(), p)
}

// Delinearize extracts each coordinate from its bit field.
func (s ConstPow2[T, V, B]) Delinearize(i T) V {
	bits := s.bits()
	shifts := computeShifts[T](bits)
	return unpack[T](shifts, computeMasks[T](bits, shifts), i)
}

// Validate reports whether B's bit counts fit in T.
func (ConstPow2[T, V, B]) Validate() error {
	var b B
	return ValidateBits[T](b.Bits())
}
