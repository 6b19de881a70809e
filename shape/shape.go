// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package shape

import (
	"context"

	"github.com/born-ml/ndshape/internal/parallel"
	"github.com/born-ml/ndshape/internal/shape"
)

// Type aliases for public API

// Coord is a constraint for coordinate and index scalars:
// int, int8...int64, uint, uint8...uint64, uintptr.
type Coord = shape.Coord

// Vector is a constraint for coordinate and extent vectors of 2, 3 or 4 axes.
// Position 0 is the fastest-varying axis.
type Vector[T Coord] = shape.Vector[T]

// Shape is the shape of an N-dimensional array.
//
// Example:
//
//	var s shape.Shape[uint32, [3]uint32] = shape.New[uint32]([3]uint32{5, 6, 7})
//	i := s.Linearize([3]uint32{1, 2, 3}) // 101
type Shape[T Coord, V Vector[T]] = shape.Shape[T, V]

// Abstract is the shape of an array with unspecified dimensionality.
type Abstract[T, P any] = shape.Abstract[T, P]

// Runtime is an arbitrary-extent shape built by New.
type Runtime[T Coord, V Vector[T]] = shape.Runtime[T, V]

// Pow2 is a power-of-two shape built by NewPow2.
type Pow2[T Coord, V Vector[T]] = shape.Pow2[T, V]

// Extents is implemented by marker types that fix extents at compile time.
type Extents[T Coord, V Vector[T]] = shape.Extents[T, V]

// BitWidths is implemented by marker types that fix bits per axis at compile
// time.
type BitWidths[T Coord, V Vector[T]] = shape.BitWidths[T, V]

// Const is an arbitrary-extent shape whose extents come from the marker E.
//
// Example:
//
//	type Dims struct{}
//
//	func (Dims) Extents() [3]uint32 { return [3]uint32{5, 6, 7} }
//
//	var s shape.Const[uint32, [3]uint32, Dims]
type Const[T Coord, V Vector[T], E Extents[T, V]] = shape.Const[T, V, E]

// ConstPow2 is a power-of-two shape whose bits per axis come from the marker B.
type ConstPow2[T Coord, V Vector[T], B BitWidths[T, V]] = shape.ConstPow2[T, V, B]

// VerifyConfig controls how Verify spreads work across goroutines.
type VerifyConfig = parallel.Config

// Validation and verification errors.
var (
	ErrZeroExtent          = shape.ErrZeroExtent
	ErrNegativeExtent      = shape.ErrNegativeExtent
	ErrSizeOverflow        = shape.ErrSizeOverflow
	ErrNegativeBits        = shape.ErrNegativeBits
	ErrBitsOverflow        = shape.ErrBitsOverflow
	ErrSizeUnrepresentable = shape.ErrSizeUnrepresentable
	ErrOutOfRange          = shape.ErrOutOfRange
	ErrRoundTrip           = shape.ErrRoundTrip
)

// Construction

// New returns an arbitrary-extent shape. Strides and size are computed once.
//
// Example:
//
//	s := shape.New[int32]([3]int32{5, 6, 7})
func New[T Coord, V Vector[T]](extents V) Runtime[T, V] {
	return shape.New[T](extents)
}

// NewPow2 returns a shape with 1<<bits[k] elements on axis k.
//
// Example:
//
//	s := shape.NewPow2[uint32]([3]uint32{1, 2, 3}) // extents [2 4 8]
func NewPow2[T Coord, V Vector[T]](bits V) Pow2[T, V] {
	return shape.NewPow2[T](bits)
}

// Helpers

// Len returns s.Size() as an int for sizing backing storage.
// It panics if the size is negative or does not fit in an int.
func Len[T Coord, V Vector[T]](s Shape[T, V]) int {
	return shape.Len(s)
}

// ValidateExtents reports zero or negative extents and products that
// overflow T.
func ValidateExtents[T Coord, V Vector[T]](extents V) error {
	return shape.ValidateExtents[T](extents)
}

// ValidateBits reports negative bit counts and sums that do not fit in T.
func ValidateBits[T Coord, V Vector[T]](bits V) error {
	return shape.ValidateBits[T](bits)
}

// DefaultVerifyConfig returns a VerifyConfig sized to the number of CPUs.
func DefaultVerifyConfig() VerifyConfig {
	return parallel.DefaultConfig()
}

// Verify checks that s maps its in-range coordinates one-to-one onto
// [0, s.Size()). It visits every index and is meant for tests.
func Verify[T Coord, V Vector[T]](s Shape[T, V]) error {
	return shape.Verify(s)
}

// VerifyWith is Verify with a context and an explicit VerifyConfig.
func VerifyWith[T Coord, V Vector[T]](ctx context.Context, s Shape[T, V], cfg VerifyConfig) error {
	return shape.VerifyWith(ctx, s, cfg)
}
