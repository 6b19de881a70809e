// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package shape linearizes 2D, 3D and 4D integer coordinates into a single
// index for flat-buffer-backed arrays, and back.
//
// # Overview
//
// The canonical linearization is row-major with the first axis varying
// fastest. For coordinates [x, y, z, ...]:
//
//	Linearize([x, y, z, ...]) = x + X*y + X*Y*z + ...
//
// Any other layout is a permutation of the coordinates: column-major uses
// [..., z, y, x]; a 3D layout where each y level is contiguous uses [x, z, y].
//
// Four shape kinds implement the same Shape interface:
//   - Runtime: arbitrary extents supplied to New; strides cached on the value
//   - Const: arbitrary extents fixed by a marker type; no state
//   - Pow2: power-of-two extents given as bits per axis to NewPow2; shifts
//     and masks replace multiplication and division
//   - ConstPow2: power-of-two bits fixed by a marker type
//
// # Basic Usage
//
//	s := shape.New[uint32]([3]uint32{5, 6, 7})
//	i := s.Linearize([3]uint32{1, 2, 3}) // 101
//	p := s.Delinearize(i)                // [1 2 3]
//
//	data := make([]float32, shape.Len(s))
//	data[i] = 1
//
// Compile-time shapes take their extents from a zero-size marker type:
//
//	type Chunk struct{}
//
//	func (Chunk) Extents() [3]uint32 { return [3]uint32{16, 16, 16} }
//
//	var chunk shape.Const[uint32, [3]uint32, Chunk]
//	i := chunk.Linearize([3]uint32{1, 2, 3})
//
// # Wraparound
//
// Linearize never checks ranges and never fails. Arithmetic wraps modulo the
// width of the scalar type, which makes negative strides usable with unsigned
// indices:
//
//	s := shape.New[uint32]([3]uint32{10, 10, 10})
//	down := s.Linearize([3]uint32{0, ^uint32(0), 0}) // -10 modulo 2^32
//
// Delinearize cannot recover such a coordinate from an unsigned index. With a
// signed scalar type it can: Delinearize(-10) returns [0 -1 0].
//
// # Validation
//
// Constructors do not validate their input. ValidateExtents and ValidateBits
// report zero or negative extents and sizes that overflow the scalar type.
// Building with -tags ndshape_debug turns the same checks into panics inside
// New, NewPow2 and the compile-time shapes. Verify walks every index of a
// shape and proves the mapping is a bijection.
//
// Checking a computed index against the bounds of the backing storage is the
// caller's responsibility.
package shape
