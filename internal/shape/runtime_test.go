package shape

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuntime_LinearizeDelinearize(t *testing.T) {
	s := New[uint32]([3]uint32{5, 6, 7})

	index := s.Linearize([3]uint32{1, 2, 3})
	assert.Equal(t, uint32(101), index)
	assert.Equal(t, [3]uint32{1, 2, 3}, s.Delinearize(index))
}

func TestRuntime_Accessors(t *testing.T) {
	s := New[int64]([4]int64{5, 6, 7, 8})

	assert.Equal(t, int64(5*6*7*8), s.Size())
	assert.Equal(t, [4]int64{5, 6, 7, 8}, s.AsArray())
	assert.Equal(t, [4]int64{1, 5, 30, 210}, s.Strides())
	assert.NoError(t, s.Validate())
}

func TestRuntime_Strides(t *testing.T) {
	tests := []struct {
		name    string
		extents [4]uint64
	}{
		{"uniform", [4]uint64{4, 4, 4, 4}},
		{"mixed", [4]uint64{5, 6, 7, 8}},
		{"unit axes", [4]uint64{1, 9, 1, 3}},
		{"large", [4]uint64{1 << 10, 1 << 12, 1 << 14, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strides := New[uint64](tt.extents).Strides()
			require.Equal(t, uint64(1), strides[0])
			for k := 1; k < len(strides); k++ {
				assert.Equal(t, strides[k-1]*tt.extents[k-1], strides[k], "stride %d", k)
			}
		})
	}
}

func TestRuntime_FourAxesInOrder(t *testing.T) {
	walkInOrder(t, New[uint32]([4]uint32{5, 6, 7, 8}))
}

func TestRuntime_Widths(t *testing.T) {
	t.Run("int8", testRuntimeWidth[int8])
	t.Run("int16", testRuntimeWidth[int16])
	t.Run("int32", testRuntimeWidth[int32])
	t.Run("int64", testRuntimeWidth[int64])
	t.Run("int", testRuntimeWidth[int])
	t.Run("uint8", testRuntimeWidth[uint8])
	t.Run("uint16", testRuntimeWidth[uint16])
	t.Run("uint32", testRuntimeWidth[uint32])
	t.Run("uint64", testRuntimeWidth[uint64])
	t.Run("uint", testRuntimeWidth[uint])
}

// testRuntimeWidth uses shapes small enough for int8.
func testRuntimeWidth[T Coord](t *testing.T) {
	walkInOrder(t, New[T]([2]T{7, 9}))
	walkInOrder(t, New[T]([3]T{3, 4, 5}))
	walkInOrder(t, New[T]([4]T{2, 3, 4, 5}))
	walkInOrder(t, New[T]([4]T{1, 1, 1, 1}))
}

func TestRuntime_UnsignedNegativeStride(t *testing.T) {
	s := New[uint32]([3]uint32{10, 10, 10})

	minusOne := ^uint32(0)
	stride := s.Linearize([3]uint32{0, minusOne, 0})
	assert.Equal(t, uint32(math.MaxUint32-9), stride, "expected -10 modulo 2^32")

	// Unsigned delinearize cannot recover the negative coordinate.
	got := s.Delinearize(stride)
	assert.NotEqual(t, [3]uint32{0, minusOne, 0}, got)
	assert.Equal(t, [3]uint32{6, 8, 42949672}, got)
}

func TestRuntime_SignedNegativeStride(t *testing.T) {
	s := New[int32]([3]int32{10, 10, 10})

	stride := s.Linearize([3]int32{0, -1, 0})
	assert.Equal(t, int32(-10), stride)
	assert.Equal(t, [3]int32{0, -1, 0}, s.Delinearize(stride))
}

func TestRuntime_SignedNonPositiveCoordinates(t *testing.T) {
	s := New[int64]([3]int64{5, 6, 7})

	tests := [][3]int64{
		{-1, 0, 0},
		{0, 0, -1},
		{-1, -2, -3},
		{-4, -5, -6},
		{0, -5, 0},
	}

	for _, p := range tests {
		i := s.Linearize(p)
		assert.Negative(t, i, "Linearize(%v)", p)
		assert.Equal(t, p, s.Delinearize(i), "Delinearize(Linearize(%v))", p)
	}
}

func TestRuntime_CopyIsIndependent(t *testing.T) {
	a := New[int32]([3]int32{5, 6, 7})
	b := a

	extents := b.AsArray()
	extents[0] = 100

	assert.Equal(t, [3]int32{5, 6, 7}, a.AsArray())
	assert.Equal(t, a, b)
}

type point3 [3]int16

func TestRuntime_NamedVectorType(t *testing.T) {
	s := New[int16](point3{5, 6, 7})

	assert.Equal(t, int16(101), s.Linearize(point3{1, 2, 3}))
	assert.Equal(t, point3{1, 2, 3}, s.Delinearize(101))
	walkInOrder(t, s)
}
