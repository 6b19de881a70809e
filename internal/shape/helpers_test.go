package shape

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Marker types for compile-time shapes used across tests.

type dims567 struct{}

func (dims567) Extents() [3]uint32 { return [3]uint32{5, 6, 7} }

type dims5678 struct{}

func (dims5678) Extents() [4]uint32 { return [4]uint32{5, 6, 7, 8} }

type dims10x10x10u struct{}

func (dims10x10x10u) Extents() [3]uint32 { return [3]uint32{10, 10, 10} }

type dims10x10x10i struct{}

func (dims10x10x10i) Extents() [3]int32 { return [3]int32{10, 10, 10} }

type dims2x4x8 struct{}

func (dims2x4x8) Extents() [3]uint32 { return [3]uint32{2, 4, 8} }

type bits123 struct{}

func (bits123) Bits() [3]uint32 { return [3]uint32{1, 2, 3} }

type bits2345 struct{}

func (bits2345) Bits() [4]uint64 { return [4]uint64{2, 3, 4, 5} }

type bits34i16 struct{}

func (bits34i16) Bits() [2]int16 { return [2]int16{3, 4} }

var (
	_ Shape[uint32, [3]uint32]    = Const[uint32, [3]uint32, dims567]{}
	_ Shape[uint32, [3]uint32]    = ConstPow2[uint32, [3]uint32, bits123]{}
	_ Abstract[uint32, [4]uint32] = Const[uint32, [4]uint32, dims5678]{}
	_ Abstract[uint64, [4]uint64] = ConstPow2[uint64, [4]uint64, bits2345]{}
)

// walkInOrder visits every in-range coordinate of s with axis 0 varying
// fastest and checks that the n-th coordinate linearizes to n and
// delinearizes back to itself. Together this proves the mapping is a
// bijection onto [0, Size()) with strictly increasing indices.
func walkInOrder[T Coord, V Vector[T]](t *testing.T, s Shape[T, V]) {
	t.Helper()

	extents := s.AsArray()
	var p V
	var n T
	for {
		if i := s.Linearize(p); i != n {
			t.Fatalf("Linearize(%v) = %d, want %d", p, i, n)
		}
		if got := s.Delinearize(n); got != p {
			t.Fatalf("Delinearize(%d) mismatch (-want +got):\n%s", n, cmp.Diff(p, got))
		}
		n++

		k := 0
		for ; k < len(p); k++ {
			p[k]++
			if p[k] < extents[k] {
				break
			}
			p[k] = 0
		}
		if k == len(p) {
			break
		}
	}

	if n != s.Size() {
		t.Fatalf("visited %d coordinates, Size() = %d", n, s.Size())
	}
}
