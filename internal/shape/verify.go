package shape

import (
	"context"
	"fmt"
	"math"

	"github.com/born-ml/ndshape/internal/parallel"
)

// Verify exhaustively checks that s is a bijection between in-range
// coordinates and [0, s.Size()), using the default parallel configuration.
func Verify[T Coord, V Vector[T]](s Shape[T, V]) error {
	return VerifyWith(context.Background(), s, parallel.DefaultConfig())
}

// VerifyWith walks every index i in [0, s.Size()) and checks that
// s.Delinearize(i) lies within s.AsArray() on every axis and that Linearize
// maps it back to i. The in-range domain has exactly Size() points, so a nil
// result proves the mapping is a bijection. A shape with a zero extent, or
// whose Size wrapped to zero or below, is rejected before the walk.
//
// The walk costs O(Size()); it is meant for tests and debug builds.
func VerifyWith[T Coord, V Vector[T]](ctx context.Context, s Shape[T, V], cfg parallel.Config) error {
	extents := s.AsArray()
	for k := 0; k < len(extents); k++ {
		if extents[k] == 0 {
			return fmt.Errorf("%w: axis %d of %v", ErrZeroExtent, k, extents)
		}
	}

	// A size that wrapped to zero would make the walk vacuous.
	size := s.Size()
	if size <= 0 || uint64(size) > math.MaxInt {
		return fmt.Errorf("%w: %d (%s)", ErrSizeUnrepresentable, size, scalarName[T]())
	}

	return parallel.For(ctx, int(size), func(lo, hi int) error {
		for n := lo; n < hi; n++ {
			i := T(n)
			p := s.Delinearize(i)
			for k := 0; k < len(p); k++ {
				if p[k] < 0 || p[k] >= extents[k] {
					return fmt.Errorf("%w: index %d gives %v, axis %d outside [0, %d)", ErrOutOfRange, i, p, k, extents[k])
				}
			}
			if got := s.Linearize(p); got != i {
				return fmt.Errorf("%w: index %d gives %v, which linearizes to %d", ErrRoundTrip, i, p, got)
			}
		}
		return nil
	}, cfg)
}
